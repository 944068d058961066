package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"Psychro/internal/auth"
	"Psychro/internal/calc/point"
	"Psychro/internal/chart"
)

// Handler exposes the per-user session over HTTP. Every route requires the
// auth middleware to have resolved a user ID.
type Handler struct {
	Store *Store
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, false
	}
	return h.Store.Get(userID), true
}

type altitudeRequest struct {
	AltitudeM float64 `json:"altitude_m"`
}

type altitudeResponse struct {
	PressurePa float64   `json:"pressure_pa"`
	Chart      chart.Set `json:"chart"`
}

// Altitude changes the session pressure and returns the regenerated curve
// set. The old curves, pending selection and process log are all invalid at
// the new pressure and must be discarded by the caller.
func (h *Handler) Altitude(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req altitudeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	p, err := s.SetAltitude(req.AltitudeM)
	if err != nil {
		http.Error(w, "Invalid altitude", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(altitudeResponse{PressurePa: p, Chart: chart.Generate(p)})
}

type inputsRequest struct {
	DryBulbC  float64 `json:"dry_bulb_c"`
	RelHumPct float64 `json:"rel_hum_pct"`
}

// Inputs recomputes the manual-input point. A state that does not exist at
// the current pressure is reported distinctly from malformed input.
func (h *Handler) Inputs(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req inputsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := s.SetInputs(req.DryBulbC, req.RelHumPct)
	if errors.Is(err, point.ErrPointUndefined) {
		http.Error(w, "Point outside physical bounds", http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

type clickRequest struct {
	T float64 `json:"t"`
	W float64 `json:"w"`
}

// Click forwards a chart click in data-space coordinates. Clicks outside the
// chart axes never reach the engine; clicks above the saturation envelope are
// ignored by it. Both come back as accepted=false with no state change.
func (h *Handler) Click(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req clickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	var out ClickOutcome
	if req.T < chart.TMinC || req.T > chart.TMaxC || req.W < chart.WMin || req.W > chart.WMax {
		out = ClickOutcome{Accepted: false, PendingCount: s.Snapshot().PendingCount}
	} else {
		out = s.SubmitClick(req.T, req.W)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// Clear resets the selection and the process log.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	s.Clear()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.Snapshot())
}

// Get returns the display snapshot.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.Snapshot())
}
