package chart

import (
	"encoding/json"
	"net/http"

	"Psychro/internal/psychro"
)

type Handler struct{}

type generateRequest struct {
	AltitudeM float64 `json:"altitude_m"`
}

// Generate resolves pressure from the site altitude and returns the full
// curve set for rendering.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.AltitudeM < 0 || req.AltitudeM > 5000 {
		http.Error(w, "Invalid altitude", http.StatusBadRequest)
		return
	}
	set := Generate(psychro.PressureFromAltitude(req.AltitudeM))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(set)
}
