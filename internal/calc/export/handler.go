package export

import (
	"bytes"
	"encoding/json"
	"net/http"

	"Psychro/internal/chart"
	"Psychro/internal/psychro"
)

type Handler struct{}

type exportRequest struct {
	AltitudeM float64 `json:"altitude_m"`
}

func (h *Handler) set(w http.ResponseWriter, r *http.Request) (chart.Set, bool) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return chart.Set{}, false
	}
	if req.AltitudeM < 0 || req.AltitudeM > 5000 {
		http.Error(w, "Invalid altitude", http.StatusBadRequest)
		return chart.Set{}, false
	}
	return chart.Generate(psychro.PressureFromAltitude(req.AltitudeM)), true
}

func (h *Handler) CSV(w http.ResponseWriter, r *http.Request) {
	set, ok := h.set(w, r)
	if !ok {
		return
	}
	buf := bytes.NewBuffer(nil)
	ToCSV(set, buf)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=\"psychrometric_chart.csv\"")
	w.Write(buf.Bytes())
}

func (h *Handler) XLSX(w http.ResponseWriter, r *http.Request) {
	set, ok := h.set(w, r)
	if !ok {
		return
	}
	f, err := ToXLSX(set)
	if err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"psychrometric_chart.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
