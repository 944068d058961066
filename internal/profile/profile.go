package profile

import (
	"encoding/json"
	"net/http"

	"Psychro/internal/auth"
	"Psychro/internal/repo"
)

// Handler serves the per-user chart preferences: the default altitude,
// dry-bulb temperature and relative humidity the client seeds its inputs with.
type Handler struct {
	Repo repo.Repository
}

func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	prefs, err := h.Repo.GetPreferences(r.Context(), userID)
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(prefs)
}

func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var prefs repo.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if prefs.AltitudeM < 0 || prefs.AltitudeM > 5000 ||
		prefs.DryBulbC < -10 || prefs.DryBulbC > 50 ||
		prefs.RelHumPct < 0 || prefs.RelHumPct > 100 {
		http.Error(w, "Preferences out of range", http.StatusBadRequest)
		return
	}
	if err := h.Repo.SavePreferences(r.Context(), userID, prefs); err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(prefs)
}
