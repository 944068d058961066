package pressure

import (
	"fmt"

	"Psychro/internal/psychro"
)

type Input struct {
	AltitudeM float64 `json:"altitude_m"`
}

type Result struct {
	AltitudeM  float64 `json:"altitude_m"`
	PressurePa float64 `json:"pressure_pa"`
	Notes      string  `json:"notes"`
}

// Calculate resolves the atmospheric pressure for a site altitude. The UI
// bounds altitude to [0, 5000] m; anything else is rejected here as well.
func Calculate(in Input) (Result, error) {
	if in.AltitudeM < 0 || in.AltitudeM > 5000 {
		return Result{}, fmt.Errorf("invalid altitude")
	}
	return Result{
		AltitudeM:  in.AltitudeM,
		PressurePa: psychro.PressureFromAltitude(in.AltitudeM),
		Notes:      "ICAO standard atmosphere.",
	}, nil
}
