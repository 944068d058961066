package point

import (
	"errors"
	"fmt"

	"Psychro/internal/psychro"
)

// ErrPointUndefined marks inputs that are formally in range but describe no
// physically realizable moist-air state at the resolved pressure. Handlers
// surface it as a user-visible "point undefined" condition, not a crash.
var ErrPointUndefined = errors.New("point outside physical bounds")

type Input struct {
	AltitudeM float64 `json:"altitude_m"`
	DryBulbC  float64 `json:"dry_bulb_c"`
	RelHumPct float64 `json:"rel_hum_pct"`
}

type Result struct {
	PressurePa     float64  `json:"pressure_pa"`
	DryBulbC       float64  `json:"dry_bulb_c"`
	HumidityRatio  float64  `json:"humidity_ratio"`
	EnthalpyKJ     float64  `json:"enthalpy_kj_per_kg"`
	SpecificVolume float64  `json:"specific_volume_m3_per_kg"`
	DewPointC      *float64 `json:"dew_point_c,omitempty"`
	Notes          string   `json:"notes"`
}

// Calculate computes the full moist-air state for manual (altitude, dry-bulb,
// relative humidity) inputs. Either every field of the result is computed or
// ErrPointUndefined is returned; no partial state escapes.
func Calculate(in Input) (Result, error) {
	if in.AltitudeM < 0 || in.AltitudeM > 5000 {
		return Result{}, fmt.Errorf("invalid altitude")
	}
	if in.DryBulbC < -10 || in.DryBulbC > 50 {
		return Result{}, fmt.Errorf("invalid dry-bulb temperature")
	}
	if in.RelHumPct < 0 || in.RelHumPct > 100 {
		return Result{}, fmt.Errorf("invalid relative humidity")
	}

	p := psychro.PressureFromAltitude(in.AltitudeM)

	w, err := psychro.HumidityRatioFromRelHum(in.DryBulbC, in.RelHumPct/100, p)
	if err != nil {
		return Result{}, ErrPointUndefined
	}
	v, err := psychro.MoistAirVolume(in.DryBulbC, w, p)
	if err != nil {
		return Result{}, ErrPointUndefined
	}

	res := Result{
		PressurePa:     p,
		DryBulbC:       in.DryBulbC,
		HumidityRatio:  w,
		EnthalpyKJ:     psychro.MoistAirEnthalpy(in.DryBulbC, w) / 1000,
		SpecificVolume: v,
		Notes:          "Linear moist-air enthalpy approximation.",
	}

	// Dew point is reported only inside its correlation range.
	if pw, err := psychro.VaporPressureFromRelHum(in.DryBulbC, in.RelHumPct/100, p); err == nil {
		if dt, err := psychro.DewPoint(pw); err == nil {
			res.DewPointC = &dt
		}
	}
	return res, nil
}
