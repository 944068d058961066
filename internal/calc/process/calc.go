package process

import (
	"fmt"

	"Psychro/internal/psychro"
)

// State is one end of an air-handling process: a (T, w) pair scoped to the
// pressure the caller computed it at.
type State struct {
	DryBulbC      float64 `json:"dry_bulb_c"`
	HumidityRatio float64 `json:"humidity_ratio"`
}

type Input struct {
	PressurePa float64 `json:"pressure_pa"`
	A          State   `json:"a"`
	B          State   `json:"b"`
}

type Result struct {
	A          State   `json:"a"`
	B          State   `json:"b"`
	EnthalpyA  float64 `json:"enthalpy_a_kj_per_kg"`
	EnthalpyB  float64 `json:"enthalpy_b_kj_per_kg"`
	DeltaHKJ   float64 `json:"delta_h_kj_per_kg"`
	PowerKW    float64 `json:"power_kw_at_1_kg_per_s"`
	Direction  string  `json:"direction"`
	PressurePa float64 `json:"pressure_pa"`
}

// Validate reports whether the state lies on or below the saturation envelope
// at pressure pPa, i.e. describes physically realizable unsaturated or
// saturated air.
func Validate(s State, pPa float64) bool {
	if s.HumidityRatio < 0 {
		return false
	}
	wSat, err := psychro.SaturationHumidityRatio(s.DryBulbC, pPa)
	if err != nil {
		return false
	}
	return s.HumidityRatio <= wSat
}

// Calculate derives the energy figures of the A→B process. Both end states
// must pass Validate at the given pressure. Δh carries the direction: positive
// means B holds more enthalpy than A (heating); the equivalent power at a dry
// air mass flow of 1 kg/s equals Δh numerically.
func Calculate(in Input) (Result, error) {
	if in.PressurePa <= 0 {
		return Result{}, fmt.Errorf("invalid pressure")
	}
	if !Validate(in.A, in.PressurePa) || !Validate(in.B, in.PressurePa) {
		return Result{}, fmt.Errorf("state outside saturation envelope")
	}

	hA := psychro.MoistAirEnthalpy(in.A.DryBulbC, in.A.HumidityRatio) / 1000
	hB := psychro.MoistAirEnthalpy(in.B.DryBulbC, in.B.HumidityRatio) / 1000
	deltaH := hB - hA

	direction := "heating"
	if deltaH < 0 {
		direction = "cooling"
	}

	return Result{
		A:          in.A,
		B:          in.B,
		EnthalpyA:  hA,
		EnthalpyB:  hB,
		DeltaHKJ:   deltaH,
		PowerKW:    deltaH,
		Direction:  direction,
		PressurePa: in.PressurePa,
	}, nil
}
