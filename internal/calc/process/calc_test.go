package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pStd = 101325.0

func TestValidate(t *testing.T) {
	assert.True(t, Validate(State{DryBulbC: 25, HumidityRatio: 0.0099}, pStd))
	assert.True(t, Validate(State{DryBulbC: 25, HumidityRatio: 0}, pStd))
	assert.False(t, Validate(State{DryBulbC: 25, HumidityRatio: 0.029}, pStd),
		"above the saturation envelope")
	assert.False(t, Validate(State{DryBulbC: 25, HumidityRatio: -0.001}, pStd))
	assert.False(t, Validate(State{DryBulbC: -300, HumidityRatio: 0.001}, pStd))
}

func TestCalculate_SensibleHeating(t *testing.T) {
	res, err := Calculate(Input{
		PressurePa: pStd,
		A:          State{DryBulbC: 25, HumidityRatio: 0.0099},
		B:          State{DryBulbC: 30, HumidityRatio: 0.0099},
	})
	require.NoError(t, err)
	assert.Positive(t, res.DeltaHKJ)
	assert.InDelta(t, 5.1, res.DeltaHKJ, 0.2)
	assert.Equal(t, res.DeltaHKJ, res.PowerKW, "power at 1 kg/s equals delta h numerically")
	assert.Equal(t, "heating", res.Direction)
	assert.InDelta(t, res.EnthalpyB-res.EnthalpyA, res.DeltaHKJ, 1e-12)
}

func TestCalculate_OrderCarriesSign(t *testing.T) {
	a := State{DryBulbC: 25, HumidityRatio: 0.0099}
	b := State{DryBulbC: 30, HumidityRatio: 0.0099}

	fwd, err := Calculate(Input{PressurePa: pStd, A: a, B: b})
	require.NoError(t, err)
	rev, err := Calculate(Input{PressurePa: pStd, A: b, B: a})
	require.NoError(t, err)

	assert.InDelta(t, -fwd.DeltaHKJ, rev.DeltaHKJ, 1e-12)
	assert.Equal(t, "cooling", rev.Direction)
}

func TestCalculate_Humidification(t *testing.T) {
	res, err := Calculate(Input{
		PressurePa: pStd,
		A:          State{DryBulbC: 25, HumidityRatio: 0.005},
		B:          State{DryBulbC: 25, HumidityRatio: 0.015},
	})
	require.NoError(t, err)
	assert.Positive(t, res.DeltaHKJ, "adding moisture at constant dry-bulb raises enthalpy")
}

func TestCalculate_Invalid(t *testing.T) {
	_, err := Calculate(Input{
		PressurePa: 0,
		A:          State{DryBulbC: 25, HumidityRatio: 0.005},
		B:          State{DryBulbC: 30, HumidityRatio: 0.005},
	})
	assert.Error(t, err)

	_, err = Calculate(Input{
		PressurePa: pStd,
		A:          State{DryBulbC: 25, HumidityRatio: 0.029},
		B:          State{DryBulbC: 30, HumidityRatio: 0.005},
	})
	assert.Error(t, err)
}
