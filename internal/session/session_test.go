package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultState(t *testing.T) {
	s := New()
	st := s.Snapshot()

	assert.Equal(t, 0.0, st.AltitudeM)
	assert.Equal(t, 101325.0, st.PressurePa)
	assert.Equal(t, 0, st.PendingCount)
	assert.Empty(t, st.Log)

	// The default manual inputs (25 °C, 50% RH) resolve immediately.
	require.NotNil(t, st.Current)
	assert.InDelta(t, 50.3, st.Current.EnthalpyKJ, 0.5)
}

func TestSubmitClick_SensibleHeating(t *testing.T) {
	s := New()

	out := s.SubmitClick(25, 0.0099)
	require.True(t, out.Accepted)
	assert.Equal(t, 1, out.PendingCount)
	assert.Nil(t, out.Process)

	out = s.SubmitClick(30, 0.0099)
	require.True(t, out.Accepted)
	assert.Equal(t, 0, out.PendingCount, "selection empties after the second click")
	require.NotNil(t, out.Process)

	assert.Positive(t, out.Process.DeltaHKJ, "sensible heating raises enthalpy")
	assert.InDelta(t, 5.1, out.Process.DeltaHKJ, 0.2)
	assert.Equal(t, out.Process.DeltaHKJ, out.Process.PowerKW)
	assert.Equal(t, "heating", out.Process.Direction)

	st := s.Snapshot()
	assert.Equal(t, 0, st.PendingCount)
	require.Len(t, st.Log, 1)
}

func TestSubmitClick_CoolingDirection(t *testing.T) {
	s := New()
	s.SubmitClick(30, 0.0099)
	out := s.SubmitClick(25, 0.0099)
	require.NotNil(t, out.Process)
	assert.Negative(t, out.Process.DeltaHKJ)
	assert.Equal(t, "cooling", out.Process.Direction)
}

func TestSubmitClick_AboveEnvelopeIgnored(t *testing.T) {
	s := New()

	// Wsat(25 °C, sea level) is about 0.020, well below 0.029.
	out := s.SubmitClick(25, 0.029)
	assert.False(t, out.Accepted)
	assert.Equal(t, 0, out.PendingCount)

	s.SubmitClick(25, 0.0099)
	out = s.SubmitClick(25, 0.029)
	assert.False(t, out.Accepted)
	assert.Equal(t, 1, out.PendingCount, "invalid click never changes the pending selection")
}

func TestSubmitClick_NegativeHumidityIgnored(t *testing.T) {
	s := New()
	out := s.SubmitClick(25, -0.001)
	assert.False(t, out.Accepted)
}

func TestSetAltitude_ResetsSelection(t *testing.T) {
	s := New()
	s.SubmitClick(25, 0.0099)
	s.SubmitClick(30, 0.0099)
	s.SubmitClick(20, 0.005)
	require.Equal(t, 1, s.Snapshot().PendingCount)
	require.Len(t, s.Snapshot().Log, 1)

	p, err := s.SetAltitude(3000)
	require.NoError(t, err)
	assert.InDelta(t, 70112.0, p, 50.0)

	st := s.Snapshot()
	assert.Equal(t, 0, st.PendingCount, "pending selection computed at the old pressure is dropped")
	assert.Empty(t, st.Log)
	require.NotNil(t, st.Current, "manual-input point is recomputed at the new pressure")
	assert.Equal(t, p, st.Current.PressurePa)

	// A fresh pair starts cleanly at the new pressure.
	out := s.SubmitClick(25, 0.0099)
	require.True(t, out.Accepted)
	assert.Equal(t, 1, out.PendingCount)
}

func TestSetAltitude_Invalid(t *testing.T) {
	s := New()
	_, err := s.SetAltitude(-1)
	assert.Error(t, err)
	_, err = s.SetAltitude(5001)
	assert.Error(t, err)
	assert.Equal(t, 101325.0, s.Pressure(), "failed change leaves pressure untouched")
}

func TestSetInputs(t *testing.T) {
	s := New()

	res, err := s.SetInputs(30, 40)
	require.NoError(t, err)
	assert.Equal(t, 30.0, res.DryBulbC)
	assert.Greater(t, res.HumidityRatio, 0.0)

	// RH 0% has no defined vapor pressure: the point goes away entirely
	// instead of lingering half-updated.
	_, err = s.SetInputs(25, 0)
	require.Error(t, err)
	assert.Nil(t, s.Snapshot().Current)

	res, err = s.SetInputs(25, 50)
	require.NoError(t, err)
	assert.InDelta(t, 50.3, res.EnthalpyKJ, 0.5)
}

func TestClear(t *testing.T) {
	s := New()
	s.SubmitClick(25, 0.0099)
	s.SubmitClick(30, 0.0099)
	s.SubmitClick(20, 0.005)

	s.Clear()
	st := s.Snapshot()
	assert.Equal(t, 0, st.PendingCount)
	assert.Empty(t, st.Log)
	assert.NotNil(t, st.Current, "manual point survives a clear")

	s.Clear() // idempotent
	assert.Equal(t, 0, s.Snapshot().PendingCount)
}

func TestStore_PerUserIsolation(t *testing.T) {
	st := NewStore()
	a := st.Get(1)
	b := st.Get(2)
	assert.NotSame(t, a, b)
	assert.Same(t, a, st.Get(1))

	a.SubmitClick(25, 0.0099)
	assert.Equal(t, 1, a.Snapshot().PendingCount)
	assert.Equal(t, 0, b.Snapshot().PendingCount)

	st.Drop(1)
	assert.NotSame(t, a, st.Get(1))
}
