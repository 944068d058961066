package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Psychro/internal/psychro"
)

const pStd = 101325.0

func familyByName(t *testing.T, s Set, name string) Family {
	t.Helper()
	for _, f := range s.Families {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("family %q not found", name)
	return Family{}
}

func TestGenerate_Envelope(t *testing.T) {
	s := Generate(pStd)

	require.Len(t, s.Envelope.Points, envelopeSamples)
	assert.Equal(t, TMinC, s.Envelope.Points[0].T)
	assert.Equal(t, TMaxC, s.Envelope.Points[len(s.Envelope.Points)-1].T)
	for i := 1; i < len(s.Envelope.Points); i++ {
		assert.Greater(t, s.Envelope.Points[i].W, s.Envelope.Points[i-1].W,
			"envelope humidity ratio must increase with T")
	}
}

func TestGenerate_FamilyOrder(t *testing.T) {
	s := Generate(pStd)
	require.Len(t, s.Families, 6)
	names := make([]string, 0, 6)
	for _, f := range s.Families {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		FamilySaturation,
		FamilyHumidityRatio,
		FamilyRelativeHumidity,
		FamilyIsotherm,
		FamilyEnthalpy,
		FamilySpecificVolume,
	}, names)

	sat := familyByName(t, s, FamilySaturation)
	require.Len(t, sat.Curves, 1)
	assert.Equal(t, s.Envelope.Points, sat.Curves[0].Points)
}

func TestGenerate_HumidityRatioLines(t *testing.T) {
	s := Generate(pStd)
	fam := familyByName(t, s, FamilyHumidityRatio)

	// At sea level the envelope tops out far above 0.029, so every line from
	// 0.001 to 0.029 is present.
	require.Len(t, fam.Curves, 29)

	for _, c := range fam.Curves {
		require.Len(t, c.Points, 2)
		start, end := c.Points[0], c.Points[1]
		assert.Equal(t, start.W, end.W, "segment must be horizontal")
		assert.Equal(t, TMaxC, end.T)
		assert.GreaterOrEqual(t, start.T, TMinC)
		assert.Less(t, start.T, TMaxC)

		// Interior start points sit on the saturation envelope; lines that
		// pass under the whole envelope are pinned to the left edge.
		if start.T > TMinC {
			wSat, err := psychro.SaturationHumidityRatio(start.T, pStd)
			require.NoError(t, err)
			assert.InDelta(t, start.W, wSat, 1e-4,
				"line at w=%g should start on the envelope", start.W)
		}
	}
}

func TestGenerate_RelativeHumidityCurves(t *testing.T) {
	s := Generate(pStd)
	fam := familyByName(t, s, FamilyRelativeHumidity)
	require.Len(t, fam.Curves, 9)

	assert.Equal(t, "10%", fam.Curves[0].Label)
	assert.Equal(t, "90%", fam.Curves[8].Label)

	for _, c := range fam.Curves {
		require.NotEmpty(t, c.Points)
		assert.Equal(t, c.Points[len(c.Points)/2], c.LabelAt)
		for i, p := range c.Points {
			if i > 0 {
				assert.Greater(t, p.T, c.Points[i-1].T, "points stay in T order")
			}
			assert.GreaterOrEqual(t, p.W, WMin)
			assert.LessOrEqual(t, p.W, WMax)
			wSat, err := psychro.SaturationHumidityRatio(p.T, pStd)
			require.NoError(t, err)
			assert.LessOrEqual(t, p.W, wSat+1e-12)
		}
	}
}

func TestGenerate_Isotherms(t *testing.T) {
	s := Generate(pStd)
	fam := familyByName(t, s, FamilyIsotherm)
	require.Len(t, fam.Curves, 61)

	for _, c := range fam.Curves {
		require.Len(t, c.Points, 2)
		assert.Equal(t, c.Points[0].T, c.Points[1].T, "isotherm must be vertical")
		assert.Equal(t, 0.0, c.Points[0].W)
		wSat, err := psychro.SaturationHumidityRatio(c.Points[0].T, pStd)
		require.NoError(t, err)
		assert.Equal(t, wSat, c.Points[1].W)
	}
}

func TestGenerate_EnthalpyLines(t *testing.T) {
	s := Generate(pStd)
	fam := familyByName(t, s, FamilyEnthalpy)
	require.Len(t, fam.Curves, 6)

	for i, c := range fam.Curves {
		hKJ := float64(i * 20)
		require.NotEmpty(t, c.Points, "h=%g", hKJ)
		assert.Equal(t, c.Points[0], c.LabelAt)
		for _, p := range c.Points {
			// Every sample must evaluate back to the nominal enthalpy through
			// the shared property formula: the two are one coefficient set.
			assert.InDelta(t, hKJ*1000, psychro.MoistAirEnthalpy(p.T, p.W), 1e-6)
			wSat, err := psychro.SaturationHumidityRatio(p.T, pStd)
			require.NoError(t, err)
			assert.LessOrEqual(t, p.W, wSat+1e-12)
			assert.GreaterOrEqual(t, p.W, WMin)
		}
	}
}

func TestGenerate_SpecificVolumeLines(t *testing.T) {
	s := Generate(pStd)
	fam := familyByName(t, s, FamilySpecificVolume)
	require.NotEmpty(t, fam.Curves)
	assert.Equal(t, "0.80", fam.Curves[0].Label)

	for _, c := range fam.Curves {
		require.NotEmpty(t, c.Points)
		assert.Equal(t, c.Points[0], c.LabelAt, "label anchors at the lowest-T survivor")
		for i, p := range c.Points {
			if i > 0 {
				assert.Greater(t, p.T, c.Points[i-1].T, "survivors are re-sorted by T")
			}
			assert.GreaterOrEqual(t, p.T, TMinC)
			assert.LessOrEqual(t, p.T, TMaxC)
			wSat, err := psychro.SaturationHumidityRatio(p.T, pStd)
			require.NoError(t, err)
			assert.LessOrEqual(t, p.W, wSat+1e-12)
		}
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	assert.Equal(t, Generate(pStd), Generate(pStd))
}

func TestGenerate_PressureChangesEnvelope(t *testing.T) {
	sea := Generate(pStd)
	high := Generate(psychro.PressureFromAltitude(3000))

	// Lower pressure raises the saturation humidity ratio at every T.
	for i := range sea.Envelope.Points {
		assert.Greater(t, high.Envelope.Points[i].W, sea.Envelope.Points[i].W)
	}
}

func TestInvertMonotonic(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{10, 20, 40, 80}

	x, ok := invertMonotonic(xs, ys, 30)
	require.True(t, ok)
	assert.InDelta(t, 1.5, x, 1e-12)

	x, ok = invertMonotonic(xs, ys, 10)
	require.True(t, ok)
	assert.Equal(t, 0.0, x)

	x, ok = invertMonotonic(xs, ys, 80)
	require.True(t, ok)
	assert.Equal(t, 3.0, x)

	_, ok = invertMonotonic(xs, ys, 5)
	assert.False(t, ok)
	_, ok = invertMonotonic(xs, ys, 100)
	assert.False(t, ok)
	_, ok = invertMonotonic(xs[:1], ys[:1], 10)
	assert.False(t, ok)
}
