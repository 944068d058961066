package psychro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPressureFromAltitude_SeaLevel(t *testing.T) {
	assert.Equal(t, 101325.0, PressureFromAltitude(0))
}

func TestPressureFromAltitude_UpperLimit(t *testing.T) {
	assert.InDelta(t, 0.0, PressureFromAltitude(44330), 1e-9)
}

// 3000 m is the reference mid-altitude used in the session tests.
func TestPressureFromAltitude_3000m(t *testing.T) {
	assert.InDelta(t, 70112.0, PressureFromAltitude(3000), 50.0)
}

func TestPressureFromAltitude_Clamped(t *testing.T) {
	assert.Equal(t, 101325.0, PressureFromAltitude(-500))
	assert.InDelta(t, 0.0, PressureFromAltitude(60000), 1e-9)
}

func TestPressureFromAltitude_Monotonic(t *testing.T) {
	prev := PressureFromAltitude(0)
	for h := 100.0; h <= 44330; h += 100 {
		p := PressureFromAltitude(h)
		assert.LessOrEqual(t, p, prev, "pressure must not increase with altitude (h=%g)", h)
		assert.Greater(t, p, -1e-12)
		prev = p
	}
}
