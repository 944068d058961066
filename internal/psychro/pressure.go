package psychro

import "math"

const (
	// SeaLevelPressurePa is the ICAO standard atmosphere pressure at 0 m.
	SeaLevelPressurePa = 101325.0

	// maxAltitudeM is the altitude where the ICAO formula reaches zero pressure.
	maxAltitudeM = 44330.0
)

// PressureFromAltitude returns the atmospheric pressure in Pa at the given
// altitude in meters, using the ICAO barometric formula
// P = P0 * (1 - h/44330)^5.255. Altitude is clamped to [0, 44330].
func PressureFromAltitude(altitudeM float64) float64 {
	h := math.Max(0, math.Min(altitudeM, maxAltitudeM))
	return SeaLevelPressurePa * math.Pow(1-h/maxAltitudeM, 5.255)
}
