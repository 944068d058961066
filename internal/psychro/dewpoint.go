package psychro

import "math"

// Dew-point temperature from the vapor partial pressure, using the cubic
// approximations from Udagawa, "Air conditioning calculations by personal
// computer", Ohmsha, 1986. Two fits cover -50..0 °C and 0..50 °C.

const (
	minDewPointVaporPa = 3.9     // lower bound of the -50..0 °C fit
	iceDewPointVaporPa = 611.2   // crossover between the two fits
	maxDewPointVaporPa = 12350.0 // upper bound of the 0..50 °C fit
)

// DewPoint returns the dew-point temperature in °C for a water-vapor partial
// pressure pwPa in Pa. DomainError outside [3.9, 12350] Pa (about -50..50 °C).
func DewPoint(pwPa float64) (float64, error) {
	if pwPa < minDewPointVaporPa || pwPa > maxDewPointVaporPa {
		return 0, domainErr("vapor pressure", pwPa)
	}
	y := math.Log(pwPa)
	y2 := y * y
	y3 := y2 * y
	if pwPa >= iceDewPointVaporPa {
		return -77.199 + 13.198*y - 0.63772*y2 + 0.071098*y3, nil
	}
	return -60.662 + 7.4624*y + 0.20594*y2 + 0.016321*y3, nil
}
