// Package psychro implements the moist-air property relations and the
// atmospheric pressure model. All functions use SI units: temperatures in °C,
// pressures in Pa, humidity ratio in kg water / kg dry air, enthalpy in
// J/kg dry air, specific volume in m³/kg dry air. Functions are pure; inputs
// outside a correlation's validity return a DomainError instead of a sentinel.
package psychro

import "math"

const (
	// Ratio of water-vapor to dry-air molar mass.
	molarMassRatio = 0.621945

	// Gas constant of dry air [J/(kg·K)].
	dryAirGasConstant = 287.042

	// Floor applied to computed humidity ratios, matching the convention of
	// treating fully dry air as a vanishing but positive moisture content.
	minHumidityRatio = 1e-7

	kelvinOffset = 273.15

	// Validity range of the saturation vapor pressure correlations [°C].
	minDryBulbC = -100.0
	maxDryBulbC = 200.0
)

// SaturationVaporPressure returns the saturation partial pressure of water
// vapor in Pa at dry-bulb temperature tC. Hyland-Wexler correlations are used,
// over ice below 0 °C and over liquid water above.
func SaturationVaporPressure(tC float64) (float64, error) {
	if tC < minDryBulbC || tC > maxDryBulbC {
		return 0, domainErr("dry-bulb temperature", tC)
	}
	t := tC + kelvinOffset

	var lnPws float64
	if tC >= 0 {
		lnPws = -5.8002206e3/t +
			1.3914993 -
			4.8640239e-2*t +
			4.1764768e-5*t*t -
			1.4452093e-8*t*t*t +
			6.5459673*math.Log(t)
	} else {
		lnPws = -5.6745359e3/t +
			6.3925247 -
			9.677843e-3*t +
			6.2215701e-7*t*t +
			2.0747825e-9*t*t*t -
			9.484024e-13*t*t*t*t +
			4.1635019*math.Log(t)
	}
	return math.Exp(lnPws), nil
}

// SaturationHumidityRatio returns the humidity ratio of saturated air
// (relative humidity 100%) at dry-bulb tC and total pressure pPa.
// Strictly increasing in tC for a fixed pressure.
func SaturationHumidityRatio(tC, pPa float64) (float64, error) {
	pws, err := SaturationVaporPressure(tC)
	if err != nil {
		return 0, err
	}
	if pws >= pPa {
		// Vapor pressure at or above total pressure: no saturated state.
		return 0, domainErr("saturation vapor pressure", pws)
	}
	w := molarMassRatio * pws / (pPa - pws)
	return math.Max(w, minHumidityRatio), nil
}

// HumidityRatioFromRelHum returns the humidity ratio at dry-bulb tC, relative
// humidity relHum in (0, 1] and total pressure pPa.
func HumidityRatioFromRelHum(tC, relHum, pPa float64) (float64, error) {
	if relHum <= 0 || relHum > 1 {
		return 0, domainErr("relative humidity", relHum)
	}
	pws, err := SaturationVaporPressure(tC)
	if err != nil {
		return 0, err
	}
	pw := relHum * pws
	if pw >= pPa {
		return 0, domainErr("vapor pressure", pw)
	}
	w := molarMassRatio * pw / (pPa - pw)
	return math.Max(w, minHumidityRatio), nil
}

// VaporPressureFromRelHum returns the partial pressure of water vapor in Pa
// at dry-bulb tC and relative humidity relHum.
func VaporPressureFromRelHum(tC, relHum, pPa float64) (float64, error) {
	if relHum <= 0 || relHum > 1 {
		return 0, domainErr("relative humidity", relHum)
	}
	pws, err := SaturationVaporPressure(tC)
	if err != nil {
		return 0, err
	}
	pw := relHum * pws
	if pw >= pPa {
		return 0, domainErr("vapor pressure", pw)
	}
	return pw, nil
}

// MoistAirEnthalpy returns the specific enthalpy of moist air in J/kg dry air
// at dry-bulb tC and humidity ratio w, using the linear approximation
// h = 1.006*T*1000 + w*(2501000 + 1860*T).
//
// The chart generator's constant-enthalpy lines rearrange this same formula;
// the coefficients must not diverge between the two.
func MoistAirEnthalpy(tC, w float64) float64 {
	return 1.006*tC*1000 + w*(2501000+1860*tC)
}

// MoistAirVolume returns the specific volume of moist air in m³/kg dry air at
// dry-bulb tC, humidity ratio w and total pressure pPa.
func MoistAirVolume(tC, w, pPa float64) (float64, error) {
	if w < 0 {
		return 0, domainErr("humidity ratio", w)
	}
	if pPa <= 0 {
		return 0, domainErr("pressure", pPa)
	}
	wb := math.Max(w, minHumidityRatio)
	return dryAirGasConstant * (tC + kelvinOffset) * (1 + 1.607858*wb) / pPa, nil
}

// DryBulbFromVolumeAndHumidityRatio inverts MoistAirVolume: it returns the
// dry-bulb temperature in °C at which moist air with humidity ratio w occupies
// specific volume v m³/kg at total pressure pPa. Fails when no physically
// valid temperature exists.
func DryBulbFromVolumeAndHumidityRatio(v, w, pPa float64) (float64, error) {
	if w < 0 {
		return 0, domainErr("humidity ratio", w)
	}
	if v <= 0 {
		return 0, domainErr("specific volume", v)
	}
	if pPa <= 0 {
		return 0, domainErr("pressure", pPa)
	}
	wb := math.Max(w, minHumidityRatio)
	tC := v*pPa/(dryAirGasConstant*(1+1.607858*wb)) - kelvinOffset
	if tC < minDryBulbC || tC > maxDryBulbC {
		return 0, domainErr("dry-bulb temperature", tC)
	}
	return tC, nil
}
