package chart

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"Psychro/internal/psychro"
)

// Chart axis ranges and sampling densities. The temperature axis carries 100
// samples; specific-volume lines are sampled along the humidity-ratio axis.
const (
	TMinC = -10.0
	TMaxC = 50.0
	WMin  = 0.0
	WMax  = 0.030

	envelopeSamples = 100
	volumeSamples   = 80
)

// Generate computes the saturation envelope and the six isopleth families for
// total pressure pPa. Samples whose state is physically undefined at this
// pressure are dropped individually; a family is never aborted as a whole.
func Generate(pPa float64) Set {
	temps := floats.Span(make([]float64, envelopeSamples), TMinC, TMaxC)

	// Saturation curve, the physical envelope for every other family.
	// satT/satW keep only the samples where a saturated state exists, in
	// ascending T order, so they can back the inverse lookup below.
	envelope := Curve{Label: "100%"}
	satT := make([]float64, 0, envelopeSamples)
	satW := make([]float64, 0, envelopeSamples)
	for _, t := range temps {
		w, err := psychro.SaturationHumidityRatio(t, pPa)
		if err != nil {
			continue
		}
		envelope.Points = append(envelope.Points, Point{T: t, W: w})
		satT = append(satT, t)
		satW = append(satW, w)
	}
	if n := len(envelope.Points); n > 0 {
		envelope.LabelAt = envelope.Points[n/2]
	}

	return Set{
		PressurePa: pPa,
		TMinC:      TMinC,
		TMaxC:      TMaxC,
		WMin:       WMin,
		WMax:       WMax,
		Envelope:   envelope,
		Families: []Family{
			{
				Name:   FamilySaturation,
				Style:  "dimgray-solid",
				Legend: "Saturation (100% RH)",
				Curves: []Curve{envelope},
			},
			humidityRatioLines(satT, satW),
			relativeHumidityCurves(temps, pPa),
			isotherms(pPa),
			enthalpyLines(satT, satW),
			specificVolumeLines(pPa),
		},
	}
}

// humidityRatioLines draws a horizontal segment at each constant humidity
// ratio, from where it meets the saturation curve to the right edge. Lines
// exist only in the unsaturated region right of the envelope; a line entirely
// below the envelope starts at the left edge.
func humidityRatioLines(satT, satW []float64) Family {
	fam := Family{
		Name:   FamilyHumidityRatio,
		Style:  "lightgray-solid",
		Legend: "Constant humidity ratio",
	}
	for i := 1; i <= 29; i++ {
		w := float64(i) * 0.001
		tSat, ok := invertMonotonic(satT, satW, w)
		if !ok {
			if len(satW) == 0 || w >= satW[0] {
				// Above the envelope top: the line never leaves saturation.
				continue
			}
			tSat = TMinC
		}
		if tSat >= TMaxC {
			continue
		}
		fam.Curves = append(fam.Curves, Curve{
			Points: []Point{{T: tSat, W: w}, {T: TMaxC, W: w}},
		})
	}
	return fam
}

// relativeHumidityCurves samples w(T) at constant relative humidity for 10%
// through 90%. Samples failing the property correlation or falling outside
// the w axis are dropped individually; survivors stay connected in T order
// with the label anchored at the midpoint survivor.
func relativeHumidityCurves(temps []float64, pPa float64) Family {
	fam := Family{
		Name:   FamilyRelativeHumidity,
		Style:  "blue-dashed",
		Legend: "Constant relative humidity",
	}
	for pct := 10; pct <= 90; pct += 10 {
		rh := float64(pct) / 100
		curve := Curve{Label: fmt.Sprintf("%d%%", pct)}
		for _, t := range temps {
			w, err := psychro.HumidityRatioFromRelHum(t, rh, pPa)
			if err != nil {
				continue
			}
			if w < WMin || w > WMax {
				continue
			}
			curve.Points = append(curve.Points, Point{T: t, W: w})
		}
		if len(curve.Points) == 0 {
			continue
		}
		curve.LabelAt = curve.Points[len(curve.Points)/2]
		fam.Curves = append(fam.Curves, curve)
	}
	return fam
}

// isotherms draws a vertical segment at every whole degree, from the dry-air
// axis up to the saturation envelope.
func isotherms(pPa float64) Family {
	fam := Family{
		Name:   FamilyIsotherm,
		Style:  "gray-dotted",
		Legend: "Dry-bulb isotherms",
	}
	for t := int(TMinC); t <= int(TMaxC); t++ {
		tc := float64(t)
		wMax, err := psychro.SaturationHumidityRatio(tc, pPa)
		if err != nil {
			continue
		}
		fam.Curves = append(fam.Curves, Curve{
			Points: []Point{{T: tc, W: 0}, {T: tc, W: wMax}},
		})
	}
	return fam
}

// enthalpyLines draws the diagonal constant-enthalpy lines for 0 through
// 100 kJ/kg. w(T) rearranges the moist-air enthalpy approximation in kJ form;
// the coefficients match psychro.MoistAirEnthalpy exactly. Survivors keep
// their original T order and the label anchors at the first one.
func enthalpyLines(satT, satW []float64) Family {
	fam := Family{
		Name:   FamilyEnthalpy,
		Style:  "green-dashed",
		Legend: "Constant enthalpy",
	}
	for h := 0; h <= 100; h += 20 {
		curve := Curve{Label: fmt.Sprintf("%d", h)}
		for i, t := range satT {
			w := (float64(h) - 1.006*t) / (2501 + 1.86*t)
			if w < WMin || w > satW[i] {
				continue
			}
			curve.Points = append(curve.Points, Point{T: t, W: w})
		}
		if len(curve.Points) == 0 {
			continue
		}
		curve.LabelAt = curve.Points[0]
		fam.Curves = append(fam.Curves, curve)
	}
	return fam
}

// specificVolumeLines samples each constant-volume line along the humidity
// ratio axis and inverts to dry-bulb temperature. The inversion does not
// preserve T ordering, so survivors are sorted by T before connecting; the
// label anchors at the lowest-T survivor.
func specificVolumeLines(pPa float64) Family {
	fam := Family{
		Name:   FamilySpecificVolume,
		Style:  "magenta-dotted",
		Legend: "Constant specific volume",
	}
	ws := floats.Span(make([]float64, volumeSamples), 0.001, 0.028)
	for i := 0; i <= 8; i++ {
		v := 0.80 + 0.02*float64(i)
		curve := Curve{Label: fmt.Sprintf("%.2f", v)}
		for _, w := range ws {
			t, err := psychro.DryBulbFromVolumeAndHumidityRatio(v, w, pPa)
			if err != nil {
				continue
			}
			if t < TMinC || t > TMaxC || w > WMax {
				continue
			}
			wSat, err := psychro.SaturationHumidityRatio(t, pPa)
			if err != nil || w > wSat {
				continue
			}
			curve.Points = append(curve.Points, Point{T: t, W: w})
		}
		if len(curve.Points) == 0 {
			continue
		}
		sort.Slice(curve.Points, func(a, b int) bool {
			return curve.Points[a].T < curve.Points[b].T
		})
		curve.LabelAt = curve.Points[0]
		fam.Curves = append(fam.Curves, curve)
	}
	return fam
}
