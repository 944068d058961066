// Package chart generates the psychrometric chart curve set for a fixed
// atmospheric pressure: the saturation envelope plus six isopleth families,
// each as ordered point sequences ready for a rendering surface. Everything
// here is pure; regenerating for another pressure fully replaces the set.
package chart

// Point is one moist-air state: dry-bulb temperature in °C and humidity
// ratio in kg water / kg dry air. Immutable once computed.
type Point struct {
	T float64 `json:"t"`
	W float64 `json:"w"`
}

// Curve is an ordered point sequence with an optional label anchored at a
// point chosen by the generator (midpoint, first survivor, or lowest-T
// survivor depending on the family).
type Curve struct {
	Label   string  `json:"label,omitempty"`
	LabelAt Point   `json:"label_at"`
	Points  []Point `json:"points"`
}

// Family is a named collection of curves sharing one isopleth property.
// Style is a rendering hint only; Legend is the human-readable legend entry.
type Family struct {
	Name   string  `json:"name"`
	Style  string  `json:"style"`
	Legend string  `json:"legend"`
	Curves []Curve `json:"curves"`
}

// Set is the full renderable output for one pressure. All points are scoped
// to PressurePa; a pressure change invalidates the whole set.
type Set struct {
	PressurePa float64  `json:"pressure_pa"`
	TMinC      float64  `json:"t_min_c"`
	TMaxC      float64  `json:"t_max_c"`
	WMin       float64  `json:"w_min"`
	WMax       float64  `json:"w_max"`
	Envelope   Curve    `json:"envelope"`
	Families   []Family `json:"families"`
}

// Family names, stable identifiers for renderers and the xlsx/CSV exporters.
const (
	FamilySaturation       = "saturation"
	FamilyHumidityRatio    = "iso_humidity_ratio"
	FamilyRelativeHumidity = "iso_relative_humidity"
	FamilyIsotherm         = "isotherm"
	FamilyEnthalpy         = "iso_enthalpy"
	FamilySpecificVolume   = "iso_specific_volume"
)
