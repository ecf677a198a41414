// Package types contains the shared domain types for the air quality dashboard.
package types

import "fmt"

// Month bounds of the source dataset. Every measurement falls between
// May (5) and September (9).
const (
	MonthMin = 5
	MonthMax = 9
)

// ReferenceYear is the year assigned to synthesized dates in time-series
// mode. The source dataset carries no year column.
const ReferenceYear = 1973

// Record is a single daily air quality measurement. Ozone readings are
// missing on some days; Solar is carried from the source table but not
// used by the dashboard pipeline.
type Record struct {
	Ozone *float64 `json:"ozone"` // ppb, nil when the reading is missing
	Solar *float64 `json:"solar,omitempty"`
	Wind  float64  `json:"wind"` // mph
	Temp  float64  `json:"temp"` // °F
	Month int      `json:"month"`
	Day   int      `json:"day"`
}

// FilterParams are the user-selected inclusive month bounds.
type FilterParams struct {
	MonthMin int `json:"monthMin"`
	MonthMax int `json:"monthMax"`
}

// PlotMode selects which chart the view model builder produces.
type PlotMode string

const (
	PlotTempVsOzone PlotMode = "temp_ozone"
	PlotWindVsOzone PlotMode = "wind_ozone"
	PlotTimeSeries  PlotMode = "timeseries"
)

// ParsePlotMode converts a request parameter into a PlotMode.
func ParsePlotMode(s string) (PlotMode, error) {
	switch PlotMode(s) {
	case PlotTempVsOzone, PlotWindVsOzone, PlotTimeSeries:
		return PlotMode(s), nil
	}
	return "", fmt.Errorf("unknown plot mode: %q", s)
}

// ViewParams is the full parameter snapshot supplied by the UI layer on
// every interaction. ShowTrend is only meaningful in the scatter modes;
// time-series mode ignores it.
type ViewParams struct {
	Mode      PlotMode     `json:"mode"`
	ShowTrend bool         `json:"showTrend"`
	Filter    FilterParams `json:"filter"`
}

// SummaryStats are the three dashboard means, each rounded to one
// decimal place. A nil field means the mean is undefined for the current
// filter (empty subset, or all ozone readings missing) and the UI layer
// renders a placeholder instead of a number.
type SummaryStats struct {
	AvgOzone *float64 `json:"avgOzone"`
	AvgTemp  *float64 `json:"avgTemp"`
	AvgWind  *float64 `json:"avgWind"`
}

// ChartKind discriminates the ChartSpec variants.
type ChartKind string

const (
	ChartScatter    ChartKind = "scatter"
	ChartTimeSeries ChartKind = "timeseries"
)

// ChartPoint is one plotted record. Scatter points carry X; time-series
// points carry Date (YYYY-MM-DD at the reference year). Y is the ozone
// reading and is nil where the reading is missing, leaving a gap in the
// rendered chart.
type ChartPoint struct {
	X    *float64 `json:"x,omitempty"`
	Date string   `json:"date,omitempty"`
	Y    *float64 `json:"y"`
}

// TrendCurve is a locally-weighted regression fit with a pointwise
// confidence band, evaluated on an even grid over the fitted x range.
type TrendCurve struct {
	X     []float64 `json:"x"`
	Y     []float64 `json:"y"`
	Lower []float64 `json:"lower"`
	Upper []float64 `json:"upper"`
}

// ChartSpec is a declarative description of what to plot, consumed by
// the rendering layer. Kind selects the variant: scatter specs populate
// XField/Color/Opacity and optionally Trend, time-series specs populate
// DateField.
type ChartSpec struct {
	Kind      ChartKind    `json:"kind"`
	XField    string       `json:"xField,omitempty"`
	YField    string       `json:"yField"`
	DateField string       `json:"dateField,omitempty"`
	XLabel    string       `json:"xLabel"`
	YLabel    string       `json:"yLabel"`
	Color     string       `json:"color,omitempty"`
	Opacity   float64      `json:"opacity,omitempty"`
	Points    []ChartPoint `json:"points"`
	Trend     *TrendCurve  `json:"trend,omitempty"`
}
