package dashboard

import (
	"time"

	"github.com/aqdash-org/aqdash/internal/types"
)

// Fixed presentation constants for the three plot modes
const (
	labelOzone = "Ozone (ppb)"
	labelTemp  = "Temperature (°F)"
	labelWind  = "Wind Speed (mph)"
	labelDate  = "Date"

	colorTempScatter = "steelblue"
	colorWindScatter = "darkgreen"

	scatterOpacity = 0.6
)

// Build computes the view model for one parameter snapshot: the three
// rounded summary means and the chart specification for the selected
// plot mode. Trend fitting uses DefaultTrendSpan; see BuildWithSpan.
func Build(filtered []types.Record, view types.ViewParams) (types.SummaryStats, types.ChartSpec) {
	return BuildWithSpan(filtered, view, DefaultTrendSpan)
}

// BuildWithSpan is Build with an explicit LOESS span for the trend
// curve. The span only matters in the scatter modes with the trend
// enabled; time-series mode ignores the trend flag entirely.
func BuildWithSpan(filtered []types.Record, view types.ViewParams, span float64) (types.SummaryStats, types.ChartSpec) {
	stats := summarize(filtered)

	var chart types.ChartSpec
	switch view.Mode {
	case types.PlotWindVsOzone:
		chart = scatterSpec(filtered, windOf, "wind", labelWind, colorWindScatter, view.ShowTrend, span)
	case types.PlotTimeSeries:
		chart = timeSeriesSpec(filtered)
	default:
		chart = scatterSpec(filtered, tempOf, "temp", labelTemp, colorTempScatter, view.ShowTrend, span)
	}

	return stats, chart
}

// summarize computes the three dashboard means over the filtered
// subset, rounded to one decimal. Missing ozone readings are excluded
// from the ozone mean only; an undefined mean leaves the field nil.
func summarize(filtered []types.Record) types.SummaryStats {
	ozone := make([]float64, 0, len(filtered))
	temp := make([]float64, 0, len(filtered))
	wind := make([]float64, 0, len(filtered))
	for _, rec := range filtered {
		if rec.Ozone != nil {
			ozone = append(ozone, *rec.Ozone)
		}
		temp = append(temp, rec.Temp)
		wind = append(wind, rec.Wind)
	}

	var stats types.SummaryStats
	if m, err := Mean(ozone); err == nil {
		stats.AvgOzone = ptr(Round1(m))
	}
	if m, err := Mean(temp); err == nil {
		stats.AvgTemp = ptr(Round1(m))
	}
	if m, err := Mean(wind); err == nil {
		stats.AvgWind = ptr(Round1(m))
	}
	return stats
}

func scatterSpec(filtered []types.Record, xOf func(types.Record) float64, xField, xLabel, color string, withTrend bool, span float64) types.ChartSpec {
	spec := types.ChartSpec{
		Kind:    types.ChartScatter,
		XField:  xField,
		YField:  "ozone",
		XLabel:  xLabel,
		YLabel:  labelOzone,
		Color:   color,
		Opacity: scatterOpacity,
		Points:  make([]types.ChartPoint, 0, len(filtered)),
	}

	// Trend fits use only the pairs with an ozone reading; the points
	// keep one entry per filtered record so missing readings show as
	// gaps rather than silently shrinking the chart.
	var fx, fy []float64
	for _, rec := range filtered {
		x := xOf(rec)
		spec.Points = append(spec.Points, types.ChartPoint{X: ptr(x), Y: rec.Ozone})
		if rec.Ozone != nil {
			fx = append(fx, x)
			fy = append(fy, *rec.Ozone)
		}
	}

	if withTrend {
		curve := Loess(fx, fy, span)
		if len(curve.X) > 0 {
			spec.Trend = &curve
		}
	}
	return spec
}

// timeSeriesSpec plots ozone against a synthesized date at the fixed
// reference year. Points stay in filtered order; the source data is
// already date-ordered and the order is not reapplied here.
func timeSeriesSpec(filtered []types.Record) types.ChartSpec {
	spec := types.ChartSpec{
		Kind:      types.ChartTimeSeries,
		YField:    "ozone",
		DateField: "date",
		XLabel:    labelDate,
		YLabel:    labelOzone,
		Points:    make([]types.ChartPoint, 0, len(filtered)),
	}

	for _, rec := range filtered {
		d := time.Date(types.ReferenceYear, time.Month(rec.Month), rec.Day, 0, 0, 0, 0, time.UTC)
		spec.Points = append(spec.Points, types.ChartPoint{
			Date: d.Format("2006-01-02"),
			Y:    rec.Ozone,
		})
	}
	return spec
}

func tempOf(r types.Record) float64 { return r.Temp }
func windOf(r types.Record) float64 { return r.Wind }

func ptr(v float64) *float64 { return &v }
