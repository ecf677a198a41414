package dashboard

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/aqdash-org/aqdash/internal/types"
)

func fullRangeParams() types.FilterParams {
	return types.FilterParams{MonthMin: types.MonthMin, MonthMax: types.MonthMax}
}

func TestBuildSummaryStats(t *testing.T) {
	records := loadRecords(t)
	filtered := FilterByMonth(records, fullRangeParams())

	stats, _ := Build(filtered, types.ViewParams{Mode: types.PlotTempVsOzone, Filter: fullRangeParams()})

	if stats.AvgOzone == nil || stats.AvgTemp == nil || stats.AvgWind == nil {
		t.Fatal("expected all three means to be defined over the full dataset")
	}

	// Each mean lies within [min, max] of its field over the subset
	checkBounded := func(name string, got float64, vals []float64) {
		lo, hi := vals[0], vals[0]
		for _, v := range vals {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if got < lo || got > hi {
			t.Errorf("%s = %v outside field range [%v, %v]", name, got, lo, hi)
		}
	}

	var ozone, temp, wind []float64
	for _, rec := range filtered {
		if rec.Ozone != nil {
			ozone = append(ozone, *rec.Ozone)
		}
		temp = append(temp, rec.Temp)
		wind = append(wind, rec.Wind)
	}
	checkBounded("avgOzone", *stats.AvgOzone, ozone)
	checkBounded("avgTemp", *stats.AvgTemp, temp)
	checkBounded("avgWind", *stats.AvgWind, wind)

	// Each value is rounded to one decimal
	for name, v := range map[string]float64{"avgOzone": *stats.AvgOzone, "avgTemp": *stats.AvgTemp, "avgWind": *stats.AvgWind} {
		if Round1(v) != v {
			t.Errorf("%s = %v is not rounded to one decimal", name, v)
		}
	}
}

func TestBuildJuneTemperature(t *testing.T) {
	records := loadRecords(t)
	juneFilter := types.FilterParams{MonthMin: 6, MonthMax: 6}
	filtered := FilterByMonth(records, juneFilter)

	stats, _ := Build(filtered, types.ViewParams{Mode: types.PlotTempVsOzone, Filter: juneFilter})
	if stats.AvgTemp == nil {
		t.Fatal("expected June temperature mean to be defined")
	}

	sum := 0.0
	for _, rec := range filtered {
		sum += rec.Temp
	}
	want := Round1(sum / float64(len(filtered)))
	if *stats.AvgTemp != want {
		t.Errorf("June avgTemp: expected %v, got %v", want, *stats.AvgTemp)
	}
}

func TestBuildAllOzoneMissing(t *testing.T) {
	// A subset with no ozone readings leaves avgOzone undefined while
	// the other means still compute
	var filtered []types.Record
	for day := 1; day <= 5; day++ {
		filtered = append(filtered, types.Record{
			Ozone: nil,
			Wind:  8.0 + float64(day),
			Temp:  70.0 + float64(day),
			Month: 6,
			Day:   day,
		})
	}

	stats, chart := Build(filtered, types.ViewParams{Mode: types.PlotTempVsOzone, Filter: types.FilterParams{MonthMin: 6, MonthMax: 6}})

	if stats.AvgOzone != nil {
		t.Errorf("expected undefined avgOzone, got %v", *stats.AvgOzone)
	}
	if stats.AvgTemp == nil || *stats.AvgTemp != 73.0 {
		t.Errorf("expected avgTemp 73.0, got %v", stats.AvgTemp)
	}
	if stats.AvgWind == nil || *stats.AvgWind != 11.0 {
		t.Errorf("expected avgWind 11.0, got %v", stats.AvgWind)
	}
	if len(chart.Points) != len(filtered) {
		t.Errorf("expected %d chart points, got %d", len(filtered), len(chart.Points))
	}
}

func TestBuildEmptySubset(t *testing.T) {
	// An empty filtered set still produces a valid chart spec; all
	// means are undefined
	stats, chart := Build(nil, types.ViewParams{Mode: types.PlotWindVsOzone, ShowTrend: true, Filter: types.FilterParams{MonthMin: 8, MonthMax: 6}})

	if stats.AvgOzone != nil || stats.AvgTemp != nil || stats.AvgWind != nil {
		t.Error("expected all means to be undefined for an empty subset")
	}
	if chart.Kind != types.ChartScatter {
		t.Errorf("expected scatter chart, got %q", chart.Kind)
	}
	if len(chart.Points) != 0 {
		t.Errorf("expected no points, got %d", len(chart.Points))
	}
	if chart.Trend != nil {
		t.Error("expected no trend curve for an empty subset")
	}
}

func TestBuildScatterModes(t *testing.T) {
	records := loadRecords(t)
	filtered := FilterByMonth(records, fullRangeParams())

	tests := []struct {
		name   string
		mode   types.PlotMode
		xField string
		xLabel string
		color  string
	}{
		{"temperature scatter", types.PlotTempVsOzone, "temp", "Temperature (°F)", "steelblue"},
		{"wind scatter", types.PlotWindVsOzone, "wind", "Wind Speed (mph)", "darkgreen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, chart := Build(filtered, types.ViewParams{Mode: tt.mode, Filter: fullRangeParams()})

			if chart.Kind != types.ChartScatter {
				t.Fatalf("expected scatter chart, got %q", chart.Kind)
			}
			if chart.XField != tt.xField || chart.XLabel != tt.xLabel {
				t.Errorf("x binding: expected %s/%s, got %s/%s", tt.xField, tt.xLabel, chart.XField, chart.XLabel)
			}
			if chart.YField != "ozone" || chart.YLabel != "Ozone (ppb)" {
				t.Errorf("y binding: expected ozone/Ozone (ppb), got %s/%s", chart.YField, chart.YLabel)
			}
			if chart.Color != tt.color {
				t.Errorf("expected color %q, got %q", tt.color, chart.Color)
			}
			if chart.Opacity != 0.6 {
				t.Errorf("expected opacity 0.6, got %v", chart.Opacity)
			}
			if len(chart.Points) != len(filtered) {
				t.Errorf("expected %d points, got %d", len(filtered), len(chart.Points))
			}
			if chart.Trend != nil {
				t.Error("trend not requested but curve attached")
			}
		})
	}
}

func TestBuildScatterWithTrend(t *testing.T) {
	records := loadRecords(t)
	filtered := FilterByMonth(records, fullRangeParams())

	_, chart := Build(filtered, types.ViewParams{Mode: types.PlotWindVsOzone, ShowTrend: true, Filter: fullRangeParams()})

	if chart.Trend == nil {
		t.Fatal("expected a trend curve when showTrend is set")
	}
	if len(chart.Trend.X) == 0 || len(chart.Trend.X) != len(chart.Trend.Y) {
		t.Fatalf("malformed trend curve: %d x / %d y points", len(chart.Trend.X), len(chart.Trend.Y))
	}
	for i := range chart.Trend.X {
		if chart.Trend.Lower[i] > chart.Trend.Y[i] || chart.Trend.Upper[i] < chart.Trend.Y[i] {
			t.Errorf("trend band does not bracket fit at point %d", i)
		}
	}
}

func TestBuildTimeSeries(t *testing.T) {
	records := loadRecords(t)
	filtered := FilterByMonth(records, fullRangeParams())

	// showTrend is not applicable in time-series mode and must be
	// tolerated without error
	_, chart := Build(filtered, types.ViewParams{Mode: types.PlotTimeSeries, ShowTrend: true, Filter: fullRangeParams()})

	if chart.Kind != types.ChartTimeSeries {
		t.Fatalf("expected timeseries chart, got %q", chart.Kind)
	}
	if chart.DateField != "date" || chart.XLabel != "Date" {
		t.Errorf("date binding: got %s/%s", chart.DateField, chart.XLabel)
	}
	if chart.Trend != nil {
		t.Error("time-series chart must not carry a trend curve")
	}
	if len(chart.Points) != len(filtered) {
		t.Errorf("expected %d points, got %d", len(filtered), len(chart.Points))
	}

	// Every synthesized date carries the reference year, and points
	// follow filtered order
	for i, p := range chart.Points {
		if !strings.HasPrefix(p.Date, fmt.Sprintf("%d-", types.ReferenceYear)) {
			t.Fatalf("point %d: date %q does not carry year %d", i, p.Date, types.ReferenceYear)
		}
		want := fmt.Sprintf("%d-%02d-%02d", types.ReferenceYear, filtered[i].Month, filtered[i].Day)
		if p.Date != want {
			t.Errorf("point %d: expected date %s, got %s", i, want, p.Date)
		}
	}
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	records := loadRecords(t)
	filtered := FilterByMonth(records, fullRangeParams())

	before := make([]types.Record, len(filtered))
	copy(before, filtered)

	Build(filtered, types.ViewParams{Mode: types.PlotWindVsOzone, ShowTrend: true, Filter: fullRangeParams()})

	for i := range filtered {
		if filtered[i].Month != before[i].Month || filtered[i].Day != before[i].Day ||
			filtered[i].Wind != before[i].Wind || filtered[i].Temp != before[i].Temp {
			t.Fatalf("record %d was mutated by Build", i)
		}
	}
}
