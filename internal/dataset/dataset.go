// Package dataset loads the embedded daily air quality measurements.
//
// The fixture is the classic New York air quality table: one row per day
// from May through September 1973, with missing ozone readings encoded
// as NA. It is loaded once at process start and never mutated.
package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	_ "embed"

	"github.com/aqdash-org/aqdash/internal/types"
)

//go:embed airquality.csv
var airquality []byte

// Load parses the embedded CSV into the read-only record set.
func Load() ([]types.Record, error) {
	r := csv.NewReader(bytes.NewReader(airquality))

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing embedded dataset: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("embedded dataset has no data rows")
	}

	// Skip the header row
	records := make([]types.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != 6 {
			return nil, fmt.Errorf("row %d: expected 6 columns, got %d", i+2, len(row))
		}

		rec := types.Record{}

		rec.Ozone, err = parseNullable(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad ozone value: %w", i+2, err)
		}
		rec.Solar, err = parseNullable(row[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad solar value: %w", i+2, err)
		}
		rec.Wind, err = strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad wind value: %w", i+2, err)
		}
		rec.Temp, err = strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad temp value: %w", i+2, err)
		}
		rec.Month, err = strconv.Atoi(row[4])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad month value: %w", i+2, err)
		}
		rec.Day, err = strconv.Atoi(row[5])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad day value: %w", i+2, err)
		}

		if rec.Month < types.MonthMin || rec.Month > types.MonthMax {
			return nil, fmt.Errorf("row %d: month %d outside expected range", i+2, rec.Month)
		}
		if rec.Day < 1 || rec.Day > 31 {
			return nil, fmt.Errorf("row %d: day %d outside expected range", i+2, rec.Day)
		}

		records = append(records, rec)
	}

	return records, nil
}

// parseNullable parses a float column where NA means missing.
func parseNullable(s string) (*float64, error) {
	if s == "NA" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
