package dashboard

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// ErrEmptyMean is returned when a mean is requested over zero values.
// The UI layer renders a placeholder for the affected statistic; the
// value is never coerced to zero.
var ErrEmptyMean = errors.New("mean of empty input is undefined")

// Mean returns the arithmetic mean of vals, or ErrEmptyMean when vals
// is empty.
func Mean(vals []float64) (float64, error) {
	if len(vals) == 0 {
		return 0, ErrEmptyMean
	}
	return stat.Mean(vals, nil), nil
}

// Round1 rounds to one decimal place, half away from zero.
//
// Rounding is applied to the value's shortest decimal representation
// rather than its binary expansion, so Round1(23.45) is 23.5 even
// though the closest float64 to 23.45 sits just below it. This matches
// the rounding of the reference statistical summaries.
func Round1(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	s := strconv.FormatFloat(math.Abs(x), 'f', -1, 64)
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i+1:]
	}

	whole, err := strconv.ParseFloat(intPart, 64)
	if err != nil {
		return x
	}

	tenths := 0.0
	if len(frac) > 0 {
		tenths = float64(frac[0] - '0')
	}

	v := whole*10 + tenths
	if len(frac) > 1 && frac[1] >= '5' {
		v++
	}
	v /= 10

	if math.Signbit(x) {
		v = -v
	}
	return v
}
