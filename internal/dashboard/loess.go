package dashboard

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/aqdash-org/aqdash/internal/types"
)

// DefaultTrendSpan is the fraction of points included in each local fit.
const DefaultTrendSpan = 0.75

const (
	// Number of evaluation points across the fitted x range
	trendGridSize = 80

	// z multiplier for the 95% pointwise confidence band
	trendBandZ = 1.96
)

// Loess fits a locally-weighted linear regression to the x/y pairs and
// evaluates it on an even grid over [min(x), max(x)]. Each grid point
// is fit against the span-nearest fraction of the data with tricube
// weights; the band is the weighted least-squares pointwise 95%
// confidence interval for the fitted mean.
//
// Degenerate input (fewer than three points, or no spread in x) yields
// an empty curve, which the view model builder omits from the chart.
func Loess(xs, ys []float64, span float64) types.TrendCurve {
	n := len(xs)
	if n != len(ys) || n < 3 {
		return types.TrendCurve{}
	}
	if span <= 0 || span > 1 {
		span = DefaultTrendSpan
	}

	// Sorted working copies; inputs are never modified
	px := append([]float64(nil), xs...)
	py := append([]float64(nil), ys...)
	sort.Sort(&xyPairs{px, py})

	minX, maxX := px[0], px[n-1]
	if maxX <= minX {
		return types.TrendCurve{}
	}

	window := int(math.Ceil(span * float64(n)))
	if window < 3 {
		window = 3
	}
	if window > n {
		window = n
	}

	curve := types.TrendCurve{
		X:     make([]float64, trendGridSize),
		Y:     make([]float64, trendGridSize),
		Lower: make([]float64, trendGridSize),
		Upper: make([]float64, trendGridSize),
	}

	dists := make([]float64, n)
	sorted := make([]float64, n)
	weights := make([]float64, n)
	step := (maxX - minX) / float64(trendGridSize-1)

	for g := 0; g < trendGridSize; g++ {
		x0 := minX + float64(g)*step

		// Bandwidth is the distance to the window-th nearest point
		for i, x := range px {
			dists[i] = math.Abs(x - x0)
		}
		copy(sorted, dists)
		sort.Float64s(sorted)
		h := sorted[window-1]

		if h == 0 {
			// The whole window sits exactly at x0; weight those
			// points equally and ignore the rest
			for i, d := range dists {
				if d == 0 {
					weights[i] = 1
				} else {
					weights[i] = 0
				}
			}
		} else {
			for i, d := range dists {
				weights[i] = tricube(d / h)
			}
		}

		y0, se := weightedFit(px, py, weights, x0)
		curve.X[g] = x0
		curve.Y[g] = y0
		curve.Lower[g] = y0 - trendBandZ*se
		curve.Upper[g] = y0 + trendBandZ*se
	}

	return curve
}

// weightedFit computes the local weighted linear fit at x0 and the
// standard error of the fitted mean. Windows with no spread in x fall
// back to a weighted mean.
func weightedFit(xs, ys, weights []float64, x0 float64) (y0, se float64) {
	sumW := 0.0
	for _, w := range weights {
		sumW += w
	}
	xbar := stat.Mean(xs, weights)

	sxx := 0.0
	for i, x := range xs {
		d := x - xbar
		sxx += weights[i] * d * d
	}

	const minSpread = 1e-12
	var alpha, beta float64
	if sxx < minSpread {
		alpha = stat.Mean(ys, weights)
		beta = 0
	} else {
		alpha, beta = stat.LinearRegression(xs, ys, weights, false)
	}
	y0 = alpha + beta*x0

	rss := 0.0
	for i := range xs {
		if weights[i] == 0 {
			continue
		}
		r := ys[i] - (alpha + beta*xs[i])
		rss += weights[i] * r * r
	}

	dof := sumW - 2
	if dof < 1 {
		dof = 1
	}
	sigma2 := rss / dof

	if sxx < minSpread {
		se = math.Sqrt(sigma2 / sumW)
	} else {
		dx := x0 - xbar
		se = math.Sqrt(sigma2 * (1/sumW + dx*dx/sxx))
	}
	return y0, se
}

// tricube is the standard LOESS kernel: (1-u³)³ on [0,1), zero beyond.
func tricube(u float64) float64 {
	if u >= 1 {
		return 0
	}
	c := 1 - u*u*u
	return c * c * c
}

// xyPairs sorts paired x/y slices by x, keeping pairs aligned.
type xyPairs struct {
	x, y []float64
}

func (p *xyPairs) Len() int           { return len(p.x) }
func (p *xyPairs) Less(i, j int) bool { return p.x[i] < p.x[j] }
func (p *xyPairs) Swap(i, j int) {
	p.x[i], p.x[j] = p.x[j], p.x[i]
	p.y[i], p.y[j] = p.y[j], p.y[i]
}
