package dashboard

import (
	"errors"
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		vals     []float64
		expected float64
		epsilon  float64
	}{
		{"single value", []float64{42.0}, 42.0, 1e-9},
		{"simple mean", []float64{1.0, 2.0, 3.0}, 2.0, 1e-9},
		{"negative values", []float64{-4.0, 4.0}, 0.0, 1e-9},
		{"dataset-like values", []float64{41, 36, 12, 18, 28}, 27.0, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Mean(tt.vals)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(m-tt.expected) > tt.epsilon {
				t.Errorf("expected %v, got %v", tt.expected, m)
			}
		})
	}
}

func TestMeanEmpty(t *testing.T) {
	if _, err := Mean(nil); !errors.Is(err, ErrEmptyMean) {
		t.Errorf("expected ErrEmptyMean, got %v", err)
	}
	if _, err := Mean([]float64{}); !errors.Is(err, ErrEmptyMean) {
		t.Errorf("expected ErrEmptyMean, got %v", err)
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"half rounds up", 23.45, 23.5},
		{"below half rounds down", 23.44, 23.4},
		{"half away from zero when negative", -23.45, -23.5},
		{"below half when negative", -23.44, -23.4},
		{"carry across integer boundary", 9.96, 10.0},
		{"no fractional part", 42.0, 42.0},
		{"already one decimal", 7.4, 7.4},
		{"zero", 0.0, 0.0},
		{"long fraction", 77.88235294117646, 77.9},
		{"just under half", 0.2499999, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round1(tt.in); got != tt.expected {
				t.Errorf("Round1(%v): expected %v, got %v", tt.in, tt.expected, got)
			}
		})
	}
}

func TestRound1NonFinite(t *testing.T) {
	if !math.IsNaN(Round1(math.NaN())) {
		t.Error("Round1(NaN) should stay NaN")
	}
	if !math.IsInf(Round1(math.Inf(1)), 1) {
		t.Error("Round1(+Inf) should stay +Inf")
	}
}
