package paired

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-stats/descriptive"
	"github.com/cwbudde/algo-stats/internal/testutil"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCovariance(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{3, 5, 7, 9}

	got, err := Covariance(x, y)
	if err != nil {
		t.Fatalf("Covariance: unexpected error %v", err)
	}
	if want := 10.0 / 3.0; !almostEqual(got, want, tolerance) {
		t.Errorf("Covariance: got %g, want %g", got, want)
	}

	got, err = Covariance(x, y, WithEstimator(descriptive.EstimatorPopulation))
	if err != nil {
		t.Fatalf("Covariance: unexpected error %v", err)
	}
	if want := 2.5; !almostEqual(got, want, tolerance) {
		t.Errorf("population Covariance: got %g, want %g", got, want)
	}
}

func TestCovariance_Errors(t *testing.T) {
	if _, err := Covariance([]float64{1, 2}, []float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("mismatched lengths: got %v, want ErrLengthMismatch", err)
	}
	if _, err := Covariance(nil, nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty input: got %v, want ErrEmptyInput", err)
	}
}

func TestCovariance_SinglePair(t *testing.T) {
	got, err := Covariance([]float64{5}, []float64{7})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got != 0 {
		t.Errorf("single pair: got %g, want 0", got)
	}
}

func TestCovariance_SelfEqualsVariance(t *testing.T) {
	data := testutil.DeterministicNormal(9, 0, 1, 500)

	cov, err := Covariance(data, data, WithEstimator(descriptive.EstimatorPopulation))
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	want := descriptive.Variance(data, descriptive.WithEstimator(descriptive.EstimatorPopulation))
	if !almostEqual(cov, want, tolerance) {
		t.Errorf("Covariance(x, x): got %g, want variance %g", cov, want)
	}
}

func TestCovariance_DoesNotMutate(t *testing.T) {
	x := []float64{4, 1, 3, 2}
	y := []float64{2, 8, 6, 4}
	xc := append([]float64(nil), x...)
	yc := append([]float64(nil), y...)

	if _, err := Covariance(x, y); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	for i := range x {
		if x[i] != xc[i] || y[i] != yc[i] {
			t.Fatalf("input mutated at %d: x=%v y=%v", i, x, y)
		}
	}
}

func TestCorrelation(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want float64
	}{
		{"perfect_positive", []float64{1, 2, 3, 4}, []float64{3, 5, 7, 9}, 1},
		{"perfect_negative", []float64{1, 2, 3, 4}, []float64{-2, -4, -6, -8}, -1},
		{"constant_series", []float64{1, 2, 3, 4}, []float64{5, 5, 5, 5}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Correlation(tt.x, tt.y)
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if !almostEqual(got, tt.want, tolerance) {
				t.Errorf("Correlation: got %g, want %g", got, tt.want)
			}
		})
	}
}

func TestCorrelation_Errors(t *testing.T) {
	if _, err := Correlation([]float64{1}, []float64{1, 2}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("mismatched lengths: got %v, want ErrLengthMismatch", err)
	}
}

func TestCorrelation_BoundedByOne(t *testing.T) {
	x := testutil.DeterministicNormal(21, 0, 1, 300)
	y := testutil.DeterministicNormal(22, 0, 1, 300)

	r, err := Correlation(x, y)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if r < -1-tolerance || r > 1+tolerance {
		t.Errorf("Correlation out of bounds: %g", r)
	}
}
