package preprocessing

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/credrisk/pkg/errors"
)

// designMatrix builds a small matrix with an intercept column prepended.
func designMatrix(rows int, features [][]float64) *mat.Dense {
	cols := len(features) + 1
	X := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		X.Set(i, 0, 1.0)
		for j, f := range features {
			X.Set(i, j+1, f[i])
		}
	}
	return X
}

func TestFitTransformStandardizesTrainingMatrix(t *testing.T) {
	X := designMatrix(5, [][]float64{
		{1, 2, 3, 4, 5},
		{10, 20, 30, 40, 50},
	})

	scaler := NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform: %v", err)
	}

	r, c := scaled.Dims()
	if r != 5 || c != 3 {
		t.Fatalf("dims = (%d, %d), want (5, 3)", r, c)
	}

	// Intercept column untouched.
	for i := 0; i < r; i++ {
		if scaled.At(i, 0) != 1.0 {
			t.Errorf("intercept row %d = %v, want 1.0", i, scaled.At(i, 0))
		}
	}

	// Each feature column has mean ~0 and sample std ~1.
	for j := 1; j < c; j++ {
		sum := 0.0
		for i := 0; i < r; i++ {
			sum += scaled.At(i, j)
		}
		mean := sum / float64(r)
		if math.Abs(mean) > 1e-10 {
			t.Errorf("column %d mean = %v, want ~0", j, mean)
		}

		ss := 0.0
		for i := 0; i < r; i++ {
			d := scaled.At(i, j) - mean
			ss += d * d
		}
		sd := math.Sqrt(ss / float64(r-1))
		if math.Abs(sd-1.0) > 1e-10 {
			t.Errorf("column %d sample std = %v, want ~1", j, sd)
		}
	}
}

func TestFitUsesSampleStandardDeviation(t *testing.T) {
	// Column values 1..4: mean 2.5, sample variance 5/3.
	X := designMatrix(4, [][]float64{{1, 2, 3, 4}})

	scaler := NewStandardScaler()
	if err := scaler.Fit(X); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	params, err := scaler.Params()
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(params.Mean[0]-2.5) > 1e-12 {
		t.Errorf("mean = %v, want 2.5", params.Mean[0])
	}
	want := math.Sqrt(5.0 / 3.0)
	if math.Abs(params.Scale[0]-want) > 1e-12 {
		t.Errorf("scale = %v, want %v (n-1 denominator)", params.Scale[0], want)
	}
}

func TestTransformIsPure(t *testing.T) {
	train := designMatrix(3, [][]float64{{1, 2, 3}})
	test := designMatrix(2, [][]float64{{10, 20}})

	scaler := NewStandardScaler()
	if err := scaler.Fit(train); err != nil {
		t.Fatal(err)
	}
	params, err := scaler.Params()
	if err != nil {
		t.Fatal(err)
	}
	meanBefore, scaleBefore := params.Mean[0], params.Scale[0]

	first, err := params.Transform(test)
	if err != nil {
		t.Fatal(err)
	}
	second, err := params.Transform(test)
	if err != nil {
		t.Fatal(err)
	}

	// Same params, same input, same output.
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if first.At(i, j) != second.At(i, j) {
				t.Errorf("transform is not deterministic at (%d, %d)", i, j)
			}
		}
	}

	// Transforming test data must not move the fitted statistics.
	if params.Mean[0] != meanBefore || params.Scale[0] != scaleBefore {
		t.Error("Transform mutated the scaling params")
	}

	// Input matrix untouched.
	if test.At(0, 1) != 10 || test.At(1, 1) != 20 {
		t.Error("Transform mutated its input")
	}
}

func TestParamsReturnsACopy(t *testing.T) {
	X := designMatrix(3, [][]float64{{1, 2, 3}})
	scaler := NewStandardScaler()
	if err := scaler.Fit(X); err != nil {
		t.Fatal(err)
	}

	params, err := scaler.Params()
	if err != nil {
		t.Fatal(err)
	}
	params.Mean[0] = 999

	fresh, err := scaler.Params()
	if err != nil {
		t.Fatal(err)
	}
	if fresh.Mean[0] == 999 {
		t.Error("mutating a returned ScalingParams changed the scaler's state")
	}
}

func TestFitRejectsZeroVarianceColumn(t *testing.T) {
	X := designMatrix(4, [][]float64{
		{1, 2, 3, 4},
		{7, 7, 7, 7}, // constant
	})

	scaler := NewStandardScaler()
	err := scaler.Fit(X)

	var de *errors.DataError
	if !errors.As(err, &de) {
		t.Fatalf("expected DataError, got %v", err)
	}
	if de.Column != "2" {
		t.Errorf("offending column = %q, want %q", de.Column, "2")
	}
}

func TestFitValidation(t *testing.T) {
	tests := []struct {
		name string
		X    *mat.Dense
	}{
		{name: "single row", X: designMatrix(1, [][]float64{{1}})},
		{name: "intercept only", X: mat.NewDense(3, 1, []float64{1, 1, 1})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewStandardScaler().Fit(tt.X)
			var de *errors.DataError
			if !errors.As(err, &de) {
				t.Errorf("expected DataError, got %v", err)
			}
		})
	}
}

func TestTransformBeforeFit(t *testing.T) {
	X := designMatrix(2, [][]float64{{1, 2}})
	_, err := NewStandardScaler().Transform(X)

	var nfe *errors.NotFittedError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NotFittedError, got %v", err)
	}
}

func TestTransformDimensionMismatch(t *testing.T) {
	train := designMatrix(3, [][]float64{{1, 2, 3}})
	scaler := NewStandardScaler()
	if err := scaler.Fit(train); err != nil {
		t.Fatal(err)
	}

	wide := designMatrix(2, [][]float64{{1, 2}, {3, 4}})
	_, err := scaler.Transform(wide)

	var de *errors.DimensionError
	if !errors.As(err, &de) {
		t.Fatalf("expected DimensionError, got %v", err)
	}
	if de.Expected != 2 || de.Got != 3 {
		t.Errorf("Expected/Got = %d/%d, want 2/3", de.Expected, de.Got)
	}
}
