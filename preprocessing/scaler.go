// Package preprocessing provides feature standardization for design matrices.
package preprocessing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/credrisk/core/model"
	"github.com/YuminosukeSato/credrisk/pkg/errors"
)

// minScale is the smallest standard deviation accepted during fitting.
// Anything below it signals a degenerate (near-constant) feature and is
// reported as a DataError rather than silently rescaled.
const minScale = 1e-12

// ScalingParams are the per-feature statistics computed by StandardScaler.Fit
// on the training matrix. They are an explicit value: transforming any other
// matrix reuses the same params verbatim, which is what keeps test data from
// leaking into the training statistics.
//
// Mean and Scale have one entry per non-intercept column of the design
// matrix; Transform never touches column 0.
type ScalingParams struct {
	Mean  []float64
	Scale []float64
}

// NumFeatures returns the number of scaled (non-intercept) columns.
func (p ScalingParams) NumFeatures() int {
	return len(p.Mean)
}

// Transform standardizes a design matrix with these params. It is a pure
// function: neither the params nor the input matrix are modified. Column 0
// (the intercept column) passes through unchanged; every other column is
// mapped element-wise to (x - mean) / scale.
//
// Returns a DimensionError if the matrix's column count does not match the
// params.
func (p ScalingParams) Transform(X mat.Matrix) (*mat.Dense, error) {
	r, c := X.Dims()
	if c != len(p.Mean)+1 {
		return nil, errors.NewDimensionError("ScalingParams.Transform", len(p.Mean)+1, c, 1)
	}
	if r == 0 {
		return nil, errors.NewDataError("ScalingParams.Transform", "", "empty matrix")
	}

	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		result.Set(i, 0, X.At(i, 0))
		for j := 1; j < c; j++ {
			result.Set(i, j, (X.At(i, j)-p.Mean[j-1])/p.Scale[j-1])
		}
	}
	return result, nil
}

// clone returns a deep copy so callers cannot mutate the fitted state.
func (p ScalingParams) clone() ScalingParams {
	out := ScalingParams{
		Mean:  make([]float64, len(p.Mean)),
		Scale: make([]float64, len(p.Scale)),
	}
	copy(out.Mean, p.Mean)
	copy(out.Scale, p.Scale)
	return out
}

// StandardScaler standardizes the non-intercept columns of a design matrix to
// mean 0 and standard deviation 1 using statistics computed once from the
// training matrix.
//
// Fit must be called on the training split only; the resulting params are
// reused for every other split through Transform or Params.
type StandardScaler struct {
	state  *model.StateManager
	params ScalingParams
}

var _ model.Transformer = (*StandardScaler)(nil)

// NewStandardScaler creates a new unfitted StandardScaler.
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{state: model.NewStateManager()}
}

// Fit computes per-column arithmetic means and sample standard deviations
// (denominator n-1) over the non-intercept columns of X.
//
// Returns a DataError if X is empty, has fewer than two rows, or contains a
// column with zero (or numerically vanishing) variance — a degenerate feature
// is reported, never silently scaled by 1.
func (s *StandardScaler) Fit(X mat.Matrix) error {
	const op = "StandardScaler.Fit"

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewDataError(op, "", "empty matrix")
	}
	if c < 2 {
		return errors.NewDataError(op, "", "design matrix has no feature columns beyond the intercept")
	}
	if r < 2 {
		return errors.NewDataError(op, "", "sample standard deviation requires at least two rows")
	}

	mean := make([]float64, c-1)
	scale := make([]float64, c-1)

	for j := 1; j < c; j++ {
		sum := 0.0
		for i := 0; i < r; i++ {
			sum += X.At(i, j)
		}
		mean[j-1] = sum / float64(r)
	}

	for j := 1; j < c; j++ {
		sumSquares := 0.0
		for i := 0; i < r; i++ {
			diff := X.At(i, j) - mean[j-1]
			sumSquares += diff * diff
		}
		sd := math.Sqrt(sumSquares / float64(r-1))
		if sd < minScale {
			return errors.NewDataError(op, fmt.Sprintf("%d", j),
				"zero variance: feature is constant over the training matrix")
		}
		scale[j-1] = sd
	}

	s.params = ScalingParams{Mean: mean, Scale: scale}
	s.state.SetDimensions(c, r)
	s.state.SetFitted()
	return nil
}

// Params returns a copy of the fitted scaling parameters.
func (s *StandardScaler) Params() (ScalingParams, error) {
	if err := s.state.RequireFitted("StandardScaler", "Params"); err != nil {
		return ScalingParams{}, err
	}
	return s.params.clone(), nil
}

// Transform standardizes X with the fitted params.
func (s *StandardScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	if err := s.state.RequireFitted("StandardScaler", "Transform"); err != nil {
		return nil, err
	}
	return s.params.Transform(X)
}

// FitTransform fits on X and returns the standardized X.
func (s *StandardScaler) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// String returns a short description of the scaler.
func (s *StandardScaler) String() string {
	if !s.state.IsFitted() {
		return "StandardScaler(unfitted)"
	}
	return fmt.Sprintf("StandardScaler(n_features=%d)", s.params.NumFeatures())
}
