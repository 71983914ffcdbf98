package model

import (
	"gonum.org/v1/gonum/mat"
)

// Fitter is the interface for estimators trained from a design matrix and a
// label vector.
type Fitter interface {
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for fitted estimators that produce per-row
// predictions.
type Predictor interface {
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Transformer is the interface for stateful data transformations fitted on a
// training matrix and applied to any matrix with the same columns.
type Transformer interface {
	Fit(X mat.Matrix) error
	Transform(X mat.Matrix) (*mat.Dense, error)
	FitTransform(X mat.Matrix) (*mat.Dense, error)
}

// Scorer is the interface for estimators that compute a scalar quality score
// on labeled data.
type Scorer interface {
	Score(X, y mat.Matrix) (float64, error)
}

// Classifier combines the interfaces of a binary probabilistic classifier.
type Classifier interface {
	Fitter
	Predictor
	Scorer

	// PredictProba returns the positive-class probability for each row.
	PredictProba(X mat.Matrix) (*mat.VecDense, error)
}

// LinearModel is the interface for models parameterized by a single weight
// vector over design-matrix columns.
type LinearModel interface {
	// Weights returns the fitted weight vector, intercept weight first.
	Weights() ([]float64, error)
}

// ParameterGetter is the interface for estimators that expose their
// hyperparameters.
type ParameterGetter interface {
	GetParams() map[string]interface{}
}

// ParameterSetter is the interface for estimators that allow hyperparameter
// modification before fitting.
type ParameterSetter interface {
	SetParams(params map[string]interface{}) error
}
