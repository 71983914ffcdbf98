// Package linear implements the gradient-descent logistic regression
// classifier at the center of the credrisk scoring core.
package linear

import (
	"log/slog"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/credrisk/core/model"
	"github.com/YuminosukeSato/credrisk/pkg/errors"
	"github.com/YuminosukeSato/credrisk/pkg/log"
)

// LogisticGD is a binary logistic regression classifier fitted by full-batch
// gradient descent with a fixed iteration count.
//
// The optimizer is deliberately minimal: no regularization, no momentum, no
// adaptive learning rate and no early stopping. It minimizes the binary
// cross-entropy loss over a linear score theta'x where the design matrix is
// expected to carry its intercept as column 0 (see dataset.BuildDesignMatrix),
// so theta[0] is the intercept weight.
//
// Learning rate and iteration count materially affect convergence and are
// plain configuration, not constants of the algorithm.
type LogisticGD struct {
	state *model.StateManager

	learningRate float64
	iterations   int
	recordLoss   bool

	theta       *mat.VecDense
	lossHistory []float64
}

// Compile-time interface checks.
var (
	_ model.Classifier  = (*LogisticGD)(nil)
	_ model.LinearModel = (*LogisticGD)(nil)
)

// NewLogisticGD creates a new LogisticGD classifier.
//
// The defaults (learning rate 0.001, 100 iterations) are a conservative
// starting point; both are usually tuned per dataset via WithLearningRate and
// WithIterations.
func NewLogisticGD(opts ...Option) *LogisticGD {
	m := &LogisticGD{
		state:        model.NewStateManager(),
		learningRate: 0.001,
		iterations:   100,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Fit trains the classifier on a design matrix X and a {0, 1} label vector y.
//
// The weight vector starts at zero and takes a fixed number of full-batch
// steps theta <- theta - lr * X'(sigmoid(X theta) - y) / n. There is no
// convergence check: exactly `iterations` steps are taken.
//
// Errors: DimensionError if X and y disagree on row count or y is not a
// column vector; DataError on empty input; ValueError for non-binary labels
// or non-positive hyperparameters; NumericalInstabilityError if any weight
// becomes NaN or Inf, in which case no fitted state is retained.
func (m *LogisticGD) Fit(X, y mat.Matrix) error {
	const op = "LogisticGD.Fit"
	start := time.Now()

	if m.learningRate <= 0 {
		return errors.NewValueError(op, "learning rate must be positive")
	}
	if m.iterations <= 0 {
		return errors.NewValueError(op, "iteration count must be positive")
	}

	n, c := X.Dims()
	yRows, yCols := y.Dims()
	if yCols != 1 {
		return errors.NewDimensionError(op, 1, yCols, 1)
	}
	if yRows != n {
		return errors.NewDimensionError(op, n, yRows, 0)
	}
	if n == 0 || c == 0 {
		return errors.NewDataError(op, "", "empty design matrix")
	}

	yVec := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		v := y.At(i, 0)
		if v != 0.0 && v != 1.0 {
			return errors.NewValueError(op, "labels must be 0 or 1")
		}
		yVec.SetVec(i, v)
	}

	slog.Debug("training started",
		log.ModelNameKey, "LogisticGD",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, n,
		log.FeaturesKey, c,
		log.LearningRateKey, m.learningRate,
		log.IterationsKey, m.iterations,
	)

	theta := mat.NewVecDense(c, nil)
	z := mat.NewVecDense(n, nil)
	p := mat.NewVecDense(n, nil)
	diff := mat.NewVecDense(n, nil)
	grad := mat.NewVecDense(c, nil)

	var history []float64
	if m.recordLoss {
		history = make([]float64, 0, m.iterations)
	}

	for iter := 0; iter < m.iterations; iter++ {
		z.MulVec(X, theta)
		for i := 0; i < n; i++ {
			p.SetVec(i, sigmoid(z.AtVec(i)))
		}

		if m.recordLoss {
			history = append(history, crossEntropy(yVec, p))
		}

		diff.SubVec(p, yVec)
		grad.MulVec(X.T(), diff)
		grad.ScaleVec(1.0/float64(n), grad)

		theta.AddScaledVec(theta, -m.learningRate, grad)

		if err := errors.CheckNumericalStability("gradient_update", theta.RawVector().Data, iter+1); err != nil {
			m.theta = nil
			m.lossHistory = nil
			m.state.Reset()
			return err
		}
	}

	m.theta = theta
	m.lossHistory = history
	m.state.SetDimensions(c, n)
	m.state.SetFitted()

	slog.Debug("training finished",
		log.ModelNameKey, "LogisticGD",
		log.OperationKey, log.OperationFit,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// PredictProba returns the per-row default probability sigmoid(X theta).
func (m *LogisticGD) PredictProba(X mat.Matrix) (*mat.VecDense, error) {
	if err := m.state.RequireFitted("LogisticGD", "PredictProba"); err != nil {
		return nil, err
	}

	n, c := X.Dims()
	nFeatures, _ := m.state.GetDimensions()
	if c != nFeatures {
		return nil, errors.NewDimensionError("LogisticGD.PredictProba", nFeatures, c, 1)
	}

	z := mat.NewVecDense(n, nil)
	z.MulVec(X, m.theta)
	proba := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		proba.SetVec(i, sigmoid(z.AtVec(i)))
	}
	return proba, nil
}

// PredictClass converts probabilities into {0, 1} class labels using a
// caller-supplied threshold. The comparison is strict: a probability exactly
// equal to the threshold predicts the negative class.
func PredictClass(proba *mat.VecDense, threshold float64) (*mat.VecDense, error) {
	if proba == nil || proba.Len() == 0 {
		return nil, errors.NewDataError("PredictClass", "", "empty probability vector")
	}
	if threshold < 0 || threshold > 1 {
		return nil, errors.NewValueError("PredictClass", "threshold must be in [0, 1]")
	}

	classes := mat.NewVecDense(proba.Len(), nil)
	for i := 0; i < proba.Len(); i++ {
		if proba.AtVec(i) > threshold {
			classes.SetVec(i, 1.0)
		}
	}
	return classes, nil
}

// Predict returns class labels at the conventional 0.5 threshold. Use
// PredictProba with PredictClass to tune the threshold.
func (m *LogisticGD) Predict(X mat.Matrix) (mat.Matrix, error) {
	proba, err := m.PredictProba(X)
	if err != nil {
		return nil, err
	}
	return PredictClass(proba, 0.5)
}

// Score returns the accuracy of Predict against a {0, 1} label vector.
func (m *LogisticGD) Score(X, y mat.Matrix) (float64, error) {
	pred, err := m.Predict(X)
	if err != nil {
		return 0, err
	}

	n, _ := pred.Dims()
	yRows, _ := y.Dims()
	if yRows != n {
		return 0, errors.NewDimensionError("LogisticGD.Score", n, yRows, 0)
	}

	correct := 0
	for i := 0; i < n; i++ {
		if pred.At(i, 0) == y.At(i, 0) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// Weights returns a copy of the fitted weight vector, intercept weight first.
func (m *LogisticGD) Weights() ([]float64, error) {
	if err := m.state.RequireFitted("LogisticGD", "Weights"); err != nil {
		return nil, err
	}
	out := make([]float64, m.theta.Len())
	copy(out, m.theta.RawVector().Data)
	return out, nil
}

// LossHistory returns a copy of the per-iteration training loss recorded
// during Fit. It is empty unless the classifier was built with
// WithLossHistory(true). Entry i is the loss of the weights entering
// iteration i, before that iteration's update.
func (m *LogisticGD) LossHistory() []float64 {
	out := make([]float64, len(m.lossHistory))
	copy(out, m.lossHistory)
	return out
}

// GetParams returns the classifier's hyperparameters.
func (m *LogisticGD) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"learning_rate": m.learningRate,
		"iterations":    m.iterations,
		"loss_history":  m.recordLoss,
	}
}

// SetParams sets hyperparameters from a map. Unknown keys are an error.
func (m *LogisticGD) SetParams(params map[string]interface{}) error {
	for key, value := range params {
		switch key {
		case "learning_rate":
			v, ok := value.(float64)
			if !ok {
				return errors.NewValueError("LogisticGD.SetParams", "learning_rate must be a float64")
			}
			m.learningRate = v
		case "iterations":
			v, ok := value.(int)
			if !ok {
				return errors.NewValueError("LogisticGD.SetParams", "iterations must be an int")
			}
			m.iterations = v
		case "loss_history":
			v, ok := value.(bool)
			if !ok {
				return errors.NewValueError("LogisticGD.SetParams", "loss_history must be a bool")
			}
			m.recordLoss = v
		default:
			return errors.NewValueError("LogisticGD.SetParams", "unknown parameter: "+key)
		}
	}
	return nil
}

// sigmoid computes 1/(1+exp(-z)) without overflowing for large |z|: the
// exponential is always taken of a non-positive argument.
func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1.0 / (1.0 + math.Exp(-z))
	}
	ez := math.Exp(z)
	return ez / (1.0 + ez)
}

// crossEntropy is the mean binary cross-entropy of predicted probabilities
// against {0, 1} labels, with the log stabilized against p = 0 or 1.
func crossEntropy(y, p *mat.VecDense) float64 {
	n := y.Len()
	sum := 0.0
	for i := 0; i < n; i++ {
		pi := p.AtVec(i)
		if y.AtVec(i) == 1.0 {
			sum += -errors.StabilizeLog(pi)
		} else {
			sum += -errors.StabilizeLog(1.0 - pi)
		}
	}
	return sum / float64(n)
}
