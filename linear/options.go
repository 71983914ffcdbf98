package linear

// Option is a function that configures a LogisticGD classifier.
type Option func(*LogisticGD)

// WithLearningRate sets the gradient-descent step size.
func WithLearningRate(lr float64) Option {
	return func(m *LogisticGD) {
		m.learningRate = lr
	}
}

// WithIterations sets the fixed number of full-batch gradient steps.
func WithIterations(n int) Option {
	return func(m *LogisticGD) {
		m.iterations = n
	}
}

// WithLossHistory enables per-iteration recording of the training
// cross-entropy loss, readable through LossHistory after Fit.
func WithLossHistory(record bool) Option {
	return func(m *LogisticGD) {
		m.recordLoss = record
	}
}
