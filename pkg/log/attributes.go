package log

// Standard attribute keys for credrisk log records. Using these constants
// keeps training and evaluation logs filterable by key.

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type, e.g. "LogisticGD",
	// "StandardScaler".
	ModelNameKey = "model.name"

	// OperationKey names the operation being performed.
	// Standard values: "fit", "predict", "transform", "evaluate".
	OperationKey = "ml.operation"
)

// Data shape.
const (
	// SamplesKey is the number of rows being processed.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of design-matrix columns, intercept included.
	FeaturesKey = "data.features"

	// DroppedRowsKey is the number of rows excluded for missing values.
	DroppedRowsKey = "data.dropped_rows"
)

// Training and evaluation.
const (
	// IterationKey is the current gradient-descent iteration.
	IterationKey = "training.iteration"

	// LearningRateKey is the configured learning rate.
	LearningRateKey = "hyperparams.learning_rate"

	// IterationsKey is the configured iteration count.
	IterationsKey = "hyperparams.iterations"

	// LossKey is the binary cross-entropy loss.
	LossKey = "metrics.loss"

	// AccuracyKey is classification accuracy in [0, 1].
	AccuracyKey = "metrics.accuracy"

	// AUCKey is the area under the ROC curve.
	AUCKey = "metrics.auc"

	// SensitivityKey is the true-positive rate.
	SensitivityKey = "metrics.sensitivity"

	// SpecificityKey is the true-negative rate.
	SpecificityKey = "metrics.specificity"

	// ThresholdKey is the classification threshold applied to probabilities.
	ThresholdKey = "preds.threshold"

	// DurationMsKey is the operation wall time in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Standard operation values.
const (
	OperationFit       = "fit"
	OperationPredict   = "predict"
	OperationTransform = "transform"
	OperationEvaluate  = "evaluate"
)
