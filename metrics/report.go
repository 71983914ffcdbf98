package metrics

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MetricsReport is the structured evaluation result of a binary classifier:
// the confusion counts plus the derived threshold metrics and the
// threshold-free AUC. Reports are plain values, recomputed on demand and
// never persisted.
type MetricsReport struct {
	Confusion   ConfusionMatrix
	Accuracy    float64
	Sensitivity float64
	Specificity float64
	AUC         float64
}

// EvaluateBinary computes a full MetricsReport from parallel true labels,
// thresholded predictions and raw predicted probabilities.
//
// Any undefined constituent metric (e.g. sensitivity over a split with no
// positive rows) is surfaced as an error rather than folded into the report
// as a default value.
func EvaluateBinary(yTrue, yPred, yProb *mat.VecDense) (*MetricsReport, error) {
	cm, err := ConfusionCounts(yTrue, yPred)
	if err != nil {
		return nil, err
	}

	sens, err := cm.Sensitivity()
	if err != nil {
		return nil, err
	}
	spec, err := cm.Specificity()
	if err != nil {
		return nil, err
	}
	auc, err := AUC(yTrue, yProb)
	if err != nil {
		return nil, err
	}

	return &MetricsReport{
		Confusion:   cm,
		Accuracy:    cm.Accuracy(),
		Sensitivity: sens,
		Specificity: spec,
		AUC:         auc,
	}, nil
}

// String renders the report as a small fixed-width table.
func (r *MetricsReport) String() string {
	return fmt.Sprintf(
		"accuracy=%.4f sensitivity=%.4f specificity=%.4f auc=%.4f (TP=%d TN=%d FP=%d FN=%d)",
		r.Accuracy, r.Sensitivity, r.Specificity, r.AUC,
		r.Confusion.TP, r.Confusion.TN, r.Confusion.FP, r.Confusion.FN,
	)
}
