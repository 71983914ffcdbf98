// Package metrics computes binary-classification quality measures: confusion
// counts, accuracy, sensitivity, specificity, rank-based AUC and binary
// cross-entropy. All functions are pure computations over their inputs.
package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/credrisk/pkg/errors"
)

// ConfusionMatrix holds the four binary confusion counts.
type ConfusionMatrix struct {
	TP int // true label 1, predicted 1
	TN int // true label 0, predicted 0
	FP int // true label 0, predicted 1
	FN int // true label 1, predicted 0
}

// Total returns the number of evaluated rows; it always equals TP+TN+FP+FN.
func (c ConfusionMatrix) Total() int {
	return c.TP + c.TN + c.FP + c.FN
}

// Accuracy returns (TP+TN)/N.
func (c ConfusionMatrix) Accuracy() float64 {
	return float64(c.TP+c.TN) / float64(c.Total())
}

// Sensitivity returns the true-positive rate TP/(TP+FN).
//
// Returns an UndefinedMetricError when the data contains no positive rows;
// the undefined value is never reported as 0.
func (c ConfusionMatrix) Sensitivity() (float64, error) {
	if c.TP+c.FN == 0 {
		return 0, errors.NewUndefinedMetricError("sensitivity", "no positive samples (TP+FN = 0)")
	}
	return float64(c.TP) / float64(c.TP+c.FN), nil
}

// Specificity returns the true-negative rate TN/(TN+FP).
//
// Returns an UndefinedMetricError when the data contains no negative rows.
func (c ConfusionMatrix) Specificity() (float64, error) {
	if c.TN+c.FP == 0 {
		return 0, errors.NewUndefinedMetricError("specificity", "no negative samples (TN+FP = 0)")
	}
	return float64(c.TN) / float64(c.TN+c.FP), nil
}

// ConfusionCounts tallies the confusion matrix of predicted against true
// {0, 1} labels by exact equality comparison.
func ConfusionCounts(yTrue, yPred *mat.VecDense) (ConfusionMatrix, error) {
	const op = "ConfusionCounts"

	var cm ConfusionMatrix
	n, err := checkPair(op, yTrue, yPred)
	if err != nil {
		return cm, err
	}

	for i := 0; i < n; i++ {
		truth, pred := yTrue.AtVec(i), yPred.AtVec(i)
		if !isBinary(truth) {
			return cm, errors.NewValueError(op, "true labels must be 0 or 1")
		}
		if !isBinary(pred) {
			return cm, errors.NewValueError(op, "predicted labels must be 0 or 1")
		}
		switch {
		case truth == 1.0 && pred == 1.0:
			cm.TP++
		case truth == 0.0 && pred == 0.0:
			cm.TN++
		case truth == 0.0 && pred == 1.0:
			cm.FP++
		default:
			cm.FN++
		}
	}
	return cm, nil
}

// Accuracy returns the fraction of rows where the prediction equals the true
// label exactly. Labels are not required to be binary.
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := checkPair("Accuracy", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	correct := 0
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == yPred.AtVec(i) {
			correct++
		}
	}
	return float64(correct) / float64(n), nil
}

// AUC computes the area under the ROC curve from true {0, 1} labels and
// predicted scores, via the rank-sum formulation: the probability that a
// randomly chosen positive outranks a randomly chosen negative. Tied scores
// contribute their average rank, which is equivalent to integrating the ROC
// curve with the trapezoidal rule across all achievable thresholds.
//
// When only one class is present the metric is ill-defined; an
// UndefinedMetricWarning is emitted and 0.5 is returned.
func AUC(yTrue, yScore *mat.VecDense) (float64, error) {
	const op = "AUC"

	n, err := checkPair(op, yTrue, yScore)
	if err != nil {
		return 0, err
	}

	nPos := 0
	for i := 0; i < n; i++ {
		v := yTrue.AtVec(i)
		if !isBinary(v) {
			return 0, errors.NewValueError(op, "labels must be 0 or 1")
		}
		if v == 1.0 {
			nPos++
		}
	}
	nNeg := n - nPos
	if nPos == 0 || nNeg == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("auc", "only one class present", 0.5))
		return 0.5, nil
	}

	// Rank all rows by score ascending, averaging the ranks of ties.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return yScore.AtVec(idx[a]) < yScore.AtVec(idx[b])
	})

	posRankSum := 0.0
	for i := 0; i < n; {
		j := i
		for j < n && yScore.AtVec(idx[j]) == yScore.AtVec(idx[i]) {
			j++
		}
		// Rows i..j-1 share a score; 1-based ranks i+1..j average to:
		avgRank := float64(i+j+1) / 2.0
		for k := i; k < j; k++ {
			if yTrue.AtVec(idx[k]) == 1.0 {
				posRankSum += avgRank
			}
		}
		i = j
	}

	auc := (posRankSum - float64(nPos)*float64(nPos+1)/2.0) / (float64(nPos) * float64(nNeg))
	return auc, nil
}

// BinaryLogLoss returns the mean binary cross-entropy of predicted
// probabilities against true {0, 1} labels. Probabilities are clipped away
// from 0 and 1 to keep the logarithm finite.
func BinaryLogLoss(yTrue, yProb *mat.VecDense) (float64, error) {
	const op = "BinaryLogLoss"
	const eps = 1e-15

	n, err := checkPair(op, yTrue, yProb)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		truth := yTrue.AtVec(i)
		if !isBinary(truth) {
			return 0, errors.NewValueError(op, "labels must be 0 or 1")
		}
		p := errors.ClipValue(yProb.AtVec(i), eps, 1.0-eps)
		if truth == 1.0 {
			sum += -math.Log(p)
		} else {
			sum += -math.Log(1.0 - p)
		}
	}
	return sum / float64(n), nil
}

// checkPair validates a pair of parallel vectors and returns their length.
func checkPair(op string, yTrue, yPred *mat.VecDense) (int, error) {
	if yTrue == nil || yPred == nil {
		return 0, errors.NewValueError(op, "nil vector")
	}
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError(op, "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError(op, n, yPred.Len(), 0)
	}
	return n, nil
}

func isBinary(v float64) bool {
	return v == 0.0 || v == 1.0
}
