package errors

import (
	"strings"
	"sync"
	"testing"
)

func TestDataError(t *testing.T) {
	err := NewDataError("StandardScaler.Fit", "DEBTINC", "zero variance")

	var dataErr *DataError
	if !As(err, &dataErr) {
		t.Fatalf("expected DataError in chain, got %T", err)
	}
	if dataErr.Column != "DEBTINC" {
		t.Errorf("Column = %q, want %q", dataErr.Column, "DEBTINC")
	}
	if !strings.Contains(err.Error(), "zero variance") {
		t.Errorf("message %q should contain the reason", err.Error())
	}
	if !strings.Contains(err.Error(), `"DEBTINC"`) {
		t.Errorf("message %q should name the offending column", err.Error())
	}
}

func TestDataErrorWithoutColumn(t *testing.T) {
	err := NewDataError("BuildDesignMatrix", "", "no rows remain after dropping incomplete records")
	if strings.Contains(err.Error(), "column") {
		t.Errorf("message %q should not mention a column", err.Error())
	}
}

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("LogisticGD", "PredictProba")

	var nfe *NotFittedError
	if !As(err, &nfe) {
		t.Fatalf("expected NotFittedError in chain, got %T", err)
	}
	want := "credrisk: LogisticGD: this estimator is not fitted yet. Call Fit() before using PredictProba()"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestDimensionError(t *testing.T) {
	tests := []struct {
		name string
		axis int
		want string
	}{
		{name: "row axis", axis: 0, want: "rows"},
		{name: "feature axis", axis: 1, want: "features"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDimensionError("LogisticGD.Fit", 10, 7, tt.axis)
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Error() = %q, want axis name %q", err.Error(), tt.want)
			}
			var de *DimensionError
			if !As(err, &de) {
				t.Fatalf("expected DimensionError in chain")
			}
			if de.Expected != 10 || de.Got != 7 {
				t.Errorf("Expected/Got = %d/%d, want 10/7", de.Expected, de.Got)
			}
		})
	}
}

func TestNumericalInstabilityErrorTruncatesValues(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	err := NewNumericalInstabilityError("gradient_update", values, 42)

	msg := err.Error()
	if !strings.Contains(msg, "iteration 42") {
		t.Errorf("message %q should name the iteration", msg)
	}
	if !strings.Contains(msg, "...") {
		t.Errorf("message %q should truncate long value lists", msg)
	}

	var nie *NumericalInstabilityError
	if !As(err, &nie) {
		t.Fatalf("expected NumericalInstabilityError in chain")
	}
	if len(nie.Values) != len(values) {
		t.Errorf("structured values truncated: got %d, want %d", len(nie.Values), len(values))
	}
}

func TestUndefinedMetricError(t *testing.T) {
	err := NewUndefinedMetricError("sensitivity", "no positive samples (TP+FN = 0)")
	var ume *UndefinedMetricError
	if !As(err, &ume) {
		t.Fatalf("expected UndefinedMetricError in chain")
	}
	if ume.Metric != "sensitivity" {
		t.Errorf("Metric = %q, want %q", ume.Metric, "sensitivity")
	}
}

func TestWarnUsesHandler(t *testing.T) {
	var mu sync.Mutex
	var got error

	prev := warningHandler
	SetWarningHandler(func(w error) {
		mu.Lock()
		defer mu.Unlock()
		got = w
	})
	defer SetWarningHandler(prev)

	w := NewUndefinedMetricWarning("auc", "only one class present", 0.5)
	Warn(w)

	mu.Lock()
	defer mu.Unlock()
	if got != w {
		t.Errorf("handler received %v, want %v", got, w)
	}
}

func TestWrapPreservesType(t *testing.T) {
	base := NewDataError("Load", "VALUE", "cannot parse \"abc\" as float")
	wrapped := Wrap(base, "loading hmeq.csv")

	var dataErr *DataError
	if !As(wrapped, &dataErr) {
		t.Fatalf("wrapping lost the DataError type")
	}
	if !strings.Contains(wrapped.Error(), "loading hmeq.csv") {
		t.Errorf("wrapped message %q missing context", wrapped.Error())
	}
}
