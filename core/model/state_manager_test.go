package model

import (
	"testing"

	"github.com/YuminosukeSato/credrisk/pkg/errors"
)

func TestStateManagerLifecycle(t *testing.T) {
	s := NewStateManager()

	if s.IsFitted() {
		t.Fatal("new StateManager should not be fitted")
	}
	if err := s.RequireFitted("LogisticGD", "PredictProba"); err == nil {
		t.Fatal("RequireFitted should fail before Fit")
	}

	s.SetDimensions(11, 3000)
	s.SetFitted()

	if !s.IsFitted() {
		t.Fatal("SetFitted did not mark the estimator fitted")
	}
	if err := s.RequireFitted("LogisticGD", "PredictProba"); err != nil {
		t.Fatalf("RequireFitted after SetFitted: %v", err)
	}
	nf, ns := s.GetDimensions()
	if nf != 11 || ns != 3000 {
		t.Errorf("GetDimensions = (%d, %d), want (11, 3000)", nf, ns)
	}

	s.Reset()
	if s.IsFitted() {
		t.Fatal("Reset did not clear the fitted state")
	}
	nf, ns = s.GetDimensions()
	if nf != 0 || ns != 0 {
		t.Errorf("dimensions after Reset = (%d, %d), want (0, 0)", nf, ns)
	}
}

func TestRequireFittedErrorType(t *testing.T) {
	s := NewStateManager()
	err := s.RequireFitted("StandardScaler", "Transform")

	var nfe *errors.NotFittedError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected NotFittedError, got %T", err)
	}
	if nfe.ModelName != "StandardScaler" || nfe.Method != "Transform" {
		t.Errorf("error fields = (%q, %q), want (StandardScaler, Transform)", nfe.ModelName, nfe.Method)
	}
}
