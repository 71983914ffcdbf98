package dataset

import (
	"strconv"

	"github.com/YuminosukeSato/credrisk/pkg/errors"
)

// Label is the loan outcome. It is a distinct type so the outcome never mixes
// with feature arithmetic by accident; the only bridge into numeric code is
// the explicit Float conversion.
type Label int

const (
	// Repaid is the negative class: the borrower repaid the loan.
	Repaid Label = iota
	// Defaulted is the positive class: the borrower defaulted or was
	// seriously delinquent.
	Defaulted
)

// Float converts a label to its {0, 1} encoding. The conversion is total:
// Defaulted maps to 1 and every other value maps to 0.
func (l Label) Float() float64 {
	if l == Defaulted {
		return 1.0
	}
	return 0.0
}

// String returns a human-readable class name.
func (l Label) String() string {
	if l == Defaulted {
		return "default"
	}
	return "repaid"
}

// ParseLabel parses the two-valued label column. Accepted encodings are "0"
// (repaid) and "1" (defaulted).
func ParseLabel(s string) (Label, error) {
	switch s {
	case "0":
		return Repaid, nil
	case "1":
		return Defaulted, nil
	default:
		return Repaid, errors.NewDataError("ParseLabel", "", "label must be \"0\" or \"1\", got "+strconv.Quote(s))
	}
}
