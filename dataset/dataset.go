// Package dataset holds the tabular representation of loan applications and
// converts it into the numeric design matrix consumed by the trainer.
//
// A Dataset is an ordered sequence of records over a fixed set of named
// numeric columns. Missing cells are represented as NaN; records containing
// any missing value are excluded by BuildDesignMatrix, never imputed.
package dataset

// Record is one loan application: its outcome label and one value per
// dataset column. A NaN value marks a missing cell.
type Record struct {
	Label  Label
	Values []float64
}

// Dataset is an ordered collection of records sharing one column schema.
// Columns are the numeric feature names; Records[i].Values is parallel to
// Columns.
type Dataset struct {
	Columns []string
	Records []Record
}

// NumRows returns the number of records.
func (d *Dataset) NumRows() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// NumFeatures returns the number of numeric feature columns, not counting
// the intercept column added by BuildDesignMatrix.
func (d *Dataset) NumFeatures() int {
	if d == nil {
		return 0
	}
	return len(d.Columns)
}

// complete reports whether record i has no missing values.
func (d *Dataset) complete(i int) bool {
	for _, v := range d.Records[i].Values {
		if v != v { // NaN
			return false
		}
	}
	return true
}
