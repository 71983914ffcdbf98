package dataset

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/credrisk/pkg/errors"
	"github.com/YuminosukeSato/credrisk/pkg/log"
)

// BuildDesignMatrix converts a Dataset into a design matrix and a parallel
// label vector.
//
// Column 0 of the result is a constant intercept column of 1.0; the remaining
// columns are the dataset's numeric features in lexical column-name order, so
// train and test matrices built from datasets with the same schema always
// align. Records with any missing value are dropped before construction.
//
// Returns a DataError if the dataset is empty, has no feature columns, or no
// complete records remain, and a DimensionError if a record's value count
// does not match the column schema.
func BuildDesignMatrix(d *Dataset) (*mat.Dense, *mat.VecDense, error) {
	const op = "BuildDesignMatrix"

	if d == nil || len(d.Records) == 0 {
		return nil, nil, errors.NewDataError(op, "", "empty dataset")
	}
	if len(d.Columns) == 0 {
		return nil, nil, errors.NewDataError(op, "", "dataset has no numeric feature columns")
	}

	// Lexical column order, independent of how the dataset was assembled.
	order := make([]int, len(d.Columns))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return d.Columns[order[a]] < d.Columns[order[b]]
	})

	kept := make([]int, 0, len(d.Records))
	for i := range d.Records {
		if len(d.Records[i].Values) != len(d.Columns) {
			return nil, nil, errors.NewDimensionError(op, len(d.Columns), len(d.Records[i].Values), 1)
		}
		if d.complete(i) {
			kept = append(kept, i)
		}
	}
	if len(kept) == 0 {
		return nil, nil, errors.NewDataError(op, "", "no rows remain after dropping records with missing values")
	}

	nCols := len(d.Columns) + 1
	X := mat.NewDense(len(kept), nCols, nil)
	y := mat.NewVecDense(len(kept), nil)

	for row, i := range kept {
		X.Set(row, 0, 1.0)
		for j, col := range order {
			X.Set(row, j+1, d.Records[i].Values[col])
		}
		y.SetVec(row, d.Records[i].Label.Float())
	}

	slog.Debug("design matrix built",
		log.OperationKey, log.OperationTransform,
		log.SamplesKey, len(kept),
		log.FeaturesKey, nCols,
		log.DroppedRowsKey, len(d.Records)-len(kept),
	)

	return X, y, nil
}

// MatrixColumns returns the design-matrix column names produced by
// BuildDesignMatrix for this dataset: "intercept" followed by the feature
// names in lexical order.
func (d *Dataset) MatrixColumns() []string {
	cols := make([]string, 0, len(d.Columns)+1)
	cols = append(cols, "intercept")
	sorted := append([]string(nil), d.Columns...)
	sort.Strings(sorted)
	return append(cols, sorted...)
}
