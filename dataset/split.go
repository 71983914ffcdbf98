package dataset

import (
	"math/rand"

	"github.com/YuminosukeSato/credrisk/pkg/errors"
)

// Split partitions a dataset into train and test subsets by a seeded shuffle.
// testFraction is the fraction of rows assigned to the test subset; the seed
// is explicit so splits are reproducible. The input dataset is not modified
// and records are shared, not copied.
func Split(d *Dataset, testFraction float64, seed int64) (train, test *Dataset, err error) {
	const op = "dataset.Split"

	if d == nil || len(d.Records) == 0 {
		return nil, nil, errors.NewDataError(op, "", "empty dataset")
	}
	if testFraction <= 0 || testFraction >= 1 {
		return nil, nil, errors.NewValueError(op, "testFraction must be in (0, 1)")
	}

	n := len(d.Records)
	nTest := int(float64(n) * testFraction)
	if nTest == 0 || nTest == n {
		return nil, nil, errors.NewValueError(op, "testFraction leaves an empty split")
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)

	test = &Dataset{Columns: d.Columns, Records: make([]Record, 0, nTest)}
	train = &Dataset{Columns: d.Columns, Records: make([]Record, 0, n-nTest)}
	for i, idx := range perm {
		if i < nTest {
			test.Records = append(test.Records, d.Records[idx])
		} else {
			train.Records = append(train.Records, d.Records[idx])
		}
	}
	return train, test, nil
}
