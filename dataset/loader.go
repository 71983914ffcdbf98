package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/YuminosukeSato/credrisk/pkg/errors"
)

// Column schema of the HMEQ home-equity dataset. BAD is the two-valued
// outcome; REASON and JOB are categorical and not part of the numeric core,
// so Load simply never reads them.
const HMEQLabelColumn = "BAD"

// HMEQFeatureColumns are the numeric columns of the HMEQ dataset.
var HMEQFeatureColumns = []string{
	"CLAGE", "CLNO", "DEBTINC", "DELINQ", "DEROG",
	"LOAN", "MORTDUE", "NINQ", "VALUE", "YOJ",
}

// missingTokens are cell values treated as a missing numeric observation.
var missingTokens = map[string]bool{
	"":    true,
	"NA":  true,
	"NaN": true,
	".":   true,
}

type xzReadCloser struct {
	io.Reader
	closer io.Closer
}

func (r *xzReadCloser) Close() error { return r.closer.Close() }

// Open opens a dataset file for reading, transparently decompressing files
// with an .xz suffix.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening dataset %s", path)
	}
	if !strings.HasSuffix(path, ".xz") {
		return f, nil
	}
	zr, err := xz.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "reading xz header of %s", path)
	}
	return &xzReadCloser{Reader: zr, closer: f}, nil
}

// Load parses delimited text with a header row into a Dataset.
//
// labelCol names the two-valued outcome column and featureCols the numeric
// columns to keep; any other column in the file is ignored. Cells equal to
// "", "NA", "NaN" or "." become missing values (NaN). A cell that is neither
// missing nor parseable as a number is a DataError naming the column and row.
func Load(r io.Reader, labelCol string, featureCols []string) (*Dataset, error) {
	const op = "dataset.Load"

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.NewDataError(op, "", "empty input")
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[strings.TrimSpace(name)] = i
	}

	labelIdx, ok := colIndex[labelCol]
	if !ok {
		return nil, errors.NewDataError(op, labelCol, "label column not present in header")
	}

	columns := append([]string(nil), featureCols...)
	sort.Strings(columns)
	featureIdx := make([]int, len(columns))
	for i, name := range columns {
		idx, ok := colIndex[name]
		if !ok {
			return nil, errors.NewDataError(op, name, "feature column not present in header")
		}
		featureIdx[i] = idx
	}

	ds := &Dataset{Columns: columns}
	row := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, errors.Wrapf(err, "reading row %d", row)
		}

		label, err := ParseLabel(strings.TrimSpace(rec[labelIdx]))
		if err != nil {
			return nil, errors.Wrapf(err, "row %d, column %s", row, labelCol)
		}

		values := make([]float64, len(columns))
		for i, idx := range featureIdx {
			cell := strings.TrimSpace(rec[idx])
			if missingTokens[cell] {
				values[i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errors.NewDataError(op, columns[i],
					fmt.Sprintf("row %d: cannot parse %q as a number", row, cell))
			}
			values[i] = v
		}
		ds.Records = append(ds.Records, Record{Label: label, Values: values})
	}

	if len(ds.Records) == 0 {
		return nil, errors.NewDataError(op, "", "input contains a header but no records")
	}
	return ds, nil
}

// LoadHMEQ loads a reader with the HMEQ schema.
func LoadHMEQ(r io.Reader) (*Dataset, error) {
	return Load(r, HMEQLabelColumn, HMEQFeatureColumns)
}
