package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/wonny/swapreport/internal/contracts"
	"github.com/wonny/swapreport/internal/evaluator"
)

const maxDecimals = evaluator.MaxToTokenDecimals

// FileName returns the report identifier for a trade log path
// Example: "data/weth-usdc.csv" → "weth-usdc"
func FileName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load reads a cleaned, block-sorted trade log and keeps the rows that
// clear targetRatio. BlockCount and AvgRatio cover every row.
func Load(filePath string, targetRatio float64) (*contracts.Dataset, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open trade log: %w", err)
	}
	defer f.Close()

	return Read(f, FileName(filePath), targetRatio)
}

// Read is Load over an arbitrary reader; name is used for FileName and errors
func Read(r io.Reader, name string, targetRatio float64) (*contracts.Dataset, error) {
	eval, err := evaluator.New(targetRatio)
	if err != nil {
		return nil, withLocation(err, name, 0)
	}

	reader := newCSVReader(r)

	ds := &contracts.Dataset{
		FileName:         name,
		ProfitableTrades: make([]contracts.TradeRecord, 0),
	}
	ratios := make([]float64, 0)
	sumOfRatio := 0.0

	for row := 1; ; row++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &contracts.ParseError{File: name, Row: row, Err: err}
		}

		rec, err := ParseRecord(fields)
		if err != nil {
			return nil, withLocation(err, name, row)
		}

		profitable, err := eval.IsProfitable(rec)
		if err != nil {
			return nil, withLocation(err, name, row)
		}
		if profitable {
			ds.ProfitableTrades = append(ds.ProfitableTrades, rec)
		}

		ds.BlockCount++
		sumOfRatio += rec.Ratio
		ratios = append(ratios, rec.Ratio)
	}

	if ds.BlockCount == 0 {
		return nil, &contracts.EmptyDatasetError{File: name}
	}

	ds.AvgRatio = sumOfRatio / float64(ds.BlockCount)
	if len(ratios) > 1 {
		ds.RatioStdDev = stat.StdDev(ratios, nil)
	}

	return ds, nil
}

func newCSVReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // short rows are reported as ParseError, not csv.ErrFieldCount
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true
	return reader
}

// withLocation stamps file and row onto the typed errors returned by the
// record parser and the evaluator
func withLocation(err error, file string, row int) error {
	var pe *contracts.ParseError
	if errors.As(err, &pe) {
		pe.File = file
		pe.Row = row
		return pe
	}

	var de *contracts.InvalidDecimalsError
	if errors.As(err, &de) {
		de.File = file
		de.Row = row
		return de
	}

	return fmt.Errorf("%s row %d: %w", file, row, err)
}
