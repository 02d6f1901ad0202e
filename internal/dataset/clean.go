package dataset

import (
	"bytes"
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/samber/lo"

	"github.com/wonny/swapreport/internal/contracts"
)

type sortableRow struct {
	block  uint64
	fields []string
}

// CleanSort normalizes a trade log in place: fields are trimmed, blank and
// duplicate rows dropped (first occurrence wins) and rows stable-sorted by
// block number. It returns the number of rows written.
func CleanSort(filePath string) (int, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read trade log: %w", err)
	}

	name := FileName(filePath)
	rows, err := cleanRows(bytes.NewReader(raw), name)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, r := range rows {
		if err := w.Write(r.fields); err != nil {
			return 0, fmt.Errorf("encode row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return 0, fmt.Errorf("encode rows: %w", err)
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return 0, fmt.Errorf("stat trade log: %w", err)
	}

	// temp file + rename: 실패 시 원본 유지
	if err := renameio.WriteFile(filePath, buf.Bytes(), info.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("replace trade log: %w", err)
	}

	return len(rows), nil
}

// rawRow keeps the file line so errors point at the input, not the de-duplicated list
type rawRow struct {
	line   int
	fields []string
}

func cleanRows(r io.Reader, name string) ([]sortableRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows := make([]rawRow, 0)
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			pe := &contracts.ParseError{File: name, Err: err}
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				pe.Row = csvErr.StartLine
			}
			return nil, pe
		}

		line, _ := reader.FieldPos(0)
		fields = lo.Map(fields, func(f string, _ int) string { return strings.TrimSpace(f) })
		if lo.EveryBy(fields, func(f string) bool { return f == "" }) {
			continue
		}
		rows = append(rows, rawRow{line: line, fields: fields})
	}

	// first occurrence wins
	rows = lo.UniqBy(rows, func(r rawRow) string {
		return strings.Join(r.fields, "\x1f")
	})

	sorted := make([]sortableRow, 0, len(rows))
	for _, r := range rows {
		if len(r.fields) < contracts.TradeColumnCount {
			return nil, &contracts.ParseError{
				File:  name,
				Row:   r.line,
				Value: strings.Join(r.fields, ","),
				Err:   fmt.Errorf("expected %d columns, got %d", contracts.TradeColumnCount, len(r.fields)),
			}
		}
		block, err := strconv.ParseUint(r.fields[1], 10, 64)
		if err != nil {
			return nil, &contracts.ParseError{
				File:   name,
				Row:    r.line,
				Column: contracts.TradeColumns[1],
				Value:  r.fields[1],
				Err:    err,
			}
		}
		sorted = append(sorted, sortableRow{block: block, fields: r.fields})
	}

	slices.SortStableFunc(sorted, func(a, b sortableRow) int {
		return cmp.Compare(a.block, b.block)
	})

	return sorted, nil
}
