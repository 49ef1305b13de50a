package excel

import (
	"fmt"
	"io"
)

// Validator turns one raw row into a normalized record, or explains in
// human-readable terms why it cannot. All field checks run; errors do not
// short-circuit, so a single row can report several problems.
type Validator[T any] func(RawRow) (T, []string)

// ValidRecord pairs a validated record with the spreadsheet row it came from
// so later failures (such as a rejected insert) can still point at a line.
type ValidRecord[T any] struct {
	Line   int
	Record T
}

// ImportResult aggregates one import attempt. Success means at least one row
// validated; a file that parses but yields nothing usable is a failure.
type ImportResult[T any] struct {
	TotalRows int
	ValidRows int
	Records   []ValidRecord[T]
	Errors    []string
	Success   bool
}

// Import parses the workbook and validates every data row. Line numbers in
// error strings are spreadsheet lines: data row N sits on line N+1 because
// of the header.
func Import[T any](r io.Reader, validate Validator[T]) ImportResult[T] {
	rows, err := ParseSheet(r)
	if err != nil {
		return ImportResult[T]{
			Errors: []string{fmt.Sprintf("Erreur lors de la lecture du fichier: %v", err)},
		}
	}

	res := ImportResult[T]{TotalRows: len(rows)}
	for i, row := range rows {
		line := i + 2
		record, errs := validate(row)
		if len(errs) > 0 {
			for _, e := range errs {
				res.Errors = append(res.Errors, fmt.Sprintf("Ligne %d: %s", line, e))
			}
			continue
		}
		res.Records = append(res.Records, ValidRecord[T]{Line: line, Record: record})
		res.ValidRows++
	}
	res.Success = res.ValidRows > 0
	return res
}
