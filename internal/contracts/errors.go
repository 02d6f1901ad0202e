package contracts

import "fmt"

// ParseError is returned when a row or a numeric field cannot be read
type ParseError struct {
	File   string
	Row    int // 1-based, 0 when not tied to a row
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	msg := "parse error"
	if e.File != "" {
		msg += " in " + e.File
	}
	if e.Row > 0 {
		msg += fmt.Sprintf(" row %d", e.Row)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(" column %s", e.Column)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" (%q)", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidDecimalsError is returned when a token decimals field is out of range
type InvalidDecimalsError struct {
	File     string
	Row      int
	Field    string
	Decimals int
	Max      int
}

func (e *InvalidDecimalsError) Error() string {
	loc := ""
	if e.File != "" {
		loc = " in " + e.File
	}
	if e.Row > 0 {
		loc += fmt.Sprintf(" row %d", e.Row)
	}
	return fmt.Sprintf("invalid decimals%s: %s=%d (supported 0..%d)", loc, e.Field, e.Decimals, e.Max)
}

// EmptyDatasetError is returned when a trade log has no data rows
type EmptyDatasetError struct {
	File string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("empty dataset: %s has no data rows", e.File)
}

// RenderError wraps any failure while drawing or writing a chart
type RenderError struct {
	Name string
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	target := e.Name
	if e.Path != "" {
		target = e.Path
	}
	return fmt.Sprintf("render chart %s: %v", target, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
