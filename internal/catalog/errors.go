package catalog

import (
	"errors"
	"fmt"
)

// ErrMissingResource is returned when a catalog or constellation file does
// not exist. Callers treat it as an empty data set.
var ErrMissingResource = errors.New("missing resource")

// DataFormatError describes one malformed input line. The line is skipped
// and parsing continues.
type DataFormatError struct {
	Line  int    // 1-based line number
	Field string // field that failed, e.g. "hr", "ra", "count"
	Err   error
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Field, e.Err)
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}
