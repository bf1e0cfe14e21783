package dataset

import "fmt"

// MissingSourceError reports a table whose backing CSV file does not
// exist under the data root. It is fatal at startup for required tables.
type MissingSourceError struct {
	Table TableName
	Path  string
}

// Error implements the error interface
func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("missing source file for table %s: %s", e.Table, e.Path)
}

// LoadError wraps a failure while reading or parsing a table source.
type LoadError struct {
	Table      TableName
	Path       string
	Underlying error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	return fmt.Sprintf("loading table %s from %s: %v", e.Table, e.Path, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *LoadError) Unwrap() error {
	return e.Underlying
}
