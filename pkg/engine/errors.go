package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity is returned when a new word would exceed the configured
	// maximum number of distinct words.
	ErrCapacity = errors.New("not enough memory for a new word")

	// ErrDisplay wraps failures to write the report.
	ErrDisplay = errors.New("failed to display shared words")

	// ErrTooManySources is returned by Ingest past the last trackable source.
	ErrTooManySources = errors.New("number of files exceeding capacity")

	// ErrReported is returned by Ingest once the report was produced.
	ErrReported = errors.New("ingest after report")
)

// SourceError reports an input failure on a named source.
type SourceError struct {
	Name string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("'%s': %s", e.Name, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }
