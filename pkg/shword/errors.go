package shword

import (
	"errors"
	"fmt"
)

var (
	// ErrOccurrenceSaturation is returned by Increment once the occurrence
	// counter reached its maximum. Presence is still recorded.
	ErrOccurrenceSaturation = errors.New("occurrence count saturated")

	// ErrSourceIndexOutOfRange is matched by IndexError.
	ErrSourceIndexOutOfRange = errors.New("source index out of range")
)

// IndexError reports an Increment with a source index outside
// [0, PatternWidth). The record is left untouched.
type IndexError struct {
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("source index %d out of range [0, %d)", e.Index, PatternWidth)
}

func (e *IndexError) Unwrap() error { return ErrSourceIndexOutOfRange }
