// Package shword manages words shared between several input sources.
//
// A Record tracks in which sources a word was seen and how many times it
// was seen overall. Records are ranked by Compare and picked for display
// by a Selection.
package shword

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/wordshare/pkg/counter"
	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/constraints"
)

// PatternWidth is the number of sources a record can track.
const PatternWidth = 64

// Many is displayed in place of the occurrence count once it saturated.
const Many = "many"

// Record holds the data of a shared word.
type Record[T constraints.Unsigned] struct {
	word     string
	presence *bitset.BitSet
	files    int
	occ      counter.Saturating[T]
}

// Word is the record type used by the pipeline.
type Word = Record[uint64]

// New creates a record for word, present in no source yet.
func New[T constraints.Unsigned](word string) *Record[T] {
	return &Record[T]{
		word:     strings.Clone(word),
		presence: bitset.New(PatternWidth),
	}
}

// Increment marks one occurrence of the word in source idx.
//
// The source is marked present before the counter is checked, so presence
// stays accurate after saturation. ErrOccurrenceSaturation is returned on
// every call once the counter is saturated.
func (r *Record[T]) Increment(idx int) error {
	if idx < 0 || idx >= PatternWidth {
		return &IndexError{Index: idx}
	}
	if !r.presence.Test(uint(idx)) {
		r.presence.Set(uint(idx))
		r.files++
	}
	if !r.occ.Inc() {
		return ErrOccurrenceSaturation
	}
	return nil
}

// Word returns the text of the record.
func (r *Record[T]) Word() string {
	return r.word
}

// Files returns the number of sources the word was seen in.
func (r *Record[T]) Files() int {
	return r.files
}

// Occurrences returns the total occurrence count.
func (r *Record[T]) Occurrences() T {
	return r.occ.Value()
}

// Saturated reports whether the occurrence count stopped counting.
func (r *Record[T]) Saturated() bool {
	return r.occ.Saturated()
}

// OccursIn reports whether the word was seen in source idx.
func (r *Record[T]) OccursIn(idx int) bool {
	if idx < 0 || idx >= PatternWidth {
		return false
	}
	return r.presence.Test(uint(idx))
}

// Pattern renders presence over the first n sources, 'x' when present
// and '-' otherwise.
func (r *Record[T]) Pattern(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for k := 0; k < n; k++ {
		if r.OccursIn(k) {
			sb.WriteByte('x')
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// Count returns the occurrence count as displayed, Many once saturated.
func (r *Record[T]) Count() string {
	if r.Saturated() {
		return Many
	}
	return fmt.Sprintf("%d", r.Occurrences())
}

// Display writes one report line for r: the presence pattern over
// sourceCount sources, the occurrence count and the word, tab separated.
func (r *Record[T]) Display(w io.Writer, sourceCount int) error {
	if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", r.Pattern(sourceCount), r.Count(), r.word); err != nil {
		return fmt.Errorf("display %q: %w", r.word, err)
	}
	return nil
}

// Compare orders records by decreasing number of files, then decreasing
// occurrences, then increasing byte-wise word. The result is negative
// when a comes first.
func Compare[T constraints.Unsigned](a, b *Record[T]) int {
	if c := cmp.Compare(b.files, a.files); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Occurrences(), a.Occurrences()); c != 0 {
		return c
	}
	return strings.Compare(a.word, b.word)
}

// SameNumbers reports whether a and b share file and occurrence counts.
func SameNumbers[T constraints.Unsigned](a, b *Record[T]) bool {
	return a.files == b.files && a.Occurrences() == b.Occurrences()
}
