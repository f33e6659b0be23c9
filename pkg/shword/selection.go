package shword

import "golang.org/x/exp/constraints"

// Verdict is what a Selection decided for one record.
type Verdict int

const (
	Skip Verdict = iota // not shared, ignore it
	Emit                // display it
	Stop                // nothing else will be displayed
)

func (v Verdict) String() string {
	switch v {
	case Skip:
		return "skip"
	case Emit:
		return "emit"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Selection decides which sorted records make it to the output.
//
// Records must be fed in Compare order. A record is shared when seen in
// at least two sources; unshared ones are skipped. Up to the budget, every
// shared record is emitted. With same numbers enabled, records tied with
// the last emitted one on files and occurrences keep being emitted after
// the budget ran out.
type Selection[T constraints.Unsigned] struct {
	sourceCount int
	remaining   int
	last        *Record[T]
	sameNumbers bool
}

// NewSelection returns a selection over sourceCount sources emitting at
// most top records. A top of 0 means total, the number of records.
func NewSelection[T constraints.Unsigned](sourceCount, top, total int, sameNumbers bool) *Selection[T] {
	if top <= 0 {
		top = total
	}
	return &Selection[T]{
		sourceCount: sourceCount,
		remaining:   top,
		sameNumbers: sameNumbers,
	}
}

// Next returns the verdict for r, the record following the previous one.
func (s *Selection[T]) Next(r *Record[T]) Verdict {
	if r.Files() < 2 {
		return Skip
	}
	if s.remaining > 0 {
		s.remaining--
		s.last = r
		return Emit
	}
	if s.sameNumbers && s.last != nil && SameNumbers(r, s.last) {
		s.last = r
		return Emit
	}
	return Stop
}

// SourceCount returns the number of sources, the width of patterns.
func (s *Selection[T]) SourceCount() int {
	return s.sourceCount
}

// Remaining returns what is left of the budget.
func (s *Selection[T]) Remaining() int {
	return s.remaining
}

// Last returns the last emitted record, or nil.
func (s *Selection[T]) Last() *Record[T] {
	return s.last
}
