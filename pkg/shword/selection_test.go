package shword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// run feeds recs to a fresh selection and collects emitted words,
// stopping on the first Stop verdict.
func run(recs []*Record[uint64], top int, same bool) []string {
	sel := NewSelection[uint64](4, top, len(recs), same)
	var out []string
	for _, r := range recs {
		switch sel.Next(r) {
		case Emit:
			out = append(out, r.Word())
		case Stop:
			return out
		}
	}
	return out
}

func TestSelectionTieExtension(t *testing.T) {
	recs := []*Record[uint64]{
		record("x", 3, 5),
		record("y", 3, 5),
		record("z", 2, 9),
	}
	assert.Equal(t, []string{"x", "y"}, run(recs, 1, true))
	assert.Equal(t, []string{"x"}, run(recs, 1, false))
}

func TestSelectionBudget(t *testing.T) {
	recs := []*Record[uint64]{
		record("a", 3, 5),
		record("b", 2, 4),
		record("c", 2, 3),
		record("d", 2, 2),
	}
	testCases := []struct {
		description string
		top         int
		want        []string
	}{
		{"unlimited", 0, []string{"a", "b", "c", "d"}},
		{"top two", 2, []string{"a", "b"}},
		{"top larger than input", 10, []string{"a", "b", "c", "d"}},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.want, run(recs, tc.top, false))
		})
	}
}

// unshared records never come out and never consume the budget
func TestSelectionSkipsUnshared(t *testing.T) {
	recs := []*Record[uint64]{
		record("a", 2, 2),
		record("solo", 1, 50),
		record("b", 2, 2),
		record("lonely", 1, 1),
	}
	assert.Equal(t, []string{"a", "b"}, run(recs, 0, true))

	sel := NewSelection[uint64](2, 1, 1, true)
	assert.Equal(t, Skip, sel.Next(record("solo", 1, 3)))
	assert.Equal(t, 1, sel.Remaining())
	assert.Nil(t, sel.Last())
}

func TestSelectionTieRunEndsOnChange(t *testing.T) {
	recs := []*Record[uint64]{
		record("a", 2, 4),
		record("b", 2, 4),
		record("c", 2, 4),
		record("d", 2, 3),
		record("e", 2, 3),
	}
	assert.Equal(t, []string{"a", "b", "c"}, run(recs, 1, true))

	sel := NewSelection[uint64](2, 1, len(recs), true)
	for _, r := range recs[:3] {
		assert.Equal(t, Emit, sel.Next(r))
	}
	assert.Equal(t, 0, sel.Remaining())
	assert.Equal(t, "c", sel.Last().Word())
	assert.Equal(t, Stop, sel.Next(recs[3]))
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "skip", Skip.String())
	assert.Equal(t, "emit", Emit.String())
	assert.Equal(t, "stop", Stop.String())
	assert.Equal(t, "unknown", Verdict(9).String())
}
