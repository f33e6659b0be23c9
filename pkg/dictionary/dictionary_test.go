package dictionary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertLookup(t *testing.T) {
	d := New()
	_, ok := d.Lookup("missing")
	assert.False(t, ok)

	words := []string{"a", "ab", "abc", "b", "hello", "HELLO", "\xe9t\xe9"}
	for i, w := range words {
		require.NoError(t, d.Insert(w, Handle(i)))
	}
	assert.Equal(t, len(words), d.Len())

	for i, w := range words {
		h, ok := d.Lookup(w)
		require.True(t, ok, w)
		assert.Equal(t, Handle(i), h)
	}

	// prefixes of stored words are not words themselves
	_, ok = d.Lookup("hel")
	assert.False(t, ok)
}

// at most one handle per word for the lifetime of the run
func TestInsertDuplicate(t *testing.T) {
	d := New()
	require.NoError(t, d.Insert("word", 1))

	err := d.Insert("word", 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExists))

	h, _ := d.Lookup("word")
	assert.Equal(t, Handle(1), h)
	assert.Equal(t, 1, d.Len())
}

func TestVisit(t *testing.T) {
	d := New()
	for i, w := range []string{"pear", "apple", "fig"} {
		require.NoError(t, d.Insert(w, Handle(i)))
	}
	var got []string
	require.NoError(t, d.Visit(func(w string, _ Handle) error {
		got = append(got, w)
		return nil
	}))
	assert.ElementsMatch(t, []string{"apple", "fig", "pear"}, got)
}

func TestRelease(t *testing.T) {
	d := New()
	require.NoError(t, d.Insert("gone", 0))
	d.Release()

	_, ok := d.Lookup("gone")
	assert.False(t, ok)
	assert.Equal(t, 0, d.Len())
	assert.NoError(t, d.Visit(func(string, Handle) error { return errors.New("unreachable") }))
}
