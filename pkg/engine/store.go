package engine

import (
	"fmt"

	"github.com/bastiangx/wordshare/pkg/dictionary"
	"github.com/bastiangx/wordshare/pkg/shword"
	"github.com/charmbracelet/log"
)

// Store owns every record of a run. The dictionary and the display list
// only hold handles into it.
type Store struct {
	records  []*shword.Word
	maxWords int
}

// NewStore returns an empty store. A maxWords of 0 means unbounded.
func NewStore(maxWords int) *Store {
	return &Store{maxWords: maxWords}
}

// Create adds a record for word and returns its handle.
func (s *Store) Create(word string) (dictionary.Handle, error) {
	if s.maxWords > 0 && len(s.records) >= s.maxWords {
		return 0, fmt.Errorf("%w (limit %d)", ErrCapacity, s.maxWords)
	}
	s.records = append(s.records, shword.New[uint64](word))
	return dictionary.Handle(len(s.records) - 1), nil
}

// Get returns the record behind h. h must come from Create.
func (s *Store) Get(h dictionary.Handle) *shword.Word {
	return s.records[h]
}

// Compare ranks the records behind two handles, see shword.Compare.
func (s *Store) Compare(a, b dictionary.Handle) int {
	return shword.Compare(s.records[a], s.records[b])
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Release drops every record. Handles are invalid afterwards.
func (s *Store) Release() {
	log.Debugf("Releasing %d records", len(s.records))
	clear(s.records)
	s.records = nil
}
