// Package dictionary maps words to the handle of their shared-word record.
//
// Words are kept in a Patricia trie. A word is inserted once for the whole
// run; later sightings only look it up.
package dictionary

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// ErrExists is returned when inserting a word already in the dictionary.
var ErrExists = errors.New("word already in dictionary")

// Handle refers to a record held by its owning store.
type Handle int

// Dictionary is the word lookup index of a run.
type Dictionary struct {
	trie  *patricia.Trie
	words int
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{
		trie: patricia.NewTrie(),
	}
}

// Lookup returns the handle stored for word.
func (d *Dictionary) Lookup(word string) (Handle, bool) {
	if d.trie == nil {
		return 0, false
	}
	item := d.trie.Get(patricia.Prefix(word))
	if item == nil {
		return 0, false
	}
	h, ok := item.(Handle)
	if !ok {
		log.Errorf("Unknown item type: %T for word %s", item, word)
		return 0, false
	}
	return h, true
}

// Insert stores h for word. Each word can be inserted once.
func (d *Dictionary) Insert(word string, h Handle) error {
	if d.trie == nil {
		d.trie = patricia.NewTrie()
	}
	if !d.trie.Insert(patricia.Prefix(word), h) {
		return fmt.Errorf("insert %q: %w", word, ErrExists)
	}
	d.words++
	return nil
}

// Len returns the number of words inserted.
func (d *Dictionary) Len() int {
	return d.words
}

// Visit calls fn for every word, stopping on the first error.
func (d *Dictionary) Visit(fn func(word string, h Handle) error) error {
	if d.trie == nil {
		return nil
	}
	return d.trie.Visit(func(p patricia.Prefix, item patricia.Item) error {
		return fn(string(p), item.(Handle))
	})
}

// Release drops the trie. Records behind the handles are not touched.
func (d *Dictionary) Release() {
	log.Debugf("Releasing dictionary with %d words", d.words)
	d.trie = nil
	d.words = 0
}
