/*
Package engine finds the words shared between several sources.

A run goes through three phases, in order:

 1. Ingest every source. Each word gets one record, counting where and
    how many times it was seen.
 2. Sort the records once, by number of sources, then occurrences, then
    word.
 3. Walk the sorted records and report the ones picked by a
    shword.Selection.

Records live in a single Store. The dictionary used to find them by word
and the list used to rank them both hold handles into that store.
*/
package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/bastiangx/wordshare/pkg/dictionary"
	"github.com/bastiangx/wordshare/pkg/holdall"
	"github.com/bastiangx/wordshare/pkg/reader"
	"github.com/bastiangx/wordshare/pkg/report"
	"github.com/bastiangx/wordshare/pkg/shword"
	"github.com/charmbracelet/log"
)

// Options configures an Engine.
type Options struct {
	Top         int  // records to display, 0 for all
	SameNumbers bool // keep displaying records tied with the last one
	MaxWords    int  // distinct words allowed, 0 for no limit
	Reader      reader.Config
	Logger      *log.Logger
}

// Summary describes a finished run.
type Summary struct {
	Sources   int
	Tokens    int
	Words     int
	Emitted   int
	Truncated int
}

// Engine holds the state of one run.
type Engine struct {
	opts     Options
	log      *log.Logger
	store    *Store
	index    *dictionary.Dictionary
	list     *holdall.List[dictionary.Handle]
	sources  []string
	reported bool

	tokens    int
	truncated int
	emitted   int
}

// New returns an engine ready to ingest.
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		opts:  opts,
		log:   logger,
		store: NewStore(opts.MaxWords),
		index: dictionary.New(),
		list:  holdall.New[dictionary.Handle](),
	}
}

// Ingest reads every word of r as the next source, named name in
// diagnostics. Read failures are returned as *SourceError.
func (e *Engine) Ingest(name string, r io.Reader) error {
	if e.reported {
		return ErrReported
	}
	idx := len(e.sources)
	if idx >= shword.PatternWidth {
		return fmt.Errorf("%w: %s is source %d, at most %d are supported",
			ErrTooManySources, name, idx+1, shword.PatternWidth)
	}
	e.sources = append(e.sources, name)

	rd := reader.New(r, e.opts.Reader)
	for {
		tok, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return &SourceError{Name: name, Err: err}
		}
		e.tokens++
		if tok.Truncated {
			e.truncated++
			e.log.Warnf("Word '%s...' was truncated in file '%s'", tok.Text, name)
		}
		if err := e.add(tok.Text, idx); err != nil {
			return err
		}
	}
	e.log.Debugf("Ingested %s: %d distinct words so far", name, e.store.Len())
	return nil
}

// add counts one occurrence of word in source idx.
func (e *Engine) add(word string, idx int) error {
	h, ok := e.index.Lookup(word)
	if !ok {
		var err error
		if h, err = e.store.Create(word); err != nil {
			return err
		}
		e.list.Append(h)
		if err := e.index.Insert(word, h); err != nil {
			return fmt.Errorf("index %q: %w", word, err)
		}
	}
	err := e.store.Get(h).Increment(idx)
	if errors.Is(err, shword.ErrOccurrenceSaturation) {
		return nil
	}
	return err
}

// Report sorts the records and writes the selected ones to w, then
// flushes w. It can only run once per engine.
func (e *Engine) Report(w report.Writer) error {
	if e.reported {
		return ErrReported
	}
	e.reported = true

	e.list.Sort(e.store.Compare)

	sel := &selector{
		store: e.store,
		sel:   shword.NewSelection[uint64](len(e.sources), e.opts.Top, e.list.Count(), e.opts.SameNumbers),
	}
	out := &emitter{store: e.store, w: w}
	err := holdall.ForEachTransformed2(e.list, sel, (*selector).judge, out, (*emitter).emit)
	e.emitted = out.emitted
	if err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrDisplay, err)
	}
	return nil
}

// Summary returns the counters of the run so far.
func (e *Engine) Summary() Summary {
	return Summary{
		Sources:   len(e.sources),
		Tokens:    e.tokens,
		Words:     e.store.Len(),
		Emitted:   e.emitted,
		Truncated: e.truncated,
	}
}

// Close releases the dictionary, then the records, then the list.
func (e *Engine) Close() {
	e.index.Release()
	e.store.Release()
	e.list.Dispose()
}

type selector struct {
	store *Store
	sel   *shword.Selection[uint64]
}

func (s *selector) judge(h dictionary.Handle) shword.Verdict {
	return s.sel.Next(s.store.Get(h))
}

type emitter struct {
	store   *Store
	w       report.Writer
	emitted int
}

func (em *emitter) emit(h dictionary.Handle, v shword.Verdict) error {
	switch v {
	case shword.Skip:
		return nil
	case shword.Stop:
		return holdall.Stop
	}
	if err := em.w.Write(em.store.Get(h)); err != nil {
		return fmt.Errorf("%w: %w", ErrDisplay, err)
	}
	em.emitted++
	return nil
}
