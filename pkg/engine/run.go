package engine

import (
	"io"
	"os"

	"github.com/bastiangx/wordshare/pkg/report"
)

// StdinName is the argument standing for standard input, and StdinLabel
// the name it is given in diagnostics.
const (
	StdinName  = "-"
	StdinLabel = "stdin"
)

// Sources lists the inputs of a run.
type Sources struct {
	Names []string
	// Stdin is read for StdinName, os.Stdin when nil.
	Stdin io.Reader
	// Open opens every other name, os.Open when nil.
	Open func(name string) (io.ReadCloser, error)
}

func (s Sources) open(name string) (string, io.ReadCloser, error) {
	if name == StdinName {
		stdin := s.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		return StdinLabel, io.NopCloser(stdin), nil
	}
	open := s.Open
	if open == nil {
		open = func(name string) (io.ReadCloser, error) { return os.Open(name) }
	}
	rc, err := open(name)
	return name, rc, err
}

// Run ingests every source in order, then writes the report to out.
// The first failure ends the run.
func Run(opts Options, src Sources, out report.Writer) (Summary, error) {
	e := New(opts)
	defer e.Close()

	for _, name := range src.Names {
		if err := ingestOne(e, src, name); err != nil {
			return e.Summary(), err
		}
	}
	err := e.Report(out)
	return e.Summary(), err
}

func ingestOne(e *Engine, src Sources, name string) error {
	label, rc, err := src.open(name)
	if err != nil {
		return &SourceError{Name: label, Err: err}
	}
	if err := e.Ingest(label, rc); err != nil {
		rc.Close()
		return err
	}
	if err := rc.Close(); err != nil {
		return &SourceError{Name: label, Err: err}
	}
	return nil
}
