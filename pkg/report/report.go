/*
Package report writes the shared words picked for display.

Two formats are available. The text format prints one line per word:

	xx-	12	word

made of the presence pattern over every source ('x' present, '-' absent),
the total number of occurrences, or "many" once the count saturated, and
the word itself, separated by tabs.

The msgpack format encodes one Entry per word, back to back, for programs
consuming the report:

	{"p": "xx-", "f": 2, "o": 12, "m": false, "w": "word"}
*/
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/wordshare/pkg/shword"
	"github.com/vmihailenco/msgpack/v5"
)

// Format selects the report encoding.
type Format string

const (
	FormatText    Format = "text"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat returns the Format named s, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatMsgpack:
		return f, nil
	}
	return "", fmt.Errorf("unknown report format %q (expected %s or %s)", s, FormatText, FormatMsgpack)
}

// Writer receives the records to display, in display order.
type Writer interface {
	Write(rec *shword.Word) error
	Flush() error
}

// New returns a Writer in format f over sourceCount sources.
func New(f Format, w io.Writer, sourceCount int) (Writer, error) {
	switch f {
	case FormatText, "":
		return NewTextWriter(w, sourceCount), nil
	case FormatMsgpack:
		return NewMsgpackWriter(w, sourceCount), nil
	}
	return nil, fmt.Errorf("unknown report format %q", f)
}

// TextWriter prints report lines.
type TextWriter struct {
	bw          *bufio.Writer
	sourceCount int
}

// NewTextWriter returns a buffered text writer.
func NewTextWriter(w io.Writer, sourceCount int) *TextWriter {
	return &TextWriter{bw: bufio.NewWriter(w), sourceCount: sourceCount}
}

func (tw *TextWriter) Write(rec *shword.Word) error {
	return rec.Display(tw.bw, tw.sourceCount)
}

func (tw *TextWriter) Flush() error {
	return tw.bw.Flush()
}

// Entry is the msgpack form of a displayed record.
type Entry struct {
	Pattern     string `msgpack:"p"`
	Files       int    `msgpack:"f"`
	Occurrences uint64 `msgpack:"o"`
	Many        bool   `msgpack:"m"`
	Word        string `msgpack:"w"`
}

// NewEntry converts rec for a report over sourceCount sources.
func NewEntry(rec *shword.Word, sourceCount int) Entry {
	return Entry{
		Pattern:     rec.Pattern(sourceCount),
		Files:       rec.Files(),
		Occurrences: rec.Occurrences(),
		Many:        rec.Saturated(),
		Word:        rec.Word(),
	}
}

// MsgpackWriter streams one Entry per record.
type MsgpackWriter struct {
	bw          *bufio.Writer
	enc         *msgpack.Encoder
	sourceCount int
}

// NewMsgpackWriter returns a buffered msgpack writer.
func NewMsgpackWriter(w io.Writer, sourceCount int) *MsgpackWriter {
	bw := bufio.NewWriter(w)
	return &MsgpackWriter{
		bw:          bw,
		enc:         msgpack.NewEncoder(bw),
		sourceCount: sourceCount,
	}
}

func (mw *MsgpackWriter) Write(rec *shword.Word) error {
	if err := mw.enc.Encode(NewEntry(rec, mw.sourceCount)); err != nil {
		return fmt.Errorf("encode %q: %w", rec.Word(), err)
	}
	return nil
}

func (mw *MsgpackWriter) Flush() error {
	return mw.bw.Flush()
}
