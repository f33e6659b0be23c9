// Package reader splits a byte stream into words.
//
// Words are runs of bytes between separators. Only single-byte text is
// supported: bytes outside ASCII are plain word bytes.
package reader

import (
	"bufio"
	"errors"
	"io"

	"github.com/bastiangx/wordshare/internal/utils"
)

// DefaultMaxTokenLength is the number of significant bytes of a word
// unless configured otherwise.
const DefaultMaxTokenLength = 63

// Config controls how words are cut and normalized.
type Config struct {
	MaxTokenLength     int  // significant bytes per word, longer words are truncated
	PunctuationAsSpace bool // punctuation separates words like white space
	UppercaseFold      bool // a-z become A-Z
}

// DefaultConfig returns the reading defaults.
func DefaultConfig() Config {
	return Config{MaxTokenLength: DefaultMaxTokenLength}
}

// Token is one word read from the stream.
type Token struct {
	Text string
	// Truncated is set when the word was longer than MaxTokenLength and
	// Text only holds its first bytes.
	Truncated bool
}

// Reader reads words one at a time.
type Reader struct {
	r   *bufio.Reader
	cfg Config
	buf []byte
}

// New returns a Reader over r.
func New(r io.Reader, cfg Config) *Reader {
	if cfg.MaxTokenLength < 1 {
		cfg.MaxTokenLength = DefaultMaxTokenLength
	}
	return &Reader{
		r:   bufio.NewReader(r),
		cfg: cfg,
		buf: make([]byte, 0, cfg.MaxTokenLength),
	}
}

// Next returns the next word. It returns io.EOF once the stream is
// exhausted and any other read error as is.
func (rd *Reader) Next() (Token, error) {
	rd.buf = rd.buf[:0]
	truncated := false
	for {
		c, err := rd.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && len(rd.buf) > 0 {
				return rd.token(truncated), nil
			}
			return Token{}, err
		}
		if utils.IsSeparator(c, rd.cfg.PunctuationAsSpace) {
			if len(rd.buf) == 0 {
				continue
			}
			return rd.token(truncated), nil
		}
		if len(rd.buf) == rd.cfg.MaxTokenLength {
			truncated = true
			continue
		}
		if rd.cfg.UppercaseFold {
			c = utils.ToUpper(c)
		}
		rd.buf = append(rd.buf, c)
	}
}

// Config returns the configuration in use.
func (rd *Reader) Config() Config {
	return rd.cfg
}

func (rd *Reader) token(truncated bool) Token {
	return Token{Text: string(rd.buf), Truncated: truncated}
}
