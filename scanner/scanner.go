/*
Package scanner turns raw text into a stream of earley.Symbol values for
feeding to a recognizer. It is a thin wrapper over the Go standard library's
text/scanner, in the spirit of the teacher module's own lr/scanner package:
same tracer-on-error posture, same functional-options construction, but
narrowed to this module's domain. Most grammars here are character-level, so
the default tokenizer yields one rune per call rather than classifying idents
and numbers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package scanner

import (
	"errors"
	"io"
	"strings"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"

	"github.com/dotted-rule/earleyprec/recognizer/earley"
)

// tracer traces with key 'earleyprec.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("earleyprec.scanner")
}

func logError(e error) {
	tracer().Errorf("scanner error: %s", e.Error())
}

// Tokenizer yields Symbols one at a time until the input is exhausted, at
// which point Next returns earley.Symbol(nil) and ok=false.
type Tokenizer interface {
	Next() (sym earley.Symbol, ok bool)
	SetErrorHandler(func(error))
}

// RuneTokenizer is the default Tokenizer: it scans input rune by rune,
// optionally skipping whitespace, and hands each rune back as a Symbol.
// Whitespace-as-terminator grammars (most of this module's demos) want
// SkipSpace(true); grammars that treat layout as significant want it off.
type RuneTokenizer struct {
	scanner.Scanner
	Error        func(error)
	skipSpace    bool
	lastWasSpace bool
}

var _ Tokenizer = (*RuneTokenizer)(nil)

// Option configures a RuneTokenizer at construction time.
type Option func(*RuneTokenizer)

// SkipSpace controls whether tab, newline, carriage-return and space runes
// are silently dropped (true, the default) or surfaced as Symbols like any
// other rune (false).
func SkipSpace(skip bool) Option {
	return func(t *RuneTokenizer) {
		t.skipSpace = skip
	}
}

// New creates a RuneTokenizer reading from input. sourceID names the input
// for error messages, mirroring scanner.Scanner.Filename.
func New(sourceID string, input io.Reader, opts ...Option) *RuneTokenizer {
	t := &RuneTokenizer{Error: logError, skipSpace: true}
	t.Init(input)
	t.Scanner.Error = func(_ *scanner.Scanner, msg string) {
		t.Error(errors.New(msg))
	}
	t.Filename = sourceID
	t.Mode = scanner.ScanChars // we drive rune-by-rune ourselves below
	for _, opt := range opts {
		opt(t)
	}
	if t.skipSpace {
		t.Whitespace = 1<<'\t' | 1<<'\n' | 1<<'\r' | 1<<' '
	} else {
		t.Whitespace = 0
	}
	return t
}

// SetErrorHandler implements Tokenizer.
func (t *RuneTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// Next implements Tokenizer: it returns the next rune of input as a Symbol.
func (t *RuneTokenizer) Next() (earley.Symbol, bool) {
	r := t.Scanner.Next()
	for t.skipSpace && t.Whitespace&(1<<uint(r)) != 0 {
		r = t.Scanner.Next()
	}
	if r == scanner.EOF {
		tracer().Debugf("RuneTokenizer reached end of input")
		return nil, false
	}
	return r, true
}

// Symbols drains a Tokenizer fully into a slice, the shape earley.Feed wants.
// Most callers that already have the whole input in memory should prefer
// this over driving Next in a loop by hand.
func Symbols(t Tokenizer) []earley.Symbol {
	var out []earley.Symbol
	for {
		sym, ok := t.Next()
		if !ok {
			return out
		}
		out = append(out, sym)
	}
}

// FromString is a convenience constructor for the common case of scanning an
// in-memory string. The earleydemo command goes through this path; the
// recognizer and grammar tests build their []earley.Symbol slices by hand.
func FromString(s string, opts ...Option) []earley.Symbol {
	return Symbols(New("<string>", strings.NewReader(s), opts...))
}
