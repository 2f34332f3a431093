// Package search implements literal and regular-expression search over a
// CellBuffer-shaped byte source: case-sensitive and case-folded literal
// matching, whole-word/word-start constraints, a POSIX/basic regex engine,
// and an ECMAScript-flavoured regex engine for richer patterns.
package search

import (
	"github.com/gocintilla/engine/charclass"
	"github.com/gocintilla/engine/textpos"
)

// Flags selects the matching mode for FindText.
type Flags int

const (
	MatchCase Flags = 1 << iota
	WholeWord
	WordStart
	Regexp
	Posix
	CXX11Regex
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }

// Source is the byte-addressable, character-boundary-aware view of the
// document that search operates over.
type Source interface {
	charclass.ByteSource
}

// Match is a single search hit.
type Match struct {
	Start, End int
	// Groups holds capture group ranges for regex matches, Groups[0]
	// being the whole match; nil for literal matches.
	Groups []textpos.Range
}
