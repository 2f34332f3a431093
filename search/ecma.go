package search

import (
	"github.com/dlclark/regexp2"

	"github.com/gocintilla/engine/textpos"
)

// EcmaEngine wraps github.com/dlclark/regexp2, giving CXX11REGEX callers
// ECMAScript-flavoured constructs (lookaround, backreferences) that the
// POSIX engine does not support.
type EcmaEngine struct {
	re *regexp2.Regexp
}

// CompileEcma compiles pattern with ECMAScript syntax, applying
// IgnoreCase when requested by the caller's flags.
func CompileEcma(pattern string, flags Flags) (*EcmaEngine, error) {
	opts := regexp2.ECMAScript
	if !flags.has(MatchCase) {
		opts |= regexp2.IgnoreCase
	}
	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, err
	}
	return &EcmaEngine{re: re}, nil
}

// Find searches [minPos, maxPos) forward or, when maxPos < minPos, scans
// forward over the reversed range and keeps the last match, matching the
// bundled POSIX engine's backward-search convention.
func (e *EcmaEngine) Find(src Source, minPos, maxPos int) (Match, bool) {
	forward := minPos <= maxPos
	lo, hi := minPos, maxPos
	if !forward {
		lo, hi = maxPos, minPos
	}

	text := make([]byte, hi-lo)
	for i := range text {
		text[i] = src.ByteAt(lo + i)
	}
	runes := []rune(string(text))

	m, err := e.re.FindRunesMatch(runes)
	if err != nil || m == nil {
		return Match{}, false
	}

	var best *regexp2.Match
	if forward {
		best = m
	} else {
		for m != nil {
			best = m
			m, err = e.re.FindNextMatch(m)
			if err != nil {
				break
			}
		}
	}
	if best == nil {
		return Match{}, false
	}

	groups := best.Groups()
	out := make([]textpos.Range, len(groups))
	for i, g := range groups {
		if len(g.Captures) == 0 {
			out[i] = textpos.NewRange(textpos.InvalidPosition, textpos.InvalidPosition)
			continue
		}
		c := g.Captures[len(g.Captures)-1]
		start := lo + runeByteOffset(text, runes, c.Index)
		end := lo + runeByteOffset(text, runes, c.Index+c.Length)
		out[i] = textpos.NewRange(textpos.Position(start), textpos.Position(end))
	}
	return Match{Start: int(out[0].Start), End: int(out[0].End), Groups: out}, true
}

// runeByteOffset converts a rune index within runes back into a byte
// offset within the original text, since regexp2 reports match
// positions as indices into the rune slice given to FindRunesMatch.
func runeByteOffset(text []byte, runes []rune, runeIdx int) int {
	if runeIdx <= 0 {
		return 0
	}
	if runeIdx >= len(runes) {
		return len(text)
	}
	byteOff := 0
	for i := 0; i < runeIdx; i++ {
		byteOff += len(string(runes[i]))
	}
	return byteOff
}
