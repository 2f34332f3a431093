package search

import (
	"regexp"

	"github.com/gocintilla/engine/textpos"
)

// PosixEngine compiles a POSIX/basic pattern once and matches it line by
// line, so that ^ and $ anchor at line boundaries rather than buffer
// boundaries, mirroring the line-oriented semantics of Scintilla's
// bundled basic regex engine.
type PosixEngine struct {
	re *regexp.Regexp
}

// CompilePosix compiles pattern using POSIX leftmost-longest semantics.
// This is the one piece of the search stack built on the standard
// library rather than a third-party dependency: no library in the
// available dependency set implements POSIX leftmost-longest matching,
// so regexp.CompilePOSIX is the only option that honours the documented
// semantics.
func CompilePosix(pattern string) (*PosixEngine, error) {
	re, err := regexp.CompilePOSIX(pattern)
	if err != nil {
		return nil, err
	}
	return &PosixEngine{re: re}, nil
}

// lineRanges splits [lo, hi) into line spans using a simple LF/CR/CRLF
// scan over src, since the regex engine needs to execute per line.
func lineRanges(src Source, lo, hi int) []textpos.Range {
	var ranges []textpos.Range
	start := lo
	pos := lo
	for pos < hi {
		b := src.ByteAt(pos)
		if b == '\n' {
			ranges = append(ranges, textpos.NewRange(textpos.Position(start), textpos.Position(pos)))
			pos++
			start = pos
			continue
		}
		if b == '\r' {
			end := pos
			pos++
			if pos < hi && src.ByteAt(pos) == '\n' {
				pos++
			}
			ranges = append(ranges, textpos.NewRange(textpos.Position(start), textpos.Position(end)))
			start = pos
			continue
		}
		pos++
	}
	if start < hi || start == lo {
		ranges = append(ranges, textpos.NewRange(textpos.Position(start), textpos.Position(hi)))
	}
	return ranges
}

// Find searches [minPos, maxPos) forward, or scans each line and keeps
// the last match when maxPos < minPos (backward search).
func (e *PosixEngine) Find(src Source, minPos, maxPos int) (Match, bool) {
	forward := minPos <= maxPos
	lo, hi := minPos, maxPos
	if !forward {
		lo, hi = maxPos, minPos
	}

	lines := lineRanges(src, lo, hi)
	if !forward {
		for i := len(lines) - 1; i >= 0; i-- {
			if m, ok := e.findInLine(src, lines[i], true); ok {
				return m, true
			}
		}
		return Match{}, false
	}
	for _, r := range lines {
		if m, ok := e.findInLine(src, r, false); ok {
			return m, true
		}
	}
	return Match{}, false
}

func (e *PosixEngine) findInLine(src Source, r textpos.Range, last bool) (Match, bool) {
	text := make([]byte, r.Len())
	for i := range text {
		text[i] = src.ByteAt(int(r.Start) + i)
	}
	var loc []int
	if last {
		if all := e.re.FindAllSubmatchIndex(text, -1); len(all) > 0 {
			loc = all[len(all)-1]
		}
	} else {
		loc = e.re.FindSubmatchIndex(text)
	}
	if loc == nil {
		return Match{}, false
	}
	base := int(r.Start)
	groups := make([]textpos.Range, len(loc)/2)
	for i := range groups {
		s, e2 := loc[2*i], loc[2*i+1]
		if s < 0 {
			groups[i] = textpos.NewRange(textpos.InvalidPosition, textpos.InvalidPosition)
			continue
		}
		groups[i] = textpos.NewRange(textpos.Position(base+s), textpos.Position(base+e2))
	}
	return Match{Start: base + loc[0], End: base + loc[1], Groups: groups}, true
}
