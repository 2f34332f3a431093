package document

import (
	"errors"

	"github.com/gocintilla/engine/search"
	"github.com/gocintilla/engine/textpos"
)

// ErrNoMatch is returned by FindText when the pattern has no match in
// the searched range.
var ErrNoMatch = errors.New("document: no match")

// FindText searches [minPos, maxPos) (or backward over [maxPos, minPos)
// if maxPos < minPos) for pattern, honouring flags. A regex compile
// failure is returned as an error and leaves the document untouched;
// FindText never mutates.
func (d *Document) FindText(minPos, maxPos int, pattern string, flags search.Flags) (search.Match, error) {
	if flags&search.Regexp != 0 {
		if flags&search.CXX11Regex == 0 {
			eng, err := search.CompilePosix(pattern)
			if err != nil {
				return search.Match{}, err
			}
			m, ok := eng.Find(d.cb, minPos, maxPos)
			if !ok {
				return search.Match{}, ErrNoMatch
			}
			return m, nil
		}
		eng, err := search.CompileEcma(pattern, flags)
		if err != nil {
			return search.Match{}, err
		}
		m, ok := eng.Find(d.cb, minPos, maxPos)
		if !ok {
			return search.Match{}, ErrNoMatch
		}
		return m, nil
	}

	m, ok := search.FindLiteral(d.cb, minPos, maxPos, []byte(pattern), flags, d.codePage, d.classify, d.folder)
	if !ok {
		return search.Match{}, ErrNoMatch
	}
	return m, nil
}

// SubstituteByPosition expands replacement against a FindText result's
// capture groups.
func (d *Document) SubstituteByPosition(replacement string, groups []textpos.Range) []byte {
	return search.SubstituteByPosition(d.cb, replacement, groups)
}

// SetIndicator fills [pos, pos+n) of indicator with value, returning
// whether anything changed, and notifies watchers.
func (d *Document) SetIndicator(indicator, pos, value, n int) bool {
	changed := d.decorations.FillRange(indicator, pos, value, n)
	if changed {
		d.notifyAll(ModificationEvent{Mod: ModChangeIndicator, Position: pos, Length: n, Token: indicator})
	}
	return changed
}

// IndicatorValueAt returns indicator's value at pos.
func (d *Document) IndicatorValueAt(indicator, pos int) int {
	return d.decorations.IndicatorValueAt(indicator, pos)
}

// AllIndicatorsAt returns every indicator with a non-zero value at pos.
func (d *Document) AllIndicatorsAt(pos int) []int {
	return d.decorations.AllIndicatorsAt(pos)
}
