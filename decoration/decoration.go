// Package decoration implements DecorationList: an ordered collection
// of indicator overlays, each a RunStyles spanning the full document,
// used for squigglies, find-in-document highlights, and other markup
// orthogonal to lexer-assigned syntax styles.
package decoration

import "github.com/gocintilla/engine/runstyle"

// Decoration is one indicator's run-length value map over the document.
type Decoration struct {
	Indicator int
	Runs      *runstyle.RunStyles
}

// DecorationList owns one Decoration per active indicator number,
// created lazily on first use and kept in length-lockstep with the
// document by InsertSpace/DeleteRange.
type DecorationList struct {
	byIndicator map[int]*Decoration
	order       []int
	length      int
}

func New() *DecorationList {
	return &DecorationList{byIndicator: make(map[int]*Decoration)}
}

// decorationFor returns (creating if necessary) the Decoration for
// indicator, backfilling its RunStyles to the list's current length.
func (dl *DecorationList) decorationFor(indicator int) *Decoration {
	if d, ok := dl.byIndicator[indicator]; ok {
		return d
	}
	rs := runstyle.New()
	if dl.length > 0 {
		rs.InsertSpace(0, dl.length)
	}
	d := &Decoration{Indicator: indicator, Runs: rs}
	dl.byIndicator[indicator] = d
	dl.order = append(dl.order, indicator)
	return d
}

// FillRange sets value over [pos, pos+n) on the given indicator,
// reporting whether anything changed.
func (dl *DecorationList) FillRange(indicator, pos, value, n int) bool {
	return dl.decorationFor(indicator).Runs.FillRange(pos, value, n)
}

// ValueAt returns indicator's value at pos, or 0 if the indicator has
// never been used.
func (dl *DecorationList) ValueAt(indicator, pos int) int {
	d, ok := dl.byIndicator[indicator]
	if !ok {
		return 0
	}
	return d.Runs.ValueAt(pos)
}

// IndicatorValueAt is the single-indicator convenience form used by
// callers that already know which indicator they care about; it is
// identical to ValueAt but named for symmetry with AllIndicatorsAt.
func (dl *DecorationList) IndicatorValueAt(indicator, pos int) int {
	return dl.ValueAt(indicator, pos)
}

// AllIndicatorsAt returns every indicator with a non-zero value at pos,
// in the order the indicators were first used.
func (dl *DecorationList) AllIndicatorsAt(pos int) []int {
	var out []int
	for _, ind := range dl.order {
		if dl.byIndicator[ind].Runs.ValueAt(pos) != 0 {
			out = append(out, ind)
		}
	}
	return out
}

// InsertSpace widens every indicator's run map by n bytes at pos,
// keeping them in lockstep with the document length.
func (dl *DecorationList) InsertSpace(pos, n int) {
	dl.length += n
	for _, ind := range dl.order {
		dl.byIndicator[ind].Runs.InsertSpace(pos, n)
	}
}

// DeleteRange shrinks every indicator's run map by n bytes at pos.
func (dl *DecorationList) DeleteRange(pos, n int) {
	dl.length -= n
	for _, ind := range dl.order {
		dl.byIndicator[ind].Runs.DeleteRange(pos, n)
	}
}
