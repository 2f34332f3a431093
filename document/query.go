package document

import "github.com/gocintilla/engine/charclass"

// CharAt returns the byte at pos.
func (d *Document) CharAt(pos int) byte { return d.cb.CharAt(pos) }

// StyleAt returns the style byte at pos.
func (d *Document) StyleAt(pos int) byte { return d.cb.StyleAt(pos) }

// GetCharRange returns a copy of the n bytes starting at pos.
func (d *Document) GetCharRange(pos, n int) []byte { return d.cb.GetCharRange(pos, n) }

// LineStart returns the byte offset where line begins.
func (d *Document) LineStart(line int) int { return d.cb.LineStart(line) }

// LineEnd returns the byte offset of the end of line's content, just
// before its line terminator (or the document length, for the last
// line, which has none).
func (d *Document) LineEnd(line int) int {
	if line < 0 {
		line = 0
	}
	count := d.cb.LineCount()
	if line >= count-1 {
		return d.cb.Length()
	}
	end := d.cb.LineStart(line + 1)
	if end >= 2 && d.cb.CharAt(end-2) == '\r' && d.cb.CharAt(end-1) == '\n' {
		return end - 2
	}
	if end >= 1 {
		switch d.cb.CharAt(end - 1) {
		case '\n', '\r':
			return end - 1
		}
	}
	return end
}

// LineOfPosition returns the line containing byte offset pos.
func (d *Document) LineOfPosition(pos int) int { return d.cb.LineOfPosition(pos) }

// LineFromPosition is a Scintilla-API-compatible alias for LineOfPosition.
func (d *Document) LineFromPosition(pos int) int { return d.cb.LineOfPosition(pos) }

// GetColumn returns the display column of pos within its line, counting
// each character (not byte) as one column except tabs, which expand to
// the configured tab width.
func (d *Document) GetColumn(pos int) int {
	line := d.LineOfPosition(pos)
	start := d.LineStart(line)
	col := 0
	for p := start; p < pos; {
		if d.cb.CharAt(p) == '\t' {
			col += d.settings.TabWidth - (col % d.settings.TabWidth)
			p++
			continue
		}
		_, width := charclass.GetCharacterAndWidth(d.cb, d.codePage, p)
		if width <= 0 {
			width = 1
		}
		col++
		p += width
	}
	return col
}

// FindColumn returns the byte position on line nearest display column,
// expanding tabs and counting characters the same way GetColumn does.
func (d *Document) FindColumn(line, column int) int {
	start := d.LineStart(line)
	end := d.LineEnd(line)
	col := 0
	pos := start
	for pos < end && col < column {
		if d.cb.CharAt(pos) == '\t' {
			col += d.settings.TabWidth - (col % d.settings.TabWidth)
			pos++
			continue
		}
		_, width := charclass.GetCharacterAndWidth(d.cb, d.codePage, pos)
		if width <= 0 {
			width = 1
		}
		col++
		pos += width
	}
	return pos
}

// VCHomePosition implements "smart home": it returns the first non-
// blank position on pos's line, unless pos is already there, in which
// case it returns the line's true start (so that pressing Home twice
// toggles between indent and column 0).
func (d *Document) VCHomePosition(pos int) int {
	line := d.LineOfPosition(pos)
	start := d.LineStart(line)
	end := d.LineEnd(line)

	firstNonBlank := start
	for firstNonBlank < end {
		switch d.cb.CharAt(firstNonBlank) {
		case ' ', '\t':
			firstNonBlank++
			continue
		}
		break
	}

	if pos == firstNonBlank {
		return start
	}
	return firstNonBlank
}
