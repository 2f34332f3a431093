package document

import "github.com/gocintilla/engine/perline"

// AddMarker sets marker on line and notifies watchers.
func (d *Document) AddMarker(line, marker int) {
	d.markers.AddMarker(line, marker)
	d.notifyAll(ModificationEvent{Mod: ModChangeMarker, Line: line, Token: marker})
}

// DeleteMarker clears marker on line and notifies watchers.
func (d *Document) DeleteMarker(line, marker int) {
	d.markers.DeleteMarker(line, marker)
	d.notifyAll(ModificationEvent{Mod: ModChangeMarker, Line: line, Token: marker})
}

// MarkerAt returns the bitset of markers set on line.
func (d *Document) MarkerAt(line int) perline.MarkerMask { return d.markers.MarkerAt(line) }

// NextLineWithMarker returns the first line at or after from carrying
// marker, or -1 if none.
func (d *Document) NextLineWithMarker(from, marker int) int {
	return d.markers.NextLineWithMarker(from, marker)
}

// SetAnnotationText attaches text as line's annotation and notifies
// watchers with the number of annotation display lines added or
// removed.
func (d *Document) SetAnnotationText(line int, text []byte) {
	before, _ := d.annotations.Get(line)
	beforeLines := before.LineCount()
	d.annotations.SetText(line, text)
	after, _ := d.annotations.Get(line)
	afterLines := after.LineCount()
	d.notifyAll(ModificationEvent{
		Mod: ModChangeAnnotation, Line: line,
		AnnotationLinesAdded: afterLines - beforeLines,
	})
}

// SetAnnotationStyles attaches a per-byte style overlay to line's
// annotation text.
func (d *Document) SetAnnotationStyles(line int, styles []byte) {
	d.annotations.SetStyles(line, styles)
	d.notifyAll(ModificationEvent{Mod: ModChangeAnnotation, Line: line})
}

// GetAnnotation returns line's annotation, if any.
func (d *Document) GetAnnotation(line int) (perline.Annotation, bool) {
	return d.annotations.Get(line)
}

// ClearAnnotation removes line's annotation.
func (d *Document) ClearAnnotation(line int) {
	before, _ := d.annotations.Get(line)
	d.annotations.Clear(line)
	if n := before.LineCount(); n != 0 {
		d.notifyAll(ModificationEvent{Mod: ModChangeAnnotation, Line: line, AnnotationLinesAdded: -n})
	}
}

// SetLineState sets the opaque per-line lexer resume state.
func (d *Document) SetLineState(line, state int) {
	d.state.SetState(line, state)
	d.notifyAll(ModificationEvent{Mod: ModChangeLineState, Line: line})
}

// GetLineState returns line's opaque lexer resume state.
func (d *Document) GetLineState(line int) int { return d.state.GetState(line) }
