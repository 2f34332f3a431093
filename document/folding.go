package document

import "github.com/gocintilla/engine/perline"

// GetLevel returns line's raw fold-level value (depth plus header/white
// flags).
func (d *Document) GetLevel(line int) int { return d.levels.GetLevel(line) }

// SetLevel sets line's fold-level value and notifies watchers of the
// change, carrying both the new and previous level for display
// invalidation.
func (d *Document) SetLevel(line, level int) int {
	prev := d.levels.SetLevel(line, level)
	if prev != level {
		d.notifyAll(ModificationEvent{
			Mod: ModChangeFold, Line: line,
			FoldLevelNow: level, FoldLevelPrev: prev,
		})
	}
	return prev
}

// GetLastChild returns the last line that is a descendant of line's
// fold header, bounded by lastLine if >= 0. level < 0 uses line's own
// current level.
func (d *Document) GetLastChild(line, level, lastLine int) int {
	return d.levels.GetLastChild(line, level, lastLine)
}

// GetFoldParent returns the nearest preceding header line that encloses
// line, or -1 if line is top-level.
func (d *Document) GetFoldParent(line int) int {
	return d.levels.GetFoldParent(line)
}

// GetHighlightDelimiters returns the [start, end] document-line range
// that should be highlighted as a matching fold delimiter pair when the
// caret sits on line: line's own range if it is a fold header, or its
// enclosing header's range otherwise. It returns (-1, -1) if line is
// top-level and not itself a header.
func (d *Document) GetHighlightDelimiters(line, lastLine int) (start, end int) {
	lv := d.levels.GetLevel(line)
	if lv&perline.FoldLevelHeaderFlag != 0 {
		level := lv & perline.FoldLevelNumberMask
		return line, d.levels.GetLastChild(line, level, lastLine)
	}
	parent := d.levels.GetFoldParent(line)
	if parent < 0 {
		return -1, -1
	}
	parentLevel := d.levels.GetLevel(parent) & perline.FoldLevelNumberMask
	return parent, d.levels.GetLastChild(parent, parentLevel, lastLine)
}

// SetFoldExpanded marks whether line's own fold is open, and keeps its
// descendants' visibility consistent by showing or hiding them.
func (d *Document) SetFoldExpanded(line int, expanded bool) bool {
	changed := d.contraction.SetExpanded(line, expanded)
	if !changed {
		return false
	}
	level := d.levels.GetLevel(line) & perline.FoldLevelNumberMask
	last := d.levels.GetLastChild(line, level, -1)
	if last > line {
		d.contraction.SetVisible(line+1, last, expanded)
	}
	d.notifyAll(ModificationEvent{Mod: ModChangeMargin, Line: line})
	return true
}

func (d *Document) GetFoldExpanded(line int) bool { return d.contraction.GetExpanded(line) }
func (d *Document) GetVisible(line int) bool       { return d.contraction.GetVisible(line) }
func (d *Document) DisplayFromDoc(line int) int    { return d.contraction.DisplayFromDoc(line) }
func (d *Document) DocFromDisplay(disp int) int    { return d.contraction.DocFromDisplay(disp) }
