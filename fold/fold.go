// Package fold implements ContractionState, the mapping between
// document lines and display lines used for code folding and line
// wrapping. Folded-away lines occupy zero display rows; everything
// else occupies heightOf(line) rows (more than one when wrapped).
package fold

import (
	"github.com/gocintilla/engine/partition"
	"github.com/gocintilla/engine/runstyle"
)

// ContractionState tracks, per document line: whether it is visible
// (no collapsed ancestor hides it), whether its own fold (if any) is
// open, and its display height. When no line has ever been folded or
// given a height other than 1, it uses a one-to-one shortcut and
// allocates none of the three RunStyles or the displayLines
// partitioning, matching the common case of a document that has never
// used folding.
type ContractionState struct {
	oneToOne bool
	lines    int

	visible  *runstyle.RunStyles // 1 = visible, 0 = hidden under a collapsed ancestor
	expanded *runstyle.RunStyles // 1 = this line's own fold (if a header) is open
	heights  *runstyle.RunStyles // display rows this line occupies when visible

	// displayLines caches, for partition i, the cumulative display-row
	// count before document line i; displayLines.Total() is the total
	// display-row count. Rebuilt wholesale on any change, since folding
	// operations are user-paced (far rarer than text edits) and a full
	// rebuild is easier to keep correct than an incremental patch.
	displayLines *partition.Partitioning
}

// New returns a ContractionState for a document starting with a single
// line, in one-to-one mode.
func New() *ContractionState {
	return &ContractionState{oneToOne: true, lines: 1}
}

func (c *ContractionState) Lines() int { return c.lines }

func (c *ContractionState) InsertLine(line int) {
	c.lines++
	if c.oneToOne {
		return
	}
	c.visible.InsertSpace(line, 1)
	c.visible.SetValueAt(line, 1)
	c.expanded.InsertSpace(line, 1)
	c.expanded.SetValueAt(line, 1)
	c.heights.InsertSpace(line, 1)
	c.heights.SetValueAt(line, 1)
	c.rebuildDisplay()
}

func (c *ContractionState) RemoveLine(line int) {
	if c.lines <= 1 {
		return
	}
	c.lines--
	if c.oneToOne {
		return
	}
	c.visible.DeleteRange(line, 1)
	c.expanded.DeleteRange(line, 1)
	c.heights.DeleteRange(line, 1)
	c.rebuildDisplay()
}

// grow leaves one-to-one mode and allocates the full run-map
// representation, each RunStyles initialised to the currently uniform
// state (all visible, all expanded, all height 1).
func (c *ContractionState) grow() {
	if !c.oneToOne {
		return
	}
	c.oneToOne = false
	c.visible = runstyle.New()
	c.expanded = runstyle.New()
	c.heights = runstyle.New()
	c.visible.InsertSpace(0, c.lines)
	c.visible.FillRange(0, 1, c.lines)
	c.expanded.InsertSpace(0, c.lines)
	c.expanded.FillRange(0, 1, c.lines)
	c.heights.InsertSpace(0, c.lines)
	c.heights.FillRange(0, 1, c.lines)
	c.rebuildDisplay()
}

// rebuildDisplay recomputes the displayLines partitioning from the
// current visible/heights run maps.
func (c *ContractionState) rebuildDisplay() {
	if c.oneToOne {
		return
	}
	c.displayLines = partition.New()
	cum := 0
	for i := 0; i < c.lines; i++ {
		if c.visible.ValueAt(i) != 0 {
			cum += c.heights.ValueAt(i)
		}
		c.displayLines.InsertPartition(i, cum)
	}
	// partition.New seeds a zero-length partition whose trailing boundary
	// the loop above never consumes; drop it so Total() reports cum
	// instead of that leftover zero.
	c.displayLines.RemovePartition(c.lines + 1)
}

func (c *ContractionState) displayLineOf(line int) int {
	if c.oneToOne {
		return line
	}
	if line < 0 {
		line = 0
	}
	if line >= c.displayLines.Partitions() {
		return c.displayLines.Total()
	}
	return c.displayLines.PositionFromPartition(line)
}

// SetVisible marks [lineStart, lineEnd] visible or hidden, as happens
// when an ancestor fold collapses or expands. Returns whether anything
// changed.
func (c *ContractionState) SetVisible(lineStart, lineEnd int, visible bool) bool {
	if lineStart > lineEnd {
		lineStart, lineEnd = lineEnd, lineStart
	}
	if c.oneToOne {
		if visible {
			return false
		}
		c.grow()
	}
	v := 0
	if visible {
		v = 1
	}
	n := lineEnd - lineStart + 1
	if n <= 0 {
		return false
	}
	changed := c.visible.FillRange(lineStart, v, n)
	if changed {
		c.rebuildDisplay()
	}
	return changed
}

func (c *ContractionState) GetVisible(line int) bool {
	if c.oneToOne {
		return true
	}
	return c.visible.ValueAt(line) != 0
}

// SetExpanded marks whether line's own fold is open.
func (c *ContractionState) SetExpanded(line int, expanded bool) bool {
	if c.oneToOne {
		if expanded {
			return false
		}
		c.grow()
	}
	v := 0
	if expanded {
		v = 1
	}
	return c.expanded.FillRange(line, v, 1)
}

func (c *ContractionState) GetExpanded(line int) bool {
	if c.oneToOne {
		return true
	}
	return c.expanded.ValueAt(line) != 0
}

// SetHeight sets line's display-row height (>1 when wrapped).
func (c *ContractionState) SetHeight(line, height int) bool {
	if height < 1 {
		height = 1
	}
	if c.oneToOne {
		if height == 1 {
			return false
		}
		c.grow()
	}
	changed := c.heights.FillRange(line, height, 1)
	if changed {
		c.rebuildDisplay()
	}
	return changed
}

func (c *ContractionState) GetHeight(line int) int {
	if c.oneToOne {
		return 1
	}
	return c.heights.ValueAt(line)
}

// DisplayFromDoc returns the first display row document line line
// occupies (or would occupy, were it visible).
func (c *ContractionState) DisplayFromDoc(line int) int {
	if c.oneToOne {
		return line
	}
	if line >= c.lines {
		line = c.lines - 1
	}
	return c.displayLineOf(line)
}

// DocFromDisplay returns the document line occupying display row
// displayLine.
func (c *ContractionState) DocFromDisplay(displayLine int) int {
	if c.oneToOne {
		return displayLine
	}
	if displayLine < 0 {
		return 0
	}
	return c.displayLines.PartitionFromPosition(displayLine)
}

// DisplayLineCount returns the total number of visible display rows.
func (c *ContractionState) DisplayLineCount() int {
	if c.oneToOne {
		return c.lines
	}
	return c.displayLines.Total()
}
