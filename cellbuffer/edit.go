package cellbuffer

import "github.com/gocintilla/engine/undo"

// isUnicodeLineEndWidth returns the byte width of a Unicode line
// separator (U+2028, U+2029, U+0085) starting at data[i], or 0 if none
// starts there. All three encode to 3, 3, and 2 UTF-8 bytes
// respectively.
func isUnicodeLineEndWidth(data []byte, i int) int {
	if i+2 < len(data) && data[i] == 0xE2 && data[i+1] == 0x80 && (data[i+2] == 0xA8 || data[i+2] == 0xA9) {
		return 3
	}
	if i+1 < len(data) && data[i] == 0xC2 && data[i+1] == 0x85 {
		return 2
	}
	return 0
}

// InsertString inserts s at pos, updates the line index, and records an
// undo action. It is a no-op returning nil when the buffer is
// read-only. The returned slice is the stored copy of s (which may be
// the tail of a coalesced undo record), for the caller's notification.
func (cb *CellBuffer) InsertString(pos int, s []byte, mayCoalesce bool) []byte {
	if cb.readOnly || len(s) == 0 {
		return nil
	}
	n := len(s)
	cb.substance.InsertFromArray(pos, s, 0, n)
	cb.style.InsertValue(pos, n, 0)

	cb.insertLineStructure(pos, s)

	stored := cb.history.AppendAction(undo.Insert, pos, s, n, mayCoalesce)
	return stored[len(stored)-n:]
}

// insertLineStructure updates the line-start partitioning and fires
// InsertLine notifications for every new line boundary created by
// inserting s at pos.
func (cb *CellBuffer) insertLineStructure(pos int, s []byte) {
	n := len(s)
	lineContaining := cb.lines.PartitionFromPosition(pos)
	cb.lines.InsertText(lineContaining, n)

	// CRLF straddle: an existing lone CR right before the insertion
	// pairs with a leading LF in s. The old boundary (at pos, unmoved
	// by the shift above since it belongs to partition lineContaining
	// itself) must move to pos+1 to land after the now-combined CRLF,
	// rather than sitting on top of the freshly inserted LF.
	straddle := n > 0 && s[0] == '\n' && pos > 0 && cb.substance.ValueAt(pos-1) == '\r' &&
		cb.lines.PositionFromPartition(lineContaining) == pos
	scanStart := 0
	if straddle {
		cb.lines.RemovePartition(lineContaining)
		cb.lines.InsertPartition(lineContaining-1, pos+1)
		scanStart = 1
	}

	newLineIdx := lineContaining + 1
	i := scanStart
	for i < n {
		switch s[i] {
		case '\r':
			if i+1 < n && s[i+1] == '\n' {
				cb.lines.InsertPartition(newLineIdx-1, pos+i+2)
				cb.notifyInsertLine(newLineIdx)
				newLineIdx++
				i += 2
				continue
			}
			if i+1 == n && pos+n < cb.substance.Length() && cb.substance.ValueAt(pos+n) == '\n' {
				// The trailing CR pairs with a pre-existing LF just
				// past the insertion; that LF's own (already shifted)
				// boundary already accounts for the pair.
				i++
				continue
			}
			cb.lines.InsertPartition(newLineIdx-1, pos+i+1)
			cb.notifyInsertLine(newLineIdx)
			newLineIdx++
			i++
		case '\n':
			cb.lines.InsertPartition(newLineIdx-1, pos+i+1)
			cb.notifyInsertLine(newLineIdx)
			newLineIdx++
			i++
		default:
			if cb.unicodeLineEnds {
				if w := isUnicodeLineEndWidth(s, i); w > 0 {
					cb.lines.InsertPartition(newLineIdx-1, pos+i+w)
					cb.notifyInsertLine(newLineIdx)
					newLineIdx++
					i += w
					continue
				}
			}
			i++
		}
	}
}

// termWidthEndingAt returns the byte width (1 or 2) of the line
// terminator whose boundary sits at v, inspecting the two preceding
// bytes in the pre-deletion buffer.
func (cb *CellBuffer) termWidthEndingAt(v int) int {
	if v-2 >= 0 && cb.substance.ValueAt(v-2) == '\r' && cb.substance.ValueAt(v-1) == '\n' {
		return 2
	}
	return 1
}

// DeleteChars removes the n bytes starting at pos, updates the line
// index, and records an undo action. Returns the removed bytes, or nil
// if read-only.
func (cb *CellBuffer) DeleteChars(pos, n int, mayCoalesce bool) []byte {
	if cb.readOnly || n <= 0 {
		return nil
	}
	removed := cb.GetCharRange(pos, n)

	cb.deleteLineStructure(pos, n)

	cb.substance.DeleteRange(pos, n)
	cb.style.DeleteRange(pos, n)

	cb.history.AppendAction(undo.Remove, pos, removed, n, mayCoalesce)
	return removed
}

// deleteLineStructure adjusts the line-start partitioning for the
// deletion of [pos, pos+n), removing lines whose terminator is wholly
// consumed and collapsing boundaries whose terminator is only
// partially consumed (a lone CR or LF surviving out of a split CRLF).
func (cb *CellBuffer) deleteLineStructure(pos, n int) {
	lo, hi := pos, pos+n

	idx := cb.lines.PartitionFromPosition(lo)
	if cb.lines.PositionFromPartition(idx) <= lo {
		idx++
	}

	// Left straddle: the next boundary's terminator began before lo
	// (e.g. deleting just the LF of a CRLF, leaving the CR).
	if idx < cb.lines.Partitions() {
		v := cb.lines.PositionFromPartition(idx)
		w := cb.termWidthEndingAt(v)
		if v-w < lo && v <= hi {
			cb.lines.RemovePartition(idx)
			cb.lines.InsertPartition(idx-1, lo)
			idx++
		}
	}

	// Interior: every boundary now fully inside (lo, hi] is a
	// terminator wholly consumed by the deletion.
	for idx < cb.lines.Partitions() {
		v := cb.lines.PositionFromPartition(idx)
		if v > hi {
			break
		}
		cb.lines.RemovePartition(idx)
		cb.notifyRemoveLine(idx)
	}

	// Right straddle: the first remaining boundary's terminator starts
	// inside the deleted range but ends past it (e.g. deleting just the
	// CR of a CRLF, leaving the LF).
	if idx < cb.lines.Partitions() {
		v := cb.lines.PositionFromPartition(idx)
		w := cb.termWidthEndingAt(v)
		if v-w >= lo && v-w < hi {
			cb.lines.InsertText(idx, -n)
			newV := lo + (v - hi)
			cb.lines.RemovePartition(idx)
			cb.lines.InsertPartition(idx-1, newV)
			return
		}
	}

	if idx > 0 {
		cb.lines.InsertText(idx-1, -n)
	}
}

// StartUndo, GetUndoStep, PerformUndoStep and their redo counterparts
// let the owning Document walk one compound undo/redo group without
// knowing the history's internal record format.
func (cb *CellBuffer) StartUndo() int { return cb.history.StartUndo() }

func (cb *CellBuffer) GetUndoStep(step int) undo.Action { return cb.history.GetUndoStep(step) }

// PerformUndoStep applies the inverse of a single undo record directly
// against substance/style/lines, bypassing InsertString/DeleteChars (so
// that undoing does not itself create a new undo record), and advances
// the history.
func (cb *CellBuffer) PerformUndoStep(a undo.Action) {
	switch a.Kind {
	case undo.Insert:
		cb.deleteLineStructure(a.Position, a.Length)
		cb.substance.DeleteRange(a.Position, a.Length)
		cb.style.DeleteRange(a.Position, a.Length)
	case undo.Remove:
		cb.substance.InsertFromArray(a.Position, a.Data, 0, a.Length)
		cb.style.InsertValue(a.Position, a.Length, 0)
		cb.insertLineStructure(a.Position, a.Data)
	}
	cb.history.CompletedUndoStep()
}

func (cb *CellBuffer) StartRedo() int { return cb.history.StartRedo() }

func (cb *CellBuffer) GetRedoStep(step int) undo.Action { return cb.history.GetRedoStep(step) }

// PerformRedoStep re-applies a single redo record directly, advancing
// the history.
func (cb *CellBuffer) PerformRedoStep(a undo.Action) {
	switch a.Kind {
	case undo.Insert:
		cb.substance.InsertFromArray(a.Position, a.Data, 0, a.Length)
		cb.style.InsertValue(a.Position, a.Length, 0)
		cb.insertLineStructure(a.Position, a.Data)
	case undo.Remove:
		cb.deleteLineStructure(a.Position, a.Length)
		cb.substance.DeleteRange(a.Position, a.Length)
		cb.style.DeleteRange(a.Position, a.Length)
	}
	cb.history.CompletedRedoStep()
}
