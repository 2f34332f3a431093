// Package cellbuffer implements CellBuffer: the document's text and
// per-byte style overlay as two parallel gap-buffered arrays, plus the
// line-start index and undo history derived from every mutation.
package cellbuffer

import (
	"github.com/gocintilla/engine/buffer"
	"github.com/gocintilla/engine/partition"
	"github.com/gocintilla/engine/undo"
)

// LineObserver is notified of line-structure changes as they happen, so
// that per-line data vectors (markers, fold levels, state, annotations)
// stay in lockstep with the document's line count. The owning Document
// is the only registered observer; it fans out to its own per-line
// facilities.
type LineObserver interface {
	InsertLine(line int)
	RemoveLine(line int)
}

// CellBuffer holds the document's bytes (substance) and a parallel,
// equal-length scalar style byte per position, the line-start index
// derived from line-terminator bytes, and the undo history recording
// every mutation.
type CellBuffer struct {
	substance *buffer.SplitVector[byte]
	style     *buffer.SplitVector[byte]
	lines     *partition.Partitioning
	history   *undo.History

	observer LineObserver
	readOnly bool

	// unicodeLineEnds additionally recognises U+2028, U+2029 and U+0085
	// as line terminators, for UTF-8 documents that opt in.
	unicodeLineEnds bool
}

// New returns an empty CellBuffer: zero bytes, one (empty) line.
func New() *CellBuffer {
	return &CellBuffer{
		substance: buffer.New[byte](),
		style:     buffer.New[byte](),
		lines:     partition.New(),
		history:   undo.New(),
	}
}

// SetPerLine registers the single per-line observer.
func (cb *CellBuffer) SetPerLine(observer LineObserver) { cb.observer = observer }

// SetUnicodeLineEnds toggles recognition of U+2028/U+2029/U+0085 as line
// terminators in addition to CR, LF and CRLF.
func (cb *CellBuffer) SetUnicodeLineEnds(on bool) { cb.unicodeLineEnds = on }

func (cb *CellBuffer) Length() int { return cb.substance.Length() }

func (cb *CellBuffer) CharAt(pos int) byte { return cb.substance.ValueAt(pos) }

// ByteAt satisfies charclass.ByteSource / search.Source.
func (cb *CellBuffer) ByteAt(pos int) byte { return cb.substance.ValueAt(pos) }

func (cb *CellBuffer) StyleAt(pos int) byte { return cb.style.ValueAt(pos) }

func (cb *CellBuffer) GetCharRange(pos, n int) []byte {
	out := make([]byte, n)
	copy(out, cb.substance.RangePointer(pos, n))
	return out
}

func (cb *CellBuffer) GetStyleRange(pos, n int) []byte {
	out := make([]byte, n)
	copy(out, cb.style.RangePointer(pos, n))
	return out
}

func (cb *CellBuffer) SetReadOnly(v bool) { cb.readOnly = v }
func (cb *CellBuffer) IsReadOnly() bool   { return cb.readOnly }

func (cb *CellBuffer) SetSavePoint()    { cb.history.SetSavePoint() }
func (cb *CellBuffer) IsSavePoint() bool { return cb.history.IsSavePoint() }

func (cb *CellBuffer) TentativeStart()  { cb.history.TentativeStart() }
func (cb *CellBuffer) TentativeCommit() { cb.history.TentativeCommit() }
func (cb *CellBuffer) TentativeSteps() int { return cb.history.TentativeSteps() }

func (cb *CellBuffer) BeginUndoAction() { cb.history.BeginUndoAction() }
func (cb *CellBuffer) EndUndoAction()   { cb.history.EndUndoAction() }

func (cb *CellBuffer) CanUndo() bool { return cb.history.CanUndo() }
func (cb *CellBuffer) CanRedo() bool { return cb.history.CanRedo() }

// SetStyleAt and SetStyleFor never touch the undo history: style is
// re-derivable by re-lexing and is not persisted as an edit.
func (cb *CellBuffer) SetStyleAt(pos int, style byte) {
	cb.style.SetValueAt(pos, style)
}

func (cb *CellBuffer) SetStyleFor(pos, n int, style byte) {
	for i := 0; i < n; i++ {
		cb.style.SetValueAt(pos+i, style)
	}
}

func (cb *CellBuffer) notifyInsertLine(line int) {
	if cb.observer != nil {
		cb.observer.InsertLine(line)
	}
}

func (cb *CellBuffer) notifyRemoveLine(line int) {
	if cb.observer != nil {
		cb.observer.RemoveLine(line)
	}
}

// LineCount returns the number of lines (always >= 1).
func (cb *CellBuffer) LineCount() int { return cb.lines.Partitions() }

// LineStart returns the byte offset where line begins.
func (cb *CellBuffer) LineStart(line int) int {
	if line < 0 {
		line = 0
	}
	if line > cb.lines.Partitions() {
		line = cb.lines.Partitions()
	}
	return cb.lines.PositionFromPartition(line)
}

// LineOfPosition returns the line containing byte offset pos.
func (cb *CellBuffer) LineOfPosition(pos int) int {
	return cb.lines.PartitionFromPosition(pos)
}
