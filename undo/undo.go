// Package undo implements UndoHistory: a coalescing, save-point-aware,
// tentative-mode-aware log of insert/remove/container actions, as
// described in the document engine's undo model. It is owned by the
// cell buffer and iterated by the Document when performing Undo/Redo.
package undo

// Kind identifies the sort of record a slot in the history holds.
type Kind int

const (
	// Start delimits one user-visible undo group from the next. Slot 0
	// is always Start, and the history always ends at a Start slot.
	Start Kind = iota
	// Insert records text that was inserted; Data holds the inserted bytes.
	Insert
	// Remove records text that was deleted; Data holds the removed bytes.
	Remove
	// Container records an opaque, caller-defined undo step; Position
	// carries the caller's token and there is no byte payload.
	Container
)

// Action is a single slot in the undo history.
type Action struct {
	Kind        Kind
	Position    int
	Data        []byte
	Length      int
	MayCoalesce bool
}

// History is the coalescing undo/redo log described in the document
// engine's undo model. The zero value is not ready to use; call New.
type History struct {
	actions  []Action
	current  int // index of the trailing Start slot
	savePoint int // index of the Start slot that matches the on-disk state, or -1

	tentativeActive bool
	tentativePoint  int

	sequenceDepth   int
	forceNoCoalesce bool
}

// New returns an empty history: a single Start slot, at the save point.
func New() *History {
	return &History{
		actions:   []Action{{Kind: Start}},
		current:   0,
		savePoint: 0,
	}
}

// adjacent reports whether a new record of the given kind/position/length
// is positionally adjacent to prev, per the coalescing rule for single
// characters typed or deleted consecutively.
func adjacent(kind Kind, pos, length int, prev Action) bool {
	switch kind {
	case Insert:
		return pos == prev.Position+prev.Length
	case Remove:
		if length == 1 || length == 2 {
			return pos+length == prev.Position || pos == prev.Position
		}
		return false
	default:
		return false
	}
}

// findCoalesceTarget returns the index of the most recent real record
// before the trailing Start slot, skipping over coalescable container
// records, or -1 if there is none.
func (h *History) findCoalesceTarget() int {
	i := h.current - 1
	for i >= 0 && h.actions[i].Kind == Container && h.actions[i].MayCoalesce {
		i--
	}
	if i < 0 {
		return -1
	}
	return i
}

// AppendAction records a new action, coalescing it into the immediately
// preceding record when permitted, and returns the stored payload bytes
// (the merged, post-coalescing byte slice for the affected record).
func (h *History) AppendAction(kind Kind, pos int, data []byte, length int, mayCoalesce bool) []byte {
	if h.current < h.savePoint && h.savePoint != -1 {
		h.savePoint = -1
	}

	forced := h.forceNoCoalesce
	h.forceNoCoalesce = false

	// A record that ends exactly at the save point must never absorb the
	// next edit: Scintilla's own history advances past the save point
	// before appending in that case, so that undoing back to it still
	// leaves a real group boundary there.
	atSavePoint := h.current == h.savePoint

	if !forced && !atSavePoint && h.sequenceDepth == 0 && mayCoalesce && kind != Start && kind != Container {
		if prevIdx := h.findCoalesceTarget(); prevIdx >= 0 {
			prev := &h.actions[prevIdx]
			if prev.Kind == kind && prev.MayCoalesce && adjacent(kind, pos, length, *prev) {
				switch kind {
				case Insert:
					prev.Data = append(prev.Data, data...)
					prev.Length += length
				case Remove:
					if pos+length == prev.Position {
						prev.Data = append(append([]byte{}, data...), prev.Data...)
						prev.Position = pos
					} else {
						prev.Data = append(prev.Data, data...)
					}
					prev.Length += length
				}
				return prev.Data
			}
		}
	}

	rec := Action{Kind: kind, Position: pos, Length: length, MayCoalesce: mayCoalesce}
	if data != nil {
		rec.Data = append([]byte{}, data...)
	}

	// Drop any redo branch beyond the current Start slot, then insert the
	// new record in its place and re-append the trailing Start.
	h.actions = h.actions[:h.current+1]
	trailing := h.actions[h.current]
	h.actions[h.current] = rec
	h.actions = append(h.actions, trailing)
	h.current++

	return h.actions[h.current-1].Data
}

// BeginUndoAction opens (or extends, if already open) a compound-edit
// group. The first record appended after the outermost Begin never
// coalesces with whatever came before the group.
func (h *History) BeginUndoAction() {
	if h.sequenceDepth == 0 {
		h.forceNoCoalesce = true
	}
	h.sequenceDepth++
}

// EndUndoAction closes one level of a compound-edit group. Coalescing
// resumes only once the outermost group has closed.
func (h *History) EndUndoAction() {
	if h.sequenceDepth > 0 {
		h.sequenceDepth--
	}
}

// SetSavePoint marks the current history position as matching the
// on-disk (or otherwise externally persisted) state.
func (h *History) SetSavePoint() {
	h.savePoint = h.current
}

// IsSavePoint reports whether the history is currently at the save
// point recorded by SetSavePoint.
func (h *History) IsSavePoint() bool {
	return h.savePoint != -1 && h.savePoint == h.current
}

// TentativeStart marks the current position as the start of a tentative
// (e.g. IME composition) edit sequence. TentativeSteps counts the
// records appended since then and TentativeCommit ends the sequence,
// keeping its edits; History has no operation that reverts only the
// records appended since TentativeStart.
func (h *History) TentativeStart() {
	h.tentativeActive = true
	h.tentativePoint = h.current
}

// TentativeCommit ends tentative mode, discarding any redo branch beyond
// the current position (so the tentative edits cannot be redone past
// this point) without otherwise altering the history.
func (h *History) TentativeCommit() {
	h.tentativeActive = false
	h.actions = h.actions[:h.current+1]
}

// TentativeSteps returns the number of real records appended since
// TentativeStart, or 0 if not in tentative mode.
func (h *History) TentativeSteps() int {
	if !h.tentativeActive {
		return 0
	}
	return h.current - h.tentativePoint
}

// CanUndo reports whether there is a preceding group to undo.
func (h *History) CanUndo() bool { return h.current > 0 }

// CanRedo reports whether there is a following group to redo.
func (h *History) CanRedo() bool { return h.current < len(h.actions)-1 }

// StartUndo returns the number of real records in the group immediately
// preceding the current position. Call GetUndoStep(0..n-1) to retrieve
// them, most recent first, and CompletedUndoStep after applying each.
func (h *History) StartUndo() int {
	n := 0
	i := h.current - 1
	for i >= 0 && h.actions[i].Kind != Start {
		i--
		n++
	}
	return n
}

// GetUndoStep returns the step-th record (0 = most recent) of the group
// currently being undone.
func (h *History) GetUndoStep(step int) Action {
	return h.actions[h.current-1-step]
}

// CompletedUndoStep advances the history one slot backward after the
// caller has applied the inverse of a GetUndoStep record.
func (h *History) CompletedUndoStep() {
	h.current--
}

// StartRedo returns the number of real records in the group immediately
// following the current position. current itself lands on the first of
// them after an undo (CompletedUndoStep never leaves current on a Start
// slot except when the whole history is undone).
func (h *History) StartRedo() int {
	n := 0
	i := h.current
	for i < len(h.actions) && h.actions[i].Kind != Start {
		i++
		n++
	}
	return n
}

// GetRedoStep returns the step-th record (0 = earliest) of the group
// currently being redone.
func (h *History) GetRedoStep(step int) Action {
	return h.actions[h.current+step]
}

// CompletedRedoStep advances the history one slot forward after the
// caller has re-applied a GetRedoStep record.
func (h *History) CompletedRedoStep() {
	h.current++
}
