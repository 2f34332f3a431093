package document

import "github.com/gocintilla/engine/undo"

// ChangeInsertion lets a MOD_INSERTCHECK watcher substitute different
// text for the one currently being inserted. Calling it outside the
// MOD_INSERTCHECK notification has no effect.
func (d *Document) ChangeInsertion(s []byte) {
	d.insertionSet = true
	d.insertion = append(d.insertion[:0], s...)
}

// InsertString inserts s at pos, typing-coalescing with the immediately
// preceding insert unless collected inside a BeginUndoAction/
// EndUndoAction group. It returns the bytes actually stored (which may
// differ from s if a MOD_INSERTCHECK watcher called ChangeInsertion), or
// nil if the document is read-only, re-entered, or the insertion was
// vetoed down to zero bytes.
func (d *Document) InsertString(pos int, s []byte) []byte {
	if len(s) == 0 {
		return nil
	}
	if !d.beginModification() {
		return nil
	}
	defer d.endModification()
	if d.checkReadOnly() {
		return nil
	}

	if pos < 0 {
		pos = 0
	}
	if pos > d.cb.Length() {
		pos = d.cb.Length()
	}

	d.insertionSet = false
	d.insertion = d.insertion[:0]
	d.notifyAll(ModificationEvent{Mod: ModInsertCheck, Position: pos, Length: len(s), Text: s})

	payload := s
	if d.insertionSet {
		payload = d.insertion
	}
	if len(payload) == 0 {
		return nil
	}

	d.notifyAll(ModificationEvent{Mod: ModBeforeInsert, Position: pos, Length: len(payload), Text: payload})

	linesBefore := d.cb.LineCount()
	stored := d.cb.InsertString(pos, payload, true)
	if stored == nil {
		return nil
	}
	d.decorations.InsertSpace(pos, len(payload))
	linesAdded := d.cb.LineCount() - linesBefore

	grouping := StartAction
	if linesAdded != 0 {
		grouping |= MultiLineUndoRedo
	}
	d.notifyAll(ModificationEvent{
		Mod: ModInsertText, Performed: PerformedUser, Grouping: grouping,
		Position: pos, Length: len(payload), LinesAdded: linesAdded, Text: stored,
	})
	return stored
}

// DeleteChars removes the n bytes starting at pos. Returns the removed
// bytes, or nil if the document is read-only, re-entered, or the range
// is empty.
func (d *Document) DeleteChars(pos, n int) []byte {
	if n <= 0 {
		return nil
	}
	if !d.beginModification() {
		return nil
	}
	defer d.endModification()
	if d.checkReadOnly() {
		return nil
	}

	if pos < 0 {
		pos = 0
	}
	if pos > d.cb.Length() {
		pos = d.cb.Length()
	}
	if pos+n > d.cb.Length() {
		n = d.cb.Length() - pos
	}
	if n <= 0 {
		return nil
	}

	d.notifyAll(ModificationEvent{Mod: ModBeforeDelete, Position: pos, Length: n})

	linesBefore := d.cb.LineCount()
	removed := d.cb.DeleteChars(pos, n, true)
	if removed == nil {
		return nil
	}
	d.decorations.DeleteRange(pos, n)
	linesAdded := d.cb.LineCount() - linesBefore

	grouping := StartAction
	if linesAdded != 0 {
		grouping |= MultiLineUndoRedo
	}
	d.notifyAll(ModificationEvent{
		Mod: ModDeleteText, Performed: PerformedUser, Grouping: grouping,
		Position: pos, Length: n, LinesAdded: linesAdded, Text: removed,
	})
	return removed
}

// BeginUndoAction and EndUndoAction group the edits made between them
// into one compound undo/redo step, and (at the outermost nesting
// level) prevent the first edit in the group from coalescing with
// whatever preceded it.
func (d *Document) BeginUndoAction() { d.cb.BeginUndoAction() }
func (d *Document) EndUndoAction()   { d.cb.EndUndoAction() }

func (d *Document) CanUndo() bool { return d.cb.CanUndo() }
func (d *Document) CanRedo() bool { return d.cb.CanRedo() }

func (d *Document) SetSavePoint()     { d.cb.SetSavePoint() }
func (d *Document) IsSavePoint() bool { return d.cb.IsSavePoint() }

func (d *Document) TentativeStart()     { d.cb.TentativeStart() }
func (d *Document) TentativeCommit()    { d.cb.TentativeCommit() }
func (d *Document) TentativeSteps() int { return d.cb.TentativeSteps() }

// Undo applies one compound undo group (the records accumulated since
// the previous group boundary), notifying watchers once per underlying
// record in chronological-undo (most-recent-first) order. It returns the
// number of records applied.
func (d *Document) Undo() int {
	if !d.beginModification() {
		return 0
	}
	defer d.endModification()
	if !d.cb.CanUndo() {
		return 0
	}

	n := d.cb.StartUndo()
	for i := 0; i < n; i++ {
		action := d.cb.GetUndoStep(0)
		linesBefore := d.cb.LineCount()
		d.cb.PerformUndoStep(action)
		linesAdded := d.cb.LineCount() - linesBefore

		if action.Kind == undo.Insert {
			d.decorations.DeleteRange(action.Position, action.Length)
		} else {
			d.decorations.InsertSpace(action.Position, action.Length)
		}

		mod := ModDeleteText
		if action.Kind == undo.Remove {
			mod = ModInsertText
		}
		grouping := MultiStepUndoRedo
		if linesAdded != 0 {
			grouping |= MultiLineUndoRedo
		}
		if i == n-1 {
			grouping |= LastStepInUndoRedo
		}
		d.notifyAll(ModificationEvent{
			Mod: mod, Performed: PerformedUndo, Grouping: grouping,
			Position: action.Position, Length: action.Length, LinesAdded: linesAdded, Text: action.Data,
		})
	}
	return n
}

// Redo re-applies one compound redo group, in chronological (earliest-
// first) order, mirroring Undo.
func (d *Document) Redo() int {
	if !d.beginModification() {
		return 0
	}
	defer d.endModification()
	if !d.cb.CanRedo() {
		return 0
	}

	n := d.cb.StartRedo()
	for i := 0; i < n; i++ {
		action := d.cb.GetRedoStep(0)
		linesBefore := d.cb.LineCount()
		d.cb.PerformRedoStep(action)
		linesAdded := d.cb.LineCount() - linesBefore

		if action.Kind == undo.Insert {
			d.decorations.InsertSpace(action.Position, action.Length)
		} else {
			d.decorations.DeleteRange(action.Position, action.Length)
		}

		mod := ModInsertText
		if action.Kind == undo.Remove {
			mod = ModDeleteText
		}
		grouping := MultiStepUndoRedo
		if linesAdded != 0 {
			grouping |= MultiLineUndoRedo
		}
		if i == n-1 {
			grouping |= LastStepInUndoRedo
		}
		d.notifyAll(ModificationEvent{
			Mod: mod, Performed: PerformedRedo, Grouping: grouping,
			Position: action.Position, Length: action.Length, LinesAdded: linesAdded, Text: action.Data,
		})
	}
	return n
}

// SetStyleFor paints n bytes starting at pos with a single style byte,
// as a lexer does when it has classified a run of text. Style changes
// never touch the undo history.
func (d *Document) SetStyleFor(pos, n int, style byte) {
	if n <= 0 {
		return
	}
	d.cb.SetStyleFor(pos, n, style)
	d.notifyAll(ModificationEvent{Mod: ModChangeStyle, Position: pos, Length: n})
}

// SetStyles paints one style byte per position starting at pos from
// styles, for a lexer producing a per-byte style array directly.
func (d *Document) SetStyles(pos int, styles []byte) {
	if len(styles) == 0 {
		return
	}
	for i, s := range styles {
		d.cb.SetStyleAt(pos+i, s)
	}
	d.notifyAll(ModificationEvent{Mod: ModChangeStyle, Position: pos, Length: len(styles)})
}
