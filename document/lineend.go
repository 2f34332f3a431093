package document

// LineEndMode selects which line-terminator bytes ConvertLineEnds
// normalizes the document to.
type LineEndMode int

const (
	EOLCRLF LineEndMode = iota
	EOLCR
	EOLLF
)

func lineEndBytes(mode LineEndMode) []byte {
	switch mode {
	case EOLCR:
		return []byte{'\r'}
	case EOLCRLF:
		return []byte{'\r', '\n'}
	default:
		return []byte{'\n'}
	}
}

// ConvertLineEnds rewrites every line terminator in the document to
// mode's bytes, as one compound undo group, and returns how many
// terminators were changed. It operates directly on the underlying
// buffer rather than through InsertString/DeleteChars, so it does not
// emit the usual per-edit MOD_INSERTCHECK/before/after notification
// sequence; callers that need fine-grained notification of a line-end
// conversion should watch for the final MOD_CONTAINER summary instead.
func (d *Document) ConvertLineEnds(mode LineEndMode) int {
	if !d.beginModification() {
		return 0
	}
	defer d.endModification()
	if d.cb.IsReadOnly() {
		return 0
	}

	target := lineEndBytes(mode)
	d.cb.BeginUndoAction()
	changed := 0
	line := 0
	for line < d.cb.LineCount()-1 {
		contentEnd := d.LineEnd(line)
		termEnd := d.cb.LineStart(line + 1)
		current := d.cb.GetCharRange(contentEnd, termEnd-contentEnd)
		if string(current) != string(target) {
			d.cb.DeleteChars(contentEnd, termEnd-contentEnd, false)
			d.cb.InsertString(contentEnd, target, false)
			changed++
		}
		line++
	}
	d.cb.EndUndoAction()

	if changed > 0 {
		d.notifyAll(ModificationEvent{Mod: ModContainer, Position: 0, Length: d.cb.Length()})
	}
	return changed
}
