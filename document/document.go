// Package document implements Document, the composition root that owns a
// CellBuffer, the per-line ancillary vectors (markers, fold levels, line
// state, annotations), the indicator overlays, the fold/contraction
// state, and the character classification and case-folding rules, and
// wires them together behind a single modification-notification API.
package document

import (
	"log/slog"

	"github.com/gocintilla/engine/cellbuffer"
	"github.com/gocintilla/engine/charclass"
	"github.com/gocintilla/engine/decoration"
	"github.com/gocintilla/engine/fold"
	"github.com/gocintilla/engine/perline"
)

// Document is the owning composition root for one open buffer: text,
// style, per-line state, indicators, and folding, kept in lockstep and
// exposed through a single watcher-notified edit surface.
type Document struct {
	cb *cellbuffer.CellBuffer

	markers     *perline.Markers
	levels      *perline.Levels
	state       *perline.State
	annotations *perline.Annotations

	decorations *decoration.DecorationList
	contraction *fold.ContractionState

	classify *charclass.Classify
	folder   charclass.CaseFolder
	codePage charclass.CodePage

	lexer    Lexer
	styledTo int

	watchers []Watcher
	settings Settings
	logger   *slog.Logger

	enteredModification int
	enteredReadOnly      int

	insertionSet bool
	insertion    []byte
}

// New returns an empty Document with a default UTF-8, case-sensitive
// configuration and one (empty) line.
func New() *Document {
	d := &Document{
		cb:          cellbuffer.New(),
		markers:     perline.NewMarkers(),
		levels:      perline.NewLevels(),
		state:       perline.NewState(),
		annotations: perline.NewAnnotations(),
		decorations: decoration.New(),
		contraction: fold.New(),
		classify:    charclass.NewClassify(),
		folder:      charclass.UTF8CaseFolder{},
		codePage:    charclass.UTF8,
		settings:    NewSettings(),
		logger:      slog.Default(),
	}
	d.cb.SetPerLine(d)
	d.cb.SetUnicodeLineEnds(d.settings.UnicodeLineEnds)
	return d
}

// SetCodePage switches the active encoding and the case folder used for
// case-insensitive search and style-neutral comparisons, choosing the
// Unicode, DBCS round-trip, or plain single-byte folder to match.
func (d *Document) SetCodePage(cp charclass.CodePage) {
	d.codePage = cp
	switch {
	case cp == charclass.UTF8:
		d.folder = charclass.UTF8CaseFolder{}
	case cp.IsDBCS():
		d.folder = charclass.DBCSCaseFolder{CP: cp}
	default:
		d.folder = charclass.ASCIICaseFolder{}
	}
}

// CodePage returns the active encoding.
func (d *Document) CodePage() charclass.CodePage { return d.codePage }

// SetLexer installs the lexer used by EnsureStyledTo. A nil lexer puts
// the document back into container-lexing mode, where EnsureStyledTo
// only notifies watchers of the unstyled range instead of styling it
// itself.
func (d *Document) SetLexer(lex Lexer) { d.lexer = lex }

// InsertLine and RemoveLine implement cellbuffer.LineObserver, fanning
// each line-structure change out to every per-line facility the
// Document owns.
func (d *Document) InsertLine(line int) {
	d.markers.InsertLine(line)
	d.levels.InsertLine(line)
	d.state.InsertLine(line)
	d.annotations.InsertLine(line)
	d.contraction.InsertLine(line)
}

func (d *Document) RemoveLine(line int) {
	d.markers.RemoveLine(line)
	d.levels.RemoveLine(line)
	d.state.RemoveLine(line)
	d.annotations.RemoveLine(line)
	d.contraction.RemoveLine(line)
}

// beginModification guards against re-entrant edits made from inside a
// watcher's own Notify callback: the outermost caller proceeds, any
// re-entrant call is turned into a no-op.
func (d *Document) beginModification() bool {
	if d.enteredModification > 0 {
		return false
	}
	d.enteredModification++
	return true
}

func (d *Document) endModification() { d.enteredModification-- }

// checkReadOnly reports whether the document currently rejects edits,
// notifying watchers of the attempt exactly once even if the
// notification itself triggers a re-entrant check.
func (d *Document) checkReadOnly() bool {
	if !d.cb.IsReadOnly() {
		return false
	}
	if d.enteredReadOnly == 0 {
		d.enteredReadOnly++
		d.logger.Debug("modification attempted on read-only document")
		d.notifyAll(ModificationEvent{ModifyAttempt: true})
		d.enteredReadOnly--
	}
	return true
}

// SetReadOnly toggles whether InsertString/DeleteChars/Undo/Redo are
// accepted.
func (d *Document) SetReadOnly(v bool) { d.cb.SetReadOnly(v) }

func (d *Document) IsReadOnly() bool { return d.cb.IsReadOnly() }

func (d *Document) Length() int { return d.cb.Length() }

func (d *Document) LineCount() int { return d.cb.LineCount() }
