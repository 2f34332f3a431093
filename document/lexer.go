package document

import (
	"sort"
	"strings"
)

// Lexer classifies document text into styles, incrementally, and
// computes fold levels over the same range. Implementations are
// expected to be stateless except through the per-line lexer state
// LexAccessor exposes, so that styling can always restart from any
// previously styled line.
type Lexer interface {
	Version() int
	PropertyNames() []string
	PropertyType(name string) int
	DescribeProperty(name string) string
	PropertySet(key, val string) int
	WordListSet(slot int, joined string) int

	Lex(startPos, length, initStyle int, doc LexAccessor)
	Fold(startPos, length, initStyle int, doc LexAccessor)

	LineEndTypesSupported() int

	AllocateSubStyles(styleBase, numStyles int) int
	SubStylesStart(styleBase int) int
	SubStylesLength(styleBase int) int
	StyleFromSubStyle(subStyle int) int
	PrimaryStyleFromStyle(style int) int

	NameOfStyle(style int) string
	DescriptionOfStyle(style int) string
	TagsOfStyle(style int) string
}

// LexAccessor is the narrow view of the document a Lexer is given: byte
// and style access, line queries, per-line lexer state, and a styling
// cursor (StartSegment/ColourTo) for emitting runs as it scans forward.
type LexAccessor interface {
	CharAt(pos int) byte
	StyleAt(pos int) byte
	LineStart(line int) int
	GetLine(pos int) int
	LineEnd(line int) int
	SetLineState(line, state int)
	GetLineState(line int) int
	Match(pos int, s string) bool
	SafeGetCharAt(pos int, defaultValue byte) byte
	ColourTo(pos int, style byte)
	StartAt(pos int)
	StartSegment(pos int)
	Flush()
}

// lexAccessor is the Document's own LexAccessor implementation, handed
// to the active Lexer by EnsureStyledTo.
type lexAccessor struct {
	doc          *Document
	segmentStart int
}

func (l *lexAccessor) CharAt(pos int) byte  { return l.doc.cb.CharAt(pos) }
func (l *lexAccessor) StyleAt(pos int) byte { return l.doc.cb.StyleAt(pos) }
func (l *lexAccessor) LineStart(line int) int { return l.doc.LineStart(line) }
func (l *lexAccessor) GetLine(pos int) int     { return l.doc.LineOfPosition(pos) }
func (l *lexAccessor) LineEnd(line int) int    { return l.doc.LineEnd(line) }

func (l *lexAccessor) SetLineState(line, state int) { l.doc.state.SetState(line, state) }
func (l *lexAccessor) GetLineState(line int) int    { return l.doc.state.GetState(line) }

func (l *lexAccessor) SafeGetCharAt(pos int, defaultValue byte) byte {
	if pos < 0 || pos >= l.doc.cb.Length() {
		return defaultValue
	}
	return l.doc.cb.CharAt(pos)
}

func (l *lexAccessor) Match(pos int, s string) bool {
	for i := 0; i < len(s); i++ {
		if l.SafeGetCharAt(pos+i, 0) != s[i] {
			return false
		}
	}
	return true
}

// ColourTo paints [segmentStart, pos] with style and advances
// segmentStart past it, the same run-emission shape Scintilla's bundled
// lexers use.
func (l *lexAccessor) ColourTo(pos int, style byte) {
	if pos < l.segmentStart {
		return
	}
	l.doc.cb.SetStyleFor(l.segmentStart, pos-l.segmentStart+1, style)
	l.segmentStart = pos + 1
}

func (l *lexAccessor) StartAt(pos int)      { l.segmentStart = pos }
func (l *lexAccessor) StartSegment(pos int) { l.segmentStart = pos }
func (l *lexAccessor) Flush() {
	end := l.doc.cb.Length()
	if l.segmentStart < end {
		style := l.doc.cb.StyleAt(l.segmentStart)
		l.doc.cb.SetStyleFor(l.segmentStart, end-l.segmentStart, style)
		l.segmentStart = end
	}
}

// StartStyling resets the styled-to cursor to pos, so the next
// EnsureStyledTo call re-lexes from there.
func (d *Document) StartStyling(pos int) {
	if pos < 0 {
		pos = 0
	}
	d.styledTo = pos
}

// EnsureStyledTo guarantees that [0, pos) carries lexer-assigned style,
// invoking the active Lexer over the unstyled tail. With no lexer
// installed, it instead notifies watchers with MOD_CONTAINER so an
// external (container-supplied) styler can do the work.
func (d *Document) EnsureStyledTo(pos int) {
	if pos > d.cb.Length() {
		pos = d.cb.Length()
	}
	if pos <= d.styledTo {
		return
	}

	if d.lexer == nil {
		d.notifyAll(ModificationEvent{Mod: ModContainer, Position: d.styledTo, Length: pos - d.styledTo})
		d.styledTo = pos
		return
	}

	initStyle := byte(0)
	if d.styledTo > 0 {
		initStyle = d.cb.StyleAt(d.styledTo - 1)
	}
	accessor := &lexAccessor{doc: d, segmentStart: d.styledTo}
	d.lexer.Lex(d.styledTo, pos-d.styledTo, int(initStyle), accessor)
	accessor.Flush()
	d.styledTo = pos
}

// RunFolding invokes the active Lexer's Fold method over [startLine,
// endLine], a separate pass from styling since fold-level computation
// commonly needs a fully-styled range to look at string/comment styles.
func (d *Document) RunFolding(startLine, endLine int) {
	if d.lexer == nil {
		return
	}
	start := d.LineStart(startLine)
	end := d.cb.Length()
	if endLine+1 < d.cb.LineCount() {
		end = d.LineStart(endLine + 1)
	}
	initStyle := byte(0)
	if start > 0 {
		initStyle = d.cb.StyleAt(start - 1)
	}
	accessor := &lexAccessor{doc: d, segmentStart: start}
	d.lexer.Fold(start, end-start, int(initStyle), accessor)
}

// WordList is a small sorted-slice word-membership table lexers can use
// to back WordListSet.
type WordList struct {
	words []string
}

func NewWordList() *WordList { return &WordList{} }

// Set replaces the list's contents with the whitespace-separated words
// in joined, sorted for binary search.
func (w *WordList) Set(joined string) {
	w.words = strings.Fields(joined)
	sort.Strings(w.words)
}

// Contains reports whether word is in the list.
func (w *WordList) Contains(word string) bool {
	i := sort.SearchStrings(w.words, word)
	return i < len(w.words) && w.words[i] == word
}
