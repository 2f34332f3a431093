package document

import (
	"testing"

	"github.com/gocintilla/engine/charclass"
	"github.com/gocintilla/engine/perline"
	"github.com/gocintilla/engine/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []ModificationEvent
}

func (r *recorder) Notify(ev ModificationEvent) { r.events = append(r.events, ev) }

func TestInsertAndBasicQueries(t *testing.T) {
	doc := New()
	doc.InsertString(0, []byte("hello"))
	assert.Equal(t, 5, doc.Length())
	assert.Equal(t, []byte("hello"), doc.GetCharRange(0, 5))
	assert.Equal(t, byte('e'), doc.CharAt(1))
}

func TestWatcherSequenceOnInsert(t *testing.T) {
	doc := New()
	rec := &recorder{}
	doc.AddWatcher(rec)
	doc.InsertString(0, []byte("hi"))

	require.Len(t, rec.events, 3)
	assert.Equal(t, ModInsertCheck, rec.events[0].Mod)
	assert.Equal(t, []byte("hi"), rec.events[0].Text)
	assert.Equal(t, ModBeforeInsert, rec.events[1].Mod)
	assert.Equal(t, ModInsertText, rec.events[2].Mod)
	assert.Equal(t, PerformedUser, rec.events[2].Performed)
}

type changeWatcher struct{ doc *Document }

func (w changeWatcher) Notify(ev ModificationEvent) {
	if ev.Mod == ModInsertCheck {
		w.doc.ChangeInsertion([]byte("XY"))
	}
}

func TestChangeInsertionSubstitutesText(t *testing.T) {
	doc := New()
	doc.AddWatcher(changeWatcher{doc: doc})
	stored := doc.InsertString(0, []byte("ab"))
	assert.Equal(t, []byte("XY"), stored)
	assert.Equal(t, 2, doc.Length())
	assert.Equal(t, []byte("XY"), doc.GetCharRange(0, 2))
}

func TestReadOnlyNotifiesModifyAttempt(t *testing.T) {
	doc := New()
	doc.InsertString(0, []byte("abc"))
	doc.SetReadOnly(true)

	rec := &recorder{}
	doc.AddWatcher(rec)
	result := doc.InsertString(0, []byte("x"))

	assert.Nil(t, result)
	require.Len(t, rec.events, 1)
	assert.True(t, rec.events[0].ModifyAttempt)
	assert.Equal(t, 3, doc.Length())
}

func TestUndoRedoGrouping(t *testing.T) {
	doc := New()
	doc.InsertString(0, []byte("one\ntwo"))

	rec := &recorder{}
	doc.AddWatcher(rec)

	n := doc.Undo()
	assert.Equal(t, 1, n)
	require.Len(t, rec.events, 1)
	ev := rec.events[0]
	assert.Equal(t, ModDeleteText, ev.Mod)
	assert.Equal(t, PerformedUndo, ev.Performed)
	assert.NotZero(t, ev.Grouping&LastStepInUndoRedo)
	assert.NotZero(t, ev.Grouping&MultiLineUndoRedo)
	assert.Equal(t, 0, doc.Length())

	rec.events = nil
	rn := doc.Redo()
	assert.Equal(t, 1, rn)
	require.Len(t, rec.events, 1)
	ev2 := rec.events[0]
	assert.Equal(t, ModInsertText, ev2.Mod)
	assert.Equal(t, PerformedRedo, ev2.Performed)
	assert.Equal(t, 7, doc.Length())
}

func TestCoalescedTypingSingleUndo(t *testing.T) {
	doc := New()
	doc.InsertString(0, []byte("a"))
	doc.InsertString(1, []byte("b"))
	doc.InsertString(2, []byte("c"))
	assert.Equal(t, 3, doc.Length())

	assert.Equal(t, 1, doc.Undo())
	assert.Equal(t, 0, doc.Length())
	assert.True(t, doc.CanRedo())
}

func TestSavePointSurvivesUndoToIt(t *testing.T) {
	doc := New()
	doc.InsertString(0, []byte("a"))
	doc.SetSavePoint()
	doc.BeginUndoAction()
	doc.InsertString(1, []byte("b"))
	doc.EndUndoAction()
	assert.False(t, doc.IsSavePoint())

	doc.Undo()
	assert.True(t, doc.IsSavePoint())
}

func TestTentativeCommitDiscardsRedo(t *testing.T) {
	doc := New()
	doc.InsertString(0, []byte("abc"))
	doc.SetSavePoint()

	doc.TentativeStart()
	doc.InsertString(3, []byte("def"))
	assert.Equal(t, 1, doc.TentativeSteps())
	doc.TentativeCommit()

	assert.False(t, doc.IsSavePoint())
	assert.False(t, doc.CanRedo())
}

func TestFoldParentAndLastChild(t *testing.T) {
	doc := New()
	doc.InsertString(0, []byte("a\nb\nc\nd\n"))
	assert.Equal(t, 5, doc.LineCount())

	base := perline.FoldLevelBase
	doc.SetLevel(0, base|perline.FoldLevelHeaderFlag)
	doc.SetLevel(1, base+1)
	doc.SetLevel(2, base+1)
	doc.SetLevel(3, base)

	assert.Equal(t, 2, doc.GetLastChild(0, base, -1))
	assert.Equal(t, 0, doc.GetFoldParent(1))
	assert.Equal(t, 0, doc.GetFoldParent(2))
	assert.Equal(t, -1, doc.GetFoldParent(3))

	start, end := doc.GetHighlightDelimiters(1, -1)
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)
}

func TestUTF8LiteralSearch(t *testing.T) {
	doc := New()
	doc.InsertString(0, []byte("héllo wörld"))

	m, err := doc.FindText(0, doc.Length(), "llo", search.MatchCase)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Start)
	assert.Equal(t, 6, m.End)
}

func TestCaseInsensitiveSingleByteSearch(t *testing.T) {
	doc := New()
	doc.SetCodePage(charclass.SingleByte)
	doc.InsertString(0, []byte("HELLO World"))

	m, err := doc.FindText(0, doc.Length(), "world", 0)
	require.NoError(t, err)
	assert.Equal(t, 6, m.Start)
	assert.Equal(t, 11, m.End)
}

func TestFindTextNoMatch(t *testing.T) {
	doc := New()
	doc.InsertString(0, []byte("abc"))
	_, err := doc.FindText(0, doc.Length(), "xyz", search.MatchCase)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestBraceMatchSkipsIgnoredStyle(t *testing.T) {
	doc := New()
	doc.InsertString(0, []byte("(a(b)c)"))
	doc.SetStyleFor(2, 1, 9)
	assert.Equal(t, 4, doc.BraceMatch(0, 9))
}

func TestBraceMatchWithoutIgnore(t *testing.T) {
	doc := New()
	doc.InsertString(0, []byte("(a(b)c)"))
	assert.Equal(t, 6, doc.BraceMatch(0, 99))
}

func TestBraceMatchBackward(t *testing.T) {
	doc := New()
	doc.InsertString(0, []byte("(a(b)c)"))
	assert.Equal(t, 0, doc.BraceMatch(6, 99))
}

func TestWordNavigation(t *testing.T) {
	doc := New()
	doc.InsertString(0, []byte("foo bar baz"))

	assert.True(t, doc.IsWordAt(0))
	assert.False(t, doc.IsWordAt(3))

	assert.Equal(t, 4, doc.NextWordStart(0, 1))
	assert.Equal(t, 8, doc.NextWordStart(4, 1))
	assert.Equal(t, 3, doc.NextWordEnd(0, 1))
	assert.Equal(t, 7, doc.NextWordEnd(4, 1))
	assert.Equal(t, 4, doc.NextWordStart(8, -1))
	assert.Equal(t, 0, doc.NextWordStart(4, -1))

	assert.Equal(t, 3, doc.ExtendWordSelect(0, 1))
	assert.Equal(t, 0, doc.ExtendWordSelect(4, -1))
}

func TestNextCharacterPositionGraphemeCluster(t *testing.T) {
	doc := New()
	// "e" followed by a combining acute accent, then "f": the accent
	// attaches to the "e" to form a single extended grapheme cluster.
	doc.InsertString(0, []byte("éf"))

	assert.Equal(t, 3, doc.NextCharacterPosition(0, 1))
	assert.Equal(t, 4, doc.NextCharacterPosition(3, 1))
	assert.Equal(t, 0, doc.NextCharacterPosition(3, -1))
}

func TestVCHomePosition(t *testing.T) {
	doc := New()
	doc.InsertString(0, []byte("    abc"))

	assert.Equal(t, 4, doc.VCHomePosition(7))
	assert.Equal(t, 0, doc.VCHomePosition(4))
	assert.Equal(t, 4, doc.VCHomePosition(2))
}

func TestConvertLineEndsNormalizesToCRLF(t *testing.T) {
	doc := New()
	doc.InsertString(0, []byte("a\nb\r\nc\rd"))

	changed := doc.ConvertLineEnds(EOLCRLF)
	assert.Equal(t, 2, changed)
	assert.Equal(t, []byte("a\r\nb\r\nc\r\nd"), doc.GetCharRange(0, doc.Length()))
}

func TestMarkersAndAnnotations(t *testing.T) {
	doc := New()
	doc.InsertString(0, []byte("line one\nline two"))

	doc.AddMarker(1, 3)
	assert.True(t, doc.MarkerAt(1).Has(3))
	doc.DeleteMarker(1, 3)
	assert.False(t, doc.MarkerAt(1).Has(3))

	doc.SetAnnotationText(0, []byte("warning: x\nunused"))
	ann, ok := doc.GetAnnotation(0)
	require.True(t, ok)
	assert.Equal(t, 2, ann.LineCount())
}

func TestIndicatorOverlay(t *testing.T) {
	doc := New()
	doc.InsertString(0, []byte("hello world"))

	changed := doc.SetIndicator(1, 0, 1, 5)
	assert.True(t, changed)
	assert.Equal(t, 1, doc.IndicatorValueAt(1, 2))
	assert.Contains(t, doc.AllIndicatorsAt(2), 1)
}

type upperLexer struct{}

func (upperLexer) Version() int                               { return 0 }
func (upperLexer) PropertyNames() []string                    { return nil }
func (upperLexer) PropertyType(name string) int                { return 0 }
func (upperLexer) DescribeProperty(name string) string          { return "" }
func (upperLexer) PropertySet(key, val string) int              { return 0 }
func (upperLexer) WordListSet(slot int, joined string) int      { return 0 }
func (upperLexer) LineEndTypesSupported() int                   { return 0 }
func (upperLexer) AllocateSubStyles(styleBase, numStyles int) int { return 0 }
func (upperLexer) SubStylesStart(styleBase int) int              { return 0 }
func (upperLexer) SubStylesLength(styleBase int) int             { return 0 }
func (upperLexer) StyleFromSubStyle(subStyle int) int            { return subStyle }
func (upperLexer) PrimaryStyleFromStyle(style int) int           { return style }
func (upperLexer) NameOfStyle(style int) string                  { return "default" }
func (upperLexer) DescriptionOfStyle(style int) string           { return "" }
func (upperLexer) TagsOfStyle(style int) string                  { return "" }

func (upperLexer) Lex(startPos, length, initStyle int, acc LexAccessor) {
	acc.StartAt(startPos)
	acc.StartSegment(startPos)
	for p := startPos; p < startPos+length; p++ {
		style := byte(1)
		if ch := acc.CharAt(p); ch >= 'A' && ch <= 'Z' {
			style = 2
		}
		acc.ColourTo(p, style)
	}
}

func (upperLexer) Fold(startPos, length, initStyle int, acc LexAccessor) {}

func TestLexerStylesViaEnsureStyledTo(t *testing.T) {
	doc := New()
	doc.InsertString(0, []byte("abCD"))
	doc.SetLexer(upperLexer{})
	doc.EnsureStyledTo(4)

	assert.Equal(t, byte(1), doc.StyleAt(0))
	assert.Equal(t, byte(1), doc.StyleAt(1))
	assert.Equal(t, byte(2), doc.StyleAt(2))
	assert.Equal(t, byte(2), doc.StyleAt(3))
}

func TestContainerLexingNotifiesWatchers(t *testing.T) {
	doc := New()
	doc.InsertString(0, []byte("abc"))

	rec := &recorder{}
	doc.AddWatcher(rec)
	doc.EnsureStyledTo(3)

	require.Len(t, rec.events, 1)
	assert.Equal(t, ModContainer, rec.events[0].Mod)
}

func TestWordList(t *testing.T) {
	wl := NewWordList()
	wl.Set("if else while for")
	assert.True(t, wl.Contains("else"))
	assert.False(t, wl.Contains("switch"))
}
