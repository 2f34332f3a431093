package perline

import "github.com/gocintilla/engine/sparse"

// Annotation holds the text and per-style-byte overlay of one line's
// attached annotation (e.g. a compiler diagnostic shown inline below
// the line it refers to).
type Annotation struct {
	Text   []byte
	Styles []byte
}

// Annotations is a sparse per-line map: most lines carry no annotation,
// so a SparseVector is a better fit than a dense per-line slice.
type Annotations struct {
	lines int
	data  *sparse.SparseVector[Annotation]
}

func NewAnnotations() *Annotations {
	return &Annotations{lines: 1, data: sparse.New[Annotation]()}
}

func (a *Annotations) Lines() int { return a.lines }

func (a *Annotations) InsertLine(line int) {
	a.data.Insert(line, 1)
	a.lines++
}

func (a *Annotations) RemoveLine(line int) {
	if a.lines <= 1 {
		return
	}
	a.data.Delete(line, 1)
	a.lines--
}

func (a *Annotations) SetText(line int, text []byte) {
	ann, _ := a.data.Value(line)
	ann.Text = append([]byte{}, text...)
	a.data.SetValue(line, ann)
}

func (a *Annotations) SetStyles(line int, styles []byte) {
	ann, _ := a.data.Value(line)
	ann.Styles = append([]byte{}, styles...)
	a.data.SetValue(line, ann)
}

func (a *Annotations) Get(line int) (Annotation, bool) {
	return a.data.Value(line)
}

func (a *Annotations) Clear(line int) {
	a.data.ClearValue(line)
}

// LineCount returns how many lines of annotation text are attached at
// line, for the single-line-of-text-per-newline convention used when
// rendering a multi-line annotation.
func (ann Annotation) LineCount() int {
	if len(ann.Text) == 0 {
		return 0
	}
	n := 1
	for _, b := range ann.Text {
		if b == '\n' {
			n++
		}
	}
	return n
}
