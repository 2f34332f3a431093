package document

import "github.com/gocintilla/engine/charclass"

func (d *Document) classOf(pos int) charclass.Class {
	if pos < 0 || pos >= d.cb.Length() {
		return charclass.Space
	}
	return d.classify.Classify(d.cb.CharAt(pos))
}

// IsWordAt reports whether the byte at pos belongs to a word character
// class.
func (d *Document) IsWordAt(pos int) bool {
	return d.classOf(pos) == charclass.Word
}

// NextWordStart returns the position of the start of the next word
// boundary in the given direction (dir >= 0 forward, dir < 0 backward)
// from pos, skipping past any word pos is currently inside.
func (d *Document) NextWordStart(pos, dir int) int {
	length := d.cb.Length()
	if dir >= 0 {
		for pos < length && d.classOf(pos) == charclass.Word {
			pos++
		}
		for pos < length && d.classOf(pos) != charclass.Word {
			pos++
		}
		return pos
	}
	for pos > 0 && d.classOf(pos-1) != charclass.Word {
		pos--
	}
	for pos > 0 && d.classOf(pos-1) == charclass.Word {
		pos--
	}
	return pos
}

// NextWordEnd returns the position just past the end of the current or
// next word in the given direction.
func (d *Document) NextWordEnd(pos, dir int) int {
	length := d.cb.Length()
	if dir >= 0 {
		for pos < length && d.classOf(pos) != charclass.Word {
			pos++
		}
		for pos < length && d.classOf(pos) == charclass.Word {
			pos++
		}
		return pos
	}
	for pos > 0 && d.classOf(pos-1) == charclass.Word {
		pos--
	}
	for pos > 0 && d.classOf(pos-1) != charclass.Word {
		pos--
	}
	return pos
}

// ExtendWordSelect returns the boundary reached by extending a word
// selection from pos in direction dir: the next word's end when moving
// forward, the next word's start when moving backward.
func (d *Document) ExtendWordSelect(pos, dir int) int {
	if dir >= 0 {
		return d.NextWordEnd(pos, dir)
	}
	return d.NextWordStart(pos, dir)
}

// NextCharacterPosition steps one character from pos in the given
// direction (negative: backward, non-negative: forward). For the UTF-8
// code page it steps a whole extended grapheme cluster at a time, so a
// base letter plus its combining accents, or a multi-rune emoji
// sequence, moves and deletes as a single unit; other code pages step
// one codepoint, matching NextPosition.
func (d *Document) NextCharacterPosition(pos, dir int) int {
	line := d.LineOfPosition(pos)
	lineStart := d.cb.LineStart(line)
	if d.codePage == charclass.UTF8 {
		return charclass.NextGraphemePosition(d.cb, lineStart, pos, dir)
	}
	return charclass.NextPosition(d.cb, d.codePage, lineStart, pos, dir)
}

var braceClose = map[byte]byte{'(': ')', '[': ']', '{': '}'}
var braceOpen = map[byte]byte{')': '(', ']': '[', '}': '{'}

// BraceMatch returns the position of the brace matching the one at pos,
// or -1 if pos is not a brace or no match is found. Bytes whose style
// equals ignoreStyle (typically a comment or string style) are skipped
// over rather than counted, so that a brace inside a comment does not
// throw off the nesting depth.
func (d *Document) BraceMatch(pos int, ignoreStyle byte) int {
	if pos < 0 || pos >= d.cb.Length() {
		return -1
	}
	ch := d.cb.CharAt(pos)

	if closer, ok := braceClose[ch]; ok {
		depth := 1
		for p := pos + 1; p < d.cb.Length(); p++ {
			if d.cb.StyleAt(p) == ignoreStyle {
				continue
			}
			switch d.cb.CharAt(p) {
			case ch:
				depth++
			case closer:
				depth--
				if depth == 0 {
					return p
				}
			}
		}
		return -1
	}

	if opener, ok := braceOpen[ch]; ok {
		depth := 1
		for p := pos - 1; p >= 0; p-- {
			if d.cb.StyleAt(p) == ignoreStyle {
				continue
			}
			switch d.cb.CharAt(p) {
			case ch:
				depth++
			case opener:
				depth--
				if depth == 0 {
					return p
				}
			}
		}
		return -1
	}

	return -1
}
