package charclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedSource is a trivial ByteSource over a plain byte slice, used
// across the boundary/fold tests.
type fixedSource []byte

func (f fixedSource) ByteAt(pos int) byte { return f[pos] }
func (f fixedSource) Length() int         { return len(f) }

func TestMovePositionOutsideCharUTF8(t *testing.T) {
	// "café" = c a f \xc3\xa9 -- 'é' is a 2-byte UTF-8 character
	src := fixedSource([]byte{'c', 'a', 'f', 0xC3, 0xA9})
	// pos 4 is the trail byte of 'é'; moving forward should land past it,
	// moving backward should land at its lead byte.
	assert.Equal(t, 5, MovePositionOutsideChar(src, UTF8, 0, 4, 1, false))
	assert.Equal(t, 3, MovePositionOutsideChar(src, UTF8, 0, 4, -1, false))
	// A position already on a boundary is left alone.
	assert.Equal(t, 3, MovePositionOutsideChar(src, UTF8, 0, 3, 1, false))
}

func TestMovePositionOutsideCharCRLF(t *testing.T) {
	src := fixedSource([]byte{'a', '\r', '\n', 'b'})
	assert.Equal(t, 1, MovePositionOutsideChar(src, UTF8, 0, 2, -1, true))
	assert.Equal(t, 3, MovePositionOutsideChar(src, UTF8, 0, 2, 1, true))
}

func TestShiftJISLeadByteGuardsFalsePositive(t *testing.T) {
	// 0x82 0x60 is a Shift-JIS two-byte character; a naive single-byte
	// search for 0x60 alone must not match its trail byte.
	src := fixedSource([]byte{0x82, 0x60, 'x'})
	assert.True(t, IsLeadByte(ShiftJIS, 0x82))
	assert.False(t, IsLeadByte(ShiftJIS, 0x60))

	pos := snapDBCS(src, ShiftJIS, 0, 1, 1)
	assert.Equal(t, 2, pos, "trail byte at index 1 should snap forward past the character")
}

func TestGetCharacterAndWidthUTF8(t *testing.T) {
	src := fixedSource([]byte{0xC3, 0xA9}) // 'é'
	r, w := GetCharacterAndWidth(src, UTF8, 0)
	assert.Equal(t, 'é', r)
	assert.Equal(t, 2, w)
}

func TestGetCharacterAndWidthInvalidUTF8(t *testing.T) {
	src := fixedSource([]byte{0xFF})
	r, w := GetCharacterAndWidth(src, UTF8, 0)
	assert.Equal(t, rune(invalidUTF8Sentinel+0xFF), r)
	assert.Equal(t, 1, w)
}

func TestGetCharacterAndWidthDBCS(t *testing.T) {
	src := fixedSource([]byte{0x82, 0x60})
	r, w := GetCharacterAndWidth(src, ShiftJIS, 0)
	assert.Equal(t, rune(0x8260), r)
	assert.Equal(t, 2, w)
}

func TestCountCharactersUTF8(t *testing.T) {
	src := fixedSource([]byte{'c', 'a', 'f', 0xC3, 0xA9})
	assert.Equal(t, 4, CountCharacters(src, UTF8, 0, 5))
}

func TestNextGraphemeBoundaryCombiningMark(t *testing.T) {
	// "e" + combining acute accent (U+0301) + "f": the accent attaches to
	// the "e" to form a single extended grapheme cluster.
	src := fixedSource([]byte("éf"))
	assert.Equal(t, 3, NextGraphemeBoundary(src, 0))
	assert.Equal(t, 4, NextGraphemeBoundary(src, 3))
}

func TestNextGraphemePositionBackward(t *testing.T) {
	src := fixedSource([]byte("éf"))
	assert.Equal(t, 0, NextGraphemePosition(src, 0, 3, -1))
	assert.Equal(t, 3, NextGraphemePosition(src, 0, 4, -1))
}

func TestNextGraphemePositionPlainASCII(t *testing.T) {
	src := fixedSource([]byte("abc"))
	assert.Equal(t, 1, NextGraphemePosition(src, 0, 0, 1))
	assert.Equal(t, 0, NextGraphemePosition(src, 0, 1, -1))
}

func TestASCIICaseFolderLatin1(t *testing.T) {
	f := ASCIICaseFolder{}
	src := fixedSource([]byte{0xC6}) // capital AE ligature
	folded := f.Fold(src, 0, 1)
	assert.Equal(t, []byte{0xE6}, folded)

	src2 := fixedSource([]byte{'A'})
	assert.Equal(t, []byte{'a'}, f.Fold(src2, 0, 1))
}

func TestUTF8CaseFolder(t *testing.T) {
	f := UTF8CaseFolder{}
	src := fixedSource([]byte("CAFÉ"))
	// Fold just the final multi-byte character ('É' at the last 2 bytes).
	r, w := GetCharacterAndWidth(src, UTF8, len(src)-2)
	assert.Equal(t, 'É', r)
	folded := f.Fold(src, len(src)-2, w)
	assert.Equal(t, []byte("é"), folded)
}

func TestClassifyDefaults(t *testing.T) {
	c := NewClassify()
	assert.Equal(t, Word, c.Classify('a'))
	assert.Equal(t, Word, c.Classify('_'))
	assert.Equal(t, Space, c.Classify(' '))
	assert.Equal(t, Newline, c.Classify('\n'))
	assert.Equal(t, Punctuation, c.Classify('.'))
}

func TestIsWordBoundary(t *testing.T) {
	assert.True(t, IsWordBoundary(Word, Space))
	assert.False(t, IsWordBoundary(Word, Punctuation))
	assert.False(t, IsWordBoundary(Space, Newline))
}
