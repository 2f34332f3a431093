package charclass

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// ByteSource is the minimal read-only view of a text buffer that the
// boundary-arithmetic functions need: random-access bytes plus a length.
// CellBuffer satisfies this directly.
type ByteSource interface {
	ByteAt(pos int) byte
	Length() int
}

// MovePositionOutsideChar nudges pos so that it does not land inside a
// multi-byte character, moving in the direction of dir (negative: toward
// lineStart/backward, non-negative: forward). If checkLineEnd is set, a
// position between a CR and its following LF is also pushed outside the
// pair.
func MovePositionOutsideChar(src ByteSource, cp CodePage, lineStart, pos, dir int, checkLineEnd bool) int {
	length := src.Length()
	if checkLineEnd && pos > 0 && pos < length {
		if src.ByteAt(pos-1) == '\r' && src.ByteAt(pos) == '\n' {
			if dir < 0 {
				return pos - 1
			}
			return pos + 1
		}
	}

	switch {
	case cp == UTF8:
		if dir < 0 {
			for pos > 0 && pos < length && IsUTF8Trail(src.ByteAt(pos)) {
				pos--
			}
		} else {
			for pos > 0 && pos < length && IsUTF8Trail(src.ByteAt(pos)) {
				pos++
			}
		}
	case cp.IsDBCS():
		pos = snapDBCS(src, cp, lineStart, pos, dir)
	}
	return pos
}

// snapDBCS walks forward from lineStart tracking character boundaries,
// the same way a DBCS-aware line scanner must, since DBCS lead bytes
// cannot be recognised by inspecting a single byte in isolation.
func snapDBCS(src ByteSource, cp CodePage, lineStart, pos, dir int) int {
	length := src.Length()
	if pos <= lineStart || pos >= length {
		return pos
	}
	p := lineStart
	prev := lineStart
	for p < pos {
		prev = p
		if IsLeadByte(cp, src.ByteAt(p)) && p+1 < length {
			p += 2
		} else {
			p++
		}
	}
	if p == pos {
		return pos
	}
	if dir < 0 {
		return prev
	}
	return p
}

// NextPosition steps pos one character in the given direction (-1 or
// +1), returning a position that is always outside any multi-byte
// character. It is equivalent to MovePositionOutsideChar applied to an
// already-adjacent byte offset, kept separate because callers that only
// need a single step read more clearly against this name.
func NextPosition(src ByteSource, cp CodePage, lineStart, pos, dir int) int {
	length := src.Length()
	if dir < 0 {
		if pos <= 0 {
			return 0
		}
		return MovePositionOutsideChar(src, cp, lineStart, pos-1, -1, false)
	}
	if pos >= length {
		return length
	}
	width := 1
	switch {
	case cp == UTF8:
		width = UTF8BytesOfLead(src.ByteAt(pos))
	case cp.IsDBCS() && IsLeadByte(cp, src.ByteAt(pos)) && pos+1 < length:
		width = 2
	}
	return MovePositionOutsideChar(src, cp, lineStart, pos+width, 1, false)
}

// invalidUTF8Sentinel marks a byte that could not be decoded as part of
// a valid UTF-8 sequence, so that GetCharacterAndWidth can round-trip
// arbitrary byte content without data loss: 0xDC80 + the raw byte, per
// the engine's lossless-invalid-byte convention.
const invalidUTF8Sentinel = 0xDC80

// GetCharacterAndWidth decodes the character starting at pos and
// returns it along with its byte width.
func GetCharacterAndWidth(src ByteSource, cp CodePage, pos int) (rune, int) {
	length := src.Length()
	if pos >= length {
		return 0, 0
	}
	b0 := src.ByteAt(pos)

	switch {
	case cp == UTF8:
		width := UTF8BytesOfLead(b0)
		if b0 < 0x80 {
			return rune(b0), 1
		}
		buf := make([]byte, 0, width)
		for i := 0; i < width && pos+i < length; i++ {
			buf = append(buf, src.ByteAt(pos+i))
		}
		r, size := utf8.DecodeRune(buf)
		if r == utf8.RuneError && size <= 1 {
			return rune(invalidUTF8Sentinel + int(b0)), 1
		}
		return r, size
	case cp.IsDBCS():
		if IsLeadByte(cp, b0) && pos+1 < length {
			b1 := src.ByteAt(pos + 1)
			return rune(int(b0)<<8 | int(b1)), 2
		}
		return rune(b0), 1
	default:
		return rune(b0), 1
	}
}

// NextGraphemeBoundary returns the position immediately after the
// extended grapheme cluster starting at pos, growing its look-ahead
// window until uniseg reports a cluster strictly shorter than the
// window (a confirmed boundary) or the source runs out, so that a
// cluster longer than the initial guess is never cut short.
func NextGraphemeBoundary(src ByteSource, pos int) int {
	length := src.Length()
	if pos >= length {
		return length
	}
	windowLen := 16
	for {
		end := pos + windowLen
		if end > length {
			end = length
		}
		buf := make([]byte, end-pos)
		for i := range buf {
			buf[i] = src.ByteAt(pos + i)
		}
		cluster, _, _, _ := uniseg.FirstGraphemeCluster(buf, -1)
		if len(cluster) < len(buf) || end == length {
			if len(cluster) == 0 {
				return pos + 1
			}
			return pos + len(cluster)
		}
		windowLen *= 2
	}
}

// NextGraphemePosition returns the position reached by stepping one
// extended grapheme cluster from pos in the given direction (negative:
// backward, non-negative: forward), so that caret movement or deletion
// treats a base character plus its combining marks, or a multi-rune
// emoji sequence, as a single unit instead of splitting it at a plain
// codepoint boundary. Backward movement rescans forward from lineStart
// to find the boundary just short of pos, the same bookkeeping snapDBCS
// uses for lead-byte tracking, since grapheme boundaries cannot be
// found by inspecting bytes in isolation at pos.
func NextGraphemePosition(src ByteSource, lineStart, pos, dir int) int {
	length := src.Length()
	if dir < 0 {
		if pos <= lineStart {
			return lineStart
		}
		boundary := lineStart
		prev := lineStart
		for boundary < pos {
			prev = boundary
			boundary = NextGraphemeBoundary(src, boundary)
			if boundary <= prev {
				break
			}
		}
		return prev
	}
	if pos >= length {
		return length
	}
	return NextGraphemeBoundary(src, pos)
}

// CountCharacters returns the number of characters in [start, end).
func CountCharacters(src ByteSource, cp CodePage, start, end int) int {
	n := 0
	pos := start
	for pos < end {
		_, width := GetCharacterAndWidth(src, cp, pos)
		if width <= 0 {
			width = 1
		}
		pos += width
		n++
	}
	return n
}

// CountUTF16 returns the number of UTF-16 code units that [start, end)
// would occupy, for interop with UTF-16-addressed callers (e.g. an
// editor widget's native text API). Characters outside the Basic
// Multilingual Plane count as a surrogate pair (2 units); every other
// character, including DBCS and single-byte characters, counts as 1.
func CountUTF16(src ByteSource, cp CodePage, start, end int) int {
	n := 0
	pos := start
	for pos < end {
		r, width := GetCharacterAndWidth(src, cp, pos)
		if width <= 0 {
			width = 1
		}
		pos += width
		if cp == UTF8 && r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}
