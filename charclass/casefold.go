package charclass

import (
	"unicode"
	"unicode/utf8"

	"github.com/gocintilla/engine/internal/xerrors"
)

// CaseFolder lower-cases the character(s) starting at a given offset
// within src, returning the folded bytes. Folded output may differ in
// length from the input (maxFoldingExpansion bounds the ratio).
type CaseFolder interface {
	Fold(src ByteSource, pos, width int) []byte
}

// latin1Fold holds the handful of high-byte pairs (e.g. the Latin-1
// Supplement's accented letters) that a plain single-byte code page
// needs folded beyond plain ASCII a-z/A-Z.
var latin1Fold = map[byte]byte{
	0xC0: 0xE0, 0xC1: 0xE1, 0xC2: 0xE2, 0xC3: 0xE3, 0xC4: 0xE4, 0xC5: 0xE5,
	0xC6: 0xE6, 0xC7: 0xE7, 0xC8: 0xE8, 0xC9: 0xE9, 0xCA: 0xEA, 0xCB: 0xEB,
	0xCC: 0xEC, 0xCD: 0xED, 0xCE: 0xEE, 0xCF: 0xEF, 0xD0: 0xF0, 0xD1: 0xF1,
	0xD2: 0xF2, 0xD3: 0xF3, 0xD4: 0xF4, 0xD5: 0xF5, 0xD6: 0xF6, 0xD8: 0xF8,
	0xD9: 0xF9, 0xDA: 0xFA, 0xDB: 0xFB, 0xDC: 0xFC, 0xDD: 0xFD, 0xDE: 0xFE,
}

// ASCIICaseFolder folds 'A'-'Z' plus the Latin-1 high-byte letters,
// suitable for an arbitrary single-byte code page where no x/text
// encoding is registered.
type ASCIICaseFolder struct{}

func (ASCIICaseFolder) Fold(src ByteSource, pos, width int) []byte {
	b := src.ByteAt(pos)
	if b >= 'A' && b <= 'Z' {
		return []byte{b + ('a' - 'A')}
	}
	if lower, ok := latin1Fold[b]; ok {
		return []byte{lower}
	}
	return []byte{b}
}

// UTF8CaseFolder folds via Unicode simple case folding.
type UTF8CaseFolder struct{}

func (UTF8CaseFolder) Fold(src ByteSource, pos, width int) []byte {
	r, w := GetCharacterAndWidth(src, UTF8, pos)
	if w <= 0 {
		w = 1
	}
	lower := unicode.ToLower(r)
	buf := make([]byte, utf8.RuneLen(lower))
	n := utf8.EncodeRune(buf, lower)
	return buf[:n]
}

// DBCSCaseFolder folds a double-byte character by round-tripping it
// through the code page's x/text encoding into a rune, lower-casing,
// and re-encoding. Code pages with no x/text encoding registered (only
// Johab, at present) fall back to returning the input unchanged: a
// documented no-op rather than a guess at an encoding table that does
// not exist in the dependency set.
type DBCSCaseFolder struct {
	CP CodePage
}

func (f DBCSCaseFolder) Fold(src ByteSource, pos, width int) []byte {
	raw := make([]byte, 0, width)
	for i := 0; i < width; i++ {
		raw = append(raw, src.ByteAt(pos+i))
	}

	enc, ok := xtextEncodings[f.CP]
	if !ok {
		return raw
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil || len(decoded) == 0 {
		xerrors.Log(err)
		return raw
	}
	r, _ := utf8.DecodeRune(decoded)
	lower := unicode.ToLower(r)
	if lower == r {
		return raw
	}
	lowerUTF8 := make([]byte, utf8.RuneLen(lower))
	n := utf8.EncodeRune(lowerUTF8, lower)
	encoded, err := enc.NewEncoder().Bytes(lowerUTF8[:n])
	if err != nil || len(encoded) == 0 {
		xerrors.Log(err)
		return raw
	}
	return encoded
}
