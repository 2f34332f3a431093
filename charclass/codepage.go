// Package charclass provides character categorisation, lead-byte tables,
// and case folding for the encodings the document engine supports: UTF-8,
// five DBCS code pages, and an arbitrary single-byte code page (e.g. a
// Windows-125x variant).
package charclass

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// CodePage identifies the active document encoding. The numeric values
// match the Windows code page identifiers of the encodings they name.
type CodePage int

const (
	// SingleByte is the zero value: an arbitrary 8-bit encoding where
	// every byte is one character (e.g. Latin-1, a Windows-125x page).
	SingleByte CodePage = 0
	ShiftJIS   CodePage = 932
	GBK        CodePage = 936
	Korean     CodePage = 949
	Big5       CodePage = 950
	Johab      CodePage = 1361
	UTF8       CodePage = 65001
)

// IsDBCS reports whether cp is one of the five double-byte code pages.
func (cp CodePage) IsDBCS() bool {
	switch cp {
	case ShiftJIS, GBK, Korean, Big5, Johab:
		return true
	}
	return false
}

// maxFoldingExpansion bounds how many bytes a single folded character can
// expand to relative to its source width.
const maxFoldingExpansion = 4

// leadByteRanges gives the [lo, hi] lead-byte ranges for each DBCS code
// page. These are deliberately table-driven rather than calling a full
// decoder per byte.
var leadByteRanges = map[CodePage][][2]byte{
	ShiftJIS: {{0x81, 0x9F}, {0xE0, 0xFC}},
	GBK:      {{0x81, 0xFE}},
	Korean:   {{0xA1, 0xFE}},
	Big5:     {{0x81, 0xFE}},
	Johab:    {{0x84, 0xD3}, {0xD8, 0xDE}, {0xE0, 0xF9}},
}

// IsLeadByte reports whether b can begin a two-byte character under cp.
// It is always false for SingleByte and UTF8; UTF-8 lead detection goes
// through IsUTF8Lead/UTF8BytesOfLead instead.
func IsLeadByte(cp CodePage, b byte) bool {
	for _, r := range leadByteRanges[cp] {
		if b >= r[0] && b <= r[1] {
			return true
		}
	}
	return false
}

// UTF8BytesOfLead returns the expected byte width of a UTF-8 character
// whose first byte is b: 1 for ASCII or an invalid lead byte, 2-4 for a
// valid multi-byte lead.
func UTF8BytesOfLead(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

// IsUTF8Trail reports whether b is a UTF-8 continuation byte (10xxxxxx).
func IsUTF8Trail(b byte) bool {
	return b&0xC0 == 0x80
}

// xtextEncodings maps each DBCS code page to the golang.org/x/text
// encoding that can decode/encode it, where one is available.
var xtextEncodings = map[CodePage]encoding.Encoding{
	ShiftJIS: japanese.ShiftJIS,
	GBK:      simplifiedchinese.GBK,
	Korean:   korean.EUCKR,
	Big5:     traditionalchinese.Big5,
	// Johab (1361) has no golang.org/x/text encoding; see DBCSCaseFolder
	// in casefold.go and DESIGN.md for the consequence (no-op case folding).
}
