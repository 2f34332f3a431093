package search

import "github.com/gocintilla/engine/charclass"

// FindLiteral searches [minPos, maxPos) (or, if maxPos < minPos, searches
// backward over [maxPos, minPos)) for needle, honouring MatchCase,
// WholeWord and WordStart. cp selects the character-boundary and folding
// rules; classify and folder are required when WholeWord/WordStart or
// case-insensitive matching respectively are requested.
func FindLiteral(src Source, minPos, maxPos int, needle []byte, flags Flags, cp charclass.CodePage, classify *charclass.Classify, folder charclass.CaseFolder) (Match, bool) {
	if len(needle) == 0 {
		return Match{}, false
	}
	forward := minPos <= maxPos
	lo, hi := minPos, maxPos
	if !forward {
		lo, hi = maxPos, minPos
	}
	lo = charclass.MovePositionOutsideChar(src, cp, 0, lo, 1, false)
	hi = charclass.MovePositionOutsideChar(src, cp, 0, hi, 1, false)

	foldedNeedle := needle
	if !flags.has(MatchCase) && folder != nil {
		foldedNeedle = foldBytes(needleSource(needle), cp, folder)
	}

	try := func(pos int) (Match, bool) {
		end, ok := matchAt(src, pos, hi, foldedNeedle, flags, cp, folder)
		if !ok {
			return Match{}, false
		}
		if flags.has(WholeWord) || flags.has(WordStart) {
			if classify == nil {
				return Match{}, false
			}
			if !wordBoundaryOK(src, classify, pos, end, flags) {
				return Match{}, false
			}
		}
		return Match{Start: pos, End: end}, true
	}

	if forward {
		for pos := lo; pos < hi; pos = charclass.NextPosition(src, cp, 0, pos, 1) {
			if m, ok := try(pos); ok {
				return m, true
			}
			if pos >= src.Length() {
				break
			}
		}
		return Match{}, false
	}

	// Backward: walk positions from hi down to lo, trying each.
	positions := make([]int, 0, hi-lo)
	for pos := lo; pos < hi; pos = charclass.NextPosition(src, cp, 0, pos, 1) {
		positions = append(positions, pos)
	}
	for i := len(positions) - 1; i >= 0; i-- {
		if m, ok := try(positions[i]); ok {
			return m, true
		}
	}
	return Match{}, false
}

// matchAt reports whether needle (already folded if case-insensitive)
// matches starting at pos, returning the end offset of the match.
func matchAt(src Source, pos, limit int, folded []byte, flags Flags, cp charclass.CodePage, folder charclass.CaseFolder) (int, bool) {
	if flags.has(MatchCase) || folder == nil {
		return matchCaseSensitive(src, pos, limit, folded)
	}
	return matchCaseInsensitive(src, pos, limit, folded, cp, folder)
}

func matchCaseSensitive(src Source, pos, limit int, needle []byte) (int, bool) {
	if pos+len(needle) > limit || pos+len(needle) > src.Length() {
		return 0, false
	}
	for i, b := range needle {
		if src.ByteAt(pos+i) != b {
			return 0, false
		}
	}
	return pos + len(needle), true
}

// matchCaseInsensitive folds one source character at a time and compares
// against the pre-folded needle, advancing by each character's natural
// width (1 byte single-byte/UTF-8-ASCII, up to 4 for UTF-8, 2 for DBCS).
func matchCaseInsensitive(src Source, pos, limit int, foldedNeedle []byte, cp charclass.CodePage, folder charclass.CaseFolder) (int, bool) {
	ni := 0
	p := pos
	for ni < len(foldedNeedle) {
		if p >= limit || p >= src.Length() {
			return 0, false
		}
		_, width := charclass.GetCharacterAndWidth(src, cp, p)
		if width <= 0 {
			width = 1
		}
		folded := folder.Fold(src, p, width)
		if ni+len(folded) > len(foldedNeedle) {
			return 0, false
		}
		for k, b := range folded {
			if foldedNeedle[ni+k] != b {
				return 0, false
			}
		}
		ni += len(folded)
		p += width
	}
	return p, true
}

// needleByteSource adapts a raw needle slice to charclass.ByteSource so
// that the folder can be applied to it the same way it folds buffer text.
type needleByteSource []byte

func (n needleByteSource) ByteAt(pos int) byte { return n[pos] }
func (n needleByteSource) Length() int         { return len(n) }

func needleSource(b []byte) needleByteSource { return needleByteSource(b) }

func foldBytes(src needleByteSource, cp charclass.CodePage, folder charclass.CaseFolder) []byte {
	out := make([]byte, 0, len(src))
	pos := 0
	for pos < len(src) {
		_, width := charclass.GetCharacterAndWidth(src, cp, pos)
		if width <= 0 {
			width = 1
		}
		out = append(out, folder.Fold(src, pos, width)...)
		pos += width
	}
	return out
}

func wordBoundaryOK(src Source, classify *charclass.Classify, start, end int, flags Flags) bool {
	leadingOK := start == 0 || charclass.IsWordBoundary(classify.Classify(src.ByteAt(start-1)), classify.Classify(src.ByteAt(start)))
	if flags.has(WordStart) && !flags.has(WholeWord) {
		return leadingOK
	}
	trailingOK := end >= src.Length() || charclass.IsWordBoundary(classify.Classify(src.ByteAt(end-1)), classify.Classify(src.ByteAt(end)))
	return leadingOK && trailingOK
}
