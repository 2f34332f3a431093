package search

import "github.com/gocintilla/engine/textpos"

// SubstituteByPosition expands replacement against groups captured by a
// prior regex Match, reading literal group text from src. It interprets
// \0-\9 as capture-group references and \a\b\f\n\r\t\v\\ as the usual
// control-character escapes; any other backslash escape is passed
// through as the literal character following the backslash.
func SubstituteByPosition(src Source, replacement string, groups []textpos.Range) []byte {
	out := make([]byte, 0, len(replacement))
	rb := []byte(replacement)
	for i := 0; i < len(rb); i++ {
		c := rb[i]
		if c != '\\' || i+1 >= len(rb) {
			out = append(out, c)
			continue
		}
		i++
		next := rb[i]
		switch {
		case next >= '0' && next <= '9':
			idx := int(next - '0')
			if idx < len(groups) && isValidRange(groups[idx]) {
				out = append(out, readRange(src, groups[idx])...)
			}
		case next == 'a':
			out = append(out, '\a')
		case next == 'b':
			out = append(out, '\b')
		case next == 'f':
			out = append(out, '\f')
		case next == 'n':
			out = append(out, '\n')
		case next == 'r':
			out = append(out, '\r')
		case next == 't':
			out = append(out, '\t')
		case next == 'v':
			out = append(out, '\v')
		case next == '\\':
			out = append(out, '\\')
		default:
			out = append(out, next)
		}
	}
	return out
}

func readRange(src Source, r textpos.Range) []byte {
	b := make([]byte, r.Len())
	for i := range b {
		b[i] = src.ByteAt(int(r.Start) + i)
	}
	return b
}

// isValidRange reports whether a group range is non-sentinel. textpos.Range
// has no IsValid of its own; groups from a non-participating capture
// are represented by paired InvalidPosition endpoints.
func isValidRange(r textpos.Range) bool {
	return r.Start.IsValid() && r.End.IsValid()
}
