package document

import "github.com/gocintilla/engine/charclass"

// Settings holds the document-wide configuration that would otherwise
// be scattered global state in a C++ engine: the growth/undo-entry
// tuning, default line-end convention, active code page, and tab width.
// It mirrors the single-struct settings pattern used elsewhere in the
// toolkit this engine is modelled on, rather than a pile of ad hoc
// setter methods.
type Settings struct {
	GrowSize         int
	MaxUndoEntrySize int

	DefaultLineEnd  LineEndMode
	UnicodeLineEnds bool

	CodePage charclass.CodePage
	TabWidth int
}

// NewSettings returns the engine's default configuration: UTF-8, LF line
// endings, an 8-column tab width.
func NewSettings() Settings {
	return Settings{
		GrowSize:         8,
		MaxUndoEntrySize: 4096,
		DefaultLineEnd:   EOLLF,
		UnicodeLineEnds:  false,
		CodePage:         charclass.UTF8,
		TabWidth:         8,
	}
}

// Settings returns a copy of the document's current configuration.
func (d *Document) Settings() Settings { return d.settings }

// SetSettings replaces the document's configuration, applying the code
// page and Unicode-line-end changes immediately.
func (d *Document) SetSettings(s Settings) {
	d.settings = s
	d.SetCodePage(s.CodePage)
	d.cb.SetUnicodeLineEnds(s.UnicodeLineEnds)
}
