package fontreach

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for fontreach.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fontreach: empty font data")

	// ErrNoOutlines is returned when a font carries no scalable outlines at
	// all (e.g. a bitmap-only emoji font).
	ErrNoOutlines = errors.New("fontreach: font has no scalable outlines")
)

// InvalidTagError is returned when an axis tag isn't a valid OpenType tag
// (exactly four printable ASCII characters).
type InvalidTagError struct {
	Tag string
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("fontreach: invalid axis tag %q", e.Tag)
}

// MismatchedAxesError is returned when a Location specifies axes that are
// not present in the font. Omitting axes is allowed; naming extra ones is
// not.
type MismatchedAxesError struct {
	// Extras are the axis tags present in the Location but not in the font.
	Extras []string
}

func (e *MismatchedAxesError) Error() string {
	return fmt.Sprintf("fontreach: location specifies axes not in the font: %s",
		strings.Join(e.Extras, ", "))
}

// DrawError is returned when a glyph's outline can't be extracted at a
// location. It aborts the whole instance: downstream lookups assume the
// extent cache is complete.
type DrawError struct {
	// GID is the glyph whose outline failed.
	GID uint32
	// Err is the underlying cause.
	Err error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("fontreach: could not draw glyph %d: %v", e.GID, e.Err)
}

func (e *DrawError) Unwrap() error { return e.Err }

// UnknownScriptError is returned when a word list declares a script that
// isn't a valid ISO 15924 tag. It is fatal only for that word list.
type UnknownScriptError struct {
	// WordList is the name of the word list with the bad metadata.
	WordList string
	// Script is the rejected script tag.
	Script string
}

func (e *UnknownScriptError) Error() string {
	return fmt.Sprintf("fontreach: word list %q declares unknown script %q",
		e.WordList, e.Script)
}
