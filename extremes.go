package fontreach

import (
	"encoding/json"
	"fmt"
	"math"
)

// VerticalExtremes is the lowest and highest point reached on the vertical
// (y) axis, measured in font design units.
type VerticalExtremes struct {
	lowest  float64
	highest float64
}

// NewVerticalExtremes creates a VerticalExtremes pair.
//
// Panics if either bound is NaN or if lowest > highest: extremes must stay
// totally ordered for the collector's ranking to be meaningful.
func NewVerticalExtremes(lowest, highest float64) VerticalExtremes {
	if math.IsNaN(lowest) || math.IsNaN(highest) {
		panic("fontreach: NaN vertical extreme")
	}
	if lowest > highest {
		panic(fmt.Sprintf("fontreach: inverted vertical extremes (%v > %v)", lowest, highest))
	}
	return VerticalExtremes{lowest: lowest, highest: highest}
}

// Lowest returns the lower extreme, in font units.
func (v VerticalExtremes) Lowest() float64 { return v.lowest }

// Highest returns the higher extreme, in font units.
func (v VerticalExtremes) Highest() float64 { return v.highest }

func (v VerticalExtremes) String() string {
	return fmt.Sprintf("[%g, %g]", v.lowest, v.highest)
}

// WordExtremes is a word paired with the vertical extremes it reached when
// shaped. Two WordExtremes are equal when both the word and the extremes
// match; a single word may legitimately appear as both a lowest and a
// highest exemplar.
type WordExtremes struct {
	// Word is the word that was shaped.
	Word string
	// Extremes is the low and high point reached by the whole shaped word.
	Extremes VerticalExtremes
}

// MarshalJSON flattens the extremes so reports serialize as
// {"word": ..., "lowest": ..., "highest": ...}.
func (w WordExtremes) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Word    string  `json:"word"`
		Lowest  float64 `json:"lowest"`
		Highest float64 `json:"highest"`
	}{w.Word, w.Extremes.lowest, w.Extremes.highest})
}

// notdef is the glyph id fonts reserve for "no mapping found". A word that
// shapes to any .notdef doesn't represent legitimate rendering and would
// pollute the extremal statistics, so the whole word is discarded.
const notdef = 0

// shapedGlyph is one glyph of a shaped word: its glyph id and the vertical
// offset the shaper positioned it at, in font units.
type shapedGlyph struct {
	gid     uint32
	yOffset float64
}

// foldWordExtremes combines the cached per-glyph extremes with the shaped
// offsets into a single extent for the whole word.
//
// ok is false when the word contributes nothing: it shaped to zero glyphs,
// contains a .notdef, or references a glyph the cache doesn't know (a
// font/shaper mismatch; such words are filtered like other input noise).
func foldWordExtremes(glyphs []shapedGlyph, extremes *InstanceExtremes) (VerticalExtremes, bool) {
	if len(glyphs) == 0 {
		return VerticalExtremes{}, false
	}

	lowest := math.Inf(1)
	highest := math.Inf(-1)
	for _, g := range glyphs {
		if g.gid == notdef {
			return VerticalExtremes{}, false
		}
		ext, ok := extremes.Get(g.gid)
		if !ok {
			return VerticalExtremes{}, false
		}
		lowest = math.Min(lowest, ext.lowest+g.yOffset)
		highest = math.Max(highest, ext.highest+g.yOffset)
	}
	return VerticalExtremes{lowest: lowest, highest: highest}, true
}
