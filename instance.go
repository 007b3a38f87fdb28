package fontreach

import (
	"fmt"

	"github.com/go-text/typesetting/font"

	"github.com/fontreach/fontreach/internal/bez"
	"github.com/fontreach/fontreach/internal/logging"
	"github.com/fontreach/fontreach/wordlists"
)

// InstanceExtremes caches the vertical extremes of every glyph of a font at
// one design-space location. Building it walks every outline once; after
// that, per-word measurement is a map lookup per glyph.
//
// The cache is immutable after construction and safe for concurrent use.
type InstanceExtremes struct {
	extremes map[uint32]VerticalExtremes
}

// Get returns the cached extremes of a glyph, and whether the glyph is
// known to this font.
func (ie *InstanceExtremes) Get(gid uint32) (VerticalExtremes, bool) {
	ext, ok := ie.extremes[gid]
	return ext, ok
}

// Len returns the number of glyphs cached.
func (ie *InstanceExtremes) Len() int { return len(ie.extremes) }

// buildInstanceExtremes extracts the outline of every glyph at the face's
// current variation settings and records its exact vertical extremes.
//
// Glyphs without outline data (common for space-like glyphs) and glyphs
// with empty outlines record (0, 0): they exist but reach nowhere.
// Bitmap-only and SVG-only glyphs fail with a [DrawError] wrapping
// [ErrNoOutlines]: extents in design units are only defined for outlines.
func buildInstanceExtremes(face *font.Face, numGlyphs int) (*InstanceExtremes, error) {
	extremes := make(map[uint32]VerticalExtremes, numGlyphs)
	for gid := 0; gid < numGlyphs; gid++ {
		switch data := face.GlyphData(font.GID(gid)).(type) {
		case font.GlyphOutline:
			lowest, highest, ok := bez.YExtent(data.Segments)
			if !ok {
				extremes[uint32(gid)] = VerticalExtremes{}
				continue
			}
			extremes[uint32(gid)] = VerticalExtremes{lowest: lowest, highest: highest}
		case nil:
			extremes[uint32(gid)] = VerticalExtremes{}
		default:
			return nil, &DrawError{GID: uint32(gid), Err: ErrNoOutlines}
		}
	}
	return &InstanceExtremes{extremes: extremes}, nil
}

// InstanceReporter measures words against one font at one design-space
// location. Create one with [Reporter.Instance] or
// [Reporter.DefaultInstance].
//
// An InstanceReporter is safe for concurrent use: all its state is
// read-only after construction, and each measurement pass creates its own
// shaper.
type InstanceReporter struct {
	rep      *Reporter
	location *Location
	extremes *InstanceExtremes
}

// Location returns the design-space location this reporter measures at.
func (ir *InstanceReporter) Location() *Location { return ir.location }

// Extremes returns the per-glyph extent cache for this instance.
func (ir *InstanceReporter) Extremes() *InstanceExtremes { return ir.extremes }

// Check shapes and measures every word of the list sequentially and
// returns the most extreme exemplars found. For large lists prefer
// [InstanceReporter.ParCheck].
func (ir *InstanceReporter) Check(list *wordlists.WordList, opts ...CheckOption) (*Report, error) {
	cfg := newCheckConfig(opts)

	iter, err := ir.WordExtremes(list)
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	if cfg.maxWords > 0 && cfg.maxWords < len(iter.words) {
		iter.words = iter.words[:cfg.maxWords]
	}

	collector := NewExemplarCollector(cfg.exemplars)
	for {
		we, ok := iter.Next()
		if !ok {
			break
		}
		collector.Push(we)
	}

	logging.Logger().Debug("checked word list",
		"list", list.Name(), "location", ir.location, "words", len(iter.words))
	return &Report{
		Location:  ir.location,
		WordList:  list,
		Exemplars: collector.Build(),
	}, nil
}

// WordExtremes returns an iterator over the measured extremes of the
// list's words, in list order. Words that shape to nothing, contain a
// .notdef, or reference unknown glyphs are skipped, so the iterator may
// yield fewer items than the list has words.
//
// The iterator is single-goroutine state. Call Close when done with it.
func (ir *InstanceReporter) WordExtremes(list *wordlists.WordList) (*WordExtremesIter, error) {
	plan, err := newShapePlan(list)
	if err != nil {
		return nil, fmt.Errorf("fontreach: word list %s: %w", list.Name(), err)
	}
	return &WordExtremesIter{
		shaper:   newWordShaper(ir.rep.font, ir.location, plan),
		extremes: ir.extremes,
		words:    list.Words(),
	}, nil
}

// WordExtremesIter walks a word list, shaping and measuring one word per
// Next call.
type WordExtremesIter struct {
	shaper   *wordShaper
	extremes *InstanceExtremes
	words    []string
	next     int
}

// Next measures words until one yields a usable extent, and returns it.
// The second result is false once the list is exhausted.
func (it *WordExtremesIter) Next() (WordExtremes, bool) {
	for it.next < len(it.words) {
		word := it.words[it.next]
		it.next++

		glyphs := it.shaper.shapeWord(word)
		ext, ok := foldWordExtremes(glyphs, it.extremes)
		if !ok {
			continue
		}
		return WordExtremes{Word: word, Extremes: ext}, true
	}
	return WordExtremes{}, false
}

// Close releases the iterator's shaping resources. The iterator must not
// be used afterwards.
func (it *WordExtremesIter) Close() {
	it.shaper.release()
	it.words = nil
}
