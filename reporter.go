package fontreach

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"

	"github.com/fontreach/fontreach/internal/logging"
	"github.com/fontreach/fontreach/internal/otvar"
)

// Reporter analyzes one font binary. It enumerates the design-space
// locations worth testing and hands out [InstanceReporter]s that measure
// words at a specific location.
//
// A Reporter is safe for concurrent use. Per-location glyph extent caches
// are built at most once each and shared between the instance reporters
// that need them.
type Reporter struct {
	data []byte
	font *font.Font
	meta *otvar.Metadata

	mu     sync.Mutex
	caches map[string]*InstanceExtremes
}

// NewReporter parses a font binary and prepares it for analysis.
//
// Returns [ErrEmptyFontData] for empty input, or a parse error if the data
// is not a valid TrueType/OpenType font.
func NewReporter(data []byte) (*Reporter, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontreach: parsing font: %w", err)
	}
	meta, err := otvar.Scan(data)
	if err != nil {
		return nil, err
	}
	return &Reporter{
		data:   data,
		font:   face.Font,
		meta:   meta,
		caches: make(map[string]*InstanceExtremes),
	}, nil
}

// NumGlyphs returns the number of glyphs in the font.
func (r *Reporter) NumGlyphs() int { return r.meta.NumGlyphs }

// Axes returns the font's variation axes in font order. Empty for static
// fonts.
func (r *Reporter) Axes() []otvar.Axis { return r.meta.Axes }

// InterestingLocations enumerates the design-space locations worth
// measuring: the cartesian product, per axis, of the default, minimum,
// maximum, and every named-instance coordinate. The result is stable
// across runs for the same font; a static font yields the single default
// location.
//
// The product grows exponentially with axis count, so callers checking
// many-axis fonts should consider capping the work per location (see
// [WithMaxWords]).
func (r *Reporter) InterestingLocations() []*Location {
	locations := interestingLocations(r.meta.Axes, r.meta.Instances)
	log := logging.Logger()
	log.Info("enumerated design-space locations",
		"axes", len(r.meta.Axes), "locations", len(locations))
	if len(locations) >= 100 {
		log.Warn("large design-space product; consider limiting words per location",
			"locations", len(locations))
	}
	return locations
}

// Instance returns a reporter measuring at the given location. Axes the
// location leaves unset stay at their font defaults.
//
// Returns a [MismatchedAxesError] if the location names axes the font
// doesn't have, or a [DrawError] if a glyph's outline can't be extracted
// at this location.
func (r *Reporter) Instance(loc *Location) (*InstanceReporter, error) {
	tags := make([]string, len(r.meta.Axes))
	for i, axis := range r.meta.Axes {
		tags[i] = axis.Tag
	}
	if err := loc.validateFor(tags); err != nil {
		return nil, err
	}

	extremes, err := r.extremesAt(loc)
	if err != nil {
		return nil, err
	}
	return &InstanceReporter{
		rep:      r,
		location: loc.Clone(),
		extremes: extremes,
	}, nil
}

// DefaultInstance returns a reporter measuring at the font's default
// location (every axis at its default value).
func (r *Reporter) DefaultInstance() (*InstanceReporter, error) {
	return r.Instance(NewLocation())
}

// extremesAt returns the glyph extent cache for a location, building it on
// first request. The build runs outside the lock; concurrent first
// requests for the same location may both build, and the first to finish
// wins.
func (r *Reporter) extremesAt(loc *Location) (*InstanceExtremes, error) {
	key := loc.String()

	r.mu.Lock()
	cached, ok := r.caches[key]
	r.mu.Unlock()
	if ok {
		return cached, nil
	}

	face := font.NewFace(r.font)
	face.SetVariations(loc.Variations())
	built, err := buildInstanceExtremes(face, r.meta.NumGlyphs)
	if err != nil {
		return nil, err
	}
	logging.Logger().Debug("built glyph extent cache",
		"location", key, "glyphs", built.Len())

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.caches[key]; ok {
		return cached, nil
	}
	r.caches[key] = built
	return built, nil
}
