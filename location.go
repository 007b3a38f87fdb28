package fontreach

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// Location is one point in a variable font's design space: an ordered
// mapping of axis tags to user-space coordinates.
//
// Locations are built with [Location.SetAxis] and must be treated as
// immutable once handed to a [Reporter]; use [Location.Clone] for a cheap
// independent copy. The zero value (or [NewLocation]) is the empty
// location, which selects every axis's default.
//
//	loc := fontreach.NewLocation()
//	if err := loc.SetAxis("wght", 700); err != nil {
//	    ...
//	}
//	if err := loc.SetAxis("wdth", 125); err != nil {
//	    ...
//	}
type Location struct {
	// coords is kept sorted by tag so iteration order, String, and Equal
	// are stable regardless of insertion order.
	coords []axisCoord
}

type axisCoord struct {
	tag   string
	value float32
}

// NewLocation creates a new empty location.
func NewLocation() *Location {
	return &Location{}
}

// SetAxis sets the value of an axis, replacing any previous value for the
// same tag.
//
// The tag must be a valid OpenType axis tag: exactly four printable ASCII
// characters. Returns an [InvalidTagError] otherwise.
//
// Panics if value is NaN or infinite: coordinates must stay totally
// ordered, and a NaN coordinate would poison every comparison downstream.
func (l *Location) SetAxis(tag string, value float32) error {
	if !validTag(tag) {
		return &InvalidTagError{Tag: tag}
	}
	if math.IsNaN(float64(value)) || math.IsInf(float64(value), 0) {
		panic(fmt.Sprintf("fontreach: non-finite coordinate %v for axis %q", value, tag))
	}
	i, found := slices.BinarySearchFunc(l.coords, tag, func(ac axisCoord, t string) int {
		return strings.Compare(ac.tag, t)
	})
	if found {
		l.coords[i].value = value
		return nil
	}
	l.coords = slices.Insert(l.coords, i, axisCoord{tag: tag, value: value})
	return nil
}

// Get returns the coordinate for an axis tag and whether it is set.
func (l *Location) Get(tag string) (float32, bool) {
	for _, ac := range l.coords {
		if ac.tag == tag {
			return ac.value, true
		}
	}
	return 0, false
}

// Len returns the number of axes set.
func (l *Location) Len() int { return len(l.coords) }

// Tags returns the axis tags set on the location, in sorted order.
func (l *Location) Tags() []string {
	tags := make([]string, len(l.coords))
	for i, ac := range l.coords {
		tags[i] = ac.tag
	}
	return tags
}

// Clone returns an independent copy of the location.
func (l *Location) Clone() *Location {
	return &Location{coords: slices.Clone(l.coords)}
}

// Equal reports whether two locations set the same axes to the same
// coordinates. Locations over different axis sets are never equal, but
// comparing them is not an error.
func (l *Location) Equal(other *Location) bool {
	if len(l.coords) != len(other.coords) {
		return false
	}
	for i, ac := range l.coords {
		if other.coords[i] != ac {
			return false
		}
	}
	return true
}

// String renders the location as "tag=value,tag=value". The empty location
// renders as "default".
func (l *Location) String() string {
	if len(l.coords) == 0 {
		return "default"
	}
	var sb strings.Builder
	for i, ac := range l.coords {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(ac.tag)
		sb.WriteByte('=')
		sb.WriteString(strconv.FormatFloat(float64(ac.value), 'g', -1, 32))
	}
	return sb.String()
}

// Variations converts the location into typesetting variation settings,
// for [font.Face.SetVariations].
func (l *Location) Variations() []font.Variation {
	if len(l.coords) == 0 {
		return nil
	}
	vars := make([]font.Variation, len(l.coords))
	for i, ac := range l.coords {
		vars[i] = font.Variation{Tag: makeTag(ac.tag), Value: ac.value}
	}
	return vars
}

// validateFor checks that the location doesn't specify any axes absent
// from the font. Omitting axes is allowed; the font's default value is
// used for any axis not set.
func (l *Location) validateFor(axisTags []string) error {
	var extras []string
	for _, ac := range l.coords {
		if !slices.Contains(axisTags, ac.tag) {
			extras = append(extras, ac.tag)
		}
	}
	if len(extras) > 0 {
		return &MismatchedAxesError{Extras: extras}
	}
	return nil
}

// validTag reports whether tag is exactly four printable ASCII characters,
// per the OpenType tag grammar.
func validTag(tag string) bool {
	if len(tag) != 4 {
		return false
	}
	for i := 0; i < 4; i++ {
		if tag[i] < 0x20 || tag[i] > 0x7e {
			return false
		}
	}
	return true
}

// makeTag packs a validated 4-character tag into its big-endian OpenType
// representation.
func makeTag(tag string) opentype.Tag {
	return opentype.Tag(uint32(tag[0])<<24 | uint32(tag[1])<<16 |
		uint32(tag[2])<<8 | uint32(tag[3]))
}
