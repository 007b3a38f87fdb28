// Package otvar reads the variable-font metadata the extent engine needs
// (variation axes, named instances, glyph count) straight from the raw
// `fvar` and `maxp` tables, using the typesetting loader for table access.
package otvar

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/go-text/typesetting/font/opentype"
)

// Axis is one variation axis of a font.
type Axis struct {
	// Tag is the four-character axis tag (e.g. "wght").
	Tag string
	// Min, Default, Max are the axis bounds in user coordinates.
	Min     float32
	Default float32
	Max     float32
}

// Instance is a named instance: a full coordinate tuple, one value per
// axis, in the font's axis order.
type Instance struct {
	// SubfamilyNameID is the name-table id of the instance name.
	SubfamilyNameID uint16
	// Coords holds one user coordinate per axis, in axis order.
	Coords []float32
}

// Metadata is the variation metadata of one font.
type Metadata struct {
	// Axes lists the variation axes in font order. Empty for static fonts.
	Axes []Axis
	// Instances lists the named instances. Empty when the font declares
	// none.
	Instances []Instance
	// NumGlyphs is the glyph count from the maxp table.
	NumGlyphs int
}

var (
	errMalformedFvar = errors.New("otvar: malformed fvar table")
	errMalformedMaxp = errors.New("otvar: malformed maxp table")
)

var (
	tagFvar = opentype.Tag(0x66766172) // "fvar"
	tagMaxp = opentype.Tag(0x6d617870) // "maxp"
)

// Scan reads the variation metadata of the font in data.
//
// A font without an fvar table is valid (a static font); a font without a
// maxp table is not.
func Scan(data []byte) (*Metadata, error) {
	ld, err := opentype.NewLoader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("otvar: loading font tables: %w", err)
	}

	md := &Metadata{}

	maxp, err := ld.RawTable(tagMaxp)
	if err != nil {
		return nil, fmt.Errorf("otvar: reading maxp: %w", err)
	}
	md.NumGlyphs, err = parseMaxp(maxp)
	if err != nil {
		return nil, err
	}

	if fvar, err := ld.RawTable(tagFvar); err == nil {
		md.Axes, md.Instances, err = parseFvar(fvar)
		if err != nil {
			return nil, err
		}
	}

	return md, nil
}

// parseMaxp extracts numGlyphs. Both maxp versions (0.5 for CFF, 1.0 for
// glyf) put it at offset 4.
func parseMaxp(data []byte) (int, error) {
	if len(data) < 6 {
		return 0, errMalformedMaxp
	}
	return int(binary.BigEndian.Uint16(data[4:6])), nil
}

// fvar header and record sizes, per the OpenType spec.
const (
	fvarHeaderSize = 16
	axisRecordSize = 20
)

func parseFvar(data []byte) ([]Axis, []Instance, error) {
	if len(data) < fvarHeaderSize {
		return nil, nil, errMalformedFvar
	}
	axesOffset := int(binary.BigEndian.Uint16(data[4:6]))
	axisCount := int(binary.BigEndian.Uint16(data[8:10]))
	axisSize := int(binary.BigEndian.Uint16(data[10:12]))
	instanceCount := int(binary.BigEndian.Uint16(data[12:14]))
	instanceSize := int(binary.BigEndian.Uint16(data[14:16]))

	if axisSize < axisRecordSize || instanceSize < axisCount*4+4 {
		return nil, nil, errMalformedFvar
	}
	if axesOffset+axisCount*axisSize > len(data) {
		return nil, nil, errMalformedFvar
	}

	axes := make([]Axis, axisCount)
	for i := range axes {
		rec := data[axesOffset+i*axisSize:]
		axes[i] = Axis{
			Tag:     tagString(binary.BigEndian.Uint32(rec[0:4])),
			Min:     fixedToFloat(binary.BigEndian.Uint32(rec[4:8])),
			Default: fixedToFloat(binary.BigEndian.Uint32(rec[8:12])),
			Max:     fixedToFloat(binary.BigEndian.Uint32(rec[12:16])),
		}
	}

	instancesOffset := axesOffset + axisCount*axisSize
	if instancesOffset+instanceCount*instanceSize > len(data) {
		return nil, nil, errMalformedFvar
	}

	instances := make([]Instance, instanceCount)
	for j := range instances {
		rec := data[instancesOffset+j*instanceSize:]
		inst := Instance{
			SubfamilyNameID: binary.BigEndian.Uint16(rec[0:2]),
			Coords:          make([]float32, axisCount),
		}
		for i := 0; i < axisCount; i++ {
			inst.Coords[i] = fixedToFloat(binary.BigEndian.Uint32(rec[4+i*4:]))
		}
		instances[j] = inst
	}

	return axes, instances, nil
}

// fixedToFloat converts a 16.16 fixed-point value to float32.
func fixedToFloat(v uint32) float32 {
	return float32(int32(v)) / 65536
}

func tagString(v uint32) string {
	return string([]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}
