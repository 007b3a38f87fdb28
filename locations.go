package fontreach

import (
	"slices"

	"github.com/fontreach/fontreach/internal/otvar"
)

// interestingLocations derives the finite set of locations worth testing
// from a font's variation axes and named instances.
//
// Each axis contributes an ordered coordinate set: its default, minimum,
// and maximum values, plus every coordinate seen for that axis across all
// named instances. The result is the cartesian product of those sets, in
// the font's axis order, with each axis's coordinates ascending; the
// ordering is therefore stable across runs for the same font.
//
// A non-variable font (zero axes) yields exactly one location: the empty
// mapping.
func interestingLocations(axes []otvar.Axis, instances []otvar.Instance) []*Location {
	if len(axes) == 0 {
		return []*Location{NewLocation()}
	}

	coordSets := make([][]float32, len(axes))
	for _, inst := range instances {
		for i, coord := range inst.Coords {
			if i >= len(coordSets) {
				break
			}
			coordSets[i] = insertCoord(coordSets[i], coord)
		}
	}
	for i, axis := range axes {
		coordSets[i] = insertCoord(coordSets[i], axis.Default)
		coordSets[i] = insertCoord(coordSets[i], axis.Min)
		coordSets[i] = insertCoord(coordSets[i], axis.Max)
	}

	total := 1
	for _, set := range coordSets {
		total *= len(set)
	}

	locations := make([]*Location, 0, total)
	indices := make([]int, len(coordSets))
	for {
		loc := NewLocation()
		for i, set := range coordSets {
			// Tags come straight from the font's fvar table, so SetAxis
			// can't fail here.
			if err := loc.SetAxis(axes[i].Tag, set[indices[i]]); err != nil {
				panic(err)
			}
		}
		locations = append(locations, loc)

		// Advance the odometer, last axis fastest.
		i := len(indices) - 1
		for ; i >= 0; i-- {
			indices[i]++
			if indices[i] < len(coordSets[i]) {
				break
			}
			indices[i] = 0
		}
		if i < 0 {
			return locations
		}
	}
}

// insertCoord inserts a coordinate into a sorted set, ignoring duplicates.
func insertCoord(set []float32, coord float32) []float32 {
	i, found := slices.BinarySearch(set, coord)
	if found {
		return set
	}
	return slices.Insert(set, i, coord)
}
