package fontreach

import (
	"math"
	"strings"
	"testing"
)

func testExtremes(glyphs map[uint32]VerticalExtremes) *InstanceExtremes {
	return &InstanceExtremes{extremes: glyphs}
}

func TestFoldWordExtremes(t *testing.T) {
	cache := testExtremes(map[uint32]VerticalExtremes{
		1: {lowest: -200, highest: 700},
		2: {lowest: -20, highest: 450},
		3: {lowest: 0, highest: 0}, // space-like glyph
	})

	tests := []struct {
		name    string
		glyphs  []shapedGlyph
		want    VerticalExtremes
		wantOK  bool
	}{
		{
			name:   "single glyph",
			glyphs: []shapedGlyph{{gid: 1}},
			want:   VerticalExtremes{lowest: -200, highest: 700},
			wantOK: true,
		},
		{
			name:   "widest glyph wins each side",
			glyphs: []shapedGlyph{{gid: 2}, {gid: 1}, {gid: 3}},
			want:   VerticalExtremes{lowest: -200, highest: 700},
			wantOK: true,
		},
		{
			name: "offsets shift the glyph box",
			glyphs: []shapedGlyph{
				{gid: 2, yOffset: 0},
				{gid: 2, yOffset: 300}, // e.g. a raised mark
			},
			want:   VerticalExtremes{lowest: -20, highest: 750},
			wantOK: true,
		},
		{
			name: "negative offset deepens the low side",
			glyphs: []shapedGlyph{
				{gid: 2, yOffset: -100},
				{gid: 3},
			},
			want:   VerticalExtremes{lowest: -120, highest: 350},
			wantOK: true,
		},
		{
			name:   "empty word contributes nothing",
			glyphs: nil,
			wantOK: false,
		},
		{
			name:   "notdef discards the word",
			glyphs: []shapedGlyph{{gid: 1}, {gid: notdef}},
			wantOK: false,
		},
		{
			name:   "unknown glyph discards the word",
			glyphs: []shapedGlyph{{gid: 1}, {gid: 99}},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := foldWordExtremes(tt.glyphs, cache)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewVerticalExtremesPanics(t *testing.T) {
	tests := []struct {
		name            string
		lowest, highest float64
	}{
		{"inverted", 100, -100},
		{"nan lowest", math.NaN(), 0},
		{"nan highest", 0, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("NewVerticalExtremes(%v, %v) did not panic",
						tt.lowest, tt.highest)
				}
			}()
			NewVerticalExtremes(tt.lowest, tt.highest)
		})
	}
}

func TestVerticalExtremesAccessors(t *testing.T) {
	v := NewVerticalExtremes(-120.5, 880)
	if v.Lowest() != -120.5 || v.Highest() != 880 {
		t.Errorf("got (%v, %v), want (-120.5, 880)", v.Lowest(), v.Highest())
	}
	if s := v.String(); !strings.Contains(s, "-120.5") || !strings.Contains(s, "880") {
		t.Errorf("String() = %q", s)
	}
}

func TestWordExtremesMarshalJSON(t *testing.T) {
	got, err := we("Ắ", -15, 1042).MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"word":"Ắ","lowest":-15,"highest":1042}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
