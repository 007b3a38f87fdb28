package fontreach

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/fontreach/fontreach/wordlists"
)

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has internal
// mutable state and is NOT safe for concurrent use, but reusing one across
// sequential words avoids re-allocating its buffers every time.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// shapePlan carries the per-word-list shaping hints, resolved once per
// (instance, word list) rather than per word.
type shapePlan struct {
	script    language.Script
	hasScript bool
	lang      language.Language
}

// newShapePlan resolves a word list's declared metadata into shaper terms.
// A list declaring a malformed script fails with [UnknownScriptError]:
// that is fatal for this list only, other lists are unaffected.
func newShapePlan(list *wordlists.WordList) (shapePlan, error) {
	plan := shapePlan{lang: language.NewLanguage("und")}
	if tag := list.Script(); tag != "" {
		script, ok := parseScriptTag(tag)
		if !ok {
			return shapePlan{}, &UnknownScriptError{WordList: list.Name(), Script: tag}
		}
		plan.script = script
		plan.hasScript = true
	}
	if lang := list.Language(); lang != "" {
		plan.lang = language.NewLanguage(lang)
	}
	return plan, nil
}

// wordShaper shapes one word at a time against a single font instance,
// reusing its scratch buffers across words. It is private per-goroutine
// state: create one per worker and release it when done.
type wordShaper struct {
	face   *font.Face
	shaper *shaping.HarfbuzzShaper
	plan   shapePlan

	// upem as a 26.6 size: shaping at one pixel per font unit makes the
	// shaper's offsets come back in design units.
	size fixed.Int26_6

	runes  []rune        // scratch, reused across words
	glyphs []shapedGlyph // scratch, reused across words
}

// newWordShaper binds a shaper to one font at one location.
//
// font.Face is not safe for concurrent use, so every wordShaper gets its
// own lightweight face over the shared (read-only) font.
func newWordShaper(f *font.Font, loc *Location, plan shapePlan) *wordShaper {
	face := font.NewFace(f)
	face.SetVariations(loc.Variations())
	return &wordShaper{
		face:   face,
		shaper: shaperPool.Get().(*shaping.HarfbuzzShaper),
		plan:   plan,
		size:   fixed.I(int(f.Upem())),
	}
}

// release returns the pooled shaper. The wordShaper must not be used
// afterwards.
func (ws *wordShaper) release() {
	shaperPool.Put(ws.shaper)
	ws.shaper = nil
}

// shapeWord shapes a single word and returns its glyphs with vertical
// offsets in font design units. The returned slice is scratch: it is
// overwritten by the next call.
func (ws *wordShaper) shapeWord(word string) []shapedGlyph {
	ws.runes = ws.runes[:0]
	for _, r := range word {
		ws.runes = append(ws.runes, r)
	}
	if len(ws.runes) == 0 {
		return nil
	}

	script := ws.plan.script
	if !ws.plan.hasScript {
		script = detectScript(ws.runes)
	}

	out := ws.shaper.Shape(shaping.Input{
		Text:      ws.runes,
		RunStart:  0,
		RunEnd:    len(ws.runes),
		Direction: wordDirection(word),
		Face:      ws.face,
		Size:      ws.size,
		Script:    script,
		Language:  ws.plan.lang,
	})

	ws.glyphs = ws.glyphs[:0]
	for _, g := range out.Glyphs {
		ws.glyphs = append(ws.glyphs, shapedGlyph{
			gid:     uint32(g.GlyphID),
			yOffset: fixedToFloat(g.YOffset),
		})
	}
	return ws.glyphs
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Word lists are expected to be single-script; mixed
// words are shaped by their leading script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// wordDirection resolves the direction of a word from its first strong
// bidirectional run.
func wordDirection(word string) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(word); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// parseScriptTag packs an ISO 15924 tag (e.g. "Latn") into a typesetting
// script value: four ASCII letters, title-cased, big-endian, matching the
// language package's script constants.
func parseScriptTag(tag string) (language.Script, bool) {
	if len(tag) != 4 {
		return 0, false
	}
	b := make([]byte, 4)
	for i := 0; i < 4; i++ {
		c := tag[i]
		switch {
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		case c >= 'A' && c <= 'Z':
		default:
			return 0, false
		}
		if i > 0 {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return language.Script(uint32(b[0])<<24 | uint32(b[1])<<16 |
		uint32(b[2])<<8 | uint32(b[3])), true
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
