// Package fontreach analyzes how far text reaches vertically when rendered
// in a given typeface, across every meaningful variable-font configuration
// and every supported writing system, to help choose vertical metrics that
// avoid clipping real words without being needlessly large.
//
// Vertical metrics frequently decide clipping boundaries, but single glyphs
// rarely show the worst case: shaped words (mark stacking, diacritics,
// conjuncts) can reach further than any glyph alone. fontreach therefore
// measures whole shaped words, in font design units, unhinted and unscaled.
//
// The pipeline has four stages:
//
//   - Location enumeration: the cartesian product of each axis's
//     {default, min, max} values plus every coordinate seen in named
//     instances ([Reporter.InterestingLocations]).
//   - Per-instance glyph extent cache: the vertical bounds of every glyph's
//     outline at one location, built once and shared read-only
//     ([Reporter.Instance]).
//   - Per-word extent: shape the word, look up each glyph's cached bounds,
//     apply the shaper's y-offsets, fold to one (lowest, highest) pair.
//   - Exemplar collection: a bounded-memory streaming top-N of the
//     lowest- and highest-reaching words ([ExemplarCollector]), whose
//     partial results merge associatively so word streams can be processed
//     in parallel shards ([InstanceReporter.ParCheck]).
//
// # Example usage
//
//	data, err := os.ReadFile("MyFont-Variable.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rep, err := fontreach.NewReporter(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	list, _ := wordlists.Builtin("latin")
//	for _, loc := range rep.InterestingLocations() {
//	    inst, err := rep.Instance(loc)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    report, err := inst.ParCheck(context.Background(), list,
//	        fontreach.WithExemplars(5))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(report)
//	}
//
// Font parsing, variation handling, outline extraction, and shaping are
// provided by github.com/go-text/typesetting; fontreach adds the
// enumeration, caching, measurement, and bounded reduction on top.
package fontreach
