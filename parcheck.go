package fontreach

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/fontreach/fontreach/internal/logging"
	"github.com/fontreach/fontreach/wordlists"
)

// DefaultExemplars is how many lowest and highest words a check retains
// when [WithExemplars] is not given.
const DefaultExemplars = 5

// checkConfig collects the knobs shared by Check and ParCheck.
type checkConfig struct {
	exemplars int
	maxWords  int
	workers   int
}

// CheckOption configures [InstanceReporter.Check] and
// [InstanceReporter.ParCheck].
type CheckOption func(*checkConfig)

// WithExemplars sets how many lowest and highest words the report retains.
// Panics if n < 1.
func WithExemplars(n int) CheckOption {
	if n < 1 {
		panic(fmt.Sprintf("fontreach: exemplar count must be >= 1, got %d", n))
	}
	return func(cfg *checkConfig) { cfg.exemplars = n }
}

// WithMaxWords caps how many words of the list are measured. Zero or
// negative means no cap.
func WithMaxWords(n int) CheckOption {
	return func(cfg *checkConfig) { cfg.maxWords = n }
}

// WithWorkers sets the number of goroutines ParCheck shapes with. Zero or
// negative means GOMAXPROCS. Check ignores this option.
func WithWorkers(n int) CheckOption {
	return func(cfg *checkConfig) { cfg.workers = n }
}

func newCheckConfig(opts []CheckOption) checkConfig {
	cfg := checkConfig{exemplars: DefaultExemplars}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers <= 0 {
		cfg.workers = runtime.GOMAXPROCS(0)
	}
	return cfg
}

// cancelCheckStride is how many words a worker measures between context
// checks. Shaping a word is microseconds, so per-word checks would cost
// more than they save.
const cancelCheckStride = 256

// ParCheck is [InstanceReporter.Check] spread across worker goroutines.
//
// The list is split into contiguous shards, one per worker; each worker
// shapes its shard with a private shaper into a private collector, and the
// collectors are merged. The merge is order-insensitive, so the result
// equals a sequential Check up to ties in word strength (which break on
// word text either way).
func (ir *InstanceReporter) ParCheck(ctx context.Context, list *wordlists.WordList, opts ...CheckOption) (*Report, error) {
	cfg := newCheckConfig(opts)

	plan, err := newShapePlan(list)
	if err != nil {
		return nil, fmt.Errorf("fontreach: word list %s: %w", list.Name(), err)
	}

	words := list.Words()
	if cfg.maxWords > 0 && cfg.maxWords < len(words) {
		words = words[:cfg.maxWords]
	}

	workers := cfg.workers
	if workers > len(words) {
		workers = len(words)
	}
	if workers <= 1 {
		return ir.Check(list, opts...)
	}

	collectors := make([]*ExemplarCollector, workers)

	g, ctx := errgroup.WithContext(ctx)
	shard := (len(words) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * shard
		end := min(start+shard, len(words))
		slot := w

		g.Go(func() error {
			shaper := newWordShaper(ir.rep.font, ir.location, plan)
			defer shaper.release()

			collector := NewExemplarCollector(cfg.exemplars)
			for i, word := range words[start:end] {
				if i%cancelCheckStride == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				glyphs := shaper.shapeWord(word)
				if ext, ok := foldWordExtremes(glyphs, ir.extremes); ok {
					collector.Push(WordExtremes{Word: word, Extremes: ext})
				}
			}

			collectors[slot] = collector
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := collectors[0]
	for _, c := range collectors[1:] {
		merged.Merge(c)
	}

	logging.Logger().Debug("checked word list in parallel",
		"list", list.Name(), "location", ir.location,
		"words", len(words), "workers", workers)
	return &Report{
		Location:  ir.location,
		WordList:  list,
		Exemplars: merged.Build(),
	}, nil
}
