package fontreach

import (
	"container/heap"
	"fmt"
)

// Exemplars is a bounded summary of the most extreme words observed:
// the words that reached lowest and the words that reached highest.
type Exemplars struct {
	// Lowest is sorted ascending by lowest extreme: the deepest-reaching
	// word first.
	Lowest []WordExtremes
	// Highest is sorted descending by highest extreme: the tallest-reaching
	// word first.
	Highest []WordExtremes
}

// IsEmpty reports whether the summary holds no words at all.
func (e *Exemplars) IsEmpty() bool {
	return len(e.Lowest) == 0 && len(e.Highest) == 0
}

// ExemplarCollector accumulates a stream of [WordExtremes] and retains only
// the N lowest-reaching and N highest-reaching words, in bounded memory.
//
// Collectors built from disjoint partitions of a stream can be combined
// with [ExemplarCollector.Merge]; the merged result is identical (up to
// ties, which break on word text) to feeding the concatenated stream
// through a single collector. That associativity is what makes parallel
// fan-out safe.
//
// A collector is private mutable state: it is not safe for concurrent use.
// Use one collector per goroutine and merge afterwards.
type ExemplarCollector struct {
	capacity int
	lowest   byLowest
	highest  byHighest
	built    *Exemplars
}

// NewExemplarCollector creates a collector retaining the `capacity` most
// extreme words on each side.
//
// Panics if capacity < 1: a zero-capacity top-N is meaningless.
func NewExemplarCollector(capacity int) *ExemplarCollector {
	if capacity < 1 {
		panic(fmt.Sprintf("fontreach: exemplar capacity must be >= 1, got %d", capacity))
	}
	return &ExemplarCollector{
		capacity: capacity,
		lowest:   make(byLowest, 0, capacity),
		highest:  make(byHighest, 0, capacity),
	}
}

// Push considers one word for both the lowest and highest sets. The two
// sets are updated independently: a word can be accepted into one, both,
// or neither.
//
// Push is O(log N) and never allocates once the sets are full: an incoming
// word either replaces the weakest member of a full set or is discarded.
func (c *ExemplarCollector) Push(we WordExtremes) {
	if c.built != nil {
		panic("fontreach: Push on a collector that was already built")
	}

	if len(c.lowest) < c.capacity {
		heap.Push(&c.lowest, we)
	} else if strongerLowest(we, c.lowest[0]) {
		c.lowest[0] = we
		heap.Fix(&c.lowest, 0)
	}

	if len(c.highest) < c.capacity {
		heap.Push(&c.highest, we)
	} else if strongerHighest(we, c.highest[0]) {
		c.highest[0] = we
		heap.Fix(&c.highest, 0)
	}
}

// Merge folds another collector's retained words into this one, as if
// their members had been pushed here directly.
//
// Exact (word, extremes) pairs already retained by this collector are
// skipped: they can only occur when the same input was fed to both sides
// (redundant recomputation rather than a true partition), and re-pushing
// them would double-count a single observation.
func (c *ExemplarCollector) Merge(other *ExemplarCollector) {
	if c.built != nil {
		panic("fontreach: Merge on a collector that was already built")
	}

	seen := make(map[WordExtremes]struct{}, len(c.lowest)+len(c.highest))
	for _, we := range c.lowest {
		seen[we] = struct{}{}
	}
	for _, we := range c.highest {
		seen[we] = struct{}{}
	}

	// A word retained in both of other's sets was pushed there once, so
	// push it here once.
	inBoth := make(map[WordExtremes]struct{}, len(other.lowest))
	for _, we := range other.lowest {
		inBoth[we] = struct{}{}
		if _, dup := seen[we]; dup {
			continue
		}
		c.Push(we)
	}
	for _, we := range other.highest {
		if _, dup := inBoth[we]; dup {
			continue
		}
		if _, dup := seen[we]; dup {
			continue
		}
		c.Push(we)
	}
}

// Build drains the collector into its final, fully sorted summary.
//
// The first call consumes the collector: further Push or Merge calls
// panic. Repeated Build calls return the identical summary.
func (c *ExemplarCollector) Build() Exemplars {
	if c.built != nil {
		return *c.built
	}

	lowest := make([]WordExtremes, len(c.lowest))
	for i := len(lowest) - 1; i >= 0; i-- {
		lowest[i] = heap.Pop(&c.lowest).(WordExtremes)
	}
	highest := make([]WordExtremes, len(c.highest))
	for i := len(highest) - 1; i >= 0; i-- {
		highest[i] = heap.Pop(&c.highest).(WordExtremes)
	}

	c.built = &Exemplars{Lowest: lowest, Highest: highest}
	return *c.built
}

// strongerLowest reports whether a belongs above b in the "lowest" ranking.
// Ties on the extreme break on word text so results don't depend on heap
// internals or insertion order.
func strongerLowest(a, b WordExtremes) bool {
	if a.Extremes.lowest != b.Extremes.lowest {
		return a.Extremes.lowest < b.Extremes.lowest
	}
	return a.Word < b.Word
}

// strongerHighest reports whether a belongs above b in the "highest"
// ranking.
func strongerHighest(a, b WordExtremes) bool {
	if a.Extremes.highest != b.Extremes.highest {
		return a.Extremes.highest > b.Extremes.highest
	}
	return a.Word < b.Word
}

// byLowest is a heap whose root is the weakest member of the "lowest" set:
// the word whose lowest extreme is largest, the first to be displaced by a
// more extreme arrival.
type byLowest []WordExtremes

func (h byLowest) Len() int           { return len(h) }
func (h byLowest) Less(i, j int) bool { return strongerLowest(h[j], h[i]) }
func (h byLowest) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *byLowest) Push(x any) { *h = append(*h, x.(WordExtremes)) }

func (h *byLowest) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// byHighest is the symmetric heap for the "highest" set: the root is the
// word whose highest extreme is smallest.
type byHighest []WordExtremes

func (h byHighest) Len() int           { return len(h) }
func (h byHighest) Less(i, j int) bool { return strongerHighest(h[j], h[i]) }
func (h byHighest) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *byHighest) Push(x any) { *h = append(*h, x.(WordExtremes)) }

func (h *byHighest) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}
