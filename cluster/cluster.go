package cluster

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/glyphword/internal/logging"
	"github.com/tsawler/glyphword/model"
)

// Unbounded lets every pivot chunk search concurrently.
// Any negative Parallelism has the same meaning.
const Unbounded = -1

// minChunk is the smallest number of pivots handed to one goroutine when
// the parallelism is unbounded.
const minChunk = 32

// Config holds the injected behaviour of a clustering run.
//
// Distance, MaxDistance and the filters are called from several goroutines at
// once and must be safe for concurrent use. The anchor functions and
// PivotFilter are called once per item before the search starts.
type Config[T any] struct {
	// Distance measures the gap from a pivot's trailing anchor to a
	// candidate's leading anchor. Required.
	Distance func(a, b model.Point) float64

	// MaxDistance is the largest accepted distance for one pivot/candidate
	// pair. Required.
	MaxDistance func(pivot, candidate T) float64

	// TrailingAnchor returns the point a search starts from. Required.
	TrailingAnchor func(T) model.Point

	// LeadingAnchor returns the point a search arrives at. Required.
	LeadingAnchor func(T) model.Point

	// PivotFilter decides whether an item starts a search. Nil accepts all.
	PivotFilter func(T) bool

	// ConnectionFilter vetoes a candidate for a pivot regardless of distance.
	// Nil accepts all.
	ConnectionFilter func(pivot, candidate T) bool

	// ExcludeFilteredFromCandidates removes items rejected by PivotFilter
	// from the candidate pool as well. When false they can still be linked to.
	ExcludeFilteredFromCandidates bool

	// Parallelism bounds the number of concurrent searches: Unbounded (or any
	// negative value) for no limit, 0 for runtime.GOMAXPROCS(0), 1 to search
	// on the calling goroutine.
	Parallelism int

	// Logger receives debug records. Nil disables logging.
	Logger *slog.Logger
}

func (c Config[T]) validate() error {
	switch {
	case c.Distance == nil:
		return fmt.Errorf("%w: Distance", ErrNilFunction)
	case c.MaxDistance == nil:
		return fmt.Errorf("%w: MaxDistance", ErrNilFunction)
	case c.TrailingAnchor == nil:
		return fmt.Errorf("%w: TrailingAnchor", ErrNilFunction)
	case c.LeadingAnchor == nil:
		return fmt.Errorf("%w: LeadingAnchor", ErrNilFunction)
	}
	return nil
}

// NearestNeighbours groups items by chaining every pivot to its nearest
// accepted candidate. Each item appears in exactly one group and items within
// a group are in chain order.
func NearestNeighbours[T any](items []T, cfg Config[T]) ([][]T, error) {
	indexes, err := GroupIndexes(items, cfg)
	if err != nil {
		return nil, err
	}

	groups := make([][]T, len(indexes))
	for i, idx := range indexes {
		group := make([]T, len(idx))
		for j, k := range idx {
			group[j] = items[k]
		}
		groups[i] = group
	}
	return groups, nil
}

// GroupIndexes is NearestNeighbours returning positions in items instead of
// the items themselves.
func GroupIndexes[T any](items []T, cfg Config[T]) ([][]int, error) {
	next, err := Links(items, cfg)
	if err != nil {
		return nil, err
	}

	groups := Chains(next)

	logging.OrNop(cfg.Logger).Debug("nearest neighbour clustering complete",
		"items", len(items),
		"links", countLinks(next),
		"groups", len(groups),
		"parallelism", cfg.Parallelism,
	)
	return groups, nil
}

// Links returns, for every item, the index of its nearest accepted candidate
// or -1 when it has none. Ties go to the candidate earliest in items.
func Links[T any](items []T, cfg Config[T]) ([]int, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	s := newSearch(items, cfg)
	return s.run(), nil
}

// Chains materialises groups from a successor relation. next[i] is the
// successor of i, or negative for none.
//
// Chains start at items without a predecessor, taken in index order, so the
// output is independent of how next was computed. A chain that feeds into a
// cycle walks on around it and is cut where it revisits an item. Items left
// over after that lie on cycles with no way in; each is entered at its lowest
// index.
//
// A walk that runs into an item already placed appends its items to the end
// of that item's group, after everything placed before. It never lands on a
// group's first item, since that item has no predecessor or starts a cycle
// that is already fully placed.
func Chains(next []int) [][]int {
	n := len(next)
	succ := func(i int) int {
		j := next[i]
		if j < 0 || j >= n {
			return -1
		}
		return j
	}

	indegree := make([]int, n)
	for i := range next {
		if j := succ(i); j >= 0 {
			indegree[j]++
		}
	}

	groupOf := make([]int, n)
	for i := range groupOf {
		groupOf[i] = -1
	}

	var groups [][]int
	walk := func(start int) {
		id := len(groups)
		var chain []int
		cur := start
		for cur >= 0 && groupOf[cur] < 0 {
			groupOf[cur] = id
			chain = append(chain, cur)
			cur = succ(cur)
		}
		if cur >= 0 && groupOf[cur] != id {
			target := groupOf[cur]
			for _, m := range chain {
				groupOf[m] = target
			}
			groups[target] = append(groups[target], chain...)
			return
		}
		groups = append(groups, chain)
	}

	for i := 0; i < n; i++ {
		if indegree[i] == 0 {
			walk(i)
		}
	}
	for i := 0; i < n; i++ {
		if groupOf[i] < 0 {
			walk(i)
		}
	}
	return groups
}

// search is the state shared read-only by all pivot searches of one run.
type search[T any] struct {
	items    []T
	cfg      Config[T]
	trailing []model.Point
	leading  []model.Point
	pivot    []bool
}

func newSearch[T any](items []T, cfg Config[T]) *search[T] {
	s := &search[T]{
		items:    items,
		cfg:      cfg,
		trailing: make([]model.Point, len(items)),
		leading:  make([]model.Point, len(items)),
		pivot:    make([]bool, len(items)),
	}
	for i, item := range items {
		s.trailing[i] = cfg.TrailingAnchor(item)
		s.leading[i] = cfg.LeadingAnchor(item)
		s.pivot[i] = cfg.PivotFilter == nil || cfg.PivotFilter(item)
	}
	return s
}

// run fills the successor of every item. Each slot is written by exactly one
// goroutine, and Wait orders all writes before the caller reads them.
func (s *search[T]) run() []int {
	n := len(s.items)
	next := make([]int, n)

	workers := s.cfg.Parallelism
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || n == 1 {
		for i := range next {
			next[i] = s.nearest(i)
		}
		return next
	}

	chunks := workers
	if workers < 0 {
		chunks = (n + minChunk - 1) / minChunk
	}
	chunks = min(chunks, n)
	size := (n + chunks - 1) / chunks

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				next[i] = s.nearest(i)
			}
			return nil
		})
	}
	_ = g.Wait()

	return next
}

// nearest returns the accepted candidate closest to pivot i, or -1.
func (s *search[T]) nearest(i int) int {
	if !s.pivot[i] {
		return -1
	}

	pivot := s.items[i]
	from := s.trailing[i]
	best, bestDist := -1, 0.0

	for j, candidate := range s.items {
		if j == i {
			continue
		}
		if s.cfg.ExcludeFilteredFromCandidates && !s.pivot[j] {
			continue
		}
		if s.cfg.ConnectionFilter != nil && !s.cfg.ConnectionFilter(pivot, candidate) {
			continue
		}

		d := s.cfg.Distance(from, s.leading[j])
		if math.IsNaN(d) || (best >= 0 && d >= bestDist) {
			continue
		}
		if !(d <= s.cfg.MaxDistance(pivot, candidate)) {
			continue
		}
		best, bestDist = j, d
	}
	return best
}

func countLinks(next []int) int {
	links := 0
	for _, j := range next {
		if j >= 0 {
			links++
		}
	}
	return links
}
