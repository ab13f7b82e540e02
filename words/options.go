package words

import (
	"fmt"
	"log/slog"

	"github.com/tsawler/glyphword/cluster"
	"github.com/tsawler/glyphword/model"
)

// Options configures a word extractor. It is implemented by
// NearestNeighbourOptions and StreamOptions; each extractor accepts only its
// own type.
type Options interface {
	extractorName() string
}

// NearestNeighbourOptions configures the NearestNeighbourExtractor.
type NearestNeighbourOptions struct {
	// MaxDistance is the largest gap allowed between two glyphs of a word,
	// computed per pivot/candidate pair (default: DefaultMaxDistance).
	MaxDistance func(a, b model.Glyph) float64

	// DistanceMeasure is used for glyphs that are not axis-aligned, and for
	// all glyphs when GroupByOrientation is off (default: Euclidean).
	DistanceMeasure func(a, b model.Point) float64

	// DistanceMeasureAA is used for axis-aligned glyphs when
	// GroupByOrientation is on (default: Manhattan).
	DistanceMeasureAA func(a, b model.Point) float64

	// Filter vetoes a candidate for a pivot (default: NotWhitespace).
	// Nil accepts every pair.
	Filter func(pivot, candidate model.Glyph) bool

	// FilterPivot decides whether a glyph starts a search
	// (default: PivotNotWhitespace). Nil accepts every glyph.
	FilterPivot func(model.Glyph) bool

	// GroupByOrientation clusters each orientation separately (default: true).
	GroupByOrientation bool

	// ExcludeFilteredFromCandidates also removes glyphs rejected by
	// FilterPivot from the candidate pool (default: false).
	ExcludeFilteredFromCandidates bool

	// MaxDegreeOfParallelism bounds concurrent searches
	// (default: cluster.Unbounded). See cluster.Config.Parallelism.
	MaxDegreeOfParallelism int

	// Logger receives debug records (default: nil, silent).
	Logger *slog.Logger
}

// DefaultNearestNeighbourOptions returns the default nearest neighbour
// configuration.
func DefaultNearestNeighbourOptions() NearestNeighbourOptions {
	return NearestNeighbourOptions{
		MaxDistance:            DefaultMaxDistance,
		DistanceMeasure:        model.EuclideanDistance,
		DistanceMeasureAA:      model.ManhattanDistance,
		Filter:                 NotWhitespace,
		FilterPivot:            PivotNotWhitespace,
		GroupByOrientation:     true,
		MaxDegreeOfParallelism: cluster.Unbounded,
	}
}

func (NearestNeighbourOptions) extractorName() string { return "nearest neighbour" }

func (o NearestNeighbourOptions) validate() error {
	switch {
	case o.MaxDistance == nil:
		return fmt.Errorf("%w: MaxDistance", ErrNilFunction)
	case o.DistanceMeasure == nil:
		return fmt.Errorf("%w: DistanceMeasure", ErrNilFunction)
	case o.DistanceMeasureAA == nil && o.GroupByOrientation:
		return fmt.Errorf("%w: DistanceMeasureAA", ErrNilFunction)
	}
	return nil
}

// StreamOptions configures the StreamExtractor.
type StreamOptions struct {
	// MaxDistance is the largest gap allowed between consecutive glyphs of a
	// word (default: DefaultMaxDistance).
	MaxDistance func(a, b model.Glyph) float64

	// DistanceMeasure measures the gap between consecutive glyphs
	// (default: Manhattan).
	DistanceMeasure func(a, b model.Point) float64

	// Logger receives debug records (default: nil, silent).
	Logger *slog.Logger
}

// DefaultStreamOptions returns the default stream configuration.
func DefaultStreamOptions() StreamOptions {
	return StreamOptions{
		MaxDistance:     DefaultMaxDistance,
		DistanceMeasure: model.ManhattanDistance,
	}
}

func (StreamOptions) extractorName() string { return "stream" }

func (o StreamOptions) validate() error {
	switch {
	case o.MaxDistance == nil:
		return fmt.Errorf("%w: MaxDistance", ErrNilFunction)
	case o.DistanceMeasure == nil:
		return fmt.Errorf("%w: DistanceMeasure", ErrNilFunction)
	}
	return nil
}

// invalidOptions describes options handed to the wrong extractor.
func invalidOptions(want string, got Options) error {
	if got == nil {
		return fmt.Errorf("%w: %s extractor given nil options", ErrInvalidOptions, want)
	}
	return fmt.Errorf("%w: %s extractor given %T", ErrInvalidOptions, want, got)
}
