package glyphword

import (
	"log/slog"

	"github.com/tsawler/glyphword/cluster"
	"github.com/tsawler/glyphword/model"
	"github.com/tsawler/glyphword/words"
)

// ExtractOptions holds configuration for word extraction.
type ExtractOptions struct {
	// Extractor selection
	streamOrder bool

	// Nearest neighbour tuning
	parallelism     int
	groupByOrient   bool
	excludeFiltered bool
	threshold       func(a, b model.Glyph) float64

	logger *slog.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		streamOrder:     false,
		parallelism:     cluster.Unbounded,
		groupByOrient:   true,
		excludeFiltered: false,
		threshold:       nil, // nil means words.DefaultMaxDistance
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}

// wordOptions translates the facade settings into extractor options.
func (o ExtractOptions) wordOptions() words.Options {
	if o.streamOrder {
		opts := words.DefaultStreamOptions()
		if o.threshold != nil {
			opts.MaxDistance = o.threshold
		}
		opts.Logger = o.logger
		return opts
	}

	opts := words.DefaultNearestNeighbourOptions()
	if o.threshold != nil {
		opts.MaxDistance = o.threshold
	}
	opts.GroupByOrientation = o.groupByOrient
	opts.ExcludeFilteredFromCandidates = o.excludeFiltered
	opts.MaxDegreeOfParallelism = o.parallelism
	opts.Logger = o.logger
	return opts
}
