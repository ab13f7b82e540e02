package words

import (
	"log/slog"

	"github.com/tsawler/glyphword/cluster"
	"github.com/tsawler/glyphword/internal/logging"
	"github.com/tsawler/glyphword/model"
)

// bucketOrder is the order in which orientation buckets are clustered and
// their words emitted.
var bucketOrder = []model.Orientation{
	model.Horizontal,
	model.Rotate270,
	model.Rotate180,
	model.Rotate90,
	model.Other,
}

// NearestNeighbourExtractor builds words by linking every glyph to the
// closest glyph that starts near where it ends.
type NearestNeighbourExtractor struct {
	opts   NearestNeighbourOptions
	logger *slog.Logger
}

// NewNearestNeighbourExtractor creates an extractor from opts, which must be
// a NearestNeighbourOptions or a non-nil pointer to one.
func NewNearestNeighbourExtractor(opts Options) (*NearestNeighbourExtractor, error) {
	var o NearestNeighbourOptions
	switch v := opts.(type) {
	case NearestNeighbourOptions:
		o = v
	case *NearestNeighbourOptions:
		if v == nil {
			return nil, invalidOptions(o.extractorName(), nil)
		}
		o = *v
	default:
		return nil, invalidOptions(o.extractorName(), opts)
	}

	if err := o.validate(); err != nil {
		return nil, err
	}

	return &NearestNeighbourExtractor{
		opts:   o,
		logger: logging.OrNop(o.Logger),
	}, nil
}

// Words groups glyphs into words. With GroupByOrientation each orientation is
// clustered on its own and the words are returned bucket by bucket:
// horizontal, rotate270, rotate180, rotate90, then other.
func (e *NearestNeighbourExtractor) Words(glyphs []model.Glyph) ([]model.Word, error) {
	if len(glyphs) == 0 {
		return nil, nil
	}

	if !e.opts.GroupByOrientation {
		groups, err := e.cluster(glyphs, e.opts.DistanceMeasure)
		if err != nil {
			return nil, err
		}
		e.logger.Debug("clustered glyphs", "glyphs", len(glyphs), "words", len(groups))
		return toWords(groups)
	}

	buckets := partitionByOrientation(glyphs)
	words := make([]model.Word, 0, len(glyphs))
	for _, orientation := range bucketOrder {
		bucket := buckets[orientation]
		if len(bucket) == 0 {
			continue
		}

		measure := e.opts.DistanceMeasure
		if orientation.IsAxisAligned() {
			measure = e.opts.DistanceMeasureAA
		}

		groups, err := e.cluster(bucket, measure)
		if err != nil {
			return nil, err
		}
		e.logger.Debug("clustered orientation bucket",
			"orientation", orientation.String(),
			"glyphs", len(bucket),
			"words", len(groups),
		)

		bucketWords, err := toWords(groups)
		if err != nil {
			return nil, err
		}
		words = append(words, bucketWords...)
	}
	return words, nil
}

func (e *NearestNeighbourExtractor) cluster(glyphs []model.Glyph, measure func(a, b model.Point) float64) ([][]model.Glyph, error) {
	return cluster.NearestNeighbours(glyphs, cluster.Config[model.Glyph]{
		Distance:                      measure,
		MaxDistance:                   e.opts.MaxDistance,
		TrailingAnchor:                TrailingAnchor,
		LeadingAnchor:                 LeadingAnchor,
		PivotFilter:                   e.opts.FilterPivot,
		ConnectionFilter:              e.opts.Filter,
		ExcludeFilteredFromCandidates: e.opts.ExcludeFilteredFromCandidates,
		Parallelism:                   e.opts.MaxDegreeOfParallelism,
		Logger:                        e.opts.Logger,
	})
}

// partitionByOrientation splits glyphs into orientation buckets, keeping
// input order within each bucket. Unknown orientations go to Other.
func partitionByOrientation(glyphs []model.Glyph) map[model.Orientation][]model.Glyph {
	buckets := make(map[model.Orientation][]model.Glyph, len(bucketOrder))
	for _, g := range glyphs {
		o := g.Orientation
		switch o {
		case model.Horizontal, model.Rotate90, model.Rotate180, model.Rotate270:
		default:
			o = model.Other
		}
		buckets[o] = append(buckets[o], g)
	}
	return buckets
}
