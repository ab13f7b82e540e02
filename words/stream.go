package words

import (
	"log/slog"

	"github.com/tsawler/glyphword/internal/logging"
	"github.com/tsawler/glyphword/model"
)

// StreamExtractor builds words from glyphs in the order they were painted.
// It is much cheaper than the nearest neighbour search and works well when
// the content stream already paints words left to right.
type StreamExtractor struct {
	opts   StreamOptions
	logger *slog.Logger
}

// NewStreamExtractor creates an extractor from opts, which must be a
// StreamOptions or a non-nil pointer to one.
func NewStreamExtractor(opts Options) (*StreamExtractor, error) {
	var o StreamOptions
	switch v := opts.(type) {
	case StreamOptions:
		o = v
	case *StreamOptions:
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

	return &StreamExtractor{
		opts:   o,
		logger: logging.OrNop(o.Logger),
	}, nil
}

// Words walks glyphs in order and starts a new word at every whitespace
// glyph, every change of orientation and every gap wider than MaxDistance.
// Whitespace glyphs become words of their own.
func (e *StreamExtractor) Words(glyphs []model.Glyph) ([]model.Word, error) {
	if len(glyphs) == 0 {
		return nil, nil
	}

	var groups [][]model.Glyph
	var current []model.Glyph
	flush := func() {
		if len(current) > 0 {
			groups = append(groups, current)
			current = nil
		}
	}

	for _, g := range glyphs {
		if g.IsWhitespace() {
			flush()
			groups = append(groups, []model.Glyph{g})
			continue
		}
		if len(current) > 0 && !e.continues(current[len(current)-1], g) {
			flush()
		}
		current = append(current, g)
	}
	flush()

	e.logger.Debug("split glyph stream", "glyphs", len(glyphs), "words", len(groups))
	return toWords(groups)
}

// continues reports whether next extends the word that prev ends.
func (e *StreamExtractor) continues(prev, next model.Glyph) bool {
	if prev.Orientation != next.Orientation {
		return false
	}
	gap := e.opts.DistanceMeasure(prev.EndBaseline, next.StartBaseline)
	return gap <= e.opts.MaxDistance(prev, next)
}
