package words

import (
	"github.com/tsawler/glyphword/model"
)

// Extractor groups glyphs into words.
type Extractor interface {
	// Words returns the words of glyphs. Every glyph ends up in exactly one
	// word; whitespace glyphs become words of their own.
	Words(glyphs []model.Glyph) ([]model.Word, error)
}

var (
	_ Extractor = (*NearestNeighbourExtractor)(nil)
	_ Extractor = (*StreamExtractor)(nil)
)

// New returns the extractor that opts configures.
func New(opts Options) (Extractor, error) {
	switch opts.(type) {
	case NearestNeighbourOptions, *NearestNeighbourOptions:
		e, err := NewNearestNeighbourExtractor(opts)
		if err != nil {
			return nil, err
		}
		return e, nil
	case StreamOptions, *StreamOptions:
		e, err := NewStreamExtractor(opts)
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, invalidOptions("word", opts)
	}
}

// Extract is a shortcut for New followed by Words.
func Extract(glyphs []model.Glyph, opts Options) ([]model.Word, error) {
	e, err := New(opts)
	if err != nil {
		return nil, err
	}
	return e.Words(glyphs)
}

// toWords wraps each group in a word, keeping the group order.
func toWords(groups [][]model.Glyph) ([]model.Word, error) {
	words := make([]model.Word, 0, len(groups))
	for _, g := range groups {
		w, err := model.NewWord(g)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}
