package glyphword

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tsawler/glyphword/hocr"
	"github.com/tsawler/glyphword/model"
	"github.com/tsawler/glyphword/words"
)

// ErrNilThreshold is returned when Threshold is given a nil function.
var ErrNilThreshold = errors.New("glyphword: threshold function is nil")

// Extractor provides a fluent interface for word extraction.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	glyphs []model.Glyph

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
// The glyph slice is shared; it is never written.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		glyphs:  e.glyphs,
		options: e.options.clone(),
		err:     e.err,
	}
}

// Parallelism bounds the number of concurrent neighbour searches.
// Zero uses GOMAXPROCS and a negative value removes the bound.
//
// Example:
//
//	words, err := glyphword.From(glyphs).Parallelism(1).Words()
func (e *Extractor) Parallelism(n int) *Extractor {
	newExt := e.clone()
	newExt.options.parallelism = n
	return newExt
}

// NoOrientationGrouping clusters all glyphs together with a single distance
// measure instead of one orientation at a time.
func (e *Extractor) NoOrientationGrouping() *Extractor {
	newExt := e.clone()
	newExt.options.groupByOrient = false
	return newExt
}

// ExcludeFilteredFromCandidates stops whitespace glyphs from being chosen as
// a neighbour at all, in addition to never starting a search.
func (e *Extractor) ExcludeFilteredFromCandidates() *Extractor {
	newExt := e.clone()
	newExt.options.excludeFiltered = true
	return newExt
}

// Threshold replaces the maximum gap allowed between two glyphs of a word.
//
// Example:
//
//	fixed := func(a, b model.Glyph) float64 { return 1.5 }
//	words, err := glyphword.From(glyphs).Threshold(fixed).Words()
func (e *Extractor) Threshold(fn func(a, b model.Glyph) float64) *Extractor {
	newExt := e.clone()
	if fn == nil {
		newExt.err = ErrNilThreshold
		return newExt
	}
	newExt.options.threshold = fn
	return newExt
}

// StreamOrder switches to the stream extractor, which follows the order the
// glyphs were painted in instead of searching for neighbours.
func (e *Extractor) StreamOrder() *Extractor {
	newExt := e.clone()
	newExt.options.streamOrder = true
	return newExt
}

// Logger sets the logger that receives debug records.
func (e *Extractor) Logger(l *slog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = l
	return newExt
}

// Words returns the extracted words, including whitespace words.
func (e *Extractor) Words() ([]model.Word, error) {
	if e.err != nil {
		return nil, e.err
	}
	ws, err := words.Extract(e.glyphs, e.options.wordOptions())
	if err != nil {
		return nil, fmt.Errorf("extracting words: %w", err)
	}
	return ws, nil
}

// Strings returns the text of every word that is not whitespace.
func (e *Extractor) Strings() ([]string, error) {
	ws, err := e.Words()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		if w.IsWhitespace() {
			continue
		}
		out = append(out, w.Text)
	}
	return out, nil
}

// Text returns the non-whitespace words joined by single spaces.
func (e *Extractor) Text() (string, error) {
	ss, err := e.Strings()
	if err != nil {
		return "", err
	}
	return strings.Join(ss, " "), nil
}

// HOCR writes the extracted words as an hOCR document. page supplies the page
// number and size; its Words are replaced by the extracted words.
func (e *Extractor) HOCR(w io.Writer, page hocr.Page) error {
	ws, err := e.Words()
	if err != nil {
		return err
	}
	page.Words = ws
	return hocr.Write(w, page)
}
