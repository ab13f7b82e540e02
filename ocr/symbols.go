package ocr

import (
	"bytes"
	"fmt"
	"image"
	"sort"

	// Decoders for the formats Tesseract accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/glyphword/model"
)

// SymbolBox is one recognised character in image coordinates (top-left
// origin, Y down).
type SymbolBox struct {
	Text       string
	Box        image.Rectangle
	Confidence float64

	// Line groups symbols that share a text line. Symbols on the same line
	// share a baseline.
	Line int
}

// ImageSize returns the pixel dimensions of an encoded image.
func ImageSize(imageData []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return 0, 0, fmt.Errorf("decoding image header: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// GlyphsFromSymbols converts symbol boxes into horizontal glyphs in page space
// (Y up) for an image imageHeight pixels tall. Symbol order is kept.
//
// Tesseract reports ink boxes, not baselines, so each line's baseline is
// taken as the median bottom edge of its symbols; descenders do not drag it
// down. The line height becomes the point size.
func GlyphsFromSymbols(symbols []SymbolBox, imageHeight int) []model.Glyph {
	if len(symbols) == 0 {
		return nil
	}

	type lineMetrics struct {
		bottoms []int
		height  int
	}
	lines := make(map[int]*lineMetrics)
	for _, s := range symbols {
		lm, ok := lines[s.Line]
		if !ok {
			lm = &lineMetrics{}
			lines[s.Line] = lm
		}
		lm.bottoms = append(lm.bottoms, s.Box.Max.Y)
		lm.height = max(lm.height, s.Box.Dy())
	}

	baselines := make(map[int]float64, len(lines))
	for n, lm := range lines {
		sort.Ints(lm.bottoms)
		baselines[n] = float64(imageHeight - lm.bottoms[len(lm.bottoms)/2])
	}

	h := float64(imageHeight)
	out := make([]model.Glyph, 0, len(symbols))
	for _, s := range symbols {
		y := baselines[s.Line]
		x0, x1 := float64(s.Box.Min.X), float64(s.Box.Max.X)
		out = append(out, model.Glyph{
			Text: s.Text,
			BBox: model.NewBBoxFromPoints(
				model.Point{X: x0, Y: h - float64(s.Box.Max.Y)},
				model.Point{X: x1, Y: h - float64(s.Box.Min.Y)},
			),
			StartBaseline: model.Point{X: x0, Y: y},
			EndBaseline:   model.Point{X: x1, Y: y},
			Width:         x1 - x0,
			PointSize:     float64(lines[s.Line].height),
			Orientation:   model.Horizontal,
		})
	}
	return out
}
