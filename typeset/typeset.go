package typeset

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/tsawler/glyphword/model"
)

// DefaultSize is the shaping size used by Shape when Options.Size is zero.
const DefaultSize = 12.0

// ErrInvalidSize is returned for a negative size.
var ErrInvalidSize = errors.New("typeset: size must not be negative")

// Options places a run of text on the page.
type Options struct {
	// Origin is where the baseline of the first glyph starts.
	Origin model.Point

	// Angle turns the baseline counter-clockwise, in radians.
	Angle float64

	// Size is the point size. Layout only records it on the glyphs (the face
	// fixes the metrics) and falls back to the face's line height. Shape
	// shapes at this size, DefaultSize when zero.
	Size float64

	// FontName is recorded on every glyph.
	FontName string
}

// placement maps run-local coordinates (pen along +X, Y up) onto the page.
type placement struct {
	m           model.Matrix
	orientation model.Orientation
}

func newPlacement(opts Options) placement {
	m := model.Rotate(opts.Angle).Multiply(model.Translate(opts.Origin.X, opts.Origin.Y))
	return placement{
		m:           m,
		orientation: model.OrientationOf(m.Transform(model.Point{}), m.Transform(model.Point{X: 1})),
	}
}

// glyph places one glyph whose advance starts at pen. box is the glyph
// rectangle in run-local coordinates.
func (p placement) glyph(s string, pen, advance float64, box model.BBox, size float64, fontName string) model.Glyph {
	return model.Glyph{
		Text:          s,
		BBox:          p.m.TransformBBox(box),
		StartBaseline: p.m.Transform(model.Point{X: pen}),
		EndBaseline:   p.m.Transform(model.Point{X: pen + advance}),
		Width:         advance,
		PointSize:     size,
		FontName:      fontName,
		Orientation:   p.orientation,
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// Layout places s rune by rune using face. Each glyph's rectangle spans its
// advance horizontally and its ink bounds vertically. Runes the face cannot
// measure are skipped.
func Layout(face font.Face, s string, opts Options) []model.Glyph {
	if face == nil || s == "" {
		return nil
	}

	size := opts.Size
	if size <= 0 {
		size = fixedToFloat(face.Metrics().Height)
	}

	p := newPlacement(opts)
	out := make([]model.Glyph, 0, len(s))

	var pen fixed.Int26_6
	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 {
			pen += face.Kern(prev, r)
		}
		bounds, advance, ok := face.GlyphBounds(r)
		if !ok {
			prev = -1
			continue
		}

		// x/image bounds are Y down from the baseline.
		box := model.NewBBoxFromPoints(
			model.Point{X: fixedToFloat(pen), Y: -fixedToFloat(bounds.Max.Y)},
			model.Point{X: fixedToFloat(pen + advance), Y: -fixedToFloat(bounds.Min.Y)},
		)
		out = append(out, p.glyph(string(r), fixedToFloat(pen), fixedToFloat(advance), box, size, opts.FontName))

		pen += advance
		prev = r
	}
	return out
}

// Shape shapes s with the TrueType or OpenType font in ttf and places the
// result. Glyphs that belong to the same cluster are merged, so every
// returned glyph carries the runes it was shaped from. Text is shaped left
// to right.
func Shape(ttf []byte, s string, opts Options) ([]model.Glyph, error) {
	if opts.Size < 0 {
		return nil, ErrInvalidSize
	}
	if s == "" {
		return nil, nil
	}

	face, err := gotext.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	size := opts.Size
	if size == 0 {
		size = DefaultSize
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	var shaper shaping.HarfbuzzShaper
	output := shaper.Shape(input)

	p := newPlacement(opts)
	out := make([]model.Glyph, 0, len(output.Glyphs))

	var pen float64
	for i := 0; i < len(output.Glyphs); {
		g := output.Glyphs[i]
		cluster := g.ClusterIndex
		start := pen

		// Ink extents in run-local coordinates; Height is negative (downwards).
		minY, maxY := 0.0, 0.0
		j := i
		for ; j < len(output.Glyphs) && output.Glyphs[j].ClusterIndex == cluster; j++ {
			gj := output.Glyphs[j]
			top := fixedToFloat(gj.YOffset + gj.YBearing)
			bottom := top + fixedToFloat(gj.Height)
			minY = min(minY, bottom)
			maxY = max(maxY, top)
			pen += fixedToFloat(gj.Advance)
		}

		end := min(cluster+max(g.RuneCount, 1), len(runes))
		box := model.NewBBoxFromPoints(model.Point{X: start, Y: minY}, model.Point{X: pen, Y: maxY})
		out = append(out, p.glyph(string(runes[cluster:end]), start, pen-start, box, size, opts.FontName))
		i = j
	}
	return out, nil
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
