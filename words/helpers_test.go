package words

import (
	"math"

	"github.com/tsawler/glyphword/model"
)

// testPointSize gives a default threshold of 2 for axis-aligned text.
const (
	testPointSize = 10.0
	testAdvance   = 6.0
	testSpace     = 3.0
)

// makeGlyph creates a glyph whose baseline runs from start for width units in
// direction angle. The orientation is derived from the baseline.
func makeGlyph(txt string, start model.Point, angle, width float64) model.Glyph {
	dir := model.Point{X: math.Cos(angle), Y: math.Sin(angle)}
	end := model.Point{X: start.X + dir.X*width, Y: start.Y + dir.Y*width}
	up := model.Point{X: -dir.Y * testPointSize * 0.7, Y: dir.X * testPointSize * 0.7}
	return model.Glyph{
		Text:          txt,
		BBox:          model.BBoxOfPoints(start, end, model.Point{X: start.X + up.X, Y: start.Y + up.Y}, model.Point{X: end.X + up.X, Y: end.Y + up.Y}),
		StartBaseline: start,
		EndBaseline:   end,
		Width:         width,
		PointSize:     testPointSize,
		FontName:      "Test",
		Orientation:   model.OrientationOf(start, end),
	}
}

// run lays s out along a baseline starting at start. Letters advance
// testAdvance and spaces testSpace.
func run(s string, start model.Point, angle float64) []model.Glyph {
	var out []model.Glyph
	pen := start
	for _, r := range s {
		w := testAdvance
		if r == ' ' {
			w = testSpace
		}
		g := makeGlyph(string(r), pen, angle, w)
		out = append(out, g)
		pen = g.EndBaseline
	}
	return out
}

// hrun lays s out horizontally from (x, y).
func hrun(s string, x, y float64) []model.Glyph {
	return run(s, model.Point{X: x, Y: y}, 0)
}

// pair returns two glyphs with explicit orientation and anchors.
func pair(orientation model.Orientation, aEnd, bStart model.Point) []model.Glyph {
	a := model.Glyph{
		Text:          "a",
		StartBaseline: model.Point{X: aEnd.X - testAdvance, Y: aEnd.Y},
		EndBaseline:   aEnd,
		Width:         testAdvance,
		PointSize:     testPointSize,
		Orientation:   orientation,
	}
	b := model.Glyph{
		Text:          "b",
		StartBaseline: bStart,
		EndBaseline:   model.Point{X: bStart.X + testAdvance, Y: bStart.Y},
		Width:         testAdvance,
		PointSize:     testPointSize,
		Orientation:   orientation,
	}
	return []model.Glyph{a, b}
}

func texts(ws []model.Word) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Text
	}
	return out
}

func concat(runs ...[]model.Glyph) []model.Glyph {
	var out []model.Glyph
	for _, r := range runs {
		out = append(out, r...)
	}
	return out
}
