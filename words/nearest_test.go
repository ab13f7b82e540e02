package words

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/glyphword/cluster"
	"github.com/tsawler/glyphword/model"
)

func newDefaultExtractor(t *testing.T) *NearestNeighbourExtractor {
	t.Helper()
	e, err := NewNearestNeighbourExtractor(DefaultNearestNeighbourOptions())
	require.NoError(t, err)
	return e
}

func TestNearestNeighbour_EmptyInput(t *testing.T) {
	ws, err := newDefaultExtractor(t).Words(nil)
	require.NoError(t, err)
	assert.Empty(t, ws)
}

func TestNearestNeighbour_SingleGlyph(t *testing.T) {
	ws, err := newDefaultExtractor(t).Words(hrun("x", 0, 0))
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, "x", ws[0].Text)
	assert.Equal(t, 1, ws[0].Len())
}

func TestNearestNeighbour_SplitsOnSpaces(t *testing.T) {
	ws, err := newDefaultExtractor(t).Words(hrun("Hello world", 100, 700))
	require.NoError(t, err)
	assert.Equal(t, []string{"Hello", " ", "world"}, texts(ws))
	assert.Equal(t, model.Horizontal, ws[0].Orientation)
	assert.Equal(t, "Test", ws[0].FontName)
}

func TestNearestNeighbour_GapWithoutSpace(t *testing.T) {
	glyphs := concat(hrun("ab", 0, 0), hrun("cd", 12+2.5, 0))
	ws, err := newDefaultExtractor(t).Words(glyphs)
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "cd"}, texts(ws))
}

func TestNearestNeighbour_ShuffledInputKeepsReadingOrder(t *testing.T) {
	glyphs := hrun("reading", 50, 50)
	rng := rand.New(rand.NewSource(7))
	rng.Shuffle(len(glyphs), func(i, j int) { glyphs[i], glyphs[j] = glyphs[j], glyphs[i] })

	ws, err := newDefaultExtractor(t).Words(glyphs)
	require.NoError(t, err)
	assert.Equal(t, []string{"reading"}, texts(ws))
}

func TestNearestNeighbour_OrientationBucketOrder(t *testing.T) {
	glyphs := concat(
		run("ab", model.Point{X: 0, Y: 500}, math.Pi/4),
		run("cd", model.Point{X: 300, Y: 0}, math.Pi/2),
		run("ef", model.Point{X: 200, Y: 300}, math.Pi),
		run("gh", model.Point{X: 400, Y: 400}, -math.Pi/2),
		run("ij", model.Point{X: 0, Y: 0}, 0),
	)

	ws, err := newDefaultExtractor(t).Words(glyphs)
	require.NoError(t, err)
	assert.Equal(t, []string{"ij", "gh", "ef", "cd", "ab"}, texts(ws))

	want := []model.Orientation{model.Horizontal, model.Rotate270, model.Rotate180, model.Rotate90, model.Other}
	for i, w := range ws {
		assert.Equal(t, want[i], w.Orientation, w.Text)
	}
}

func TestNearestNeighbour_GroupByOrientationOff(t *testing.T) {
	a := makeGlyph("a", model.Point{X: 0, Y: 0}, 0, testAdvance)
	b := makeGlyph("b", a.EndBaseline, math.Pi/2, testAdvance)
	glyphs := []model.Glyph{a, b}

	ws, err := newDefaultExtractor(t).Words(glyphs)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, texts(ws))

	opts := DefaultNearestNeighbourOptions()
	opts.GroupByOrientation = false
	ws, err = Extract(glyphs, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"ab"}, texts(ws))
	assert.Equal(t, model.Other, ws[0].Orientation)
}

func TestNearestNeighbour_AxisAlignedUsesManhattan(t *testing.T) {
	// Euclidean gap is about 2.12, Manhattan gap is 3.
	aEnd := model.Point{X: 6, Y: 0}
	bStart := model.Point{X: 7.5, Y: 1.5}

	opts := DefaultNearestNeighbourOptions()
	opts.MaxDistance = func(a, b model.Glyph) float64 { return 2.5 }

	ws, err := Extract(pair(model.Horizontal, aEnd, bStart), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, texts(ws))

	ws, err = Extract(pair(model.Other, aEnd, bStart), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"ab"}, texts(ws))
}

func TestNearestNeighbour_OtherOrientationDoublesThreshold(t *testing.T) {
	// A gap of 3 is above the axis-aligned threshold (2) and below the
	// doubled one (4).
	aEnd := model.Point{X: 6, Y: 0}
	bStart := model.Point{X: 9, Y: 0}

	ws, err := Extract(pair(model.Horizontal, aEnd, bStart), DefaultNearestNeighbourOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, texts(ws))

	ws, err = Extract(pair(model.Other, aEnd, bStart), DefaultNearestNeighbourOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"ab"}, texts(ws))
}

func TestNearestNeighbour_DistanceMeasureRouting(t *testing.T) {
	var general, axisAligned atomic.Int64
	opts := DefaultNearestNeighbourOptions()
	opts.DistanceMeasure = func(a, b model.Point) float64 {
		general.Add(1)
		return model.EuclideanDistance(a, b)
	}
	opts.DistanceMeasureAA = func(a, b model.Point) float64 {
		axisAligned.Add(1)
		return model.ManhattanDistance(a, b)
	}

	reset := func() {
		general.Store(0)
		axisAligned.Store(0)
	}

	t.Run("axis-aligned", func(t *testing.T) {
		reset()
		_, err := Extract(hrun("abc", 0, 0), opts)
		require.NoError(t, err)
		assert.Positive(t, axisAligned.Load())
		assert.Zero(t, general.Load())
	})

	t.Run("other", func(t *testing.T) {
		reset()
		_, err := Extract(run("abc", model.Point{}, 0.3), opts)
		require.NoError(t, err)
		assert.Zero(t, axisAligned.Load())
		assert.Positive(t, general.Load())
	})

	t.Run("grouping off", func(t *testing.T) {
		reset()
		ungrouped := opts
		ungrouped.GroupByOrientation = false
		_, err := Extract(hrun("abc", 0, 0), ungrouped)
		require.NoError(t, err)
		assert.Zero(t, axisAligned.Load())
		assert.Positive(t, general.Load())
	})
}

func TestNearestNeighbour_WhitespaceCandidates(t *testing.T) {
	glyphs := hrun("ab c", 0, 0)

	tests := []struct {
		name    string
		filter  func(pivot, candidate model.Glyph) bool
		exclude bool
		want    []string
	}{
		{"default filter", NotWhitespace, false, []string{"ab", " ", "c"}},
		{"default filter, excluded", NotWhitespace, true, []string{"ab", " ", "c"}},
		{"no filter", nil, false, []string{"ab ", "c"}},
		{"no filter, excluded", nil, true, []string{"ab", " ", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultNearestNeighbourOptions()
			opts.Filter = tt.filter
			opts.ExcludeFilteredFromCandidates = tt.exclude

			ws, err := Extract(glyphs, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, texts(ws))
		})
	}
}

func TestNearestNeighbour_PartitionAndDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	letters := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta"}
	var glyphs []model.Glyph
	for line := 0; line < 30; line++ {
		x := rng.Float64() * 20
		y := 700 - float64(line)*14
		for w := 0; w < 6; w++ {
			word := letters[rng.Intn(len(letters))]
			glyphs = append(glyphs, hrun(word+" ", x, y)...)
			x += float64(len(word))*testAdvance + testSpace
		}
	}
	rng.Shuffle(len(glyphs), func(i, j int) { glyphs[i], glyphs[j] = glyphs[j], glyphs[i] })

	opts := DefaultNearestNeighbourOptions()
	opts.MaxDegreeOfParallelism = 1
	want, err := Extract(glyphs, opts)
	require.NoError(t, err)

	total := 0
	for _, w := range want {
		total += w.Len()
		if !w.IsWhitespace() {
			assert.Contains(t, letters, w.Text)
		}
	}
	assert.Equal(t, len(glyphs), total)

	for _, p := range []int{0, 4, cluster.Unbounded} {
		opts.MaxDegreeOfParallelism = p
		got, err := Extract(glyphs, opts)
		require.NoError(t, err)
		assert.Equal(t, want, got, "parallelism %d", p)
	}
}

func TestNearestNeighbour_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"nil", nil},
		{"nil pointer", (*NearestNeighbourOptions)(nil)},
		{"stream options", DefaultStreamOptions()},
		{"stream options pointer", &StreamOptions{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewNearestNeighbourExtractor(tt.opts)
			assert.ErrorIs(t, err, ErrInvalidOptions)
			assert.Nil(t, e)
		})
	}
}

func TestNearestNeighbour_PointerOptions(t *testing.T) {
	opts := DefaultNearestNeighbourOptions()
	e, err := NewNearestNeighbourExtractor(&opts)
	require.NoError(t, err)

	ws, err := e.Words(hrun("ok", 0, 0))
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, texts(ws))
}

func TestNearestNeighbour_NilFunctions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NearestNeighbourOptions)
	}{
		{"max distance", func(o *NearestNeighbourOptions) { o.MaxDistance = nil }},
		{"distance measure", func(o *NearestNeighbourOptions) { o.DistanceMeasure = nil }},
		{"axis-aligned measure", func(o *NearestNeighbourOptions) { o.DistanceMeasureAA = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultNearestNeighbourOptions()
			tt.mutate(&opts)

			e, err := NewNearestNeighbourExtractor(opts)
			assert.Nil(t, e)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrNilFunction))
			assert.True(t, errors.Is(err, cluster.ErrNilFunction))
		})
	}

	t.Run("axis-aligned measure unused without grouping", func(t *testing.T) {
		opts := DefaultNearestNeighbourOptions()
		opts.GroupByOrientation = false
		opts.DistanceMeasureAA = nil
		_, err := NewNearestNeighbourExtractor(opts)
		assert.NoError(t, err)
	})
}

func TestNearestNeighbour_UnknownOrientationIsOther(t *testing.T) {
	glyphs := hrun("ab", 0, 0)
	for i := range glyphs {
		glyphs[i].Orientation = model.Orientation(42)
	}

	ws, err := newDefaultExtractor(t).Words(glyphs)
	require.NoError(t, err)
	assert.Equal(t, []string{"ab"}, texts(ws))
}

func TestNearestNeighbour_Logging(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultNearestNeighbourOptions()
	opts.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Extract(hrun("log me", 0, 0), opts)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "clustered orientation bucket")
	assert.Contains(t, buf.String(), "orientation=horizontal")
	assert.Contains(t, buf.String(), "nearest neighbour clustering complete")
}

func TestDefaultMaxDistance(t *testing.T) {
	base := model.Glyph{PointSize: 10, Width: 5, BBox: model.NewBBox(0, 0, 4, 7)}

	tests := []struct {
		name string
		a, b func(model.Glyph) model.Glyph
		want float64
	}{
		{"point size dominates", same, same, 2},
		{"advance width dominates", func(g model.Glyph) model.Glyph { g.Width = 20; return g }, same, 4},
		{"negative advance uses magnitude", same, func(g model.Glyph) model.Glyph { g.Width = -30; return g }, 6},
		{"glyph rectangle dominates", same, func(g model.Glyph) model.Glyph { g.BBox.Width = 25; return g }, 5},
		{"other orientation doubles", func(g model.Glyph) model.Glyph { g.Orientation = model.Other; return g }, same, 4},
		{"rotated is not doubled", func(g model.Glyph) model.Glyph { g.Orientation = model.Rotate90; return g }, same, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultMaxDistance(tt.a(base), tt.b(base))
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.InDelta(t, tt.want, DefaultMaxDistance(tt.b(base), tt.a(base)), 1e-9)
		})
	}
}

func same(g model.Glyph) model.Glyph { return g }

func TestDefaultFilters(t *testing.T) {
	letter := model.Glyph{Text: "a"}
	for _, blank := range []string{"", " ", "\t", " ", "\n "} {
		g := model.Glyph{Text: blank}
		assert.False(t, NotWhitespace(letter, g), "%q", blank)
		assert.False(t, PivotNotWhitespace(g), "%q", blank)
	}
	assert.True(t, NotWhitespace(letter, letter))
	assert.True(t, PivotNotWhitespace(letter))
}
