package state

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_VertexCounts(t *testing.T) {
	want := map[ShapeKind]int{
		ShapeSquare: 4,
		ShapeRect:   4,
		ShapeCircle: 24,
		ShapeTri:    3,
		ShapeStar:   10,
		ShapeHex:    6,
		ShapeOct:    8,
	}
	for kind, n := range want {
		t.Run(string(kind), func(t *testing.T) {
			pts := Generate(kind, Point{X: 3, Y: -7}, 90)
			assert.Len(t, pts, n)
			assert.Equal(t, n, VertexCount(kind))
		})
	}
	assert.Len(t, ShapeKinds, len(want))
}

func TestGenerate_UnknownKind(t *testing.T) {
	assert.Empty(t, Generate("blob", Point{}, 10))
	assert.Zero(t, VertexCount("blob"))
	assert.Nil(t, NewPolygonShape("blob", Point{}, 10, DefaultStyle()))
}

func TestGenerate_Square(t *testing.T) {
	pts := Generate(ShapeSquare, Point{X: 100, Y: 100}, 80)
	assert.Equal(t, []Point{{60, 60}, {140, 60}, {140, 140}, {60, 140}}, pts)
}

func TestGenerate_Rect(t *testing.T) {
	pts := Generate(ShapeRect, Point{}, 20)
	assert.Equal(t, []Point{{-15, -10}, {15, -10}, {15, 10}, {-15, 10}}, pts)
}

func TestGenerate_PolygonsStartAtTop(t *testing.T) {
	c := Point{X: 10, Y: 10}
	for _, kind := range []ShapeKind{ShapeTri, ShapeStar, ShapeHex, ShapeOct} {
		pts := Generate(kind, c, 40)
		require.NotEmpty(t, pts)
		assert.InDelta(t, 10, pts[0].X, 1e-9, kind)
		assert.InDelta(t, -10, pts[0].Y, 1e-9, kind)
	}
}

func TestGenerate_RadiiOnCircle(t *testing.T) {
	c := Point{X: -5, Y: 8}
	for _, p := range Generate(ShapeCircle, c, 50) {
		assert.InDelta(t, 25, p.Dist(c), 1e-9)
	}
}

func TestGenerate_StarAlternatesRadii(t *testing.T) {
	c := Point{}
	pts := Generate(ShapeStar, c, 100)
	for i, p := range pts {
		want := 50.0
		if i%2 == 1 {
			want = 20
		}
		assert.InDelta(t, want, p.Dist(c), 1e-9, "vertex %d", i)
	}
	// consecutive points are 36 degrees apart
	a0 := math.Atan2(pts[0].Y, pts[0].X)
	a1 := math.Atan2(pts[1].Y, pts[1].X)
	assert.InDelta(t, math.Pi/5, a1-a0, 1e-9)
}
