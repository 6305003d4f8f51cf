package shape_test

import (
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/zerogeom/codec"
	"github.com/hupe1980/zerogeom/shape"
	"github.com/hupe1980/zerogeom/wire"
)

func view(t *testing.T, g geom.Geom) shape.Geometry {
	t.Helper()

	buf, err := codec.Encode(nil, g)
	require.NoError(t, err)

	return shape.FromBuffer(buf)
}

func TestGeometry_Dispatch(t *testing.T) {
	tests := []struct {
		name string
		g    geom.Geom
		tag  wire.Tag
	}{
		{"point", geom.Point{X: 1, Y: 2}, wire.TagPoint},
		{"multipoint", geom.MultiPoint{{X: 1, Y: 2}}, wire.TagMultiPoint},
		{"line", geom.LineString{{X: 0, Y: 0}, {X: 1, Y: 1}}, wire.TagLineString},
		{"multiline", geom.MultiLineString{{{X: 0, Y: 0}, {X: 1, Y: 1}}}, wire.TagMultiLineString},
		{"polygon", geom.Polygon{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}}, wire.TagPolygon},
		{"multipolygon", geom.MultiPolygon{{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}}}, wire.TagMultiPolygon},
		{"collection", geom.GeometryCollection{geom.Point{X: 1, Y: 2}}, wire.TagCollection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := view(t, tt.g)
			assert.Equal(t, tt.tag, g.Kind())
			assert.False(t, g.IsEmpty())
		})
	}
}

func TestGeometry_WrongKindPanics(t *testing.T) {
	g := view(t, geom.Point{X: 1, Y: 2})

	assert.Panics(t, func() { g.Polygon() })
	assert.NotPanics(t, func() { g.Point() })
}

func TestGeometry_Bounds(t *testing.T) {
	t.Run("point box is degenerate", func(t *testing.T) {
		g := view(t, geom.Point{X: 3, Y: -1})
		want := wire.BoundingBox{Min: wire.Coord{X: 3, Y: -1}, Max: wire.Coord{X: 3, Y: -1}}
		assert.Equal(t, want, g.Bounds())
	})

	t.Run("header box", func(t *testing.T) {
		g := view(t, geom.LineString{{X: -2, Y: 5}, {X: 4, Y: 1}})
		want := wire.BoundingBox{Min: wire.Coord{X: -2, Y: 1}, Max: wire.Coord{X: 4, Y: 5}}
		assert.Equal(t, want, g.Bounds())
	})
}

func TestGeometry_Geom(t *testing.T) {
	tests := []geom.Geom{
		geom.Point{X: 1, Y: 2},
		geom.MultiPoint{{X: 1, Y: 2}, {X: 3, Y: 4}},
		geom.LineString{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}},
		geom.MultiLineString{{{X: 0, Y: 0}, {X: 1, Y: 1}}, {{X: 2, Y: 2}, {X: 3, Y: 3}}},
	}
	for _, in := range tests {
		assert.Equal(t, in, view(t, in).Geom())
	}
}

func TestPolygon_Views(t *testing.T) {
	g := view(t, geom.Polygon{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		{{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 4}, {X: 2, Y: 4}},
		{{X: 6, Y: 6}, {X: 8, Y: 6}, {X: 8, Y: 8}, {X: 6, Y: 8}},
	})
	p := g.Polygon()

	require.Equal(t, 3, p.NumRings())
	require.Equal(t, 2, p.NumHoles())
	assert.Equal(t, p.Ring(0), p.Exterior())
	assert.Equal(t, p.Ring(2), p.Hole(1))
	assert.Equal(t, wire.Coord{X: 6, Y: 6}, p.Hole(1).At(0))

	ring := p.Exterior()
	assert.Equal(t, 5, ring.Len())
	assert.Equal(t, 4, ring.NumSegments())
	assert.Equal(t, wire.Segment{A: wire.Coord{X: 0, Y: 0}, B: wire.Coord{X: 10, Y: 0}}, ring.Segment(0))
	assert.Equal(t, ring.At(0), ring.At(ring.Len()-1))
}

func TestCollection_Split(t *testing.T) {
	g := view(t, geom.GeometryCollection{
		geom.MultiPoint{{X: 1, Y: 1}, {X: 2, Y: 2}},
		geom.LineString{{X: 0, Y: 0}, {X: 5, Y: 0}},
		geom.MultiPolygon{
			{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}},
			{{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 4}, {X: 3, Y: 4}}},
		},
	})
	c := g.Collection()

	assert.Equal(t, 2, c.Points().Len())
	assert.Equal(t, 1, c.Lines().Len())
	assert.Equal(t, 2, c.Polygons().Len())
	assert.Equal(t, wire.Coord{X: 3, Y: 3}, c.Polygons().At(1).Exterior().At(0))

	// Conversion keeps the flattened grouping and drops nothing.
	out := c.Geom()
	require.Len(t, out, 3)
	assert.Equal(t, geom.MultiPoint{{X: 1, Y: 1}, {X: 2, Y: 2}}, out[0])

	t.Run("empty parts omitted from conversion", func(t *testing.T) {
		c := view(t, geom.GeometryCollection{geom.Point{X: 1, Y: 1}}).Collection()
		assert.Len(t, c.Geom(), 1)
		assert.True(t, c.Lines().IsEmpty())
		assert.True(t, c.Polygons().IsEmpty())
	})
}

func TestPoint_String(t *testing.T) {
	g := view(t, geom.Point{X: 1.5, Y: 2})
	assert.Equal(t, "Point(1.5, 2)", g.Point().String())
}
