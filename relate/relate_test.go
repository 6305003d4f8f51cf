package relate_test

import (
	"testing"

	"github.com/ctessum/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/zerogeom/codec"
	"github.com/hupe1980/zerogeom/relate"
	"github.com/hupe1980/zerogeom/shape"
)

func encode(t *testing.T, g geom.Geom) shape.Geometry {
	t.Helper()

	buf, err := codec.Encode(nil, g)
	require.NoError(t, err)

	return codec.FromBytes(buf)
}

func unitSquare() geom.Polygon {
	return geom.Polygon{{
		{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1},
	}}
}

func TestRelate_PointPolygon(t *testing.T) {
	square := encode(t, unitSquare())

	t.Run("interior point is contained", func(t *testing.T) {
		p := encode(t, geom.Point{X: 0, Y: 0})

		got := relate.Relate(square, p, relate.Request{Contains: true})
		require.True(t, got.Contains.Known())
		assert.Equal(t, relate.True, got.Contains)
	})

	t.Run("exterior point is disjoint", func(t *testing.T) {
		p := encode(t, geom.Point{X: 3, Y: 0})

		got := relate.Relate(square, p, relate.Everything())
		assert.Equal(t, relate.False, got.Contains)
		assert.Equal(t, relate.False, got.Intersects)
		assert.Equal(t, relate.True, got.Disjoint)
	})

	t.Run("boundary point touches but is not contained", func(t *testing.T) {
		p := encode(t, geom.Point{X: 1, Y: 0})

		got := relate.Relate(square, p, relate.Everything())
		assert.Equal(t, relate.False, got.Contains)
		assert.Equal(t, relate.True, got.Intersects)
		assert.Equal(t, relate.True, got.Touches)
		assert.Equal(t, relate.False, got.Disjoint)
	})

	t.Run("point inside a hole is not contained", func(t *testing.T) {
		donut := encode(t, geom.Polygon{
			{{X: -4, Y: -4}, {X: 4, Y: -4}, {X: 4, Y: 4}, {X: -4, Y: 4}, {X: -4, Y: -4}},
			{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}},
		})
		inHole := encode(t, geom.Point{X: 0, Y: 0})
		inMeat := encode(t, geom.Point{X: 2, Y: 0})

		assert.Equal(t, relate.False, relate.Relate(donut, inHole, relate.Request{Contains: true}).Contains)
		assert.Equal(t, relate.True, relate.Relate(donut, inMeat, relate.Request{Contains: true}).Contains)
	})
}

func TestRelate_PointPoint(t *testing.T) {
	a := encode(t, geom.Point{X: 2.5, Y: -3})
	same := encode(t, geom.Point{X: 2.5, Y: -3})
	other := encode(t, geom.Point{X: 2.5, Y: -2.9})

	got := relate.Relate(a, same, relate.Everything())
	assert.Equal(t, relate.True, got.Contains)
	assert.Equal(t, relate.True, got.Within)
	assert.Equal(t, relate.True, got.Intersects)
	assert.Equal(t, relate.False, got.Touches)

	got = relate.Relate(a, other, relate.Everything())
	assert.Equal(t, relate.True, got.Disjoint)
	assert.Equal(t, relate.False, got.Intersects)
}

func TestRelate_PointLine(t *testing.T) {
	line := encode(t, geom.LineString{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}})

	t.Run("midspan point is contained", func(t *testing.T) {
		got := relate.Relate(line, encode(t, geom.Point{X: 2, Y: 0}), relate.Everything())
		assert.Equal(t, relate.True, got.Contains)
		assert.Equal(t, relate.True, got.Intersects)
		assert.Equal(t, relate.False, got.Touches)
	})

	t.Run("endpoint only touches", func(t *testing.T) {
		got := relate.Relate(line, encode(t, geom.Point{X: 0, Y: 0}), relate.Everything())
		assert.Equal(t, relate.False, got.Contains)
		assert.Equal(t, relate.True, got.Touches)
	})

	t.Run("interior vertex is contained", func(t *testing.T) {
		got := relate.Relate(line, encode(t, geom.Point{X: 4, Y: 0}), relate.Everything())
		assert.Equal(t, relate.True, got.Contains)
	})
}

func TestRelate_LineLine(t *testing.T) {
	t.Run("proper crossing intersects without touching", func(t *testing.T) {
		a := encode(t, geom.LineString{{X: -1, Y: 0}, {X: 1, Y: 0}})
		b := encode(t, geom.LineString{{X: 0, Y: -1}, {X: 0, Y: 1}})

		got := relate.Relate(a, b, relate.Everything())
		assert.Equal(t, relate.True, got.Intersects)
		assert.Equal(t, relate.False, got.Touches)
		assert.Equal(t, relate.False, got.Disjoint)
	})

	t.Run("endpoint meeting touches", func(t *testing.T) {
		a := encode(t, geom.LineString{{X: 0, Y: 0}, {X: 1, Y: 0}})
		b := encode(t, geom.LineString{{X: 1, Y: 0}, {X: 2, Y: 1}})

		got := relate.Relate(a, b, relate.Everything())
		assert.Equal(t, relate.True, got.Intersects)
		assert.Equal(t, relate.True, got.Touches)
	})

	t.Run("collinear overlap is not a touch", func(t *testing.T) {
		a := encode(t, geom.LineString{{X: 0, Y: 0}, {X: 4, Y: 0}})
		b := encode(t, geom.LineString{{X: 2, Y: 0}, {X: 6, Y: 0}})

		got := relate.Relate(a, b, relate.Everything())
		assert.Equal(t, relate.True, got.Intersects)
		assert.Equal(t, relate.False, got.Touches)
	})

	t.Run("separated lines are disjoint", func(t *testing.T) {
		a := encode(t, geom.LineString{{X: 0, Y: 0}, {X: 1, Y: 0}})
		b := encode(t, geom.LineString{{X: 0, Y: 5}, {X: 1, Y: 5}})

		got := relate.Relate(a, b, relate.Everything())
		assert.Equal(t, relate.True, got.Disjoint)
	})

	t.Run("single-vertex line relates through its point", func(t *testing.T) {
		dot := encode(t, geom.LineString{{X: 2, Y: 0}})
		long := encode(t, geom.LineString{{X: 0, Y: 0}, {X: 4, Y: 0}})

		got := relate.Relate(dot, long, relate.Everything())
		assert.Equal(t, relate.True, got.Intersects)
		assert.Equal(t, relate.False, got.Disjoint)
		assert.Equal(t, relate.True, got.Within)

		off := encode(t, geom.LineString{{X: 2, Y: 5}})
		assert.Equal(t, relate.True, relate.Relate(off, long, relate.Everything()).Disjoint)
	})
}

func TestRelate_LinePolygon(t *testing.T) {
	square := encode(t, unitSquare())

	t.Run("line inside is contained by the polygon", func(t *testing.T) {
		l := encode(t, geom.LineString{{X: -0.5, Y: 0}, {X: 0.5, Y: 0}})

		got := relate.Relate(square, l, relate.Everything())
		assert.Equal(t, relate.True, got.Contains)
		assert.Equal(t, relate.True, got.Intersects)
		assert.Equal(t, relate.False, got.Touches)
	})

	t.Run("line crossing the boundary intersects but is not contained", func(t *testing.T) {
		l := encode(t, geom.LineString{{X: 0, Y: 0}, {X: 3, Y: 0}})

		got := relate.Relate(square, l, relate.Everything())
		assert.Equal(t, relate.False, got.Contains)
		assert.Equal(t, relate.True, got.Intersects)
		assert.Equal(t, relate.False, got.Touches)
	})

	t.Run("line along an edge touches", func(t *testing.T) {
		l := encode(t, geom.LineString{{X: -1, Y: 1}, {X: 1, Y: 1}})

		got := relate.Relate(square, l, relate.Everything())
		assert.Equal(t, relate.False, got.Contains)
		assert.Equal(t, relate.True, got.Touches)
	})

	t.Run("chord between boundary points runs through the interior", func(t *testing.T) {
		l := encode(t, geom.LineString{{X: -1, Y: 0}, {X: 1, Y: 0}})

		got := relate.Relate(square, l, relate.Everything())
		assert.Equal(t, relate.True, got.Intersects)
		assert.Equal(t, relate.False, got.Touches)
		assert.Equal(t, relate.True, got.Contains)
	})
}

func TestRelate_PolygonPolygon(t *testing.T) {
	big := encode(t, geom.Polygon{{
		{X: -4, Y: -4}, {X: 4, Y: -4}, {X: 4, Y: 4}, {X: -4, Y: 4}, {X: -4, Y: -4},
	}})
	small := encode(t, unitSquare())

	t.Run("nested polygons", func(t *testing.T) {
		got := relate.Relate(big, small, relate.Everything())
		assert.Equal(t, relate.True, got.Contains)
		assert.Equal(t, relate.False, got.Within)
		assert.Equal(t, relate.True, got.Intersects)
		assert.Equal(t, relate.False, got.Touches)

		inverse := relate.Relate(small, big, relate.Everything())
		assert.Equal(t, relate.False, inverse.Contains)
		assert.Equal(t, relate.True, inverse.Within)
	})

	t.Run("overlapping squares intersect without containment", func(t *testing.T) {
		shifted := encode(t, geom.Polygon{{
			{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 0},
		}})

		got := relate.Relate(small, shifted, relate.Everything())
		assert.Equal(t, relate.True, got.Intersects)
		assert.Equal(t, relate.False, got.Contains)
		assert.Equal(t, relate.False, got.Within)
		assert.Equal(t, relate.False, got.Touches)
	})

	t.Run("edge-sharing squares touch", func(t *testing.T) {
		neighbor := encode(t, geom.Polygon{{
			{X: 1, Y: -1}, {X: 3, Y: -1}, {X: 3, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: -1},
		}})

		got := relate.Relate(small, neighbor, relate.Everything())
		assert.Equal(t, relate.True, got.Intersects)
		assert.Equal(t, relate.True, got.Touches)
		assert.Equal(t, relate.False, got.Contains)
	})

	t.Run("crossing rectangles with every vertex outside the other", func(t *testing.T) {
		horizontal := encode(t, geom.Polygon{{
			{X: 0, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 1},
		}})
		vertical := encode(t, geom.Polygon{{
			{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 3}, {X: 1, Y: 3}, {X: 1, Y: 0},
		}})

		got := relate.Relate(horizontal, vertical, relate.Everything())
		assert.Equal(t, relate.True, got.Intersects)
		assert.Equal(t, relate.False, got.Touches)
		assert.Equal(t, relate.False, got.Contains)
		assert.Equal(t, relate.False, got.Within)
		assert.Equal(t, relate.False, got.Disjoint)
	})

	t.Run("far apart squares are disjoint", func(t *testing.T) {
		far := encode(t, geom.Polygon{{
			{X: 10, Y: 10}, {X: 12, Y: 10}, {X: 12, Y: 12}, {X: 10, Y: 12}, {X: 10, Y: 10},
		}})

		got := relate.Relate(small, far, relate.Everything())
		assert.Equal(t, relate.True, got.Disjoint)
		assert.Equal(t, relate.False, got.Intersects)
	})
}

func TestRelate_MultiParts(t *testing.T) {
	square := encode(t, unitSquare())

	t.Run("loose versus strict containment", func(t *testing.T) {
		mixed := encode(t, geom.MultiPoint{{X: 0, Y: 0}, {X: 5, Y: 5}})

		got := relate.Relate(square, mixed, relate.Everything())
		assert.Equal(t, relate.True, got.Contains)
		assert.Equal(t, relate.False, got.StrictContains)

		allIn := encode(t, geom.MultiPoint{{X: 0, Y: 0}, {X: 0.5, Y: 0.5}})
		got = relate.Relate(square, allIn, relate.Everything())
		assert.Equal(t, relate.True, got.StrictContains)
	})

	t.Run("strict within over multipolygon parts", func(t *testing.T) {
		islands := encode(t, geom.MultiPolygon{
			{{{X: -0.5, Y: -0.5}, {X: -0.2, Y: -0.5}, {X: -0.2, Y: -0.2}, {X: -0.5, Y: -0.2}, {X: -0.5, Y: -0.5}}},
			{{{X: 0.2, Y: 0.2}, {X: 0.5, Y: 0.2}, {X: 0.5, Y: 0.5}, {X: 0.2, Y: 0.5}, {X: 0.2, Y: 0.2}}},
		})

		got := relate.Relate(islands, square, relate.Everything())
		assert.Equal(t, relate.True, got.StrictWithin)
		assert.Equal(t, relate.True, got.Within)
		assert.Equal(t, relate.False, got.Contains)
	})

	t.Run("collection relates through its flattened parts", func(t *testing.T) {
		coll := encode(t, geom.GeometryCollection{
			geom.Point{X: 0, Y: 0},
			geom.LineString{{X: 3, Y: 3}, {X: 5, Y: 5}},
		})

		got := relate.Relate(square, coll, relate.Everything())
		assert.Equal(t, relate.True, got.Contains)
		assert.Equal(t, relate.False, got.StrictContains)
		assert.Equal(t, relate.True, got.Intersects)
	})
}

func TestRelate_EmptyAndUnrequested(t *testing.T) {
	square := encode(t, unitSquare())
	empty := encode(t, geom.MultiPoint{})

	t.Run("empty operand is disjoint from everything", func(t *testing.T) {
		got := relate.Relate(square, empty, relate.Everything())
		assert.Equal(t, relate.True, got.Disjoint)
		assert.Equal(t, relate.False, got.Intersects)
		assert.Equal(t, relate.False, got.Contains)

		got = relate.Relate(empty, empty, relate.Everything())
		assert.Equal(t, relate.True, got.Disjoint)
	})

	t.Run("unrequested predicates stay unset", func(t *testing.T) {
		p := encode(t, geom.Point{X: 0, Y: 0})

		got := relate.Relate(square, p, relate.Request{Intersects: true})
		assert.Equal(t, relate.True, got.Intersects)
		assert.False(t, got.Contains.Known())
		assert.False(t, got.Touches.Known())
		assert.False(t, got.Disjoint.Known())
	})
}

func TestRelate_Consistency(t *testing.T) {
	square := encode(t, unitSquare())
	cases := []struct {
		name string
		g    geom.Geom
	}{
		{"interior point", geom.Point{X: 0.25, Y: -0.25}},
		{"boundary point", geom.Point{X: 1, Y: 0.5}},
		{"inner line", geom.LineString{{X: -0.5, Y: -0.5}, {X: 0.5, Y: 0.5}}},
		{"crossing line", geom.LineString{{X: -2, Y: 0}, {X: 2, Y: 0}}},
		{"nested square", geom.Polygon{{{X: -0.5, Y: -0.5}, {X: 0.5, Y: -0.5}, {X: 0.5, Y: 0.5}, {X: -0.5, Y: 0.5}, {X: -0.5, Y: -0.5}}}},
		{"far point", geom.Point{X: 9, Y: 9}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other := encode(t, tc.g)
			fwd := relate.Relate(square, other, relate.Everything())
			rev := relate.Relate(other, square, relate.Everything())

			// Contains and Within are each other's inverse.
			assert.Equal(t, fwd.Contains, rev.Within)
			assert.Equal(t, fwd.Within, rev.Contains)
			assert.Equal(t, fwd.Intersects, rev.Intersects)
			assert.Equal(t, fwd.Disjoint, rev.Disjoint)
			assert.Equal(t, fwd.Touches, rev.Touches)

			// Containment implies intersection, and disjoint excludes it.
			if fwd.Contains == relate.True {
				assert.Equal(t, relate.True, fwd.Intersects)
			}
			assert.NotEqual(t, fwd.Intersects, fwd.Disjoint)

			// Batching changes cost, never results.
			assert.Equal(t, fwd.Contains, relate.Relate(square, other, relate.Request{Contains: true}).Contains)
			assert.Equal(t, fwd.Intersects, relate.Relate(square, other, relate.Request{Intersects: true}).Intersects)
			assert.Equal(t, fwd.Touches, relate.Relate(square, other, relate.Request{Touches: true}).Touches)
		})
	}
}

func TestRelate_EarlyExit(t *testing.T) {
	square := encode(t, unitSquare())
	mixed := encode(t, geom.MultiPoint{{X: 0, Y: 0}, {X: 5, Y: 5}})

	got := relate.Relate(square, mixed, relate.Request{Intersects: true, EarlyExit: true})
	assert.Equal(t, relate.True, got.Intersects)

	// The exit may leave other requested fields unresolved, never wrong.
	got = relate.Relate(square, mixed, relate.Request{Contains: true, Disjoint: true, EarlyExit: true})
	assert.Equal(t, relate.True, got.Contains)
	assert.NotEqual(t, relate.True, got.Disjoint)
}

func TestRelate_Helpers(t *testing.T) {
	square := encode(t, unitSquare())
	inner := encode(t, geom.Point{X: 0, Y: 0})
	outer := encode(t, geom.Point{X: 7, Y: 7})

	assert.True(t, relate.Intersects(square, inner))
	assert.True(t, relate.Contains(square, inner))
	assert.True(t, relate.Within(inner, square))
	assert.True(t, relate.Disjoint(square, outer))
	assert.False(t, relate.Touches(square, inner))
}

func TestRequest_Swapped(t *testing.T) {
	r := relate.Request{Contains: true, StrictWithin: true, Intersects: true}
	s := r.Swapped()

	assert.True(t, s.Within)
	assert.True(t, s.StrictContains)
	assert.True(t, s.Intersects)
	assert.False(t, s.Contains)
	assert.False(t, s.StrictWithin)
}
