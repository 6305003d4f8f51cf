package relate

import (
	"github.com/hupe1980/zerogeom/shape"
	"github.com/hupe1980/zerogeom/wire"
)

// placement locates a point relative to a polygon.
type placement uint8

const (
	placeOut placement = iota
	placeBoundary
	placeIn
)

// onRing reports whether c lies on one of the ring's segments.
func onRing(r shape.Ring, c wire.Coord) bool {
	for i := 0; i < r.NumSegments(); i++ {
		if r.Segment(i).ContainsPoint(c) {
			return true
		}
	}
	return false
}

// ringCrossings runs the even-odd ray test against a single ring. The point
// must already be known not to lie on the ring; the half-open rule on Y
// keeps vertices from double counting.
func ringContains(r shape.Ring, c wire.Coord) bool {
	in := false
	for i := 0; i < r.NumSegments(); i++ {
		s := r.Segment(i)
		if (s.A.Y > c.Y) != (s.B.Y > c.Y) {
			t := (c.Y - s.A.Y) / (s.B.Y - s.A.Y)
			if c.X < s.A.X+t*(s.B.X-s.A.X) {
				in = !in
			}
		}
	}
	return in
}

// placePoint classifies c against p: on any ring is boundary, inside the
// exterior ring but not inside a hole is interior, anything else is out.
func placePoint(c wire.Coord, p shape.Polygon) placement {
	if p.IsEmpty() || !p.Bounds().Contains(c) {
		return placeOut
	}
	for i := 0; i < p.NumRings(); i++ {
		if onRing(p.Ring(i), c) {
			return placeBoundary
		}
	}
	if !ringContains(p.Exterior(), c) {
		return placeOut
	}
	for i := 0; i < p.NumHoles(); i++ {
		if ringContains(p.Hole(i), c) {
			return placeOut
		}
	}
	return placeIn
}

// onLine reports whether c lies on l, and whether that spot is one of the
// line's two endpoints (its boundary).
func onLine(l shape.Line, c wire.Coord) (on, endpoint bool) {
	n := l.NumSegments()
	if n == 0 {
		if l.Len() == 1 && l.At(0) == c {
			return true, true
		}
		return false, false
	}
	for i := 0; i < n; i++ {
		if l.Segment(i).ContainsPoint(c) {
			return true, c == l.At(0) || c == l.At(l.Len()-1)
		}
	}
	return false, false
}
