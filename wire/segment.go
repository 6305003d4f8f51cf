package wire

import "fmt"

// Segment is the line between two consecutive coordinates of a ring or
// line string.
type Segment struct {
	A Coord
	B Coord
}

func (s Segment) String() string {
	return fmt.Sprintf("%v-%v", s.A, s.B)
}

// Cross returns the signed area of the triangle p,q,r: positive when r is
// left of p->q, negative when right, zero when collinear. All comparisons
// in this file are exact; coordinates are carried bit-for-bit from the
// source, so no epsilon is applied.
func Cross(p, q, r Coord) float64 {
	return (q.X-p.X)*(r.Y-p.Y) - (q.Y-p.Y)*(r.X-p.X)
}

// onSpan reports whether c, known to be collinear with s, lies between the
// endpoints of s.
func (s Segment) onSpan(c Coord) bool {
	return min(s.A.X, s.B.X) <= c.X && c.X <= max(s.A.X, s.B.X) &&
		min(s.A.Y, s.B.Y) <= c.Y && c.Y <= max(s.A.Y, s.B.Y)
}

// ContainsPoint reports whether c lies exactly on the segment, endpoints
// included.
func (s Segment) ContainsPoint(c Coord) bool {
	return Cross(s.A, s.B, c) == 0 && s.onSpan(c)
}

// Intersects reports whether the two segments share at least one point.
// Collinear overlaps and shared endpoints count as intersections.
func (s Segment) Intersects(o Segment) bool {
	d1 := Cross(o.A, o.B, s.A)
	d2 := Cross(o.A, o.B, s.B)
	d3 := Cross(s.A, s.B, o.A)
	d4 := Cross(s.A, s.B, o.B)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	return (d1 == 0 && o.onSpan(s.A)) ||
		(d2 == 0 && o.onSpan(s.B)) ||
		(d3 == 0 && s.onSpan(o.A)) ||
		(d4 == 0 && s.onSpan(o.B))
}

// ProperlyCrosses reports whether the segments cross at a single interior
// point of both. Touching at an endpoint or overlapping collinearly is not
// a proper crossing.
func (s Segment) ProperlyCrosses(o Segment) bool {
	d1 := Cross(o.A, o.B, s.A)
	d2 := Cross(o.A, o.B, s.B)
	d3 := Cross(s.A, s.B, o.A)
	d4 := Cross(s.A, s.B, o.B)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// Touches reports whether the segments share at least one point but do not
// properly cross.
func (s Segment) Touches(o Segment) bool {
	return !s.ProperlyCrosses(o) && s.Intersects(o)
}
