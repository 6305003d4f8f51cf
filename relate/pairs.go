package relate

import (
	"github.com/hupe1980/zerogeom/shape"
	"github.com/hupe1980/zerogeom/wire"
)

// rel is the raw classification of one part pair. The engine folds these
// into the requested predicates: contact drives Intersects and Disjoint,
// interiors separates Touches from a real overlap, and the containment
// flags feed the Contains and Within families.
type rel struct {
	// contact holds when the closures of the two parts share a point.
	contact bool
	// interiors holds when the interiors share a point.
	interiors bool
	// aContainsB holds when the first part contains the whole second part:
	// the second lies in the first's closure and their interiors meet.
	aContainsB bool
	// bContainsA is the mirror of aContainsB.
	bContainsA bool
}

func (r rel) swapped() rel {
	r.aContainsB, r.bContainsA = r.bContainsA, r.aContainsB
	return r
}

// demoteDegenerate turns a single-vertex line into a point part. A line
// with no segments still occupies its one coordinate, and the point rules
// classify that coordinate correctly.
func demoteDegenerate(p part) part {
	if p.kind == partLine && p.line.Len() == 1 {
		return part{kind: partPoint, point: p.line.At(0)}
	}
	return p
}

func relParts(a, b part) rel {
	if a.empty() || b.empty() {
		return rel{}
	}
	a, b = demoteDegenerate(a), demoteDegenerate(b)
	switch a.kind {
	case partPoint:
		switch b.kind {
		case partPoint:
			return relPointPoint(a.point, b.point)
		case partLine:
			return relPointLine(a.point, b.line)
		default:
			return relPointPolygon(a.point, b.poly)
		}
	case partLine:
		switch b.kind {
		case partPoint:
			return relPointLine(b.point, a.line).swapped()
		case partLine:
			return relLineLine(a.line, b.line)
		default:
			return relLinePolygon(a.line, b.poly)
		}
	default:
		switch b.kind {
		case partPoint:
			return relPointPolygon(b.point, a.poly).swapped()
		case partLine:
			return relLinePolygon(b.line, a.poly).swapped()
		default:
			return relPolygonPolygon(a.poly, b.poly)
		}
	}
}

// relPointPoint: equal points coincide entirely, anything else is disjoint.
func relPointPoint(a, b wire.Coord) rel {
	if a != b {
		return rel{}
	}
	return rel{contact: true, interiors: true, aContainsB: true, bContainsA: true}
}

// relPointLine classifies a point against a linestring. The line's boundary
// is its two endpoints; a point sitting there touches the line but is not
// contained by it.
func relPointLine(p wire.Coord, l shape.Line) rel {
	on, endpoint := onLine(l, p)
	if !on {
		return rel{}
	}
	if endpoint {
		return rel{contact: true}
	}
	return rel{contact: true, interiors: true, bContainsA: true}
}

// relPointPolygon classifies a point against a polygon. A point on a ring,
// hole rings included, touches the polygon without being contained.
func relPointPolygon(p wire.Coord, g shape.Polygon) rel {
	switch placePoint(p, g) {
	case placeBoundary:
		return rel{contact: true}
	case placeIn:
		return rel{contact: true, interiors: true, bContainsA: true}
	default:
		return rel{}
	}
}

// collinearOverlap reports whether two collinear segments share more than a
// single point.
func collinearOverlap(s, o wire.Segment) bool {
	if wire.Cross(s.A, s.B, o.A) != 0 || wire.Cross(s.A, s.B, o.B) != 0 {
		return false
	}
	loS, hiS := minMax(s.A.X, s.B.X)
	loO, hiO := minMax(o.A.X, o.B.X)
	if max(loS, loO) < min(hiS, hiO) {
		return true
	}
	loS, hiS = minMax(s.A.Y, s.B.Y)
	loO, hiO = minMax(o.A.Y, o.B.Y)
	return max(loS, loO) < min(hiS, hiO)
}

func minMax(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}

// relLineLine classifies two linestrings. Interiors meet on a proper
// crossing, on a collinear overlap of positive length, or when an interior
// vertex of one line sits on the interior of the other. Containment between
// lines is not evaluated.
func relLineLine(a, b shape.Line) rel {
	if a.Bounds().Disjoint(b.Bounds()) {
		return rel{}
	}
	var r rel
	for i := 0; i < a.NumSegments(); i++ {
		sa := a.Segment(i)
		for j := 0; j < b.NumSegments(); j++ {
			sb := b.Segment(j)
			if !sa.Intersects(sb) {
				continue
			}
			r.contact = true
			if sa.ProperlyCrosses(sb) || collinearOverlap(sa, sb) {
				r.interiors = true
				return r
			}
		}
	}
	if r.contact && !r.interiors {
		r.interiors = interiorVertexOnLine(a, b) || interiorVertexOnLine(b, a)
	}
	return r
}

// interiorVertexOnLine reports whether a non-endpoint vertex of a lies on
// the interior of b.
func interiorVertexOnLine(a, b shape.Line) bool {
	for i := 1; i < a.Len()-1; i++ {
		if on, endpoint := onLine(b, a.At(i)); on && !endpoint {
			return true
		}
	}
	return false
}

// relLinePolygon classifies a linestring against a polygon. The line is
// contained when every vertex stays inside the closure, no segment properly
// crosses a ring, and some part of the line runs through the interior.
func relLinePolygon(l shape.Line, g shape.Polygon) rel {
	if l.Bounds().Disjoint(g.Bounds()) {
		return rel{}
	}
	var r rel
	allInClosure := true
	crossed := false
	for i := 0; i < l.Len(); i++ {
		switch placePoint(l.At(i), g) {
		case placeIn:
			r.contact = true
			r.interiors = true
		case placeBoundary:
			r.contact = true
		default:
			allInClosure = false
		}
	}
	for i := 0; i < l.NumSegments(); i++ {
		s := l.Segment(i)
		for ri := 0; ri < g.NumRings(); ri++ {
			ring := g.Ring(ri)
			for j := 0; j < ring.NumSegments(); j++ {
				rs := ring.Segment(j)
				if !s.Intersects(rs) {
					continue
				}
				r.contact = true
				if s.ProperlyCrosses(rs) {
					r.interiors = true
					crossed = true
				}
			}
		}
	}
	// A chord can run boundary to boundary through the interior without
	// any vertex landing inside, so probe segment midpoints before calling
	// the overlap boundary-only.
	if r.contact && !r.interiors {
		for i := 0; i < l.NumSegments(); i++ {
			if placePoint(midpoint(l.Segment(i)), g) == placeIn {
				r.interiors = true
				break
			}
		}
	}
	r.bContainsA = allInClosure && !crossed && r.interiors
	return r
}

func midpoint(s wire.Segment) wire.Coord {
	return wire.Coord{X: (s.A.X + s.B.X) / 2, Y: (s.A.Y + s.B.Y) / 2}
}

// relPolygonPolygon classifies two polygons by their rings: proper ring
// crossings or a vertex strictly inside the other mean the interiors meet,
// and ring contact alone falls back to sampled probes so edge-sharing
// polygons still separate from genuinely overlapping ones.
func relPolygonPolygon(a, b shape.Polygon) rel {
	if a.Bounds().Disjoint(b.Bounds()) {
		return rel{}
	}
	var r rel
	crossed := false
	for i := 0; i < a.NumRings(); i++ {
		ra := a.Ring(i)
		for si := 0; si < ra.NumSegments(); si++ {
			sa := ra.Segment(si)
			for j := 0; j < b.NumRings(); j++ {
				rb := b.Ring(j)
				for sj := 0; sj < rb.NumSegments(); sj++ {
					sb := rb.Segment(sj)
					if !sa.Intersects(sb) {
						continue
					}
					r.contact = true
					if sa.ProperlyCrosses(sb) {
						r.interiors = true
						crossed = true
					}
				}
			}
		}
	}
	aAllIn, aAnyIn := verticesInPolygon(a, b)
	bAllIn, bAnyIn := verticesInPolygon(b, a)
	if aAnyIn || bAnyIn {
		r.contact = true
		r.interiors = true
	}
	if (aAllIn || bAllIn) && !r.contact {
		// One exterior ring sits entirely inside the other closure with no
		// ring contact at all, so the boundary vertices were all interior.
		r.contact = true
		r.interiors = true
	}
	if r.contact && !r.interiors {
		r.interiors = sampledInteriorOverlap(a, b) || sampledInteriorOverlap(b, a)
	}
	r.aContainsB = bAllIn && !crossed && r.interiors
	r.bContainsA = aAllIn && !crossed && r.interiors
	return r
}

// verticesInPolygon classifies the exterior-ring vertices of a against b,
// reporting whether all of them stay in b's closure and whether any lands
// strictly inside.
func verticesInPolygon(a, b shape.Polygon) (all, any bool) {
	if a.IsEmpty() {
		return false, false
	}
	ring := a.Exterior()
	all = true
	for i := 0; i < ring.Len(); i++ {
		switch placePoint(ring.At(i), b) {
		case placeIn:
			any = true
		case placeBoundary:
		default:
			all = false
		}
	}
	return all, any
}

// sampledInteriorOverlap probes a few short diagonals of a's exterior ring
// for a point interior to both polygons. It resolves the identical and
// heavily edge-sharing cases the vertex and crossing tests cannot see.
func sampledInteriorOverlap(a, b shape.Polygon) bool {
	if a.IsEmpty() {
		return false
	}
	ring := a.Exterior()
	n := ring.Len() - 1
	if n < 3 {
		return false
	}
	probes := n
	if probes > 8 {
		probes = 8
	}
	for i := 0; i < probes; i++ {
		p, q := ring.At(i), ring.At((i+2)%n)
		m := wire.Coord{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
		if placePoint(m, a) == placeIn && placePoint(m, b) == placeIn {
			return true
		}
	}
	return false
}
