package codec

import (
	"fmt"
	"slices"

	"github.com/ctessum/geom"
	"github.com/hupe1980/zerogeom/wire"
)

// Encode appends the encoded form of g to dst and returns the extended
// slice. The output size is computed in a pre-pass over g, so dst grows at
// most once and no header is backpatched. dst may be nil.
//
// The encoding is lossy in one documented way: a GeometryCollection is
// flattened into its points, lines and polygons.
func Encode(dst []byte, g geom.Geom) ([]byte, error) {
	switch v := g.(type) {
	case geom.Point:
		if !finite(v) {
			return dst, fmt.Errorf("%w: %v", ErrNonFiniteCoordinate, v)
		}
		dst = slices.Grow(dst, wire.TagSize+wire.CoordSize)
		dst = wire.AppendTag(dst, wire.TagPoint)
		return wire.AppendCoord(dst, v.X, v.Y), nil

	case geom.MultiPoint:
		size, err := multiPointSize(v)
		if err != nil {
			return dst, err
		}
		dst = slices.Grow(dst, wire.TagSize+size)
		dst = wire.AppendTag(dst, wire.TagMultiPoint)
		return appendPointsPayload(dst, v), nil

	case geom.LineString:
		size, err := lineStringSize(v)
		if err != nil {
			return dst, err
		}
		dst = slices.Grow(dst, wire.TagSize+size)
		dst = wire.AppendTag(dst, wire.TagLineString)
		return appendPointsPayload(dst, v), nil

	case geom.MultiLineString:
		size, err := multiLineSize(v)
		if err != nil {
			return dst, err
		}
		dst = slices.Grow(dst, wire.TagSize+size)
		dst = wire.AppendTag(dst, wire.TagMultiLineString)
		return appendMultiLinePayload(dst, v), nil

	case geom.Polygon:
		size, err := polygonSize(v)
		if err != nil {
			return dst, err
		}
		dst = slices.Grow(dst, wire.TagSize+size)
		dst = wire.AppendTag(dst, wire.TagPolygon)
		return appendPolygonPayload(dst, v), nil

	case geom.MultiPolygon:
		size, err := multiPolygonSize(v)
		if err != nil {
			return dst, err
		}
		dst = slices.Grow(dst, wire.TagSize+size)
		dst = wire.AppendTag(dst, wire.TagMultiPolygon)
		return appendMultiPolygonPayload(dst, v), nil

	case geom.GeometryCollection:
		fc, err := flatten(v)
		if err != nil {
			return dst, err
		}
		size, err := fc.size()
		if err != nil {
			return dst, err
		}
		dst = slices.Grow(dst, wire.TagSize+size)
		dst = wire.AppendTag(dst, wire.TagCollection)
		return appendCollectionPayload(dst, fc), nil

	default:
		return dst, fmt.Errorf("%w: %T", ErrUnsupportedGeometry, g)
	}
}

func finite(p geom.Point) bool {
	return wire.Coord{X: p.X, Y: p.Y}.Finite()
}

// checkPoints rejects the first non-finite coordinate in pts.
func checkPoints(pts []geom.Point) error {
	for _, p := range pts {
		if !finite(p) {
			return fmt.Errorf("%w: %v", ErrNonFiniteCoordinate, p)
		}
	}
	return nil
}

// closedLen returns the vertex count of a ring once closed: the input
// count plus one when the first and last vertices differ.
func closedLen(ring []geom.Point) int {
	n := len(ring)
	if n == 0 {
		return 0
	}
	if n > 1 && ring[0] == ring[n-1] {
		return n
	}
	return n + 1
}

// numRings returns the ring count a polygon encodes with: zero when the
// polygon is empty.
func numRings(p geom.Polygon) int {
	if len(p) == 0 || (len(p) == 1 && len(p[0]) == 0) {
		return 0
	}
	return len(p)
}

func multiPointSize(m geom.MultiPoint) (int, error) {
	if err := checkPoints(m); err != nil {
		return 0, err
	}
	return wire.BoundsSize + wire.CoordSize*len(m), nil
}

func lineStringSize(l geom.LineString) (int, error) {
	if err := checkPoints(l); err != nil {
		return 0, err
	}
	return wire.BoundsSize + wire.CoordSize*len(l), nil
}

func multiLineSize(m geom.MultiLineString) (int, error) {
	size := wire.BoundsSize + wire.OffsetTableSize(len(m))
	for _, l := range m {
		s, err := lineStringSize(l)
		if err != nil {
			return 0, err
		}
		size += s
	}
	return size, nil
}

func polygonSize(p geom.Polygon) (int, error) {
	n := numRings(p)
	size := wire.BoundsSize + wire.OffsetTableSize(n)
	for i := 0; i < n; i++ {
		if err := checkPoints(p[i]); err != nil {
			return 0, err
		}
		cl := closedLen(p[i])
		if cl < 4 {
			return 0, fmt.Errorf("%w: ring %d has %d vertices", ErrDegenerateRing, i, len(p[i]))
		}
		size += wire.CoordSize * cl
	}
	return size, nil
}

func multiPolygonSize(m geom.MultiPolygon) (int, error) {
	size := wire.BoundsSize + wire.OffsetTableSize(len(m))
	for _, p := range m {
		s, err := polygonSize(p)
		if err != nil {
			return 0, err
		}
		size += s
	}
	return size, nil
}

func extendBounds(bb *wire.BoundingBox, pts []geom.Point) {
	for _, p := range pts {
		bb.Extend(wire.Coord{X: p.X, Y: p.Y})
	}
}

// appendPointsPayload writes the shared multi-point/line-string payload:
// bounding box first, then the vertices.
func appendPointsPayload(dst []byte, pts []geom.Point) []byte {
	bb := wire.EmptyBounds()
	extendBounds(&bb, pts)
	dst = wire.AppendBounds(dst, bb.Normalize())
	for _, p := range pts {
		dst = wire.AppendCoord(dst, p.X, p.Y)
	}
	return dst
}

// appendTable writes the count, the offset entries produced by sizeAt, and
// the alignment pad.
func appendTable(dst []byte, n int, sizeAt func(i int) int) []byte {
	dst = wire.AppendU32(dst, uint32(n))
	off := uint32(0)
	for i := 0; i < n; i++ {
		dst = wire.AppendU32(dst, off)
		off += uint32(sizeAt(i))
	}
	if n%2 == 0 {
		dst = wire.AppendU32(dst, 0)
	}
	return dst
}

// appendRing writes a ring's vertices, closing it when the input is open.
func appendRing(dst []byte, ring []geom.Point) []byte {
	for _, p := range ring {
		dst = wire.AppendCoord(dst, p.X, p.Y)
	}
	if len(ring) > 1 && ring[0] != ring[len(ring)-1] {
		dst = wire.AppendCoord(dst, ring[0].X, ring[0].Y)
	}
	return dst
}

func appendPolygonPayload(dst []byte, p geom.Polygon) []byte {
	bb := wire.EmptyBounds()
	if len(p) > 0 {
		// The box covers the exterior; holes lie inside it by definition.
		extendBounds(&bb, p[0])
	}
	dst = wire.AppendBounds(dst, bb.Normalize())
	n := numRings(p)
	dst = appendTable(dst, n, func(i int) int {
		return wire.CoordSize * closedLen(p[i])
	})
	for i := 0; i < n; i++ {
		dst = appendRing(dst, p[i])
	}
	return dst
}

func appendMultiLinePayload(dst []byte, m geom.MultiLineString) []byte {
	bb := wire.EmptyBounds()
	for _, l := range m {
		extendBounds(&bb, l)
	}
	dst = wire.AppendBounds(dst, bb.Normalize())
	dst = appendTable(dst, len(m), func(i int) int {
		return wire.BoundsSize + wire.CoordSize*len(m[i])
	})
	for _, l := range m {
		dst = appendPointsPayload(dst, l)
	}
	return dst
}

func appendMultiPolygonPayload(dst []byte, m geom.MultiPolygon) []byte {
	bb := wire.EmptyBounds()
	for _, p := range m {
		if len(p) > 0 {
			extendBounds(&bb, p[0])
		}
	}
	dst = wire.AppendBounds(dst, bb.Normalize())
	dst = appendTable(dst, len(m), func(i int) int {
		// Sizes were validated in the pre-pass; the error cannot recur.
		s, _ := polygonSize(m[i])
		return s
	})
	for _, p := range m {
		dst = appendPolygonPayload(dst, p)
	}
	return dst
}

// flatCollection is a geometry collection flattened to its three part
// kinds; nesting is not preserved.
type flatCollection struct {
	points   geom.MultiPoint
	lines    geom.MultiLineString
	polygons geom.MultiPolygon
}

func flatten(c geom.GeometryCollection) (flatCollection, error) {
	var fc flatCollection
	for _, g := range c {
		switch v := g.(type) {
		case geom.Point:
			fc.points = append(fc.points, v)
		case geom.MultiPoint:
			fc.points = append(fc.points, v...)
		case geom.LineString:
			fc.lines = append(fc.lines, v)
		case geom.MultiLineString:
			fc.lines = append(fc.lines, v...)
		case geom.Polygon:
			fc.polygons = append(fc.polygons, v)
		case geom.MultiPolygon:
			fc.polygons = append(fc.polygons, v...)
		case geom.GeometryCollection:
			sub, err := flatten(v)
			if err != nil {
				return fc, err
			}
			fc.points = append(fc.points, sub.points...)
			fc.lines = append(fc.lines, sub.lines...)
			fc.polygons = append(fc.polygons, sub.polygons...)
		default:
			return fc, fmt.Errorf("%w: %T in collection", ErrUnsupportedGeometry, g)
		}
	}
	return fc, nil
}

func (fc flatCollection) size() (int, error) {
	pts, err := multiPointSize(fc.points)
	if err != nil {
		return 0, err
	}
	lines, err := multiLineSize(fc.lines)
	if err != nil {
		return 0, err
	}
	polys, err := multiPolygonSize(fc.polygons)
	if err != nil {
		return 0, err
	}
	return wire.BoundsSize + 2*wire.U32Size + pts + lines + polys, nil
}

func appendCollectionPayload(dst []byte, fc flatCollection) []byte {
	bb := wire.EmptyBounds()
	extendBounds(&bb, fc.points)
	for _, l := range fc.lines {
		extendBounds(&bb, l)
	}
	for _, p := range fc.polygons {
		if len(p) > 0 {
			extendBounds(&bb, p[0])
		}
	}
	dst = wire.AppendBounds(dst, bb.Normalize())

	ptsSize, _ := multiPointSize(fc.points)
	linesSize, _ := multiLineSize(fc.lines)
	dst = wire.AppendU32(dst, uint32(ptsSize))
	dst = wire.AppendU32(dst, uint32(ptsSize+linesSize))

	dst = appendPointsPayload(dst, fc.points)
	dst = appendMultiLinePayload(dst, fc.lines)
	return appendMultiPolygonPayload(dst, fc.polygons)
}
