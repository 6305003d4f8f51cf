package wire

import "math"

// BoundingBox is the axis-aligned rectangle stored in front of every
// non-point shape: min corner first, max corner second. Bounds checks are
// inclusive on all four edges.
type BoundingBox struct {
	Min Coord
	Max Coord
}

// BoundsFromBytes reads a bounding box from the first BoundsSize bytes of b.
func BoundsFromBytes(b []byte) BoundingBox {
	return BoundingBox{
		Min: Coord{X: ReadFloat(b), Y: ReadFloat(b[8:])},
		Max: Coord{X: ReadFloat(b[16:]), Y: ReadFloat(b[24:])},
	}
}

// AppendBounds appends bb to dst in wire format.
func AppendBounds(dst []byte, bb BoundingBox) []byte {
	dst = AppendCoord(dst, bb.Min.X, bb.Min.Y)
	return AppendCoord(dst, bb.Max.X, bb.Max.Y)
}

// EmptyBounds returns the identity element for Extend. An empty geometry is
// serialized with a zero bounding box instead (see Normalize).
func EmptyBounds() BoundingBox {
	return BoundingBox{
		Min: Coord{X: math.Inf(1), Y: math.Inf(1)},
		Max: Coord{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Extend grows the box to cover c.
func (bb *BoundingBox) Extend(c Coord) {
	bb.Min.X = math.Min(bb.Min.X, c.X)
	bb.Min.Y = math.Min(bb.Min.Y, c.Y)
	bb.Max.X = math.Max(bb.Max.X, c.X)
	bb.Max.Y = math.Max(bb.Max.Y, c.Y)
}

// Normalize maps the never-extended identity box to the zero box that the
// wire format uses for empty shapes.
func (bb BoundingBox) Normalize() BoundingBox {
	if bb.Min.X > bb.Max.X {
		return BoundingBox{}
	}
	return bb
}

// Contains reports whether c lies inside the box, edges included.
func (bb BoundingBox) Contains(c Coord) bool {
	return c.X >= bb.Min.X && c.X <= bb.Max.X && c.Y >= bb.Min.Y && c.Y <= bb.Max.Y
}

// ContainsBounds reports whether other lies fully inside the box.
func (bb BoundingBox) ContainsBounds(other BoundingBox) bool {
	return bb.Contains(other.Min) && bb.Contains(other.Max)
}

// Disjoint reports whether the two boxes share no point.
func (bb BoundingBox) Disjoint(other BoundingBox) bool {
	return bb.Min.X > other.Max.X || bb.Max.X < other.Min.X ||
		bb.Min.Y > other.Max.Y || bb.Max.Y < other.Min.Y
}

// Intersects reports whether the two boxes share at least one point.
func (bb BoundingBox) Intersects(other BoundingBox) bool {
	return !bb.Disjoint(other)
}
