package wire

import "fmt"

// Coord is one x,y coordinate pair.
type Coord struct {
	X float64
	Y float64
}

// Finite reports whether both components are finite (not NaN, not ±Inf).
func (c Coord) Finite() bool {
	// x == x is false only for NaN; the subtraction turns ±Inf into NaN.
	return c.X-c.X == 0 && c.Y-c.Y == 0
}

func (c Coord) String() string {
	return fmt.Sprintf("(%g, %g)", c.X, c.Y)
}

// Coords is a read-only view over a tightly packed coordinate payload.
// It holds the backing bytes, never a decoded copy; every accessor reads
// straight from the buffer.
type Coords struct {
	b []byte
}

// CoordsFromBytes interprets b as a coordinate payload. The caller
// guarantees len(b) is a multiple of CoordSize.
func CoordsFromBytes(b []byte) Coords {
	return Coords{b: b}
}

// Len returns the number of coordinate pairs.
func (c Coords) Len() int {
	return len(c.b) / CoordSize
}

// IsEmpty reports whether the payload holds no coordinates.
func (c Coords) IsEmpty() bool {
	return len(c.b) == 0
}

// At returns the i-th coordinate pair.
func (c Coords) At(i int) Coord {
	off := i * CoordSize
	return Coord{
		X: ReadFloat(c.b[off:]),
		Y: ReadFloat(c.b[off+8:]),
	}
}

// Segment returns the segment from coordinate i to coordinate i+1.
func (c Coords) Segment(i int) Segment {
	return Segment{A: c.At(i), B: c.At(i + 1)}
}

// NumSegments returns the number of consecutive coordinate pairs.
func (c Coords) NumSegments() int {
	if n := c.Len(); n > 1 {
		return n - 1
	}
	return 0
}

// Bytes returns the backing payload bytes.
func (c Coords) Bytes() []byte {
	return c.b
}

// AppendCoord appends one coordinate pair to dst in wire format.
func AppendCoord(dst []byte, x, y float64) []byte {
	dst = AppendFloat(dst, x)
	return AppendFloat(dst, y)
}
