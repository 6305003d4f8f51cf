// Package wire defines the binary layout shared by every encoded geometry:
// kind tags, header field widths, the coordinate payload format, and the
// low-level views (Coords, BoundingBox, Segment) that interpret payload
// bytes in place.
//
// All multi-byte fields are little-endian. Counts and offsets are uint32;
// the kind tag is widened to uint64 on the wire so the coordinate payload
// that follows stays 8-byte aligned. Coordinates are raw IEEE-754 float64
// pairs, x immediately followed by y, tightly packed. Reads go through
// encoding/binary and are valid at any alignment.
//
// Tag values are part of the on-disk format and must never be renumbered.
package wire
