// Package zerogeom provides a compact binary format for planar geometries
// with zero-copy reads and batched spatial predicate evaluation.
//
// # Quick Start
//
// Encode a geometry once, read it forever without parsing:
//
//	buf, _ := zerogeom.Encode(nil, geom.Polygon{{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 0, Y: 0}}})
//
//	g := zerogeom.FromBytes(buf)            // trusted bytes, no validation
//	g, err := zerogeom.TryFromBytes(buf)    // untrusted bytes, full validation
//
// The returned view borrows the buffer: no coordinate is copied, and every
// accessor reads straight from the encoded bytes. Keep the buffer alive for
// as long as the view is used.
//
// # Predicates
//
// Spatial predicates are evaluated in batches: one request names all the
// predicates the caller wants and one pass over the geometry pair answers
// them together.
//
//	ans := zerogeom.Relate(a, b, relate.Request{Contains: true, Intersects: true})
//	if ans.Contains.Value() { ... }
//
// # Storage
//
// The geostore package adds an in-memory record store over the format with
// parallel scans, versioned snapshots and pluggable blob backends (local
// files via mmap, S3, MinIO).
//
// # Format
//
// Every encoded geometry is a kind tag followed by a kind-specific payload.
// Multi-part payloads carry a bounding box and an offset table, so bounding
// boxes and individual parts are random-access. The layout is fixed
// little-endian and 8-byte aligned throughout.
package zerogeom
