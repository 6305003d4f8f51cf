// Package geostore is an in-memory store of encoded geometry records with
// predicate scans and durable snapshots.
//
// Records are immutable encoded buffers keyed by a dense uint32 ID.
// Per-kind roaring bitmaps track which IDs hold which geometry kind, so
// scans can skip whole kinds without touching a record. Scans fan out over
// a worker pool and evaluate the requested predicates against every
// candidate record with zero-copy views.
//
// Snapshots serialize the whole store into one checksummed, optionally
// compressed blob. Any blobstore.Store backend can hold them: local files
// (read back via mmap), S3, MinIO, or memory in tests.
//
//	store := geostore.New(geostore.WithCompression(geostore.CompressionZSTD))
//	id, _ := store.Insert(ctx, geom.Point{X: 1, Y: 2})
//	matches, _ := store.Search(ctx, query, relate.Request{Intersects: true})
//	_ = store.Save(ctx, blobs, "snap-000001")
package geostore
