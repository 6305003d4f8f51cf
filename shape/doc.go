// Package shape provides the typed, non-owning views over encoded geometry
// payloads. A view borrows the buffer it was constructed from and copies
// nothing: every accessor resolves through the header offsets recorded at
// encode time, so addressing a named ring or part is O(1).
//
// Views are immutable and safe for concurrent use on the same buffer. A
// view must not outlive the buffer it borrows; lifetime of the backing
// bytes is the caller's (or the surrounding store's) responsibility.
//
// Constructors in this package trust their input. Use codec.TryFromBytes to
// validate bytes of unknown provenance first.
package shape
