// Package codec converts between the rich geometry model
// (github.com/ctessum/geom) and the flat, self-describing buffer format
// interpreted by package shape.
//
// Encode sizes the output in a pre-pass over the input, grows the sink
// exactly once, and then writes tag, headers and coordinates front to back;
// nothing is backpatched. Decoding has two entry points with different
// trust levels: TryFromBytes validates the tag and every header field
// against the buffer bounds and is safe on arbitrary bytes, FromBytes
// skips validation and is only correct on buffers produced by this codec
// and stored unmodified, the hot path for bytes round-tripped through a
// trusted store.
package codec
