package geostore

import (
	"context"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/zerogeom/codec"
	"github.com/hupe1980/zerogeom/geostore/blobstore"
	"github.com/hupe1980/zerogeom/wire"
)

// Snapshot layout, little-endian:
//
//	[magic u32][version u32][compression u8][pad u8 x3]
//	[recordCount u32][nextID u32][blockLen u32]
//	[block ...]           compressed record stream
//	[checksum u32]        CRC32-IEEE of everything before it
//
// The record stream is [id u32][len u32][bytes] repeated. Kind bitmaps are
// rebuilt from the record tags on restore.
const (
	// snapshotMagic identifies snapshot blobs (ASCII "GEO1").
	snapshotMagic   = 0x47454F31
	snapshotVersion = 1

	snapshotHeaderSize = 24
)

// Snapshot serializes the whole store into one checksummed buffer.
func (s *Store) Snapshot(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return nil, ErrClosed
	}

	streamLen := 0
	for _, buf := range s.recs {
		streamLen += 8 + len(buf)
	}
	stream := make([]byte, 0, streamLen)
	it := s.ids.Iterator()
	for it.HasNext() {
		id := it.Next()
		buf := s.recs[id]
		stream = binary.LittleEndian.AppendUint32(stream, id)
		stream = binary.LittleEndian.AppendUint32(stream, uint32(len(buf)))
		stream = append(stream, buf...)
	}
	count := uint32(len(s.recs))
	nextID := s.nextID
	s.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	block, err := compressBlock(stream, s.opts.compression)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, snapshotHeaderSize+len(block)+4)
	out = binary.LittleEndian.AppendUint32(out, snapshotMagic)
	out = binary.LittleEndian.AppendUint32(out, snapshotVersion)
	out = append(out, byte(s.opts.compression), 0, 0, 0)
	out = binary.LittleEndian.AppendUint32(out, count)
	out = binary.LittleEndian.AppendUint32(out, nextID)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(block)))
	out = append(out, block...)
	out = binary.LittleEndian.AppendUint32(out, crc32.ChecksumIEEE(out))
	return out, nil
}

// Save writes a snapshot blob to the given backend.
func (s *Store) Save(ctx context.Context, bs blobstore.Store, name string) error {
	data, err := s.Snapshot(ctx)
	if err != nil {
		s.opts.logger.LogSnapshot(ctx, name, 0, err)
		return err
	}
	if err := bs.Put(ctx, name, data); err != nil {
		s.opts.logger.LogSnapshot(ctx, name, 0, err)
		return err
	}
	s.opts.logger.LogSnapshot(ctx, name, s.Len(), nil)
	return nil
}

// Restore rebuilds a Store from a snapshot buffer. Records are revalidated
// so a corrupt blob cannot poison the unchecked read path.
func Restore(data []byte, optFns ...Option) (*Store, error) {
	if len(data) < snapshotHeaderSize+4 {
		return nil, fmt.Errorf("%w: truncated header", ErrCorruptSnapshot)
	}

	body, trailer := data[:len(data)-4], data[len(data)-4:]
	if crc32.ChecksumIEEE(body) != binary.LittleEndian.Uint32(trailer) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptSnapshot)
	}

	if binary.LittleEndian.Uint32(body[0:]) != snapshotMagic {
		return nil, ErrInvalidMagic
	}
	if v := binary.LittleEndian.Uint32(body[4:]); v != snapshotVersion {
		return nil, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, v)
	}
	compression := Compression(body[8])
	if !compression.valid() {
		return nil, fmt.Errorf("%w: compression type %d", ErrCorruptSnapshot, compression)
	}
	count := binary.LittleEndian.Uint32(body[12:])
	nextID := binary.LittleEndian.Uint32(body[16:])
	blockLen := binary.LittleEndian.Uint32(body[20:])
	if uint32(len(body)-snapshotHeaderSize) != blockLen {
		return nil, fmt.Errorf("%w: block length mismatch", ErrCorruptSnapshot)
	}

	stream, err := decompressBlock(body[snapshotHeaderSize:], compression)
	if err != nil {
		return nil, err
	}

	s := New(optFns...)
	s.opts.compression = compression
	for i := uint32(0); i < count; i++ {
		if len(stream) < 8 {
			return nil, fmt.Errorf("%w: truncated record stream", ErrCorruptSnapshot)
		}
		id := binary.LittleEndian.Uint32(stream[0:])
		n := binary.LittleEndian.Uint32(stream[4:])
		stream = stream[8:]
		if uint32(len(stream)) < n {
			return nil, fmt.Errorf("%w: truncated record %d", ErrCorruptSnapshot, id)
		}
		buf := make([]byte, n)
		copy(buf, stream[:n])
		stream = stream[n:]

		if _, err := codec.TryFromBytes(buf); err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrCorruptSnapshot, id, err)
		}

		tag := wire.ReadTag(buf)
		s.recs[id] = buf
		s.ids.Add(id)
		kinds, ok := s.byKind[tag]
		if !ok {
			kinds = roaring.New()
			s.byKind[tag] = kinds
		}
		kinds.Add(id)
	}
	if len(stream) != 0 {
		return nil, fmt.Errorf("%w: trailing bytes after record stream", ErrCorruptSnapshot)
	}
	if !s.ids.IsEmpty() && nextID <= s.ids.Maximum() {
		return nil, fmt.Errorf("%w: next ID behind stored records", ErrCorruptSnapshot)
	}
	s.nextID = nextID
	return s, nil
}

// Load reads a snapshot blob from the given backend and rebuilds the
// store.
func Load(ctx context.Context, bs blobstore.Store, name string, optFns ...Option) (*Store, error) {
	blob, err := bs.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	data, err := blobstore.ReadAll(ctx, blob)
	if err != nil {
		return nil, err
	}

	s, err := Restore(data, optFns...)
	if err != nil {
		return nil, err
	}
	s.opts.logger.LogRestore(ctx, name, s.Len(), nil)
	return s, nil
}
