package geostore

import (
	"context"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/ctessum/geom"

	"github.com/hupe1980/zerogeom/codec"
	"github.com/hupe1980/zerogeom/shape"
	"github.com/hupe1980/zerogeom/wire"
)

// Store holds encoded geometry records in memory. All methods are safe for
// concurrent use.
type Store struct {
	opts storeOptions

	mu     sync.RWMutex
	closed bool
	recs   map[uint32][]byte
	ids    *roaring.Bitmap
	byKind map[wire.Tag]*roaring.Bitmap
	nextID uint32
}

// New creates an empty Store.
func New(optFns ...Option) *Store {
	opts := defaultStoreOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Store{
		opts:   opts,
		recs:   make(map[uint32][]byte),
		ids:    roaring.New(),
		byKind: make(map[wire.Tag]*roaring.Bitmap),
	}
}

// Insert encodes g and stores it, returning the new record ID.
func (s *Store) Insert(ctx context.Context, g geom.Geom) (uint32, error) {
	buf, err := codec.Encode(nil, g)
	if err != nil {
		s.opts.logger.ErrorContext(ctx, "insert failed", "error", err)
		return 0, err
	}
	return s.insert(ctx, buf)
}

// InsertEncoded validates an already-encoded buffer and stores a copy of
// it.
func (s *Store) InsertEncoded(ctx context.Context, buf []byte) (uint32, error) {
	if _, err := codec.TryFromBytes(buf); err != nil {
		return 0, err
	}
	owned := make([]byte, len(buf))
	copy(owned, buf)
	return s.insert(ctx, owned)
}

// insert takes ownership of buf, which must be a valid encoded geometry.
func (s *Store) insert(ctx context.Context, buf []byte) (uint32, error) {
	tag := wire.ReadTag(buf)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return 0, ErrClosed
	}
	id := s.nextID
	s.nextID++
	s.recs[id] = buf
	s.ids.Add(id)
	kinds, ok := s.byKind[tag]
	if !ok {
		kinds = roaring.New()
		s.byKind[tag] = kinds
	}
	kinds.Add(id)
	s.mu.Unlock()

	s.opts.logger.LogInsert(ctx, id, tag, nil)
	return id, nil
}

// Get returns the zero-copy view of a record. The view borrows the stored
// buffer and stays valid until the record is deleted.
func (s *Store) Get(id uint32) (shape.Geometry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return shape.Geometry{}, ErrClosed
	}
	buf, ok := s.recs[id]
	if !ok {
		return shape.Geometry{}, ErrNotFound
	}
	return shape.FromBuffer(buf), nil
}

// Raw returns the encoded bytes of a record. The slice must not be
// modified.
func (s *Store) Raw(id uint32) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}
	buf, ok := s.recs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return buf, nil
}

// Delete removes a record.
func (s *Store) Delete(id uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	buf, ok := s.recs[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.recs, id)
	s.ids.Remove(id)
	if kinds, ok := s.byKind[wire.ReadTag(buf)]; ok {
		kinds.Remove(id)
	}
	return nil
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recs)
}

// IDs returns a snapshot of all record IDs.
func (s *Store) IDs() *roaring.Bitmap {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return roaring.New()
	}
	return s.ids.Clone()
}

// KindIDs returns a snapshot of the record IDs holding the given kinds.
func (s *Store) KindIDs(tags ...wire.Tag) *roaring.Bitmap {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return roaring.New()
	}
	sets := make([]*roaring.Bitmap, 0, len(tags))
	for _, t := range tags {
		if b, ok := s.byKind[t]; ok {
			sets = append(sets, b)
		}
	}
	if len(sets) == 0 {
		return roaring.New()
	}
	return roaring.FastOr(sets...)
}

// Close releases the store. Further operations return ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	s.recs = nil
	s.ids = nil
	s.byKind = nil
	return nil
}
