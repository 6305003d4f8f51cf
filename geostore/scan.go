package geostore

import (
	"context"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/zerogeom/relate"
	"github.com/hupe1980/zerogeom/shape"
	"github.com/hupe1980/zerogeom/wire"
)

// Match is one scan hit: the record ID and the evaluated predicates of the
// record relative to the query.
type Match struct {
	ID     uint32
	Answer relate.Answer
}

// Scan evaluates the requested predicates of every candidate record
// against query and calls fn for each record where at least one positive
// predicate holds. Candidates come from the kind filter, or the whole
// store when no kinds are given.
//
// Workers run in parallel; fn is serialized and must not call back into
// methods that take the store lock for writing. Returning false from fn
// stops the scan.
func (s *Store) Scan(ctx context.Context, query shape.Geometry, req relate.Request, fn func(Match) bool, kinds ...wire.Tag) error {
	var candidates *roaring.Bitmap
	if len(kinds) > 0 {
		candidates = s.KindIDs(kinds...)
	} else {
		candidates = s.IDs()
	}

	ids := candidates.ToArray()
	if len(ids) == 0 {
		s.opts.logger.LogScan(ctx, 0, 0, nil)
		return nil
	}

	workers := s.opts.parallelism
	if workers > len(ids) {
		workers = len(ids)
	}
	chunk := (len(ids) + workers - 1) / workers

	var (
		mu      sync.Mutex
		matched int
		stopped bool
	)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(ids) {
			hi = len(ids)
		}
		part := ids[lo:hi]

		g.Go(func() error {
			for _, id := range part {
				if err := gctx.Err(); err != nil {
					return err
				}
				if s.opts.limiter != nil {
					if err := s.opts.limiter.Wait(gctx); err != nil {
						return err
					}
				}

				rec, err := s.Get(id)
				if err != nil {
					// Deleted between candidate selection and evaluation.
					continue
				}
				ans := relate.Relate(rec, query, req)
				if !ans.AnyPositive() {
					continue
				}

				mu.Lock()
				if stopped {
					mu.Unlock()
					return nil
				}
				matched++
				if !fn(Match{ID: id, Answer: ans}) {
					stopped = true
					mu.Unlock()
					return nil
				}
				mu.Unlock()
			}
			return nil
		})
	}

	err := g.Wait()
	s.opts.logger.LogScan(ctx, len(ids), matched, err)
	return err
}

// Search runs Scan and collects the matching IDs into a bitmap.
func (s *Store) Search(ctx context.Context, query shape.Geometry, req relate.Request, kinds ...wire.Tag) (*roaring.Bitmap, error) {
	out := roaring.New()
	err := s.Scan(ctx, query, req, func(m Match) bool {
		out.Add(m.ID)
		return true
	}, kinds...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
