// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvgeom/numeric"
	"github.com/katalvlaran/lvgeom/vector3"
)

// Convert resolves every point to a Cartesian vector, preserving order.
//
// Work is spread over at most WithWorkers goroutines. See the package
// documentation for the failure policy.
func Convert[T numeric.Float](ctx context.Context, points []Point[T], opts ...Option) ([]vector3.Vector3[T], error) {
	o := gatherOptions(opts...)
	out := make([]vector3.Vector3[T], len(points))

	var (
		mu      sync.Mutex
		records []*RecordError
		first   *RecordError
		// lowest failing index seen so far; len(points) means none.
		minFail atomic.Int64
	)
	minFail.Store(int64(len(points)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := range points {
		if gctx.Err() != nil {
			break
		}
		if o.failFast && int64(i) > minFail.Load() {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if o.failFast && int64(i) > minFail.Load() {
				return nil
			}
			v, err := points[i].Resolve()
			if err != nil {
				rec := &RecordError{Index: i, Err: err}
				o.logger.Warn("point rejected",
					zap.Int("index", i),
					zap.String("form", points[i].Form()),
					zap.Error(err))
				mu.Lock()
				if o.failFast {
					if first == nil || i < first.Index {
						first = rec
						minFail.Store(int64(i))
					}
				} else {
					records = append(records, rec)
				}
				mu.Unlock()
				return nil
			}
			out[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if first != nil {
		return nil, first
	}

	o.logger.Debug("batch converted",
		zap.Int("points", len(points)),
		zap.Int("rejected", len(records)),
		zap.Stringer("kind", numeric.KindOf[T]()),
		zap.Int("workers", o.workers))

	if len(records) == 0 {
		return out, nil
	}
	sort.Slice(records, func(a, b int) bool { return records[a].Index < records[b].Index })
	errs := make([]error, len(records))
	for i, rec := range records {
		errs[i] = rec
	}

	return out, errors.Join(errs...)
}
