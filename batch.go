package ell2

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Point is an affine (u, v) pair produced by the map.
type Point[E any] struct {
	U, V E
}

// MapBatch applies DirectMap to every element of rs using at most workers
// goroutines (GOMAXPROCS when workers <= 0). The result is in input order.
//
// If ctx is done before every input has been mapped, MapBatch returns
// ctx.Err() and no points. A cancellation that arrives after the last input
// was mapped does not discard the result. An *InvariantError raised by the
// map is not recovered.
func MapBatch[E any](ctx context.Context, p *CurveParams[E], rs []E, workers int) ([]Point[E], error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]Point[E], len(rs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	var stopped error
	for i := range rs {
		if err := gctx.Err(); err != nil {
			stopped = err
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i].U, out[i].V = DirectMap(p, rs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.WithStack(err)
	}
	if stopped != nil {
		return nil, errors.WithStack(stopped)
	}

	log.WithFields(logrus.Fields{
		"points":  len(out),
		"workers": workers,
	}).Trace("batch mapped")
	return out, nil
}
