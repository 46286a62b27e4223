package resource

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// parZipped acquires two independent resources concurrently and holds both
// while the zipped value is in use.
type parZipped[A, B, C any] struct {
	left  Resource[A]
	right Resource[B]
	zip   func(A, B) C
}

// ParZip merges two independent resources, acquiring them in parallel. Both
// are held for the duration of the use phase and released once it finishes.
// If either side fails to acquire, the other side is cancelled: its release
// observes ExitCancelled and the failing side's error is the one surfaced.
func ParZip[A, B, C any](left Resource[A], right Resource[B], zip func(A, B) C) Resource[C] {
	return parZipped[A, B, C]{left: left, right: right, zip: zip}
}

func (p parZipped[A, B, C]) useWith(ctx context.Context, k func(context.Context, C) error) error {
	g, gctx := errgroup.WithContext(ctx)

	aCh := make(chan A, 1)
	bCh := make(chan B, 1)
	done := make(chan struct{})
	var kerr error

	// Each side runs its own full cycle in a goroutine: once acquired, it
	// parks the value and holds its bracket open until the rendezvous below
	// has run the continuation (or the group context is cancelled). The
	// bracket then closes with the continuation's error, so each side's
	// release observes the correct exit case.
	g.Go(func() error {
		return p.left.useWith(gctx, func(_ context.Context, a A) error {
			aCh <- a
			select {
			case <-done:
				return kerr
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	})
	g.Go(func() error {
		return p.right.useWith(gctx, func(_ context.Context, b B) error {
			bCh <- b
			select {
			case <-done:
				return kerr
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	})

	var a A
	var b B
	gotA, gotB := false, false
	for !gotA || !gotB {
		select {
		case a = <-aCh:
			gotA = true
		case b = <-bCh:
			gotB = true
		case <-gctx.Done():
			// one side failed to acquire; the other unwinds as cancelled
			return g.Wait()
		}
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				kerr = fmt.Errorf("panic during use: %v", r)
				close(done)
				// both sides must finish releasing before the panic unwinds
				_ = g.Wait()
				panic(r)
			}
			close(done)
		}()
		kerr = k(gctx, p.zip(a, b))
	}()

	return g.Wait()
}
