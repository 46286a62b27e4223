package resource

import (
	"context"

	"github.com/AgustaRC/arrow/effects"
)

// Resource is a reusable description of how to acquire, use, and release a
// value of type A. It is a recipe, not a live resource: constructing or
// composing resources runs nothing, and a single Resource value may be
// invoked any number of times, each invocation being an independent
// acquire/use/release cycle.
//
// The interface is sealed: the only implementations are the variants in this
// package, dispatched through useWith.
type Resource[A any] interface {
	// useWith runs one full cycle: acquire whatever this resource describes,
	// feed the value to k, and release it after k returns — release order
	// across a composition is the exact reverse of acquisition order, by
	// construction of the nested brackets.
	useWith(ctx context.Context, k func(context.Context, A) error) error
}

// primitive holds explicit acquire and release steps. Its cycle is a single
// bracket call.
type primitive[A any] struct {
	acquire effects.Effect[A]
	release func(A, effects.ExitCase) effects.Effect[effects.Unit]
}

func (p primitive[A]) useWith(ctx context.Context, k func(context.Context, A) error) error {
	_, err := effects.BracketCase(
		p.acquire,
		p.release,
		func(a A) effects.Effect[effects.Unit] {
			return func(ctx context.Context) (effects.Unit, error) {
				return effects.Unit{}, k(ctx, a)
			}
		},
	)(ctx)
	return err
}

// lifted wraps a bare effect; there is nothing to release.
type lifted[A any] struct {
	fa effects.Effect[A]
}

func (l lifted[A]) useWith(ctx context.Context, k func(context.Context, A) error) error {
	a, err := l.fa(ctx)
	if err != nil {
		return err
	}
	return k(ctx, a)
}

// mapped applies a pure function to an inner resource's value, inheriting the
// inner release behavior untouched.
type mapped[B, A any] struct {
	inner Resource[B]
	f     func(B) A
}

func (m mapped[B, A]) useWith(ctx context.Context, k func(context.Context, A) error) error {
	return m.inner.useWith(ctx, func(ctx context.Context, b B) error {
		return k(ctx, m.f(b))
	})
}

// chained sequences a resource with a dependent resource. The dependent's
// whole cycle runs inside the inner's use phase, so the dependent releases
// before the inner does — and a failing dependent acquisition surfaces to the
// inner bracket as a use error, releasing the inner with ExitErrored.
type chained[B, A any] struct {
	inner Resource[B]
	f     func(B) Resource[A]
}

func (c chained[B, A]) useWith(ctx context.Context, k func(context.Context, A) error) error {
	return c.inner.useWith(ctx, func(ctx context.Context, b B) error {
		return c.f(b).useWith(ctx, k)
	})
}

// combined merges two independently acquired resources of the same value
// type: left acquired first, right released first.
type combined[A any] struct {
	left    Resource[A]
	right   Resource[A]
	combine func(A, A) A
}

func (c combined[A]) useWith(ctx context.Context, k func(context.Context, A) error) error {
	return c.left.useWith(ctx, func(ctx context.Context, l A) error {
		return c.right.useWith(ctx, func(ctx context.Context, r A) error {
			return k(ctx, c.combine(l, r))
		})
	})
}
