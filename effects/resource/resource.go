package resource

import (
	"context"

	"github.com/AgustaRC/arrow/effects"
)

// CaseOf constructs a resource from an acquire effect and an outcome-aware
// release. The release observes how the use phase concluded, which is the
// hook for commit-versus-rollback style cleanup.
func CaseOf[A any](
	acquire effects.Effect[A],
	release func(A, effects.ExitCase) effects.Effect[effects.Unit],
) Resource[A] {
	return primitive[A]{acquire: acquire, release: release}
}

// Of constructs a resource from an acquire effect and an outcome-blind
// release: every exit case is cleaned up the same way.
func Of[A any](
	acquire effects.Effect[A],
	release func(A) effects.Effect[effects.Unit],
) Resource[A] {
	return CaseOf(acquire, func(a A, _ effects.ExitCase) effects.Effect[effects.Unit] {
		return release(a)
	})
}

// LiftF wraps a bare effect as a resource with a no-op release.
func LiftF[A any](fa effects.Effect[A]) Resource[A] {
	return lifted[A]{fa: fa}
}

// Just is a resource immediately yielding a pure value, with no release.
func Just[A any](a A) Resource[A] {
	return LiftF(effects.Pure(a))
}

// EmptyOf is a resource yielding the identity element of a combinable value
// type, with no release. Combining any resource with EmptyOf of its type's
// identity leaves the resource's value unchanged.
func EmptyOf[A any](identity A) Resource[A] {
	return Just(identity)
}

// Map transforms the value a resource yields with a pure function. Release
// behavior is inherited from the receiver untouched, so mapping never changes
// how often or in what order anything is released.
func Map[A, B any](r Resource[A], f func(A) B) Resource[B] {
	return mapped[A, B]{inner: r, f: f}
}

// FlatMap sequences r with a dependent resource: f may use r's value to
// decide what to acquire next. Acquisition runs inner-then-dependent and
// release runs dependent-then-inner, transitively through chains of any
// depth. Nothing is evaluated until the composed resource is invoked.
func FlatMap[A, B any](r Resource[A], f func(A) Resource[B]) Resource[B] {
	return chained[A, B]{inner: r, f: f}
}

// Ap applies a resource-held function to a resource-held value: rf's cycle
// runs first, ra's nested inside it. No release semantics beyond the
// composition of the two operands.
func Ap[A, B any](rf Resource[func(A) B], ra Resource[A]) Resource[B] {
	return FlatMap(rf, func(f func(A) B) Resource[B] {
		return Map(ra, f)
	})
}

// Combine merges two independently acquired resources of a combinable value
// type into one. The combining function should be associative. left is
// acquired first and released last.
func Combine[A any](left, right Resource[A], combine func(A, A) A) Resource[A] {
	return combined[A]{left: left, right: right, combine: combine}
}

// Use runs one full acquire/use/release cycle: acquire everything r
// describes, feed the resolved value to use, then release in reverse
// acquisition order. The returned effect is deferred and reusable like any
// other; each run is an independent cycle.
//
// The resolved value is owned by the use continuation for the duration of
// the call — retaining it beyond the continuation defeats the release
// guarantee.
//
// Errors from any acquire, use, or release step propagate per the bracket
// contract; Use itself never catches or reorders them.
func Use[A, C any](r Resource[A], use func(A) effects.Effect[C]) effects.Effect[C] {
	return func(ctx context.Context) (C, error) {
		var out C
		err := r.useWith(ctx, func(ctx context.Context, a A) error {
			c, err := use(a)(ctx)
			if err != nil {
				return err
			}
			out = c
			return nil
		})
		if err != nil {
			var zero C
			return zero, err
		}
		return out, nil
	}
}
