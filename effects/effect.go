package effects

import "context"

// Effect is a deferred, fallible computation producing a value of type A.
// Nothing runs until the effect is applied to a context; the context carries
// cancellation into every step of the computation.
//
// An Effect value is immutable and reusable: applying it twice runs the
// computation twice, each run independent of the other.
type Effect[A any] func(context.Context) (A, error)

// Unit is the result type of effects run only for their side effects.
type Unit struct{}

// Pure lifts a plain value into an effect. The resulting effect never fails
// and has no side effects.
func Pure[A any](a A) Effect[A] {
	return func(_ context.Context) (A, error) {
		return a, nil
	}
}

// Raise returns an effect that always fails with err.
func Raise[A any](err error) Effect[A] {
	return func(_ context.Context) (A, error) {
		var zero A
		return zero, err
	}
}

// UnitEffect is the canonical no-op effect.
func UnitEffect() Effect[Unit] {
	return Pure(Unit{})
}
