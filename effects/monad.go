package effects

import "context"

// Sequencing over Effect. Map/FlatMap/Then are the standard operations the
// resource combinators thread their continuations through; none of them
// recover from errors, a failing step short-circuits the rest.

// Map applies a pure function to the result of an effect.
func Map[A, B any](fa Effect[A], f func(A) B) Effect[B] {
	return func(ctx context.Context) (B, error) {
		a, err := fa(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}
}

// FlatMap sequences two effects, the second depending on the first's result.
func FlatMap[A, B any](fa Effect[A], f func(A) Effect[B]) Effect[B] {
	return func(ctx context.Context) (B, error) {
		a, err := fa(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a)(ctx)
	}
}

// Then sequences two effects, discarding the first result.
func Then[A, B any](fa Effect[A], fb Effect[B]) Effect[B] {
	return func(ctx context.Context) (B, error) {
		if _, err := fa(ctx); err != nil {
			var zero B
			return zero, err
		}
		return fb(ctx)
	}
}
