package effects

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// BracketCase runs acquire, then use, then release, guaranteeing that release
// runs exactly once after use whenever acquire succeeded — no matter whether
// use returned normally, failed, was cancelled, or panicked (the panic is
// resumed after release).
//
// Contract:
//   - acquire failure propagates as-is; use and release never run.
//   - release observes an ExitCase faithful to how use concluded.
//   - release runs on a context detached from cancellation, so the
//     cancellation that interrupted use cannot starve its own cleanup.
//   - if both use and release fail, the errors are aggregated with the use
//     error first; neither is dropped. If only release fails, its error
//     propagates.
func BracketCase[A, C any](
	acquire Effect[A],
	release func(A, ExitCase) Effect[Unit],
	use func(A) Effect[C],
) Effect[C] {
	return func(ctx context.Context) (C, error) {
		var zero C
		a, err := acquire(ctx)
		if err != nil {
			return zero, err
		}

		var c C
		var useErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					exit := ExitErrored{Err: fmt.Errorf("panic during use: %v", r)}
					if _, relErr := release(a, exit)(context.WithoutCancel(ctx)); relErr != nil {
						panic(fmt.Errorf("%v; release also failed: %w", r, relErr))
					}
					panic(r)
				}
			}()
			c, useErr = use(a)(ctx)
		}()

		_, relErr := release(a, exitCaseFor(ctx, useErr))(context.WithoutCancel(ctx))
		if useErr != nil {
			return zero, multierr.Append(useErr, relErr)
		}
		if relErr != nil {
			return zero, relErr
		}
		return c, nil
	}
}

// Bracket is BracketCase with an outcome-blind release.
func Bracket[A, C any](
	acquire Effect[A],
	release func(A) Effect[Unit],
	use func(A) Effect[C],
) Effect[C] {
	return BracketCase(acquire, func(a A, _ ExitCase) Effect[Unit] {
		return release(a)
	}, use)
}

// GuaranteeCase attaches a finalizer to an effect; the finalizer observes how
// the effect concluded. There is nothing to acquire, so the finalizer always
// runs.
func GuaranteeCase[A any](fa Effect[A], finalizer func(ExitCase) Effect[Unit]) Effect[A] {
	return BracketCase(
		UnitEffect(),
		func(_ Unit, exit ExitCase) Effect[Unit] { return finalizer(exit) },
		func(Unit) Effect[A] { return fa },
	)
}

// Guarantee attaches an outcome-blind finalizer to an effect.
func Guarantee[A any](fa Effect[A], finalizer Effect[Unit]) Effect[A] {
	return GuaranteeCase(fa, func(ExitCase) Effect[Unit] { return finalizer })
}

// exitCaseFor classifies the conclusion of a use phase. Cancellation wins
// over a plain error: if the context is done, or the error unwraps to a
// context error, the invocation counts as cancelled.
func exitCaseFor(ctx context.Context, useErr error) ExitCase {
	switch {
	case useErr == nil:
		return ExitCompleted{}
	case ctx.Err() != nil,
		errors.Is(useErr, context.Canceled),
		errors.Is(useErr, context.DeadlineExceeded):
		return ExitCancelled{}
	default:
		return ExitErrored{Err: useErr}
	}
}
