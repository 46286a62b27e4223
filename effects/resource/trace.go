package resource

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// traced wraps a resource with lifecycle logging.
type traced[A any] struct {
	inner  Resource[A]
	logger *zap.Logger
	name   string
}

// Traced instruments a resource with debug logging: invocation start,
// successful acquisition, and completion (with the error, if any). Each
// invocation gets its own id so overlapping cycles of the same resource can
// be told apart in the logs. The wrapped resource's semantics are unchanged.
func Traced[A any](r Resource[A], logger *zap.Logger, name string) Resource[A] {
	return traced[A]{inner: r, logger: logger, name: name}
}

func (t traced[A]) useWith(ctx context.Context, k func(context.Context, A) error) error {
	fields := []zap.Field{
		zap.String("resource", t.name),
		zap.String("invocationId", uuid.New().String()),
	}
	t.logger.Debug("resource invocation started", fields...)

	err := t.inner.useWith(ctx, func(ctx context.Context, a A) error {
		t.logger.Debug("resource acquired", fields...)
		return k(ctx, a)
	})

	if err != nil {
		t.logger.Debug("resource invocation failed", append(fields, zap.Error(err))...)
		return err
	}
	t.logger.Debug("resource invocation completed", fields...)
	return nil
}
