package resource_test

import (
	"context"
	"errors"
	"testing"

	"github.com/AgustaRC/arrow/effects"
	"github.com/AgustaRC/arrow/effects/resource"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestTraced_LogsLifecycleWithoutChangingSemantics(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := newLifecycleLog()

	traced := resource.Traced(l.tracked(1), zap.New(core), "db-conn")
	v, err := resource.Use(traced, func(n int) effects.Effect[int] {
		return effects.Pure(n * 10)
	})(context.Background())
	require.NoError(t, err)
	require.Equal(t, 10, v)
	require.Equal(t, []int{1}, l.order("acquire"))
	require.Equal(t, []int{1}, l.order("release"))

	var messages []string
	for _, entry := range logs.All() {
		require.Equal(t, "db-conn", entry.ContextMap()["resource"])
		messages = append(messages, entry.Message)
	}
	require.Equal(t, []string{
		"resource invocation started",
		"resource acquired",
		"resource invocation completed",
	}, messages)
}

func TestTraced_LogsFailureWithError(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	errUse := errors.New("use failed")
	l := newLifecycleLog()

	traced := resource.Traced(l.tracked(1), zap.New(core), "db-conn")
	_, err := resource.Use(traced, func(int) effects.Effect[int] {
		return effects.Raise[int](errUse)
	})(context.Background())
	require.ErrorIs(t, err, errUse)
	require.Equal(t, []int{1}, l.order("release"), "tracing must not interfere with release")

	entries := logs.FilterMessage("resource invocation failed").All()
	require.Len(t, entries, 1)
	// the observer's map encoder renders zap.Error fields as strings
	require.Equal(t, errUse.Error(), entries[0].ContextMap()["error"])
}

func TestTraced_DistinguishesInvocations(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := newLifecycleLog()

	run := resource.Use(resource.Traced(l.tracked(1), zap.New(core), "db-conn"), func(n int) effects.Effect[int] {
		return effects.Pure(n)
	})
	_, err := run(context.Background())
	require.NoError(t, err)
	_, err = run(context.Background())
	require.NoError(t, err)

	started := logs.FilterMessage("resource invocation started").All()
	require.Len(t, started, 2)
	require.NotEqual(t,
		started[0].ContextMap()["invocationId"],
		started[1].ContextMap()["invocationId"],
	)
}
