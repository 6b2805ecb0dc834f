package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"
)

func TestUseWithoutProviderFallsBackToDefault(t *testing.T) {
	v := Use(context.Background())
	require.Equal(t, appstate.InitialSnapshot(), v.Snapshot())

	// Mutators are inert rather than panicking.
	v.Increment()
	v.Decrement()
	v.ToggleTheme()
	require.Equal(t, appstate.InitialSnapshot(), Use(context.Background()).Snapshot())

	var missing context.Context
	_, ok := FromContext(missing)
	require.False(t, ok)
}

func TestUseReadsAttachedProvider(t *testing.T) {
	p := New()
	ctx := p.Attach(context.Background())

	Use(ctx).Increment()
	Use(ctx).ToggleTheme()

	require.Equal(t, appstate.Snapshot{Count: 1, Theme: appstate.ThemeDark}, Use(ctx).Snapshot())

	found, ok := FromContext(ctx)
	require.True(t, ok)
	require.Same(t, p, found)
}

func TestNestedProvidersShadowOuter(t *testing.T) {
	outer := New()
	inner := New()
	ctx := inner.Attach(outer.Attach(context.Background()))

	Use(ctx).Increment()
	require.Equal(t, 1, inner.Snapshot().Count)
	require.Equal(t, 0, outer.Snapshot().Count)
}

func TestConsumePassesCurrentBundle(t *testing.T) {
	p := New()
	p.Apply(appstate.OpDecrement)
	ctx := p.Attach(context.Background())

	var seen Value
	Consume(ctx, func(v Value) { seen = v })
	require.Equal(t, -1, seen.Count)

	Consume(ctx, nil)
}
