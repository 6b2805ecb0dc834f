package replay

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/statedemo/internal/container/provider"
	"github.com/alexisbeaulieu97/statedemo/internal/container/store"
	"github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"
	"github.com/alexisbeaulieu97/statedemo/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/statedemo/internal/infrastructure/metrics"
	"github.com/alexisbeaulieu97/statedemo/internal/ports"
)

func ops(t *testing.T, names ...string) []appstate.Operation {
	t.Helper()
	parsed, err := appstate.ParseOperations(names)
	require.NoError(t, err)
	return parsed
}

func snap(count int, theme appstate.Theme) appstate.Snapshot {
	return appstate.Snapshot{Count: count, Theme: theme}
}

func TestParseVariant(t *testing.T) {
	tests := map[string]Variant{
		"":        VariantBoth,
		"both":    VariantBoth,
		"Context": VariantContext,
		" store ": VariantStore,
	}
	for input, want := range tests {
		got, err := ParseVariant(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseVariant("redux")
	require.Error(t, err)
}

func TestReplayBothContainersAgree(t *testing.T) {
	svc := NewService()
	sequence := ops(t, "increment", "increment", "increment", "decrement", "decrement", "decrement", "decrement", "decrement", "toggle", "toggle")

	result, err := svc.Replay(context.Background(), VariantBoth, sequence)
	require.NoError(t, err)
	require.Len(t, result.Traces, 2)

	want := []appstate.Snapshot{
		snap(0, appstate.ThemeLight),
		snap(1, appstate.ThemeLight),
		snap(2, appstate.ThemeLight),
		snap(3, appstate.ThemeLight),
		snap(2, appstate.ThemeLight),
		snap(1, appstate.ThemeLight),
		snap(0, appstate.ThemeLight),
		snap(-1, appstate.ThemeLight),
		snap(-2, appstate.ThemeLight),
		snap(-2, appstate.ThemeDark),
		snap(-2, appstate.ThemeLight),
	}
	for _, trace := range result.Traces {
		if diff := cmp.Diff(want, trace.Snapshots); diff != "" {
			t.Fatalf("%s snapshots mismatch (-want +got):\n%s", trace.Container, diff)
		}
		assert.Equal(t, 8, trace.Notifications[appstate.FieldCount], trace.Container)
		assert.Equal(t, 2, trace.Notifications[appstate.FieldTheme], trace.Container)
	}
	assert.Equal(t, provider.Name, result.Traces[0].Container)
	assert.Equal(t, store.Name, result.Traces[1].Container)
}

func TestReplayRejectsResetForContextBeforeRunning(t *testing.T) {
	publisher := events.NewLoggingPublisher(nil)
	transitions := 0
	_, err := publisher.Subscribe(ports.EventStateTransition, func(context.Context, ports.DomainEvent) error {
		transitions++
		return nil
	})
	require.NoError(t, err)

	svc := NewService(WithPublisher(publisher))
	result, err := svc.Replay(context.Background(), VariantBoth, ops(t, "increment", "reset"))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, appstate.HasCode(err, appstate.ErrCodeUnsupportedOperation))
	assert.Contains(t, err.Error(), "context container does not support reset")
	assert.Zero(t, transitions)
}

func TestReplayStoreOnlySupportsReset(t *testing.T) {
	result, err := NewService().Replay(context.Background(), VariantStore, ops(t, "inc", "inc", "reset"))
	require.NoError(t, err)
	require.Len(t, result.Traces, 1)
	assert.Equal(t, snap(0, appstate.ThemeLight), result.Traces[0].Final())
	assert.Equal(t, 3, result.Traces[0].Notifications[appstate.FieldCount])
}

func TestReplayWithFieldsCountsOnlyWatchedFields(t *testing.T) {
	svc := NewService(WithFields(appstate.FieldTheme, appstate.FieldTheme))
	result, err := svc.Replay(context.Background(), VariantBoth, ops(t, "inc", "toggle", "toggle"))
	require.NoError(t, err)
	for _, trace := range result.Traces {
		assert.Equal(t, map[appstate.Field]int{appstate.FieldTheme: 2}, trace.Notifications, trace.Container)
	}
}

func TestReplayEmptySequence(t *testing.T) {
	result, err := NewService().Replay(context.Background(), VariantBoth, nil)
	require.NoError(t, err)
	for _, trace := range result.Traces {
		assert.Equal(t, []appstate.Snapshot{appstate.InitialSnapshot()}, trace.Snapshots)
	}
}

func TestReplayFeedsMetrics(t *testing.T) {
	publisher := events.NewLoggingPublisher(nil)
	collector := metrics.NewCollector()
	_, err := collector.Observe(publisher)
	require.NoError(t, err)

	svc := NewService(WithPublisher(publisher))
	_, err = svc.Replay(context.Background(), VariantBoth, ops(t, "increment", "toggle"))
	require.NoError(t, err)

	transitions := func(container, operation string) float64 {
		return collector.CounterValue(metrics.TransitionsTotal, map[string]string{"container": container, "operation": operation})
	}
	assert.Equal(t, 1.0, transitions(provider.Name, "increment"))
	assert.Equal(t, 1.0, transitions(provider.Name, "toggle_theme"))
	assert.Equal(t, 1.0, transitions(store.Name, store.Increment().Type))
	assert.Equal(t, 1.0, transitions(store.Name, store.ToggleTheme().Type))
}

func TestTraceText(t *testing.T) {
	trace := Trace{Snapshots: []appstate.Snapshot{snap(0, appstate.ThemeLight), snap(-1, appstate.ThemeDark)}}
	assert.Equal(t, "0/light\n-1/dark\n", trace.Text())
	assert.Equal(t, appstate.InitialSnapshot(), Trace{}.Final())
}

func TestRunRequiresContainers(t *testing.T) {
	_, err := NewService().Run(context.Background(), nil)
	require.Error(t, err)
}

// skewed is a container that increments by two.
type skewed struct {
	count int
	subs  []func(appstate.Snapshot)
}

func (s *skewed) Name() string                       { return "skewed" }
func (s *skewed) Snapshot() appstate.Snapshot        { return snap(s.count, appstate.ThemeLight) }
func (s *skewed) Supports(op appstate.Operation) bool { return op == appstate.OpIncrement }
func (s *skewed) Apply(op appstate.Operation) bool {
	if op != appstate.OpIncrement {
		return false
	}
	s.count += 2
	for _, fn := range s.subs {
		fn(s.Snapshot())
	}
	return true
}
func (s *skewed) Subscribe(field appstate.Field, fn func(appstate.Snapshot)) func() {
	if field == appstate.FieldCount {
		s.subs = append(s.subs, fn)
	}
	return func() {}
}

func TestRunReportsDivergence(t *testing.T) {
	result, err := NewService().Run(context.Background(), ops(t, "increment", "increment"), provider.New(), &skewed{})
	require.Error(t, err)
	require.NotNil(t, result)
	assert.True(t, appstate.HasCode(err, appstate.ErrCodeDivergence))
	assert.Contains(t, err.Error(), "context and skewed diverged at step 1")

	var domainErr *appstate.DomainError
	require.ErrorAs(t, err, &domainErr)
	rendered, ok := domainErr.Context["diff"].(string)
	require.True(t, ok)
	assert.Contains(t, rendered, "--- context\n+++ skewed\n")
	assert.Contains(t, rendered, "-1/light")
	assert.Contains(t, rendered, "+4/light")
}

func TestCompareNotificationMismatch(t *testing.T) {
	base := []appstate.Snapshot{appstate.InitialSnapshot()}
	err := Compare([]Trace{
		{Container: "a", Snapshots: base, Notifications: map[appstate.Field]int{appstate.FieldCount: 1}},
		{Container: "b", Snapshots: base, Notifications: map[appstate.Field]int{appstate.FieldCount: 2}},
	})
	require.Error(t, err)
	assert.True(t, appstate.HasCode(err, appstate.ErrCodeDivergence))
	var domainErr *appstate.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Contains(t, domainErr.Context["diff"], "-count=1")
	assert.Contains(t, domainErr.Context["diff"], "+count=2")

	assert.NoError(t, Compare(nil))
	assert.NoError(t, Compare([]Trace{{Container: "solo"}}))
}

var _ ports.Container = (*skewed)(nil)
