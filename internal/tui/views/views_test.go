package views

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/statedemo/internal/container/provider"
	"github.com/alexisbeaulieu97/statedemo/internal/container/store"
	"github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"
)

func contextPage(t *testing.T) (*Page, *provider.Provider) {
	t.Helper()
	p := provider.New()
	page := NewContextPage(p.Attach(context.Background()))
	t.Cleanup(page.Close)
	return page, p
}

func storePage(t *testing.T) (*Page, *store.Store) {
	t.Helper()
	s := store.Configure()
	page := NewStorePage(s)
	t.Cleanup(page.Close)
	return page, s
}

func display(t *testing.T, page *Page, kind Kind) *Display {
	t.Helper()
	for _, d := range page.Displays() {
		if d.Kind() == kind {
			return d
		}
	}
	t.Fatalf("no %s display", kind)
	return nil
}

func TestContextPageRendersThroughProvider(t *testing.T) {
	page, p := contextPage(t)

	counter := display(t, page, KindCounter)
	theme := display(t, page, KindTheme)
	conditional := display(t, page, KindConditional)

	assert.Equal(t, "Counter (via Consume): 0", counter.Title())
	assert.Equal(t, "Theme (via Use): light", theme.Title())
	assert.Equal(t, []string{"Count is zero or negative: 0", "Current theme: light"}, conditional.Lines())

	require.True(t, page.Apply(appstate.OpIncrement))
	assert.Equal(t, 1, p.Snapshot().Count)
	assert.Equal(t, "Counter (via Consume): 1", counter.Title())
	assert.Equal(t, "Count is positive: 1", conditional.Lines()[0])
}

func TestContextPageHasNoReset(t *testing.T) {
	page, p := contextPage(t)
	require.True(t, page.Apply(appstate.OpIncrement))

	assert.False(t, page.Supports(appstate.OpReset))
	assert.False(t, page.Apply(appstate.OpReset))
	assert.Equal(t, 1, p.Snapshot().Count)

	labels := []string{}
	for _, b := range display(t, page, KindCounter).Buttons() {
		labels = append(labels, b.Label())
	}
	assert.Equal(t, []string{"[+] Increment", "[-] Decrement"}, labels)
}

func TestStorePageOffersReset(t *testing.T) {
	page, s := storePage(t)

	labels := []string{}
	for _, b := range display(t, page, KindCounter).Buttons() {
		labels = append(labels, b.Label())
	}
	assert.Equal(t, []string{"[+] Increment", "[-] Decrement", "[r] Reset"}, labels)

	require.True(t, page.Apply(appstate.OpDecrement))
	require.True(t, page.Apply(appstate.OpDecrement))
	assert.Equal(t, "Counter: -2", display(t, page, KindCounter).Title())
	require.True(t, page.Apply(appstate.OpReset))
	assert.Equal(t, 0, s.GetState().Counter.Count)
}

func TestRenderCountsFollowWatchedFields(t *testing.T) {
	for name, build := range map[string]func(*testing.T) *Page{
		"context": func(t *testing.T) *Page { page, _ := contextPage(t); return page },
		"store":   func(t *testing.T) *Page { page, _ := storePage(t); return page },
	} {
		t.Run(name, func(t *testing.T) {
			page := build(t)
			counter := display(t, page, KindCounter)
			theme := display(t, page, KindTheme)
			conditional := display(t, page, KindConditional)

			assert.Equal(t, 1, counter.Renders())
			assert.Equal(t, 1, theme.Renders())

			page.Apply(appstate.OpIncrement)
			page.Apply(appstate.OpIncrement)
			page.Apply(appstate.OpToggleTheme)

			assert.Equal(t, 3, counter.Renders())
			assert.Equal(t, 2, theme.Renders())
			assert.Equal(t, 4, conditional.Renders())

			counts := page.RenderCounts()
			require.Len(t, counts, 3)
			assert.Equal(t, "counter", counts[0].Name)
			assert.Equal(t, 3, counts[0].Count)
		})
	}
}

func TestStoreResetAtZeroDoesNotRender(t *testing.T) {
	page, _ := storePage(t)
	counter := display(t, page, KindCounter)

	page.Apply(appstate.OpReset)
	assert.Equal(t, 1, counter.Renders())
}

func TestCloseStopsRenderCounting(t *testing.T) {
	page, _ := storePage(t)
	counter := display(t, page, KindCounter)
	page.Close()

	page.Apply(appstate.OpIncrement)
	assert.Equal(t, 1, counter.Renders())
}

func TestContextSourceWithoutProviderFallsBack(t *testing.T) {
	page := NewContextPage(context.Background())
	defer page.Close()

	counter := display(t, page, KindCounter)
	assert.Equal(t, "Counter (via Consume): 0", counter.Title())

	assert.True(t, page.Apply(appstate.OpIncrement))
	assert.Equal(t, "Counter (via Consume): 0", counter.Title())
	assert.Equal(t, 1, counter.Renders())
}

func TestPageView(t *testing.T) {
	page, _ := storePage(t)
	view := page.View(60)

	assert.Contains(t, view, "Counter: 0")
	assert.Contains(t, view, "Theme: light")
	assert.Contains(t, view, "Conditional Display")
	assert.Contains(t, view, "[t] Toggle Theme")
	assert.Contains(t, view, "renders 1")
	assert.Equal(t, "Store with counter and theme slices", page.Title())
	assert.Equal(t, store.Name, page.Source().Variant())
}
