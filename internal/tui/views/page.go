package views

import (
	"context"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/statedemo/internal/container/store"
	"github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"
	"github.com/alexisbeaulieu97/statedemo/internal/tui/components"
)

// Page is one container variant rendered as three displays.
type Page struct {
	title    string
	source   Source
	displays []*Display
}

// NewPage builds the counter, theme and conditional displays over source.
func NewPage(title string, source Source) *Page {
	return &Page{
		title:  title,
		source: source,
		displays: []*Display{
			NewCounterDisplay(source),
			NewThemeDisplay(source),
			NewConditionalDisplay(source),
		},
	}
}

// NewContextPage renders the provider attached to ctx.
func NewContextPage(ctx context.Context) *Page {
	return NewPage("Context provider with Consume and Use", ContextSource(ctx))
}

// NewStorePage renders s.
func NewStorePage(s *store.Store) *Page {
	return NewPage("Store with counter and theme slices", StoreSource(s))
}

// Title returns the page heading.
func (p *Page) Title() string { return p.title }

// Source returns the page's source.
func (p *Page) Source() Source { return p.source }

// Displays returns the page's displays in render order.
func (p *Page) Displays() []*Display {
	return append([]*Display(nil), p.displays...)
}

// Apply forwards op to the page's source.
func (p *Page) Apply(op appstate.Operation) bool {
	return p.source.Apply(op)
}

// Supports reports whether the page offers op.
func (p *Page) Supports(op appstate.Operation) bool {
	return supports(p.source, op)
}

// RenderCounts reports every display's render count.
func (p *Page) RenderCounts() []components.RenderCount {
	counts := make([]components.RenderCount, 0, len(p.displays))
	for _, d := range p.displays {
		counts = append(counts, components.RenderCount{Name: string(d.Kind()), Count: d.Renders()})
	}
	return counts
}

// View stacks the displays vertically.
func (p *Page) View(width int) string {
	views := make([]string, 0, len(p.displays))
	for _, d := range p.displays {
		views = append(views, d.View(width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

// Close drops every display subscription.
func (p *Page) Close() {
	for _, d := range p.displays {
		d.Close()
	}
}
