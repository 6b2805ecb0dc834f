package views

import (
	"fmt"
	"sync/atomic"

	"github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"
	"github.com/alexisbeaulieu97/statedemo/internal/reactive"
	"github.com/alexisbeaulieu97/statedemo/internal/tui/components"
)

// Kind names a display.
type Kind string

const (
	KindCounter     Kind = "counter"
	KindTheme       Kind = "theme"
	KindConditional Kind = "conditional"
)

// Display renders one card of a container page. It counts a render when it
// is created and once more for every notification of a field it watches.
type Display struct {
	kind    Kind
	source  Source
	fields  []appstate.Field
	renders atomic.Int64
	subs    reactive.Subscriptions
}

func newDisplay(kind Kind, source Source, fields ...appstate.Field) *Display {
	d := &Display{kind: kind, source: source, fields: fields}
	d.renders.Store(1)
	for _, field := range fields {
		d.subs.Add(source.Watch(field, func() { d.renders.Add(1) }))
	}
	return d
}

// NewCounterDisplay shows the count and the counter buttons.
func NewCounterDisplay(source Source) *Display {
	return newDisplay(KindCounter, source, appstate.FieldCount)
}

// NewThemeDisplay shows the theme on a surface painted in that theme.
func NewThemeDisplay(source Source) *Display {
	return newDisplay(KindTheme, source, appstate.FieldTheme)
}

// NewConditionalDisplay reads both fields and branches on the count's sign.
func NewConditionalDisplay(source Source) *Display {
	return newDisplay(KindConditional, source, appstate.FieldCount, appstate.FieldTheme)
}

// Kind returns the display kind.
func (d *Display) Kind() Kind { return d.kind }

// Fields returns the fields the display watches.
func (d *Display) Fields() []appstate.Field {
	return append([]appstate.Field(nil), d.fields...)
}

// Renders reports how many times the display has rendered.
func (d *Display) Renders() int {
	return int(d.renders.Load())
}

// Close drops the display's subscriptions.
func (d *Display) Close() {
	d.subs.Clear()
}

// Title is the heading line, which differs per container variant.
func (d *Display) Title() string {
	viaContext := d.source.Variant() == contextVariant
	switch d.kind {
	case KindCounter:
		if viaContext {
			return fmt.Sprintf("Counter (via Consume): %d", d.source.Count())
		}
		return fmt.Sprintf("Counter: %d", d.source.Count())
	case KindTheme:
		if viaContext {
			return fmt.Sprintf("Theme (via Use): %s", d.source.Theme())
		}
		return fmt.Sprintf("Theme: %s", d.source.Theme())
	default:
		if viaContext {
			return "Conditional Display (via Consume)"
		}
		return "Conditional Display"
	}
}

// Lines returns the body rows.
func (d *Display) Lines() []string {
	if d.kind != KindConditional {
		return nil
	}
	count := d.source.Count()
	first := fmt.Sprintf("Count is zero or negative: %d", count)
	if count > 0 {
		first = fmt.Sprintf("Count is positive: %d", count)
	}
	return []string{first, fmt.Sprintf("Current theme: %s", d.source.Theme())}
}

// Buttons returns the actions offered by the display.
func (d *Display) Buttons() []*components.Button {
	var wanted []appstate.Operation
	switch d.kind {
	case KindCounter:
		wanted = []appstate.Operation{appstate.OpIncrement, appstate.OpDecrement, appstate.OpReset}
	case KindTheme:
		wanted = []appstate.Operation{appstate.OpToggleTheme}
	}
	var buttons []*components.Button
	for _, op := range wanted {
		if !supports(d.source, op) {
			continue
		}
		binding := bindingFor(op)
		buttons = append(buttons, components.NewButton(binding.label, components.ButtonOptions{Key: binding.key}))
	}
	return buttons
}

// View renders the display as a card of the given width.
func (d *Display) View(width int) string {
	data := components.CardData{
		Title: d.Title(),
		Lines: d.Lines(),
		Badge: fmt.Sprintf("renders %d", d.Renders()),
	}
	palette := components.PaletteFor(appstate.ThemeLight)
	if d.kind == KindTheme {
		palette = components.PaletteFor(d.source.Theme())
	}
	if buttons := d.Buttons(); len(buttons) > 0 {
		for _, b := range buttons {
			b.WithPalette(palette)
		}
		data.Footer = components.NewButtonGroup(buttons...).View()
	}
	return components.NewCard(data).
		WithPalette(palette).
		WithThemedSurface(d.kind == KindTheme).
		WithWidth(width).
		View()
}

func supports(source Source, op appstate.Operation) bool {
	for _, candidate := range source.Operations() {
		if candidate == op {
			return true
		}
	}
	return false
}
