package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ButtonOptions defines the configuration options for a button
type ButtonOptions struct {
	Key      string
	Palette  Palette
	Disabled bool
	Focus    bool
}

// Button renders a key hint and a label, e.g. "[+] Increment".
type Button struct {
	label   string
	options ButtonOptions
}

// NewButton creates a new button with the given label and options
func NewButton(label string, opts ButtonOptions) *Button {
	return &Button{
		label:   label,
		options: opts,
	}
}

// WithKey sets the key hint shown before the label
func (b *Button) WithKey(key string) *Button {
	b.options.Key = key
	return b
}

// WithPalette sets the button colours
func (b *Button) WithPalette(p Palette) *Button {
	b.options.Palette = p
	return b
}

// WithDisabled sets the button disabled state
func (b *Button) WithDisabled(disabled bool) *Button {
	b.options.Disabled = disabled
	return b
}

// WithFocus sets the button focus state
func (b *Button) WithFocus(focus bool) *Button {
	b.options.Focus = focus
	return b
}

// Label returns the text the button renders, without styling.
func (b *Button) Label() string {
	if b.options.Key == "" {
		return b.label
	}
	return "[" + b.options.Key + "] " + b.label
}

// View renders the button
func (b *Button) View() string {
	return b.buildStyle().Render(b.Label())
}

func (b *Button) buildStyle() lipgloss.Style {
	p := b.options.Palette
	if p.Theme == "" {
		p = lightPalette
	}
	style := lipgloss.NewStyle().
		Foreground(p.Accent).
		Padding(0, 1)

	if b.options.Disabled {
		style = style.Foreground(p.Muted).Faint(true)
	} else if b.options.Focus {
		style = style.Reverse(true).Bold(true)
	}
	return style
}

// ButtonGroup represents a horizontal group of buttons
type ButtonGroup struct {
	buttons []*Button
	spacing int
}

// NewButtonGroup creates a new button group
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	return &ButtonGroup{
		buttons: buttons,
		spacing: 1,
	}
}

// WithSpacing sets the spacing between buttons
func (bg *ButtonGroup) WithSpacing(spacing int) *ButtonGroup {
	bg.spacing = spacing
	return bg
}

// View renders the button group
func (bg *ButtonGroup) View() string {
	if len(bg.buttons) == 0 {
		return ""
	}

	views := make([]string, 0, len(bg.buttons)*2)
	spacer := strings.Repeat(" ", bg.spacing)
	for i, button := range bg.buttons {
		if i > 0 && bg.spacing > 0 {
			views = append(views, spacer)
		}
		views = append(views, button.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
