package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"
)

// Palette holds the colours of one theme.
type Palette struct {
	Theme      appstate.Theme
	Background lipgloss.Color
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
}

var (
	lightPalette = Palette{
		Theme:      appstate.ThemeLight,
		Background: lipgloss.Color("#ffffff"),
		Foreground: lipgloss.Color("#000000"),
		Accent:     lipgloss.Color("#5a3fc0"),
		Muted:      lipgloss.Color("#6b6b6b"),
		Border:     lipgloss.Color("#c8c8c8"),
	}
	darkPalette = Palette{
		Theme:      appstate.ThemeDark,
		Background: lipgloss.Color("#333333"),
		Foreground: lipgloss.Color("#ffffff"),
		Accent:     lipgloss.Color("#b39ddb"),
		Muted:      lipgloss.Color("#a0a0a0"),
		Border:     lipgloss.Color("#555555"),
	}
)

// PaletteFor returns the palette for theme. Unknown themes get the light one.
func PaletteFor(theme appstate.Theme) Palette {
	if theme == appstate.ThemeDark {
		return darkPalette
	}
	return lightPalette
}

// Surface is the base style for content drawn on the palette background.
func (p Palette) Surface() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(p.Background).
		Foreground(p.Foreground)
}

// Truncate shortens s to width terminal cells, appending an ellipsis when
// it had to cut.
func Truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
