package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CardData represents the content of a card.
type CardData struct {
	// Title is the heading line of the card
	Title string
	// Lines are rendered below the title, one per row
	Lines []string
	// Badge is a short right-aligned note next to the title
	Badge string
	// Footer is rendered after the lines, usually buttons
	Footer string
}

// Card renders a bordered panel in a palette.
type Card struct {
	data    CardData
	palette Palette
	width   int
	themed  bool
}

// NewCard creates a new card with the given data.
func NewCard(data CardData) *Card {
	return &Card{
		data:    data,
		palette: lightPalette,
		width:   48,
	}
}

// WithPalette sets the palette used for the border and text.
func (c *Card) WithPalette(p Palette) *Card {
	c.palette = p
	return c
}

// WithWidth sets the inner card width.
func (c *Card) WithWidth(width int) *Card {
	if width > 0 {
		c.width = width
	}
	return c
}

// WithThemedSurface fills the card with the palette background.
func (c *Card) WithThemedSurface(themed bool) *Card {
	c.themed = themed
	return c
}

// Width returns the inner width.
func (c *Card) Width() int {
	return c.width
}

// View renders the card.
func (c *Card) View() string {
	p := c.palette
	inner := c.width - 2

	title := Truncate(c.data.Title, inner)
	if c.data.Badge != "" {
		badge := Truncate(c.data.Badge, inner/2)
		gap := inner - lipgloss.Width(title) - lipgloss.Width(badge)
		if gap < 1 {
			title = Truncate(c.data.Title, inner-lipgloss.Width(badge)-1)
			gap = 1
		}
		title = fmt.Sprintf("%s%s%s", lipgloss.NewStyle().Bold(true).Render(title), strings.Repeat(" ", gap), lipgloss.NewStyle().Foreground(p.Muted).Render(badge))
	} else {
		title = lipgloss.NewStyle().Bold(true).Render(title)
	}

	rows := []string{title}
	for _, line := range c.data.Lines {
		rows = append(rows, Truncate(line, inner))
	}
	if c.data.Footer != "" {
		rows = append(rows, "", c.data.Footer)
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1).
		Width(c.width)
	if c.themed {
		style = style.Background(p.Background).Foreground(p.Foreground)
	}
	return style.Render(strings.Join(rows, "\n"))
}
