package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// RenderCount is how many times one view has rendered.
type RenderCount struct {
	Name  string
	Count int
}

// RenderMeter draws one bar per view, scaled to the busiest view.
type RenderMeter struct {
	bar    progress.Model
	counts []RenderCount
}

// NewRenderMeter creates a meter for the given counts.
func NewRenderMeter(counts []RenderCount) RenderMeter {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 20
	return RenderMeter{bar: bar, counts: counts}
}

// View renders the meter.
func (m RenderMeter) View() string {
	if len(m.counts) == 0 {
		return ""
	}
	maxCount, nameWidth := 0, 0
	for _, c := range m.counts {
		if c.Count > maxCount {
			maxCount = c.Count
		}
		if w := lipgloss.Width(c.Name); w > nameWidth {
			nameWidth = w
		}
	}

	rows := make([]string, 0, len(m.counts))
	for _, c := range m.counts {
		ratio := 0.0
		if maxCount > 0 {
			ratio = math.Min(1.0, float64(c.Count)/float64(maxCount))
		}
		name := c.Name + strings.Repeat(" ", nameWidth-lipgloss.Width(c.Name))
		label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%3d", c.Count))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Left, name, " ", m.bar.ViewAs(ratio), " ", label))
	}
	return strings.Join(rows, "\n")
}
