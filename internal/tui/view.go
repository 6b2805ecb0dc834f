package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/statedemo/internal/content"
	"github.com/alexisbeaulieu97/statedemo/internal/tui/components"
	"github.com/alexisbeaulieu97/statedemo/internal/tui/views"
)

const (
	minCardWidth = 48
	maxCardWidth = 64
	sideWidth    = 48
)

// View renders the current page.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.page {
	case PageContext, PageStore:
		b.WriteString(m.renderContainerPage(m.pages[m.page]))
	default:
		b.WriteString(m.renderHome())
	}

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "\n" + footer
	}
	b.WriteString(footerStyle.Width(m.contentWidth()).Render(footer))
	return b.String()
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return minCardWidth
	}
	return m.width
}

func (m Model) cardWidth() int {
	w := m.contentWidth()
	if w >= minCardWidth+sideWidth+2 {
		w -= sideWidth + 2
	}
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

func (m Model) renderTabs() string {
	labels := map[Page]string{
		PageHome:    "1 Home",
		PageContext: "2 Context",
		PageStore:   "3 Store",
	}
	tabs := make([]string, 0, len(pageOrder))
	for _, page := range pageOrder {
		style := tabStyle
		if page == m.page {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(labels[page]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderHome() string {
	cmp := m.comparison
	var b strings.Builder
	b.WriteString(titleStyle.Render(cmp.Title))
	b.WriteString("\n")
	if cmp.Intro != "" {
		b.WriteString(mutedStyle.Render(strings.Join(content.Wrap(cmp.Intro, m.contentWidth()), "\n")))
		b.WriteString("\n")
	}

	width := m.cardWidth()
	cards := make([]string, 0, len(cmp.Sections))
	for _, section := range cmp.Sections {
		cards = append(cards, m.sectionCard(section, width))
	}
	if len(cards) > 0 {
		b.WriteString("\n")
		if m.contentWidth() >= 2*(width+2) {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		} else {
			b.WriteString(lipgloss.JoinVertical(lipgloss.Left, cards...))
		}
	}
	return b.String()
}

func (m Model) sectionCard(section content.Section, width int) string {
	bullet := "•"
	if !m.unicode {
		bullet = "-"
	}
	var lines []string
	for _, row := range content.Wrap(section.Summary, width-2) {
		if row != "" {
			lines = append(lines, row)
		}
	}
	list := func(heading string, items []string) {
		if len(items) == 0 {
			return
		}
		lines = append(lines, "", heading+":")
		for _, item := range items {
			lines = append(lines, bullet+" "+item)
		}
	}
	list("Best for", section.BestFor)
	list("Pros", section.Pros)
	list("Cons", section.Cons)

	footer := ""
	switch section.Name {
	case "Redux":
		footer = "Press 3 to open the store page"
	case "Context API":
		footer = "Press 2 to open the context page"
	}
	return components.NewCard(components.CardData{Title: section.Name, Lines: lines, Footer: footer}).
		WithWidth(width).
		View()
}

func (m Model) renderContainerPage(page *views.Page) string {
	if page == nil {
		return ""
	}
	main := sectionStyle.Render(page.Title()) + "\n" + page.View(m.cardWidth())

	side := []string{
		sectionStyle.Render("Renders"),
		components.NewRenderMeter(page.RenderCounts()).View(),
	}
	if m.page == PageStore && m.recorder != nil {
		side = append(side, sectionStyle.Render(fmt.Sprintf("Dispatched actions (%d)", m.recorder.Len())), m.renderRecorder())
	}
	side = append(side,
		sectionStyle.Render("Activity"),
		components.NewEntryList(m.activity.snapshot(), m.visibleHistory()).WithWidth(sideWidth).View(),
	)
	sidebar := strings.Join(side, "\n")

	if m.contentWidth() >= m.cardWidth()+sideWidth+2 {
		return lipgloss.JoinHorizontal(lipgloss.Top, main, "  ", sidebar)
	}
	return lipgloss.JoinVertical(lipgloss.Left, main, sidebar)
}

func (m Model) renderRecorder() string {
	records := m.recorder.Entries()
	entries := make([]components.Entry, 0, len(records))
	for _, r := range records {
		before, after := r.Before.Snapshot(), r.After.Snapshot()
		entries = append(entries, components.Entry{
			Label:  r.Action.Type,
			Detail: fmt.Sprintf("%d/%s -> %d/%s", before.Count, before.Theme, after.Count, after.Theme),
		})
	}
	return components.NewEntryList(entries, 5).WithWidth(sideWidth).View()
}

func (m Model) visibleHistory() int {
	limit := 8
	if m.history > 0 && m.history < limit {
		limit = m.history
	}
	return limit
}
