package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Home):
		return m.navigate(PageHome), nil
	case key.Matches(msg, m.keys.Context):
		return m.navigate(PageContext), nil
	case key.Matches(msg, m.keys.Store):
		return m.navigate(PageStore), nil
	case key.Matches(msg, m.keys.Next):
		return m.step(1), nil
	case key.Matches(msg, m.keys.Prev):
		return m.step(-1), nil
	case key.Matches(msg, m.keys.Increment):
		return m.apply(appstate.OpIncrement), nil
	case key.Matches(msg, m.keys.Decrement):
		return m.apply(appstate.OpDecrement), nil
	case key.Matches(msg, m.keys.Reset):
		return m.apply(appstate.OpReset), nil
	case key.Matches(msg, m.keys.Toggle):
		return m.apply(appstate.OpToggleTheme), nil
	}
	return m, nil
}

func (m Model) navigate(page Page) Model {
	if m.page != page {
		m.logger.Debug(m.ctx, "page changed", "from", string(m.page), "to", string(page))
	}
	m.page = page
	m.status = ""
	return m
}

func (m Model) step(delta int) Model {
	i, _ := pageIndex(m.page)
	n := len(pageOrder)
	return m.navigate(pageOrder[((i+delta)%n+n)%n])
}

func (m Model) apply(op appstate.Operation) Model {
	page, ok := m.pages[m.page]
	if !ok {
		m.status = "Open the context (2) or store (3) page to change state"
		return m
	}
	if !page.Supports(op) {
		m.status = fmt.Sprintf("%s is not available on the %s page", op, m.page)
		m.logger.Debug(m.ctx, "operation not offered", "page", string(m.page), "operation", string(op))
		return m
	}
	page.Apply(op)
	m.status = ""
	return m
}
