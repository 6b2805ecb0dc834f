package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Entry is one row of an EntryList.
type Entry struct {
	Label  string
	Detail string
}

// EntryList renders the most recent entries of a history, newest last.
type EntryList struct {
	entries []Entry
	limit   int
	width   int
	muted   lipgloss.Color
}

// NewEntryList keeps at most limit entries; limit <= 0 keeps all of them.
func NewEntryList(entries []Entry, limit int) EntryList {
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	clone := make([]Entry, len(entries))
	copy(clone, entries)
	return EntryList{entries: clone, limit: limit, width: 60}
}

// WithWidth sets the maximum row width.
func (l EntryList) WithWidth(width int) EntryList {
	if width > 0 {
		l.width = width
	}
	return l
}

// WithPalette colours details in the palette's muted colour.
func (l EntryList) WithPalette(p Palette) EntryList {
	l.muted = p.Muted
	return l
}

// Entries returns the retained entries.
func (l EntryList) Entries() []Entry {
	clone := make([]Entry, len(l.entries))
	copy(clone, l.entries)
	return clone
}

// View renders one entry per row, numbered from one.
func (l EntryList) View() string {
	if len(l.entries) == 0 {
		return "(empty)"
	}
	detail := lipgloss.NewStyle()
	if l.muted != "" {
		detail = detail.Foreground(l.muted)
	}
	rows := make([]string, 0, len(l.entries))
	for i, entry := range l.entries {
		prefix := fmt.Sprintf("%2d. ", i+1)
		label := Truncate(entry.Label, l.width-len(prefix))
		row := prefix + label
		if entry.Detail != "" {
			room := l.width - lipgloss.Width(row) - 1
			if room > 3 {
				row += " " + detail.Render(Truncate(entry.Detail, room))
			}
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}
