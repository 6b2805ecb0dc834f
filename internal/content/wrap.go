package content

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks s into lines no wider than width terminal cells. Words wider
// than width are truncated with an ellipsis.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var (
		lines   []string
		current strings.Builder
		used    int
	)
	flush := func() {
		if current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
			used = 0
		}
	}
	for _, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)
		if w > width {
			flush()
			lines = append(lines, runewidth.Truncate(word, width, "…"))
			continue
		}
		if used > 0 && used+1+w > width {
			flush()
		}
		if used > 0 {
			current.WriteByte(' ')
			used++
		}
		current.WriteString(word)
		used += w
	}
	flush()
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// PlainText renders the comparison for non-interactive output.
func (c Comparison) PlainText(width int) string {
	var b strings.Builder
	b.WriteString(c.Title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", runewidth.StringWidth(c.Title)))
	b.WriteString("\n\n")
	if c.Intro != "" {
		for _, line := range Wrap(c.Intro, width) {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	for _, section := range c.Sections {
		b.WriteString(section.Name)
		b.WriteString("\n")
		b.WriteString(strings.Repeat("-", runewidth.StringWidth(section.Name)))
		b.WriteString("\n")
		if section.Summary != "" {
			for _, line := range Wrap(section.Summary, width) {
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
		writeList(&b, "Best for", section.BestFor, width)
		writeList(&b, "Pros", section.Pros, width)
		writeList(&b, "Cons", section.Cons, width)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeList(b *strings.Builder, heading string, items []string, width int) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(heading)
	b.WriteString(":\n")
	for _, item := range items {
		for i, line := range Wrap(item, width-4) {
			if i == 0 {
				b.WriteString("  - ")
			} else {
				b.WriteString("    ")
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
}
