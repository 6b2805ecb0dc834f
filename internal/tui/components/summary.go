package components

import (
	"fmt"
	"strings"
)

// Check is a pass/fail line in a summary.
type Check struct {
	Passed  bool
	Message string
}

// SummaryData aggregates the outcome of a replay.
type SummaryData struct {
	Operations int
	Containers []string
	FinalCount int
	FinalTheme string
	Checks     []Check
	ASCII      bool
}

// Summary renders a textual replay summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	var lines []string
	if len(s.data.Containers) > 0 {
		lines = append(lines, fmt.Sprintf("Replayed %d operation(s) against %s", s.data.Operations, strings.Join(s.data.Containers, ", ")))
		lines = append(lines, fmt.Sprintf("Final state: count=%d theme=%s", s.data.FinalCount, s.data.FinalTheme))
	}

	if len(s.data.Checks) > 0 {
		lines = append(lines, "Checks:")
		pass, fail := "✓", "✗"
		if s.data.ASCII {
			pass, fail = "ok", "FAIL"
		}
		for _, c := range s.data.Checks {
			status := fail
			if c.Passed {
				status = pass
			}
			lines = append(lines, fmt.Sprintf("  %s %s", status, c.Message))
		}
	}

	return strings.Join(lines, "\n")
}
