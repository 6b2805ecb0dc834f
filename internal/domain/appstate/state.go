package appstate

import "strings"

// Theme is the colour scheme selected by the user. Exactly one of ThemeLight
// or ThemeDark is active at any time.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// String implements fmt.Stringer.
func (t Theme) String() string {
	return string(t)
}

// Valid reports whether t is one of the two supported themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// ParseTheme converts user input into a Theme.
func ParseTheme(value string) (Theme, error) {
	theme := Theme(strings.ToLower(strings.TrimSpace(value)))
	if !theme.Valid() {
		return "", newUnknownThemeError(value)
	}
	return theme, nil
}

// CounterState is the counter partition. The count is signed and never
// clamped; it is a Go int, so Increment at math.MaxInt wraps to math.MinInt
// and Decrement wraps back.
type CounterState struct {
	Count int `json:"count" yaml:"count"`
}

// ThemeState is the theme partition.
type ThemeState struct {
	Theme Theme `json:"theme" yaml:"theme"`
}

// InitialCounter returns the state every container starts from.
func InitialCounter() CounterState {
	return CounterState{Count: 0}
}

// InitialTheme returns the state every container starts from.
func InitialTheme() ThemeState {
	return ThemeState{Theme: ThemeLight}
}

// Snapshot is the immutable read view over both partitions.
type Snapshot struct {
	Count int   `json:"count" yaml:"count"`
	Theme Theme `json:"theme" yaml:"theme"`
}

// InitialSnapshot returns {count: 0, theme: light}.
func InitialSnapshot() Snapshot {
	return Compose(InitialCounter(), InitialTheme())
}

// Compose builds a Snapshot from the two partitions.
func Compose(counter CounterState, theme ThemeState) Snapshot {
	return Snapshot{Count: counter.Count, Theme: theme.Theme}
}

// Counter returns the counter partition of the snapshot.
func (s Snapshot) Counter() CounterState {
	return CounterState{Count: s.Count}
}

// ThemeState returns the theme partition of the snapshot.
func (s Snapshot) ThemeState() ThemeState {
	return ThemeState{Theme: s.Theme}
}

// Changed lists the fields that differ between s and next.
func (s Snapshot) Changed(next Snapshot) []Field {
	var fields []Field
	if s.Count != next.Count {
		fields = append(fields, FieldCount)
	}
	if s.Theme != next.Theme {
		fields = append(fields, FieldTheme)
	}
	return fields
}

// Field names a piece of state a view can watch.
type Field string

const (
	FieldCount Field = "count"
	FieldTheme Field = "theme"
)

// Fields returns every watchable field in display order.
func Fields() []Field {
	return []Field{FieldCount, FieldTheme}
}

// ParseField converts user input into a Field.
func ParseField(value string) (Field, error) {
	switch Field(strings.ToLower(strings.TrimSpace(value))) {
	case FieldCount:
		return FieldCount, nil
	case FieldTheme:
		return FieldTheme, nil
	default:
		return "", newUnknownFieldError(value)
	}
}
