package ports

import "github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"

// Container owns the counter and theme state and the transitions upon it.
// Both the provider and the store variants satisfy this contract so views
// and the replay harness can treat them uniformly.
type Container interface {
	// Name identifies the variant ("context" or "store").
	Name() string
	// Snapshot returns the current immutable state.
	Snapshot() appstate.Snapshot
	// Supports reports whether the variant exposes op.
	Supports(op appstate.Operation) bool
	// Apply runs op atomically. It returns false, leaving state untouched,
	// when the variant does not expose op.
	Apply(op appstate.Operation) bool
	// Subscribe registers fn to run after any transition that changed field.
	Subscribe(field appstate.Field, fn func(appstate.Snapshot)) func()
}
