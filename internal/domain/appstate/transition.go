package appstate

// Increment adds one to the count.
func Increment(s CounterState) CounterState {
	return CounterState{Count: s.Count + 1}
}

// Decrement subtracts one from the count.
func Decrement(s CounterState) CounterState {
	return CounterState{Count: s.Count - 1}
}

// Reset returns the count to zero regardless of its prior value.
func Reset(CounterState) CounterState {
	return InitialCounter()
}

// ToggleTheme flips between light and dark.
func ToggleTheme(s ThemeState) ThemeState {
	return ThemeState{Theme: s.Theme.Toggled()}
}

// Apply runs the transition named by op against a snapshot. Unknown
// operations return the snapshot unchanged.
func Apply(s Snapshot, op Operation) Snapshot {
	switch op {
	case OpIncrement:
		return Compose(Increment(s.Counter()), s.ThemeState())
	case OpDecrement:
		return Compose(Decrement(s.Counter()), s.ThemeState())
	case OpReset:
		return Compose(Reset(s.Counter()), s.ThemeState())
	case OpToggleTheme:
		return Compose(s.Counter(), ToggleTheme(s.ThemeState()))
	default:
		return s
	}
}
