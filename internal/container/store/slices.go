package store

import "github.com/alexisbeaulieu97/statedemo/internal/domain/appstate"

// Case names.
const (
	CaseIncrement   = "increment"
	CaseDecrement   = "decrement"
	CaseReset       = "reset"
	CaseToggleTheme = "toggleTheme"
)

// CounterSlice owns the counter partition.
var CounterSlice = CreateSlice("counter", appstate.InitialCounter(), map[string]CaseReducer[appstate.CounterState]{
	CaseIncrement: func(s appstate.CounterState, _ Action) appstate.CounterState { return appstate.Increment(s) },
	CaseDecrement: func(s appstate.CounterState, _ Action) appstate.CounterState { return appstate.Decrement(s) },
	CaseReset:     func(s appstate.CounterState, _ Action) appstate.CounterState { return appstate.Reset(s) },
})

// ThemeSlice owns the theme partition.
var ThemeSlice = CreateSlice("theme", appstate.InitialTheme(), map[string]CaseReducer[appstate.ThemeState]{
	CaseToggleTheme: func(s appstate.ThemeState, _ Action) appstate.ThemeState { return appstate.ToggleTheme(s) },
})

// Increment creates a counter/increment action.
func Increment() Action { return CounterSlice.Action(CaseIncrement) }

// Decrement creates a counter/decrement action.
func Decrement() Action { return CounterSlice.Action(CaseDecrement) }

// Reset creates a counter/reset action.
func Reset() Action { return CounterSlice.Action(CaseReset) }

// ToggleTheme creates a theme/toggleTheme action.
func ToggleTheme() Action { return ThemeSlice.Action(CaseToggleTheme) }

// ActionFor maps an operation onto its action.
func ActionFor(op appstate.Operation) (Action, bool) {
	switch op {
	case appstate.OpIncrement:
		return Increment(), true
	case appstate.OpDecrement:
		return Decrement(), true
	case appstate.OpReset:
		return Reset(), true
	case appstate.OpToggleTheme:
		return ToggleTheme(), true
	default:
		return Action{}, false
	}
}

// RootState holds both partitions under their slice names.
type RootState struct {
	Counter appstate.CounterState `json:"counter"`
	Theme   appstate.ThemeState   `json:"theme"`
}

// InitialRootState combines the initial state of every slice.
func InitialRootState() RootState {
	return RootState{
		Counter: CounterSlice.InitialState(),
		Theme:   ThemeSlice.InitialState(),
	}
}

// Snapshot flattens the root state into the shared read view.
func (r RootState) Snapshot() appstate.Snapshot {
	return appstate.Compose(r.Counter, r.Theme)
}

var (
	counterReducer = CounterSlice.Reducer()
	themeReducer   = ThemeSlice.Reducer()
)

// RootReducer hands each partition to its own slice reducer.
func RootReducer(state RootState, action Action) RootState {
	return RootState{
		Counter: counterReducer(state.Counter, action),
		Theme:   themeReducer(state.Theme, action),
	}
}

// Handles reports whether any slice has a case for actionType.
func Handles(actionType string) bool {
	return CounterSlice.Handles(actionType) || ThemeSlice.Handles(actionType)
}
