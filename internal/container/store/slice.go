package store

import (
	"sort"
	"strings"
)

// Action is a plain request to change state. Type has the form
// "<slice>/<case>".
type Action struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// Reducer computes the next state for an action. Reducers are pure and
// total: actions they do not recognise return the state unchanged.
type Reducer[S any] func(state S, action Action) S

// CaseReducer handles one named case of a slice.
type CaseReducer[S any] func(state S, action Action) S

// Slice groups a named partition of state with the cases that update it.
type Slice[S any] struct {
	name    string
	initial S
	cases   map[string]CaseReducer[S]
}

// CreateSlice defines a slice. The cases map is copied.
func CreateSlice[S any](name string, initial S, cases map[string]CaseReducer[S]) *Slice[S] {
	copied := make(map[string]CaseReducer[S], len(cases))
	for key, fn := range cases {
		copied[key] = fn
	}
	return &Slice[S]{name: name, initial: initial, cases: copied}
}

// Name returns the slice name, which prefixes its action types.
func (s *Slice[S]) Name() string {
	return s.name
}

// InitialState returns the state the slice starts from.
func (s *Slice[S]) InitialState() S {
	return s.initial
}

// Type returns the action type for caseName.
func (s *Slice[S]) Type(caseName string) string {
	return s.name + "/" + caseName
}

// Action creates an action for caseName.
func (s *Slice[S]) Action(caseName string) Action {
	return Action{Type: s.Type(caseName)}
}

// Handles reports whether the slice has a case for actionType.
func (s *Slice[S]) Handles(actionType string) bool {
	_, ok := s.lookup(actionType)
	return ok
}

// Cases lists the slice's case names in sorted order.
func (s *Slice[S]) Cases() []string {
	names := make([]string, 0, len(s.cases))
	for name := range s.cases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reducer returns the slice reducer.
func (s *Slice[S]) Reducer() Reducer[S] {
	return func(state S, action Action) S {
		fn, ok := s.lookup(action.Type)
		if !ok {
			return state
		}
		return fn(state, action)
	}
}

func (s *Slice[S]) lookup(actionType string) (CaseReducer[S], bool) {
	prefix, caseName, found := strings.Cut(actionType, "/")
	if !found || prefix != s.name {
		return nil, false
	}
	fn, ok := s.cases[caseName]
	return fn, ok
}
