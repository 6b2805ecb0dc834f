package store

import (
	"sync"

	"github.com/alexisbeaulieu97/statedemo/internal/ports"
)

// LoggingMiddleware logs every action with the state before and after it.
func LoggingMiddleware(logger ports.Logger) Middleware {
	return func(s *Store, next DispatchFunc) DispatchFunc {
		return func(action Action) Action {
			if logger == nil {
				return next(action)
			}
			before := s.GetState().Snapshot()
			result := next(action)
			after := s.GetState().Snapshot()
			logger.Debug(s.eventCtx, "action dispatched",
				"action", action.Type,
				"count_before", before.Count,
				"count_after", after.Count,
				"theme_before", before.Theme.String(),
				"theme_after", after.Theme.String(),
			)
			return result
		}
	}
}

// RecordedAction is one entry in a Recorder's history.
type RecordedAction struct {
	Action Action
	Before RootState
	After  RootState
}

// Recorder keeps the most recent dispatched actions for inspection. It
// records only; it cannot rewind state.
type Recorder struct {
	mu      sync.Mutex
	limit   int
	entries []RecordedAction
}

// NewRecorder creates a recorder that keeps at most limit entries. A
// non-positive limit keeps 50.
func NewRecorder(limit int) *Recorder {
	if limit <= 0 {
		limit = 50
	}
	return &Recorder{limit: limit}
}

// Middleware returns the middleware that feeds the recorder.
func (r *Recorder) Middleware() Middleware {
	return func(s *Store, next DispatchFunc) DispatchFunc {
		return func(action Action) Action {
			before := s.GetState()
			result := next(action)
			r.add(RecordedAction{Action: action, Before: before, After: s.GetState()})
			return result
		}
	}
}

func (r *Recorder) add(entry RecordedAction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == r.limit {
		copy(r.entries, r.entries[1:])
		r.entries[len(r.entries)-1] = entry
		return
	}
	r.entries = append(r.entries, entry)
}

// Entries returns a copy of the history, oldest first.
func (r *Recorder) Entries() []RecordedAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RecordedAction, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of recorded actions.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
