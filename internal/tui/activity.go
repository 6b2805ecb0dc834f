package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/statedemo/internal/ports"
	"github.com/alexisbeaulieu97/statedemo/internal/tui/components"
)

// activityLog collects transition and ignored-request events from the
// publisher, keeping the newest limit entries.
type activityLog struct {
	mu      sync.Mutex
	limit   int
	entries []components.Entry
	subs    []ports.Subscription
}

func newActivityLog(limit int) *activityLog {
	if limit <= 0 {
		limit = 20
	}
	return &activityLog{limit: limit}
}

func (a *activityLog) attach(publisher ports.EventPublisher) error {
	if publisher == nil {
		return nil
	}
	for _, eventType := range []string{ports.EventStateTransition, ports.EventActionIgnored} {
		sub, err := publisher.Subscribe(eventType, a.handle)
		if err != nil {
			a.detach()
			return fmt.Errorf("subscribe %s: %w", eventType, err)
		}
		a.subs = append(a.subs, sub)
	}
	return nil
}

func (a *activityLog) detach() {
	for _, sub := range a.subs {
		sub.Unsubscribe()
	}
	a.subs = nil
}

func (a *activityLog) handle(_ context.Context, event ports.DomainEvent) error {
	switch e := event.(type) {
	case ports.TransitionEvent:
		changed := "nothing"
		if len(e.Changed) > 0 {
			changed = strings.Join(e.Changed, ",")
		}
		a.add(components.Entry{
			Label:  fmt.Sprintf("%-7s %s", e.Container, e.Operation),
			Detail: fmt.Sprintf("count=%d theme=%s changed=%s", e.Count, e.Theme, changed),
		})
	case ports.IgnoredEvent:
		a.add(components.Entry{
			Label:  fmt.Sprintf("%-7s %s", e.Container, e.Request),
			Detail: "ignored: " + e.Reason,
		})
	}
	return nil
}

func (a *activityLog) add(entry components.Entry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
	if len(a.entries) > a.limit {
		a.entries = append([]components.Entry(nil), a.entries[len(a.entries)-a.limit:]...)
	}
}

func (a *activityLog) snapshot() []components.Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]components.Entry(nil), a.entries...)
}
