package logging

import (
	"context"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/statedemo/internal/ports"
)

const defaultBufferLimit = 1000

type logLevel int

const (
	levelDebug logLevel = iota
	levelInfo
	levelWarn
	levelError
)

type bufferedEntry struct {
	ctx    context.Context
	at     time.Time
	level  logLevel
	msg    string
	fields []interface{}
}

// EventBuffer holds the entries the interactive session logs while bubbletea
// owns the screen. It keeps the newest limit entries and counts the rest.
type EventBuffer struct {
	mu      sync.Mutex
	limit   int
	entries []bufferedEntry
	dropped int
	now     func() time.Time
}

// NewEventBuffer creates a buffer holding up to limit entries (1000 when
// limit is not positive).
func NewEventBuffer(limit int) *EventBuffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &EventBuffer{
		limit:   limit,
		entries: make([]bufferedEntry, 0, limit),
		now:     time.Now,
	}
}

func (b *EventBuffer) add(entry bufferedEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry.at = b.now()
	if len(b.entries) == b.limit {
		copy(b.entries, b.entries[1:])
		b.entries[len(b.entries)-1] = entry
		b.dropped++
		return
	}
	b.entries = append(b.entries, entry)
}

// Len reports how many entries are waiting to be flushed.
func (b *EventBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Flush writes the held entries to delegate in the order they were logged
// and empties the buffer. Each entry carries logged_at, the time it was
// buffered, since the delegate stamps the flush time. When entries were
// dropped a warning with the count precedes them.
func (b *EventBuffer) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}
	b.mu.Lock()
	entries := make([]bufferedEntry, len(b.entries))
	copy(entries, b.entries)
	dropped := b.dropped
	b.entries = b.entries[:0]
	b.dropped = 0
	b.mu.Unlock()

	if dropped > 0 {
		ctx := context.Background()
		if len(entries) > 0 {
			ctx = entries[0].ctx
		}
		delegate.Warn(ctx, "log entries dropped while the screen was busy", "dropped", dropped, "kept", len(entries))
	}

	for _, entry := range entries {
		fields := append(entry.fields, "logged_at", entry.at.Format(time.RFC3339Nano))
		switch entry.level {
		case levelDebug:
			delegate.Debug(entry.ctx, entry.msg, fields...)
		case levelWarn:
			delegate.Warn(entry.ctx, entry.msg, fields...)
		case levelError:
			delegate.Error(entry.ctx, entry.msg, fields...)
		default:
			delegate.Info(entry.ctx, entry.msg, fields...)
		}
	}
}
