package logging

import (
	"context"

	"github.com/alexisbeaulieu97/statedemo/internal/ports"
)

// BufferedLogger is the ports.Logger handed to containers, the publisher and
// the TUI during an interactive session. Nothing reaches stderr until the
// owning EventBuffer is flushed after the program exits.
type BufferedLogger struct {
	buffer *EventBuffer
	fields []interface{}
}

// NewBufferedLogger returns a logger that appends to buffer.
func NewBufferedLogger(buffer *EventBuffer) *BufferedLogger {
	return &BufferedLogger{buffer: buffer}
}

func (l *BufferedLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, levelDebug, msg, fields)
}

func (l *BufferedLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, levelInfo, msg, fields)
}

func (l *BufferedLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, levelWarn, msg, fields)
}

func (l *BufferedLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, levelError, msg, fields)
}

// With scopes the logger, e.g. With("component", "store"). Scoped loggers
// share the buffer.
func (l *BufferedLogger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return NewNoOpLogger()
	}
	scoped := make([]interface{}, 0, len(l.fields)+len(fields))
	scoped = append(scoped, l.fields...)
	scoped = append(scoped, fields...)
	return &BufferedLogger{buffer: l.buffer, fields: scoped}
}

func (l *BufferedLogger) log(ctx context.Context, level logLevel, msg string, fields []interface{}) {
	if l == nil || l.buffer == nil {
		return
	}
	payload := make([]interface{}, 0, len(l.fields)+len(fields)+2)
	payload = append(payload, l.fields...)
	payload = append(payload, fields...)
	l.buffer.add(bufferedEntry{
		ctx:    ctx,
		level:  level,
		msg:    msg,
		fields: payload,
	})
}

var _ ports.Logger = (*BufferedLogger)(nil)
