package logging

import (
	"context"

	"github.com/alexisbeaulieu97/statedemo/internal/ports"
)

// NoOpLogger is what the containers and the replay service log to when no
// logger option is given.
type NoOpLogger struct{}

var discard = &NoOpLogger{}

func (*NoOpLogger) Debug(context.Context, string, ...interface{}) {}
func (*NoOpLogger) Info(context.Context, string, ...interface{})  {}
func (*NoOpLogger) Warn(context.Context, string, ...interface{})  {}
func (*NoOpLogger) Error(context.Context, string, ...interface{}) {}

// With returns the receiver; there are no fields to keep.
func (n *NoOpLogger) With(...interface{}) ports.Logger { return n }

// NewNoOpLogger returns the shared discarding logger.
func NewNoOpLogger() ports.Logger {
	return discard
}
