package appstate

import (
	"fmt"
	"strings"
)

// Operation names a state transition a view can request.
type Operation string

const (
	OpIncrement   Operation = "increment"
	OpDecrement   Operation = "decrement"
	OpReset       Operation = "reset"
	OpToggleTheme Operation = "toggle_theme"
)

var operationAliases = map[string]Operation{
	"increment":    OpIncrement,
	"inc":          OpIncrement,
	"+":            OpIncrement,
	"decrement":    OpDecrement,
	"dec":          OpDecrement,
	"-":            OpDecrement,
	"reset":        OpReset,
	"toggle_theme": OpToggleTheme,
	"toggletheme":  OpToggleTheme,
	"toggle":       OpToggleTheme,
}

// Operations returns every known operation.
func Operations() []Operation {
	return []Operation{OpIncrement, OpDecrement, OpReset, OpToggleTheme}
}

// Valid reports whether op is a known operation.
func (op Operation) Valid() bool {
	switch op {
	case OpIncrement, OpDecrement, OpReset, OpToggleTheme:
		return true
	default:
		return false
	}
}

// Field returns the piece of state the operation writes.
func (op Operation) Field() Field {
	if op == OpToggleTheme {
		return FieldTheme
	}
	return FieldCount
}

// String implements fmt.Stringer.
func (op Operation) String() string {
	return string(op)
}

// ParseOperation converts user input (including short aliases such as
// "inc" or "toggle") into an Operation.
func ParseOperation(value string) (Operation, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	key = strings.ReplaceAll(key, "-", "_")
	if op, ok := operationAliases[key]; ok {
		return op, nil
	}
	return "", newUnknownOperationError(value)
}

// ParseOperations parses a list of operation names, stopping at the first
// unknown entry.
func ParseOperations(values []string) ([]Operation, error) {
	ops := make([]Operation, 0, len(values))
	for i, value := range values {
		if strings.TrimSpace(value) == "" {
			continue
		}
		op, err := ParseOperation(value)
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i+1, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}
