package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("statedemo.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "statedemo.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "statedemo.yaml:12")
}

func TestValidationErrorAggregatesFields(t *testing.T) {
	t.Parallel()

	err := NewValidationError("operations[1]", "unknown operation", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "operations[1]", validationErr.Field)
	require.Contains(t, validationErr.Message, "unknown operation")
}

func TestErrorsNilReceivers(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	require.Empty(t, parseErr.Error())
	require.NoError(t, parseErr.Unwrap())

	var validationErr *ValidationError
	require.Empty(t, validationErr.Error())
	require.NoError(t, validationErr.Unwrap())
}

func TestValidationErrorWithoutField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("", "script is empty", nil)
	require.Equal(t, "validation error: script is empty", err.Error())
}
