package appstate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	tests := []struct {
		input    string
		expected Operation
	}{
		{input: "increment", expected: OpIncrement},
		{input: " INC ", expected: OpIncrement},
		{input: "+", expected: OpIncrement},
		{input: "dec", expected: OpDecrement},
		{input: "reset", expected: OpReset},
		{input: "toggle", expected: OpToggleTheme},
		{input: "toggle-theme", expected: OpToggleTheme},
		{input: "toggleTheme", expected: OpToggleTheme},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			op, err := ParseOperation(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, op)
		})
	}
}

func TestParseOperationUnknown(t *testing.T) {
	_, err := ParseOperation("multiply")
	require.Error(t, err)
	require.True(t, HasCode(err, ErrCodeUnknownOperation))
}

func TestParseOperationsReportsPosition(t *testing.T) {
	ops, err := ParseOperations([]string{"inc", "", "toggle"})
	require.NoError(t, err)
	require.Equal(t, []Operation{OpIncrement, OpToggleTheme}, ops)

	_, err = ParseOperations([]string{"inc", "jump"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "operation 2")

	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	require.Equal(t, "jump", domainErr.Context["operation"])
}

func TestOperationField(t *testing.T) {
	assert.Equal(t, FieldTheme, OpToggleTheme.Field())
	assert.Equal(t, FieldCount, OpReset.Field())
	assert.True(t, OpReset.Valid())
	assert.False(t, Operation("nope").Valid())
}

func TestParseThemeAndField(t *testing.T) {
	theme, err := ParseTheme("Dark")
	require.NoError(t, err)
	require.Equal(t, ThemeDark, theme)

	_, err = ParseTheme("sepia")
	require.True(t, HasCode(err, ErrCodeUnknownTheme))

	field, err := ParseField("count")
	require.NoError(t, err)
	require.Equal(t, FieldCount, field)

	_, err = ParseField("colour")
	require.True(t, HasCode(err, ErrCodeUnknownField))
}
