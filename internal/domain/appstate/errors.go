package appstate

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the categories of error raised at the edges of the
// state model. Transitions themselves never fail.
type ErrorCode string

const (
	ErrCodeUnknownOperation     ErrorCode = "UNKNOWN_OPERATION"
	ErrCodeUnknownTheme         ErrorCode = "UNKNOWN_THEME"
	ErrCodeUnknownField         ErrorCode = "UNKNOWN_FIELD"
	ErrCodeUnsupportedOperation ErrorCode = "UNSUPPORTED_OPERATION"
	ErrCodeDivergence           ErrorCode = "DIVERGENCE"
)

// DomainError represents a typed error enriched with contextual data.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches other DomainError values with the same code and message.
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if !errors.As(target, &domainErr) {
		return false
	}
	return e.Code == domainErr.Code && e.Message == domainErr.Message
}

// HasCode reports whether err is, or wraps, a DomainError with code.
func HasCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return false
	}
	return domainErr.Code == code
}

func newDomainError(code ErrorCode, message string, cause error, context map[string]interface{}) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

func newUnknownOperationError(value string) *DomainError {
	return newDomainError(ErrCodeUnknownOperation, fmt.Sprintf("unknown operation %q", value), nil, map[string]interface{}{
		"operation": value,
	})
}

func newUnknownThemeError(value string) *DomainError {
	return newDomainError(ErrCodeUnknownTheme, fmt.Sprintf("unknown theme %q", value), nil, map[string]interface{}{
		"theme": value,
	})
}

func newUnknownFieldError(value string) *DomainError {
	return newDomainError(ErrCodeUnknownField, fmt.Sprintf("unknown field %q", value), nil, map[string]interface{}{
		"field": value,
	})
}

// NewUnsupportedOperationError reports that a container does not expose op.
func NewUnsupportedOperationError(container string, op Operation) *DomainError {
	return newDomainError(ErrCodeUnsupportedOperation, fmt.Sprintf("%s container does not support %s", container, op), nil, map[string]interface{}{
		"container": container,
		"operation": string(op),
	})
}

// NewDivergenceError reports that two containers disagreed after step.
func NewDivergenceError(step int, left, right string, diff string) *DomainError {
	return newDomainError(ErrCodeDivergence, fmt.Sprintf("%s and %s diverged at step %d", left, right, step), nil, map[string]interface{}{
		"step":  step,
		"left":  left,
		"right": right,
		"diff":  diff,
	})
}
