package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotImplementedErrorMatchesSentinel(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("present: %w", NewNotImplementedError("action sheet style"))

	var notImpl *NotImplementedError
	require.ErrorAs(t, err, &notImpl)
	require.Equal(t, "action sheet style", notImpl.Feature)
	require.True(t, stdErrors.Is(err, ErrNotImplemented))
	require.False(t, stdErrors.Is(err, ErrInvalidState))
	require.Contains(t, err.Error(), "action sheet style")
}

func TestInvalidStateErrorIncludesOperation(t *testing.T) {
	t.Parallel()

	err := NewInvalidStateError("add action", "presented")

	var stateErr *InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	require.Equal(t, "add action", stateErr.Op)
	require.Equal(t, "presented", stateErr.State)
	require.ErrorIs(t, err, ErrInvalidState)
	require.Equal(t, "invalid state: add action not allowed while presented", err.Error())
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("alert.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "alert.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "alert.yaml:12")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("alert.actions[1].kind", "must be one of default destructive cancel", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "alert.actions[1].kind", validationErr.Field)
	require.Contains(t, validationErr.Message, "must be one of")
}
