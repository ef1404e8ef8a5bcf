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
	err := NewParseError("delimiter.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "delimiter.yaml", parseErr.Source)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "delimiter.yaml")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("block data", 0, stdErrors.New("not an object"))
	require.Contains(t, err.Error(), "block data: not an object")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("lineWidths[2]", "not a supported width", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "lineWidths[2]", validationErr.Field)
	require.Contains(t, validationErr.Message, "not a supported width")
}

func TestToolErrorIncludesToolName(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("already registered")
	err := NewToolError("delimiter", underlying)

	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	require.Equal(t, "delimiter", toolErr.Tool)
	require.True(t, stdErrors.Is(err, underlying))
}
