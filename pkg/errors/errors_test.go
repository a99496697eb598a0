package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructionErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewConstructionError("size", "must not be less than 9", nil)

	var constructionErr *ConstructionError
	require.ErrorAs(t, err, &constructionErr)
	require.Equal(t, "size", constructionErr.Field)
	require.Equal(t, "construction error: size: must not be less than 9", err.Error())
}

func TestInvalidColorErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("bad hex")
	err := NewInvalidColorError("#zzz", underlying)

	var colorErr *InvalidColorError
	require.ErrorAs(t, err, &colorErr)
	require.Equal(t, "#zzz", colorErr.Value)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "#zzz")
}

func TestInvalidSchemeColorErrorNamesKey(t *testing.T) {
	t.Parallel()

	err := NewInvalidSchemeColorError("primary", "not-a-color", nil)

	var colorErr *InvalidColorError
	require.ErrorAs(t, err, &colorErr)
	require.Equal(t, "primary", colorErr.Key)
	require.Equal(t, "custom color scheme primary is not a valid color", err.Error())
}

func TestTypeMismatchErrorNamesKey(t *testing.T) {
	t.Parallel()

	err := NewTypeMismatchError("secondary", "hex", "rgb")

	var mismatchErr *TypeMismatchError
	require.ErrorAs(t, err, &mismatchErr)
	require.Equal(t, "hex", mismatchErr.Want)
	require.Equal(t, "rgb", mismatchErr.Got)
	require.Contains(t, err.Error(), "secondary")
	require.Contains(t, err.Error(), "must be the same as the primary color type")
}

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("visdev.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "visdev.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "visdev.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("palette.size", "must be at least 9", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "palette.size", validationErr.Field)
	require.Contains(t, validationErr.Message, "at least 9")
}
