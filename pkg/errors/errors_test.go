package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuredError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "code and message",
			err:      New(ErrCodeUnknownUnit, "no unit named furlong"),
			expected: "[UNKNOWN_UNIT] no unit named furlong",
		},
		{
			name:     "with cause",
			err:      Wrap(ErrCodeInternal, "density table load failed", errors.New("bad yaml")),
			expected: "[INTERNAL] density table load failed: bad yaml",
		},
		{
			name:     "formatted message",
			err:      Newf(ErrCodeUnknownIngredient, "no ingredient named %q", "nutella"),
			expected: `[UNKNOWN_INGREDIENT] no ingredient named "nutella"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInvalidRequest, "bad amount", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, err.Unwrap())
}

func TestHasCode(t *testing.T) {
	err := New(ErrCodeMissingIngredient, "quantity has no ingredient")

	assert.True(t, HasCode(err, ErrCodeMissingIngredient))
	assert.False(t, HasCode(err, ErrCodeDimensionMismatch))
	assert.False(t, HasCode(errors.New("plain"), ErrCodeMissingIngredient))
	assert.False(t, HasCode(nil, ErrCodeMissingIngredient))
}

func TestHasCode_Wrapped(t *testing.T) {
	inner := New(ErrCodeUnknownUnit, "no such unit")
	outer := fmt.Errorf("parsing flag: %w", inner)

	assert.True(t, HasCode(outer, ErrCodeUnknownUnit))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, ErrCodeUnknownUnit, CodeOf(New(ErrCodeUnknownUnit, "x")))
	assert.Equal(t, ErrCodeInternal, CodeOf(errors.New("plain")))
}

func TestNewWithContext(t *testing.T) {
	err := NewWithContext(ErrCodeDimensionMismatch, "cannot convert", map[string]any{
		"from": "g",
		"to":   "cup",
	})

	assert.Equal(t, "g", err.Context["from"])
	assert.Equal(t, "cup", err.Context["to"])
}
