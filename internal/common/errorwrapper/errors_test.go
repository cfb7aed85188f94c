package errorwrapper

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name            string
		originalError   error
		message         string
		expectedMessage string
	}{
		{
			name:            "wrap simple error",
			originalError:   errors.New("original error"),
			message:         "wrapper message",
			expectedMessage: "wrapper message: original error",
		},
		{
			name:            "wrap nil error",
			originalError:   nil,
			message:         "wrapper message",
			expectedMessage: "wrapper message: <nil>",
		},
		{
			name:            "empty wrapper message",
			originalError:   errors.New("original error"),
			message:         "",
			expectedMessage: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrappedError := WrapError(tt.originalError, tt.message)
			assert.Error(t, wrappedError)
			assert.Equal(t, tt.expectedMessage, wrappedError.Error())
		})
	}
}

func TestWrapError_PreservesChain(t *testing.T) {
	wrapped := WrapError(os.ErrNotExist, "failed to read input")

	assert.True(t, errors.Is(wrapped, os.ErrNotExist))
}

func TestNewError(t *testing.T) {
	err := NewError("bad value %d for %s", 3, "tab_size")

	assert.EqualError(t, err, "bad value 3 for tab_size")
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("column_width", -1, "must not be negative")

	assert.Equal(t, "validation error: field 'column_width' with value '-1': must not be negative", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestIsValidationError(t *testing.T) {
	valErr := NewValidationError("tab_size", 0, "must be at least 1")

	assert.True(t, IsValidationError(valErr))
	assert.True(t, IsValidationError(WrapError(valErr, "invalid render options")))
	assert.False(t, IsValidationError(errors.New("plain")))
	assert.False(t, IsValidationError(nil))
}
