package domain

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSentinelErrors verifies sentinel errors are defined
func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check string
	}{
		{"ErrWriteFailed", ErrWriteFailed, "write failed"},
		{"ErrOutputExists", ErrOutputExists, "already exists"},
		{"ErrInvalidTime", ErrInvalidTime, "invalid timestamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Contains(t, tt.err.Error(), tt.check)
		})
	}
}

func TestWriteError(t *testing.T) {
	err := NewWriteError("install.rdf", fs.ErrPermission)

	assert.Equal(t, "write error for install.rdf: permission denied", err.Error())
	assert.True(t, errors.Is(err, ErrWriteFailed))
	assert.True(t, errors.Is(err, fs.ErrPermission))

	var wrapped error = err
	var writeErr *WriteError
	assert.True(t, errors.As(wrapped, &writeErr))
	assert.Equal(t, "install.rdf", writeErr.Path)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("at", "must be RFC3339 or epoch seconds")

	assert.Equal(t, "validation error for at: must be RFC3339 or epoch seconds", err.Error())
}
