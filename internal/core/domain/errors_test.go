package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrLoad", ErrLoad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrNotFound tests ErrNotFound error
func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.True(t, errors.Is(ErrNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrNotFound, ErrAlreadyExists))
}

func TestLoadError(t *testing.T) {
	cause := fmt.Errorf("fetching: %w", ErrNotFound)
	err := &LoadError{File: "postliste_2.json", Err: cause}

	assert.Equal(t, "loading postliste_2.json: fetching: not found", err.Error())
	assert.True(t, errors.Is(err, ErrLoad))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInvalidInput))

	wrapped := fmt.Errorf("session: %w", err)
	var loadErr *LoadError
	assert.True(t, errors.As(wrapped, &loadErr))
	assert.Equal(t, "postliste_2.json", loadErr.File)
	assert.True(t, errors.Is(wrapped, ErrLoad))
}
