package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", NewValidationError("bad input"), fiber.StatusBadRequest},
		{"Not found", NewNotFoundError("User not found"), fiber.StatusNotFound},
		{"Conflict", NewConflictError("duplicate"), fiber.StatusConflict},
		{"Internal", NewInternalError(errors.New("db down")), fiber.StatusInternalServerError},
		{"Plain error", errors.New("boom"), fiber.StatusInternalServerError},
		{"Wrapped app error", fmt.Errorf("context: %w", NewNotFoundError("gone")), fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusForError(tt.err))
		})
	}
}

func TestAppError_UnwrapPreservesCause(t *testing.T) {
	cause := errors.New("database is locked")
	err := NewInternalError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "database is locked")
}
