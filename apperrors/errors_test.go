package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", NewValidation("bad input"), 400},
		{"not found", NewNotFound("investment", "inv-1"), 404},
		{"incompatible tier", NewIncompatibleTier("level 2", "level 5"), 409},
		{"unknown", errors.New("boom"), 500},
		{"wrapped validation", fmt.Errorf("saving profile: %w", NewValidation("bad")), 400},
		{"wrapped not found", fmt.Errorf("toggle: %w", NewNotFound("user", "u-1")), 404},
	}
	for _, tt := range tests {
		if got := StatusCode(tt.err); got != tt.expected {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.expected, got)
		}
	}
}
