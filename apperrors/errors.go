// apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError means user-supplied input failed a precondition. No
// state was mutated; the caller should report it and keep prior state.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Message)
}

func NewValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError means an operation referenced an id absent from its
// target collection.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// IncompatibleTierError means a comparison selection violated the
// same-tier rule. The rejected candidate was not added.
type IncompatibleTierError struct {
	Selected  string
	Candidate string
}

func (e *IncompatibleTierError) Error() string {
	return fmt.Sprintf("cannot compare across tiers: selected %s, candidate %s", e.Selected, e.Candidate)
}

func NewIncompatibleTier(selected, candidate string) *IncompatibleTierError {
	return &IncompatibleTierError{Selected: selected, Candidate: candidate}
}

// StatusCode maps a domain error to an HTTP status. Unknown errors are
// treated as internal.
func StatusCode(err error) int {
	var ve *ValidationError
	var nfe *NotFoundError
	var ite *IncompatibleTierError

	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &nfe):
		return http.StatusNotFound
	case errors.As(err, &ite):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
