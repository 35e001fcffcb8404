package service

import (
	"errors"
	"fmt"

	"github.com/antonio25x/pet-cheap/internal/validation"
)

var (
	// ErrAmountMismatch signals that the client-claimed total diverged
	// from the recomputed total beyond rounding tolerance. Treated as a
	// tampering signal; nothing is written.
	ErrAmountMismatch = errors.New("Amount mismatch")

	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError carries the field-level failures of a rejected payload.
type ValidationError struct {
	Errors []validation.FieldError
}

func (e *ValidationError) Error() string { return "invalid payment intent data" }

// ProductNotFoundError is returned when a checkout references a catalog
// key that does not exist. The whole request fails; no partial order.
type ProductNotFoundError struct {
	ID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product %s not found", e.ID)
}
