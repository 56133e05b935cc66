package service

import (
	"fmt"

	"github.com/challenge-dashboard-api/internal/validation"
)

// ValidationError rejects a mutation before any store call happens.
// The HTTP layer renders the full field list.
type ValidationError struct {
	Errors []validation.ValidationError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
}

// StoreError wraps a failed external store call. The cause propagates
// untouched so the operator sees exactly what the store reported; no
// automatic retry happens anywhere below the operator.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
