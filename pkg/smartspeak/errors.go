package smartspeak

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNotInitialized indicates a call that needs Init ran before it.
	ErrNotInitialized = errors.New("smartspeak: not initialized")
)

// InfrastructureError represents a failure of the environment the navigation
// core runs in (config file unreadable, input device missing, message
// catalog broken). Navigation itself never fails; these errors come from
// setting it up.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load_config", "open_input")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("smartspeak: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("smartspeak: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
