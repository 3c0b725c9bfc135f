package diary

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNoSelection is returned when the selected menu item is read before the
	// host ever assigned one.
	ErrNoSelection = errors.New("no menu item selected")

	// ErrCancelled indicates the host loop was closed by the user (window closed, quit key).
	// This is a normal flow control error, not an infrastructure failure.
	ErrCancelled = errors.New("closed by user")
)

// InfrastructureError represents a failure below the widgets: SDL could not
// render, a font or icon failed to load, a config file was unreadable.
// Widget state is never the cause of one.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "render", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("diary: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("diary: %s", e.Op)
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

// IsNoSelection checks if an error reports a missing menu selection.
func IsNoSelection(err error) bool {
	return errors.Is(err, ErrNoSelection)
}

// IsCancelled checks if an error indicates the user closed the host.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
