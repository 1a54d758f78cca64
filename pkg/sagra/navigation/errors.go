package navigation

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrEmptyStack indicates an attempt to restore a navigation stack from
	// an empty route list. A live stack always holds at least one element.
	ErrEmptyStack = errors.New("navigation stack must not be empty")

	// ErrNilRegistry indicates a host was created without an entry registry.
	ErrNilRegistry = errors.New("host requires a registry")
)

// ConfigurationError represents a wiring-level error that indicates the
// navigation core itself is set up wrongly (a route variant without a
// registered entry, an entry for a kind that does not exist, unreadable
// persisted state). These errors are detected at startup and are fatal;
// there is no runtime fallback.
type ConfigurationError struct {
	Op  string // Operation that failed (e.g., "registry", "restore")
	Err error  // Underlying error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sagra: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sagra: %s", e.Op)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(op string, err error) *ConfigurationError {
	return &ConfigurationError{Op: op, Err: err}
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	var confErr *ConfigurationError
	return errors.As(err, &confErr)
}
