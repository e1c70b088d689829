package cli

import "fmt"

// Exit codes for the changelog-md CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitInvalidDocument indicates the changelog source failed validation
	ExitInvalidDocument = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 2

	// ExitRuntime indicates an I/O or environment failure
	ExitRuntime = 3
)

// ExitError carries an exit code through cobra's error return path.
type ExitError struct {
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// NewExitError creates an error carrying the given exit code.
func NewExitError(code int) error {
	return &ExitError{Code: code}
}

// ExitCode extracts the exit code from an error. A nil error maps to
// ExitSuccess and a generic error to ExitInvalidDocument.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if exitErr, ok := err.(*ExitError); ok {
		return exitErr.Code
	}
	return ExitInvalidDocument
}
