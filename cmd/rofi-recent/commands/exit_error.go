package commands

import "fmt"

// Exit codes
const (
	ExitSetup  = 1 // registry missing or unreadable, bad configuration
	ExitLaunch = 2 // selection not found or program failed to start
)

// ExitError signals a non-zero exit code without calling os.Exit in RunE handlers
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any
func (e *ExitError) Unwrap() error {
	return e.Err
}
