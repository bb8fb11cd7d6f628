package cli

import (
	"errors"
	"fmt"
	"log/slog"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Storage errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Column not found, card not found, or any case where an ID,
	// title or index doesn't match anything on the board.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Invalid JSON input, a board snapshot that fails validation.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, invalid priority values, invalid theme values.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code a failed command should end with
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code for err: ExitSuccess for nil, the carried
// code for an *ExitCodeError, ExitError otherwise
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// Fail reports an error through the formatter and returns it wrapped with an
// exit code
func Fail(f *OutputFormatter, exitCode int, code, message string) error {
	return FailWithSuggestion(f, exitCode, code, message, "")
}

// FailWithSuggestion is Fail with a hint for the user
func FailWithSuggestion(f *OutputFormatter, exitCode int, code, message, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(code, message, suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &ExitCodeError{Code: exitCode, Err: fmt.Errorf("%s: %s", code, message)}
}
