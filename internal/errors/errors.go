// Package errors provides the typed error git-root reports and its exit code.
//
// git-root has exactly one failure mode: the current directory could not be
// resolved to a git work tree. Every cause (not a repository, git missing,
// permission denied, timeout) collapses into NotInRepositoryError, whose
// message is fixed so that git's own diagnostics never reach the user.
//
// Every non-nil error exits with code 1.
//
// Example usage:
//
//	if err := cmd.Run(); err != nil {
//		return errors.NewNotInRepositoryError(err)
//	}
//
//	exitCode := errors.GetExitCode(err)
package errors

// NotInRepositoryMessage is the text every NotInRepositoryError reports.
const NotInRepositoryMessage = "Not in a valid git repo"

// NotInRepositoryError reports that the repository root could not be determined.
// Cause is retained for inspection but is never part of the message.
type NotInRepositoryError struct {
	Cause error
}

// Error implements the error interface for NotInRepositoryError.
func (e *NotInRepositoryError) Error() string {
	return NotInRepositoryMessage
}

// Unwrap implements the error unwrapping interface for error chain inspection.
func (e *NotInRepositoryError) Unwrap() error {
	return e.Cause
}

// NewNotInRepositoryError creates a new NotInRepositoryError with the given cause.
// Returns an error interface to support standard Go error handling.
func NewNotInRepositoryError(cause error) error {
	return &NotInRepositoryError{Cause: cause}
}

// GetExitCode returns 0 for a nil error and 1 for any other error.
// There is a single failure kind, so no per-type mapping exists.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
