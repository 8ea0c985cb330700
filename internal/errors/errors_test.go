package errors

import (
	"errors"
	"fmt"
	"os/exec"
	"testing"
)

func TestNotInRepositoryError(t *testing.T) {
	tests := []struct {
		name  string
		cause error
		want  string
	}{
		{
			name:  "without cause",
			cause: nil,
			want:  "Not in a valid git repo",
		},
		{
			name:  "cause is not part of the message",
			cause: errors.New("fatal: not a git repository (or any of the parent directories): .git"),
			want:  "Not in a valid git repo",
		},
		{
			name:  "missing executable",
			cause: &exec.Error{Name: "git", Err: exec.ErrNotFound},
			want:  "Not in a valid git repo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotInRepositoryError(tt.cause)
			if err.Error() != tt.want {
				t.Errorf("got %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "not in repository returns code 1",
			err:      NewNotInRepositoryError(nil),
			wantCode: 1,
		},
		{
			name:     "wrapped not in repository returns code 1",
			err:      fmt.Errorf("resolve root: %w", NewNotInRepositoryError(errors.New("exit status 128"))),
			wantCode: 1,
		},
		{
			name:     "unknown error returns code 1",
			err:      errors.New("unknown error"),
			wantCode: 1,
		},
		{
			name:     "nil error returns code 0",
			err:      nil,
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := GetExitCode(tt.err)
			if code != tt.wantCode {
				t.Errorf("got code %d, want %d", code, tt.wantCode)
			}
		})
	}
}

func TestErrorUnwrapping(t *testing.T) {
	cause := errors.New("test cause")
	err := NewNotInRepositoryError(cause)

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("got unwrapped %v, want %v", unwrapped, cause)
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is() failed to find cause in chain")
	}
}

func TestNotInRepositoryErrorType(t *testing.T) {
	err := NewNotInRepositoryError(nil)
	var notInRepo *NotInRepositoryError
	if !errors.As(err, &notInRepo) {
		t.Fatalf("errors.As() failed to extract NotInRepositoryError")
	}
	if notInRepo.Cause != nil {
		t.Errorf("got cause %v, want nil", notInRepo.Cause)
	}
}
