package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/tempo-app/tempo/internal/logger"
)

var (
	// ErrNotFound indicates an update or completion referenced an absent id.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates an operation would violate a uniqueness rule,
	// such as starting a focus session while one is already running.
	ErrConflict = errors.New("conflict")
)

// NotFound wraps ErrNotFound with a description of the missing record.
func NotFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}

// Conflict wraps ErrConflict with a description of the violated rule.
func Conflict(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err is or wraps ErrConflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
