package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/habitlog/internal/logger"
)

// Format renders an error for the terminal with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf is Format for a message built from a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Report logs err and writes it to w. It returns true if err was non-nil.
func Report(w io.Writer, err error) bool {
	if err == nil {
		return false
	}
	logger.Error("Command failed", "error", err)
	fmt.Fprintln(w, Format(err))
	return true
}

// Fatal reports err on stderr and exits with status 1. A nil err is a no-op.
func Fatal(err error) {
	if Report(os.Stderr, err) {
		logger.Close()
		os.Exit(1)
	}
}
