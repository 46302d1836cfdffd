package main

import "fmt"

// Exit codes returned by the clipprompt CLI.
const (
	// ExitOK means the command completed successfully.
	ExitOK = 0

	// ExitConfigError means the arguments were invalid or a data file could
	// not be read or written.
	ExitConfigError = 1

	// ExitExecutionFailed means the preset ran but the provider call failed:
	// missing credential, unreachable endpoint, or a non-2xx response.
	ExitExecutionFailed = 2
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitExecutionFailed:
			msg = "clipprompt: preset execution failed"
		default:
			msg = "clipprompt: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
