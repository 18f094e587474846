package main

import "fmt"

// Exit codes for the pathreport CLI.
const (
	ExitOK             = 0 // All parsers succeeded.
	ExitInvalidArgs    = 1 // Invalid arguments or bad path.
	ExitPartialFailure = 2 // Some parsers failed, report still written.
	ExitTotalFailure   = 3 // No report produced.
)

// exitCodeError carries an exit code alongside the error message.
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
		case ExitPartialFailure:
			msg = "pathreport: some parsers failed"
		case ExitTotalFailure:
			msg = "pathreport: all parsers failed"
		default:
			msg = fmt.Sprintf("pathreport: exit code %d", code)
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
