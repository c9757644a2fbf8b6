// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the surveyboard CLI.
const (
	ExitOK            = 0 // Success.
	ExitInvalidArgs   = 1 // Invalid arguments, I/O or render failure.
	ExitConfigError   = 2 // Invalid configuration or section mapping.
	ExitSourceMissing = 3 // At least one section's data source was not found.
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
		case ExitConfigError:
			msg = "surveyboard: invalid configuration"
		case ExitSourceMissing:
			msg = "surveyboard: data source not found"
		default:
			msg = "surveyboard: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
