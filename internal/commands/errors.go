package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	TextCodeValidation    = "COMMAND_VALIDATION_FAILED"
	TextCodeCanceled      = "COMMAND_CONTEXT_CANCELED"
	TextCodeTimeout       = "COMMAND_CONTEXT_TIMEOUT"
	TextCodeContext       = "COMMAND_CONTEXT_ERROR"
	TextCodeExecuteFailed = "COMMAND_EXECUTION_FAILED"
)

// TextCode returns the go-errors text code carried by err, or "" when err is
// not a categorised error.
func TextCode(err error) string {
	var typed *goerrors.Error
	if errors.As(err, &typed) && typed != nil {
		return typed.TextCode
	}
	return ""
}

// wrapValidationError tags every message validation failure with
// TextCodeValidation, including errors go-command already categorised.
func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	wrapped := goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode(TextCodeValidation)
	wrapped.Category = goerrors.CategoryValidation
	return wrapped
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, context.Canceled):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution cancelled").
			WithTextCode(TextCodeCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution deadline exceeded").
			WithTextCode(TextCodeTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command context error").
			WithTextCode(TextCodeContext)
	}
}

// wrapExecuteError leaves content errors (not found, malformed) untouched so
// callers can still branch on their category.
func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
		WithTextCode(TextCodeExecuteFailed)
}
