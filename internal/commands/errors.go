package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	commandValidationCode   = "BOOKMARKS_COMMAND_VALIDATION_FAILED"
	commandContextCanceled  = "BOOKMARKS_COMMAND_CANCELED"
	commandContextTimeout   = "BOOKMARKS_COMMAND_TIMEOUT"
	commandContextErrorCode = "BOOKMARKS_COMMAND_CONTEXT_ERROR"
	commandExecuteFailed    = "BOOKMARKS_COMMAND_FAILED"
)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.FromOzzoValidation(err, "bookmarks command: validation failed").
		WithTextCode(commandValidationCode)
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
		return goerrors.Wrap(err, goerrors.CategoryCommand, "bookmarks command: cancelled").
			WithTextCode(commandContextCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "bookmarks command: deadline exceeded").
			WithTextCode(commandContextTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "bookmarks command: context error").
			WithTextCode(commandContextErrorCode)
	}
}

// wrapExecuteError tags plain errors with the command category. Errors that
// already carry a category, such as I/O failures from the parser, keep it.
func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "bookmarks command: execution failed").
		WithTextCode(commandExecuteFailed)
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
