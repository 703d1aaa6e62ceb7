package commands

import (
	"context"
	"errors"
	"io/fs"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-ccpm/internal/markdown"
)

// Text codes attached to the errors a Handler returns.
const (
	CodeInvalidMessage  = "COMMAND_INVALID_MESSAGE"
	CodeCanceled        = "COMMAND_CANCELED"
	CodeTimedOut        = "COMMAND_TIMED_OUT"
	CodeExecutionFailed = "COMMAND_EXECUTION_FAILED"
	CodeInvalidEncoding = "CONTENT_INVALID_ENCODING"
	CodeBodyWriteFailed = "BODY_WRITE_FAILED"
	CodeBodyUnreadable  = "BODY_ACCESS_DENIED"
)

// failureClass maps a sentinel found in an error chain onto the message and
// text code reported for it. Order matters: the first match wins.
type failureClass struct {
	target  error
	code    string
	message string
}

var executionFailures = []failureClass{
	{context.DeadlineExceeded, CodeTimedOut, "command deadline exceeded"},
	{context.Canceled, CodeCanceled, "command cancelled"},
	{markdown.ErrInvalidEncoding, CodeInvalidEncoding, "body file is not valid UTF-8"},
	{markdown.ErrBodyWrite, CodeBodyWriteFailed, "body file could not be written"},
	{fs.ErrPermission, CodeBodyUnreadable, "body file is not accessible"},
}

// codeKey keeps the text code in error metadata. Dispatchers that re-wrap a
// go-errors value replace TextCode but carry metadata over.
const codeKey = "ccpm_code"

// ErrorCode returns the text code a Handler attached to err, including after
// go-command's dispatcher has wrapped it. Errors not tagged by a Handler
// yield their outermost go-errors text code, or "".
func ErrorCode(err error) string {
	var tagged *goerrors.Error
	if !goerrors.As(err, &tagged) {
		return ""
	}
	if code, ok := tagged.Metadata[codeKey].(string); ok {
		return code
	}
	return tagged.TextCode
}

func tag(err *goerrors.Error, code string) error {
	return err.WithTextCode(code).WithMetadata(map[string]any{codeKey: code})
}

func invalidMessage(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return tag(goerrors.Wrap(err, goerrors.CategoryValidation, "command message rejected"), CodeInvalidMessage)
}

func executionFailure(err error) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	for _, class := range executionFailures {
		if errors.Is(err, class.target) {
			return tag(goerrors.Wrap(err, goerrors.CategoryCommand, class.message), class.code)
		}
	}
	return tag(goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed"), CodeExecutionFailed)
}

// isContextFailure reports whether err came from the handler's context
// rather than from the wrapped function.
func isContextFailure(err error) bool {
	switch ErrorCode(err) {
	case CodeCanceled, CodeTimedOut:
		return true
	}
	return false
}
