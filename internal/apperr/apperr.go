package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an application error independently of its user-facing text.
// Handlers map kinds to HTTP statuses and to localized (French) messages via
// the locale catalog; core packages only ever deal in kinds.
type Kind string

const (
	PermissionDenied Kind = "permission_denied"
	NotFound         Kind = "not_found"
	Invalid          Kind = "invalid"
	Conflict         Kind = "conflict"
	Internal         Kind = "internal"
)

// Error carries a kind, a message-catalog code and an internal detail string.
type Error struct {
	Kind   Kind
	Code   string
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return string(e.Kind) + ": " + e.Detail
	}
	return string(e.Kind) + ": " + e.Code
}

func New(kind Kind, code string) *Error {
	return &Error{Kind: kind, Code: code}
}

func Newf(kind Kind, code, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Code: code, Detail: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from an error chain, defaulting to Internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return Internal
}

// CodeOf extracts the message-catalog code, empty when err is not an *Error.
func CodeOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// HTTPStatus maps an error kind to the status handlers should respond with.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case PermissionDenied:
		return fiber.StatusForbidden
	case NotFound:
		return fiber.StatusNotFound
	case Invalid:
		return fiber.StatusBadRequest
	case Conflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
