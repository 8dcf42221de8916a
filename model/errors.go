package model

import (
	"fmt"
	"strings"
)

// ErrorKind is the stable machine-readable failure category exposed to
// callers.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindForbidden  ErrorKind = "forbidden"
	KindConflict   ErrorKind = "conflict"
	KindInternal   ErrorKind = "internal"
)

// ReasonClosed distinguishes "form exists but refuses submissions" from a
// token that does not resolve at all.
const ReasonClosed = "closed"

type Error struct {
	Kind    ErrorKind
	Message string
	Fields  []string // failing fields, for validation errors
	Reason  string   // machine-readable detail, e.g. ReasonClosed
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, strings.Join(e.Fields, "; "))
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func Validation(msg string, fields ...string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func ForbiddenClosed() *Error {
	return &Error{
		Kind:    KindForbidden,
		Message: "This form is no longer accepting responses.",
		Reason:  ReasonClosed,
	}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: err.Error()}
}
