package domain

import (
	"errors"
	"fmt"
)

// Error carries a user-facing message, the underlying cause and a code
// sentinel that callers match with errors.Is.
type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}

	return e.msg
}

func (e *Error) Unwrap() []error {
	if e.orig == nil {
		return []error{e.code}
	}
	return []error{e.code, e.orig}
}

func (e *Error) Code() error {
	return e.code
}

func WrapErrorf(orig error, code error, format string, a ...any) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func NewErrorf(code error, format string, a ...any) error {
	return WrapErrorf(nil, code, format, a...)
}

var (
	// ErrParse marks malformed coordinate text.
	ErrParse = errors.New("invalid coordinate")
	// ErrConfig marks a missing or malformed map setting.
	ErrConfig = errors.New("improperly configured")
	// ErrLoad marks a backend identifier that resolves to nothing.
	ErrLoad = errors.New("backend not found")
	// ErrNotFound is returned by repositories for unknown ids.
	ErrNotFound = errors.New("your requested item is not found")

	ErrInvalidSeparator = fmt.Errorf("%w: separator must be ';'", ErrParse)
	ErrInvalidNumber    = fmt.Errorf("%w: both values must be a decimal number or integer", ErrParse)
	ErrValueTooLong     = errors.New("coordinate text exceeds column length")
)

// ParseError reports the offending input of a failed coordinate parse.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse latlong %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
