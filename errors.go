package vobject

import (
	"fmt"

	"github.com/ghettovoice/vobject/internal/errorutil"
	"github.com/ghettovoice/vobject/internal/grammar"
)

// Error represents a vobject error.
// See [errorutil.Error].
type Error = errorutil.Error

// Common errors.
const (
	// ErrEmptyInput is returned when the parsed input is empty.
	ErrEmptyInput = grammar.ErrEmptyInput
	// ErrMalformedInput is wrapped by every [ParseError].
	ErrMalformedInput = grammar.ErrMalformedInput
	// ErrInvalidArgument is returned when an invalid argument is provided.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
)

// ParseError describes a failed parse.
//
// Err wraps [ErrMalformedInput] with a human-readable description,
// Pos is the byte offset in the input where the parser stopped
// and Buf is the input starting from Pos, cut to a sane length.
type ParseError struct {
	Err error
	Pos int
	Buf []byte
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %v", err.Pos, err.Err)
}

func (err *ParseError) Unwrap() error { return err.Err }

func (*ParseError) Grammar() bool { return true }

func newParseError(pos int, input string, format string, args ...any) *ParseError {
	const maxBuf = 64
	buf := input[min(pos, len(input)):]
	if len(buf) > maxBuf {
		buf = buf[:maxBuf]
	}
	return &ParseError{
		Err: errorutil.NewWrapperError(ErrMalformedInput, fmt.Sprintf(format, args...)),
		Pos: pos,
		Buf: []byte(buf),
	}
}
