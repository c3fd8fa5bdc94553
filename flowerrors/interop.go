package flowerrors

import (
	"errors"
	"strings"
	"unicode"
)

// FromError converts any error to an engine error, if it is not one already.
//
// Nested errors are converted to nested engine errors.
//
// err is stored internally and is accessible using errors.As and errors.Is.
// Original error is discarded during serialization.
func FromError(err error) error {
	switch v := err.(type) {
	case *Error:
		return v

	case nil:
		return nil

	default:
		return convertError(v)
	}
}

func convertError(err error) *Error {
	e := new(Error)
	e.Code = CodeGeneric
	e.Message = err.Error()
	e.origError = err

	if inner := errors.Unwrap(err); inner != nil {
		e.Message = strings.TrimSuffix(e.Message, inner.Error())
		e.Message = strings.TrimSuffix(e.Message, ": ")

		e.InnerErrors = []*Error{FromError(inner).(*Error)}
	}

	e.Message = capitalize(e.Message)
	return e
}

func (e *Error) Is(target error) bool {
	if e.origError == nil {
		return false
	}

	return errors.Is(e.origError, target)
}

func (e *Error) As(target any) bool {
	if e.origError == nil {
		return false
	}

	return errors.As(e.origError, target)
}

// Unwrap always returns last inner error.
func (e *Error) Unwrap() error {
	if len(e.InnerErrors) == 0 {
		return nil
	}

	return e.InnerErrors[len(e.InnerErrors)-1]
}

// capitalize converts go style error message to engine style.
func capitalize(msg string) string {
	if len(msg) == 0 {
		return msg
	}

	runes := []rune(msg)
	for i, r := range runes {
		if r == ' ' || i+1 == len(runes) {
			runes[0] = unicode.ToUpper(runes[0])
			break
		}

		if r == ':' {
			break
		}
	}

	return string(runes)
}

// uncapitalize converts engine style error message to go style.
func uncapitalize(msg string) string {
	if len(msg) == 0 {
		return msg
	}

	runes := []rune(msg)
	if len(runes) == 1 || !unicode.IsUpper(runes[1]) {
		runes[0] = unicode.ToLower(runes[0])
	}

	return string(runes)
}
