package flowerrors

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/xerrors"
)

type ErrorCode int

// Error is an implementation of the built-in go error interface.
//
// Engine errors are designed to be transferred over the network
// between the gateway and its clients. Because of this, Error is a
// concrete type and not an interface.
//
// An engine error consists of an error code, a message, a list of
// attributes and a list of inner errors. Since an error might contain
// an arbitrary nested tree, traverse the whole tree when searching
// for a specific condition.
//
// Error supports brief and full formatting using %v and %+v format
// specifiers.
type Error struct {
	Code       ErrorCode      `json:"code"`
	Message    string         `json:"message"`
	Attributes map[string]any `json:"attributes,omitempty"`

	// NOTE: Unwrap() always returns last inner error.
	InnerErrors []*Error `json:"inner_errors,omitempty"`

	// Original error, saved during conversion.
	origError error
}

// ContainsErrorCode returns true iff any of the nested errors has ErrorCode equal to errorCode.
//
// ContainsErrorCode invokes errors.As internally. It is safe to pass arbitrary error value to this function.
func ContainsErrorCode(err error, code ErrorCode) bool {
	return FindErrorCode(err, code) != nil
}

// ContainsJobFailedError is convenient helper for checking CodeJobFailed.
func ContainsJobFailedError(err error) bool {
	return ContainsErrorCode(err, CodeJobFailed)
}

// FindErrorCode examines error and all nested errors, returning first engine error with given error code.
func FindErrorCode(err error, code ErrorCode) *Error {
	if err == nil {
		return nil
	}

	var flowErr *Error
	if ok := xerrors.As(err, &flowErr); ok {
		if code == flowErr.Code {
			return flowErr
		}

		for _, nested := range flowErr.InnerErrors {
			if flowErr = FindErrorCode(nested, code); flowErr != nil {
				return flowErr
			}
		}
	}

	return nil
}

func (e *Error) HasAttr(name string) bool {
	_, ok := e.Attributes[name]
	return ok
}

func (e *Error) AddAttr(name string, value any) {
	if e.Attributes == nil {
		e.Attributes = map[string]any{}
	}

	e.Attributes[name] = value
}

func (e *Error) Error() string {
	if e.origError != nil {
		return e.origError.Error()
	}

	return fmt.Sprint(e)
}

func (e *Error) Format(s fmt.State, v rune) { xerrors.FormatError(e, s, v) }

func (e *Error) FormatError(p xerrors.Printer) (next error) {
	p.Printf("%s", uncapitalize(e.Message))

	printAttrs := func(e *Error) {
		maxLen := 0
		if e.Code != CodeGeneric {
			maxLen = 4
		}

		for name := range e.Attributes {
			if len(name) > maxLen {
				maxLen = len(name)
			}
		}

		padding := func(name string) string {
			return strings.Repeat(" ", maxLen-len(name))
		}

		if e.Code != CodeGeneric {
			p.Printf("  code: %s%d\n", padding("code"), e.Code)
		}

		var names []string
		for name := range e.Attributes {
			names = append(names, name)
		}
		sort.Strings(names)

		formatAttr := func(v any) string {
			b, _ := json.Marshal(v)
			return string(b)
		}

		for _, name := range names {
			p.Printf("  %s: %s%s\n", name, padding(name), formatAttr(e.Attributes[name]))
		}
	}

	var visit func(*Error)
	visit = func(e *Error) {
		p.Printf("%s\n", uncapitalize(e.Message))
		printAttrs(e)

		for _, inner := range e.InnerErrors {
			visit(inner)
		}
	}

	if p.Detail() {
		p.Printf("\n")
		printAttrs(e)

		for _, inner := range e.InnerErrors {
			visit(inner)
		}
	} else {
		// Recursing only into the last inner error, since user asked for brief error.
		if len(e.InnerErrors) != 0 {
			return e.InnerErrors[len(e.InnerErrors)-1]
		}
	}

	return nil
}

type ErrorAttr struct {
	Name  string
	Value any
}

func Attr(name string, value any) ErrorAttr {
	return ErrorAttr{Name: name, Value: value}
}

// Err creates new error of type Error.
//
// NOTE: when passing multiple inner errors, only the last one will be accessible by errors.Is and errors.As.
func Err(args ...any) error {
	err := new(Error)
	err.Code = CodeGeneric
	err.Message = "Error"

	for _, arg := range args {
		switch v := arg.(type) {
		case ErrorCode:
			err.Code = v
		case string:
			err.Message = capitalize(v)
		case *Error:
			err.InnerErrors = append(err.InnerErrors, v)
		case ErrorAttr:
			err.AddAttr(v.Name, v.Value)
		case error:
			err.InnerErrors = append(err.InnerErrors, FromError(v).(*Error))
		default:
			panic(fmt.Sprintf("can't create flow error from type %T", arg))
		}
	}

	return err
}
