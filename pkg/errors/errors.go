// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package errors provides an error type that keeps a message and a wrapped
// cause, so a validation kind can be layered over a field-naming detail.
package errors

// Error specifies an API that must be fulfilled by error type.
type Error interface {
	// Error implements the error interface.
	Error() string

	// Msg returns error message.
	Msg() string

	// Err returns wrapped error.
	Err() Error
}

var _ Error = (*wrappedError)(nil)

type wrappedError struct {
	msg string
	err Error
}

// New returns an Error that formats as the given text.
func New(text string) Error {
	return &wrappedError{
		msg: text,
		err: nil,
	}
}

func (we *wrappedError) Error() string {
	if we == nil {
		return ""
	}
	if we.err == nil {
		return we.msg
	}
	return we.msg + " : " + we.err.Error()
}

func (we *wrappedError) Msg() string {
	return we.msg
}

func (we *wrappedError) Err() Error {
	return we.err
}

// Wrap returns an Error with err layered under wrapper.
func Wrap(wrapper, err error) error {
	if wrapper == nil || err == nil {
		return wrapper
	}
	if w, ok := wrapper.(Error); ok {
		return &wrappedError{
			msg: w.Msg(),
			err: cast(err),
		}
	}
	return &wrappedError{
		msg: wrapper.Error(),
		err: cast(err),
	}
}

// Unwrap separates the topmost wrapper from the wrapped error.
func Unwrap(err error) (error, error) {
	if we, ok := err.(Error); ok {
		if we.Err() == nil {
			return nil, New(we.Msg())
		}
		return New(we.Msg()), we.Err()
	}

	return nil, err
}

// Contains inspects if e2 error is contained in any layer of e1 error.
func Contains(e1, e2 error) bool {
	if e1 == nil || e2 == nil {
		return e2 == e1
	}
	we, ok := e1.(Error)
	if ok {
		if we.Msg() == e2.Error() {
			return true
		}
		return Contains(we.Err(), e2)
	}
	return e1.Error() == e2.Error()
}

func cast(err error) Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		return e
	}
	return &wrappedError{
		msg: err.Error(),
		err: nil,
	}
}
