package app

import "errors"

var (
	// ErrBadRequest indicates the caller omitted the activation code.
	ErrBadRequest = errors.New("bad request")
	// ErrForward indicates the receiver did not accept the event.
	ErrForward = errors.New("forward error")
)
