package client

import (
	"errors"
	"fmt"
)

// Failure kinds callers can test with errors.Is.
var (
	// ErrTransportExhausted means no attempt produced an HTTP 200.
	ErrTransportExhausted = errors.New("transport attempts exhausted")

	// ErrMalformedResponse means the camera answered 200 but the payload
	// did not have the expected shape.
	ErrMalformedResponse = errors.New("malformed response payload")
)

// CommandError is an application-level rejection: the exchange succeeded at
// the transport level but the camera answered the command with a nonzero
// code. Token expiry shows up here too; the library never re-logins on its
// own, the host decides whether to call Login again and retry.
type CommandError struct {
	Cmd     string
	Code    int
	RspCode int
	Detail  string
}

func (e *CommandError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s rejected by camera: code %d (%s)", e.Cmd, e.Code, e.Detail)
	}
	return fmt.Sprintf("%s rejected by camera: code %d", e.Cmd, e.Code)
}
