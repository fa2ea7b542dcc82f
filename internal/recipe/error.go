package recipe

import (
	"errors"
	"net/url"
)

const (
	// MsgStatusFailure is shown for any non-2xx response; the body is not read
	MsgStatusFailure = "Failed to generate recipe"
	// MsgUnknownFailure is shown when a fault carries no message of its own
	MsgUnknownFailure = "An error occurred"
)

// StatusError means the service answered with a non-2xx status
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return MsgStatusFailure
}

// Code returns the HTTP status the service responded with
func (e *StatusError) Code() int {
	return e.StatusCode
}

// TransportError means the exchange did not complete: the service was
// unreachable, the request timed out or was cancelled, or the body could not
// be decoded
type TransportError struct {
	Err error
}

// Error returns the innermost fault message. net/http wraps transport faults
// in *url.Error ("Post \"...\": <fault>"); only the fault itself is useful to
// show.
func (e *TransportError) Error() string {
	if e.Err == nil {
		return MsgUnknownFailure
	}
	err := e.Err
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		err = uerr.Err
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MsgUnknownFailure
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type coder interface {
	Code() int
}

// StatusCode extracts the HTTP status from an error, or 0 when the error did
// not come from a response
func StatusCode(err error) int {
	var cerr coder
	if errors.As(err, &cerr) {
		return cerr.Code()
	}
	return 0
}

// Message returns the text to display for a failed request
func Message(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MsgUnknownFailure
}
