package fetch

import (
	"errors"
	"fmt"
)

var (
	ErrTooManyRedirects = errors.New("too many redirects")
	ErrBadRedirect      = errors.New("redirect without location")
)

// StatusError is returned for any response that is neither 200 nor a followable 302.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status code %d", e.Code)
}

type OpError struct {
	Op  string
	URL string
	Err error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(op, url string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, URL: url, Err: err}
}
