// Package domain defines domain-level errors for the analysis feature.
package domain

import (
	"errors"
	"net/http"
)

// ErrInvalidInput is returned when a request carries neither a YouTube URL nor an image file
// (or both). It is detected before any network call is made.
var ErrInvalidInput = errors.New("either a YouTube URL or an image file must be provided")

// TransportError reports that the analysis endpoint could not be reached at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return "analysis service unreachable"
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerError reports a non-2xx response from the analysis endpoint.
// Detail holds the server-provided message, or the HTTP status text when none could be read.
type ServerError struct {
	StatusCode int
	Detail     string
}

func (e *ServerError) Error() string {
	if e.Detail == "" {
		return http.StatusText(e.StatusCode)
	}
	return e.Detail
}

// ParseError reports a 2xx response whose body is not a valid analysis result.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "failed to parse analysis response"
	}
	return "failed to parse analysis response: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsUpstream reports whether err originated from the analysis endpoint round trip
// (transport, server or parse failure) rather than from local validation.
func IsUpstream(err error) bool {
	var (
		te *TransportError
		se *ServerError
		pe *ParseError
	)
	return errors.As(err, &te) || errors.As(err, &se) || errors.As(err, &pe)
}
