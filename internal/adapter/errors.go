// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/quote-sync/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrUnexpectedResponse is returned when a 2xx body does not have the
	// expected shape.
	ErrUnexpectedResponse = errors.New("unexpected response")
	// ErrAuthFailed is returned when a bearer token cannot be obtained.
	ErrAuthFailed = errors.New("authentication failed")
)

// HTTPError describes a non-2xx response from the org.
type HTTPError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Body is the structured error extracted from the response, or nil when
	// the response carried none.
	Body *models.RemoteErrorBody
	// Raw is the trimmed response body.
	Raw string

	err error
}

func (e *HTTPError) Error() string {
	if e.Body.HasMessage() {
		return fmt.Sprintf("%v (http %d): %s", e.err, e.StatusCode, e.Body.Message)
	}
	if e.Raw != "" {
		return fmt.Sprintf("%v (http %d): %s", e.err, e.StatusCode, e.Raw)
	}
	return fmt.Sprintf("%v (http %d)", e.err, e.StatusCode)
}

// Unwrap returns the sentinel matching the status code.
func (e *HTTPError) Unwrap() error {
	return e.err
}
