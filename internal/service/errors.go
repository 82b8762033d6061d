// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/quote-sync/models"
)

var (
	ErrEmptyQuoteID = errors.New("quote id is empty")
)

// RemoteError is returned when a remote operation fails. Body holds the
// structured error sent by the org, if any.
type RemoteError struct {
	// Op is the name of the failed remote operation.
	Op   string
	Body *models.RemoteErrorBody
	Err  error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Message returns the user facing message sent by the org, or "" when the
// error carried none.
func (e *RemoteError) Message() string {
	if e.Body.HasMessage() {
		return e.Body.Message
	}
	return ""
}

// RemoteMessage returns the org supplied message of err when err wraps a
// [*RemoteError] that carries one.
func RemoteMessage(err error) (string, bool) {
	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		return "", false
	}

	msg := remoteErr.Message()
	return msg, msg != ""
}
