// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RemoteErrorBody is the structured part of an error returned by the org.
// Message is shown to the user verbatim when it is not empty.
type RemoteErrorBody struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode,omitempty"`
}

// HasMessage reports whether the body carries a user facing message.
func (b *RemoteErrorBody) HasMessage() bool {
	return b != nil && b.Message != ""
}
