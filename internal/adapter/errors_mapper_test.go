// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/quote-sync/models"
	"github.com/stretchr/testify/assert"
)

func TestParseErrorBody(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *models.RemoteErrorBody
	}{
		{name: "empty", raw: "", want: nil},
		{name: "not json", raw: "Service Unavailable", want: nil},
		{name: "json string", raw: `"oops"`, want: nil},
		{name: "object without message", raw: `{"foo":"bar"}`, want: nil},
		{name: "plain object", raw: `{"message":"Conflict","errorCode":"DUPLICATE"}`, want: &models.RemoteErrorBody{Message: "Conflict", ErrorCode: "DUPLICATE"}},
		{name: "rest array", raw: `[{"message":"Bad id","errorCode":"MALFORMED_ID"}]`, want: &models.RemoteErrorBody{Message: "Bad id", ErrorCode: "MALFORMED_ID"}},
		{name: "wrapped body", raw: `{"body":{"message":"Conflict"}}`, want: &models.RemoteErrorBody{Message: "Conflict"}},
		{name: "empty array", raw: `[]`, want: nil},
		{name: "code only", raw: `{"errorCode":"X"}`, want: &models.RemoteErrorBody{ErrorCode: "X"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseErrorBody([]byte(tt.raw)))
		})
	}
}

func TestSentinelForStatus(t *testing.T) {
	tests := map[int]error{
		http.StatusBadRequest:          ErrBadRequest,
		http.StatusUnauthorized:        ErrUnauthorized,
		http.StatusForbidden:           ErrForbidden,
		http.StatusNotFound:            ErrNotFound,
		http.StatusConflict:            ErrConflict,
		http.StatusBadGateway:          ErrBadGateway,
		http.StatusInternalServerError: ErrInternalServerError,
		http.StatusTeapot:              ErrUnexpectedStatus,
	}

	for status, want := range tests {
		assert.ErrorIs(t, sentinelForStatus(status), want, "status %d", status)
	}
}

func TestHTTPError_Error(t *testing.T) {
	withBody := &HTTPError{StatusCode: 409, Body: &models.RemoteErrorBody{Message: "Conflict"}, err: ErrConflict}
	assert.Equal(t, "conflict (http 409): Conflict", withBody.Error())

	withRaw := &HTTPError{StatusCode: 503, Raw: "Service Unavailable", err: ErrUnexpectedStatus}
	assert.Equal(t, "unexpected status (http 503): Service Unavailable", withRaw.Error())

	bare := &HTTPError{StatusCode: 500, err: ErrInternalServerError}
	assert.Equal(t, "internal server error (http 500)", bare.Error())
}
