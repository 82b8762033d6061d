// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/quote-sync/models"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	raw := resp.Body()
	return &HTTPError{
		StatusCode: resp.StatusCode(),
		Body:       parseErrorBody(raw),
		Raw:        strings.TrimSpace(string(raw)),
		err:        sentinelForStatus(resp.StatusCode()),
	}
}

func sentinelForStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}

// parseErrorBody extracts the message of an org error. Three shapes are
// accepted: the REST array form [{"message", "errorCode"}], a plain object
// {"message", "errorCode"}, and the wrapped form {"body": {"message"}}.
func parseErrorBody(raw []byte) *models.RemoteErrorBody {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return nil
	}

	res := gjson.ParseBytes(raw)
	if res.IsArray() {
		res = res.Get("0")
	}
	if !res.IsObject() {
		return nil
	}
	if body := res.Get("body"); body.IsObject() {
		res = body
	}

	msg := res.Get("message")
	code := res.Get("errorCode")
	if !msg.Exists() && !code.Exists() {
		return nil
	}

	return &models.RemoteErrorBody{
		Message:   msg.String(),
		ErrorCode: code.String(),
	}
}
