// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/quote-sync/internal/adapter"
)

// mapAdapterError wraps the adapter's transport error into a [*RemoteError]
// and lifts the structured body of an org error onto it.
func mapAdapterError(op string, err error) error {
	if err == nil {
		return nil
	}

	remoteErr := &RemoteError{Op: op, Err: err}

	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) {
		remoteErr.Body = httpErr.Body
	}

	return remoteErr
}
