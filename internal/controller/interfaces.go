// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import "github.com/MKhiriev/quote-sync/internal/notify"

// Notifier delivers toasts to the host shell. Delivery is fire-and-forget.
type Notifier interface {
	ShowToast(message string, variant notify.Variant)
}
