// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"fmt"

	"github.com/MKhiriev/quote-sync/internal/app"
)

func syncMessage(quoteName, opportunityName string, synced bool) string {
	if synced {
		return fmt.Sprintf(app.AlreadySyncedFormat, quoteName, opportunityName)
	}
	return fmt.Sprintf(app.ConfirmSyncFormat, quoteName, opportunityName)
}
