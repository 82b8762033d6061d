// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/quote-sync/models"
)

func renderBuildInfoLine(info models.AppBuildInfo) string {
	return "quote-sync " + info.BuildVersion() + " (" + info.BuildCommit() + ", " + info.BuildDate() + ")"
}
