// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/quote-sync/internal/notify"

type initializedMsg struct{}

type stateChangedMsg struct{}

type toastMsg struct {
	toast notify.Toast
}

type syncDoneMsg struct{}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
