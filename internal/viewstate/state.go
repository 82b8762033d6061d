// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package viewstate holds the observable view state of the sync modal.
package viewstate

// Status is the load phase of the quote details.
type Status int

const (
	StatusUninitialized Status = iota
	StatusLoading
	StatusReady
	StatusLoadFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusLoadFailed:
		return "load_failed"
	default:
		return "uninitialized"
	}
}

// ViewState is the state rendered by the host.
//
// QuoteName, OpportunityName, IsQuoteAlreadySynced and SyncMessage hold
// their zero values until the quote details are fetched.
type ViewState struct {
	RecordID             string
	IsModalOpen          bool
	QuoteName            string
	OpportunityName      string
	IsQuoteAlreadySynced bool
	SyncMessage          string

	Status  Status
	Syncing bool
}
