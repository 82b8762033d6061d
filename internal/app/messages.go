// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user facing message strings of the sync modal.
//
// The Msg* constants are shown verbatim in toasts; the *Format constants
// take the Quote name and the Opportunity name, in that order.
package app

const (
	// MsgErrorFetchingQuoteDetails is shown when the quote details cannot be
	// fetched, whatever the cause.
	MsgErrorFetchingQuoteDetails = "Error fetching quote details"

	// MsgQuoteAlreadySynced is shown when the user confirms a sync of a Quote
	// that is already known to be synced. No remote call is made.
	MsgQuoteAlreadySynced = "Error: This Quote is already synced with an Opportunity."

	// MsgErrorSyncingQuote is the fallback for a failed sync whose error
	// carries no message from the org.
	MsgErrorSyncingQuote = "Error syncing the quote"
)

const (
	// AlreadySyncedFormat is the modal text for a Quote that is synced.
	AlreadySyncedFormat = `Quote "%s" is already synced with Opportunity "%s".`

	// ConfirmSyncFormat is the modal text asking to sync the Quote.
	ConfirmSyncFormat = `Do you want to sync Quote "%s" with Opportunity "%s"?`
)
