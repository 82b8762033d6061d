// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the org that owns the Quote and Opportunity records.
//
// The primary abstraction is [QuoteAdapter], which decouples the service layer
// from the underlying protocol. The package ships an Apex REST implementation
// ([NewApexAdapter]) that authenticates either with a static access token or
// with the OAuth 2.0 JWT bearer grant.
//
// Non-2xx responses are returned as [*HTTPError], which unwraps to the
// sentinel values defined in errors.go so that callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401) and [errors.As] to
// read the structured error body.
package adapter

import (
	"context"

	"github.com/MKhiriev/quote-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/quote_adapter_mock.go -package=mock

// QuoteAdapter exposes the two remote operations of the QuoteSync Apex
// resource. Implementations are responsible for serialisation,
// authentication, and mapping transport-level errors to the sentinel values
// defined in this package.
type QuoteAdapter interface {
	// GetQuoteDetails fetches the display data of the Quote identified by
	// quoteID together with its related Opportunity name and sync flag.
	GetQuoteDetails(ctx context.Context, quoteID string) (models.QuoteDetails, error)

	// SyncQuoteWithOpportunity asks the org to sync the Quote into its
	// Opportunity and returns the human readable outcome message verbatim.
	SyncQuoteWithOpportunity(ctx context.Context, quoteID string) (string, error)
}

// TokenSource supplies bearer tokens to the adapter.
type TokenSource interface {
	// Token returns a bearer token, obtaining one if none is cached.
	Token(ctx context.Context) (string, error)

	// Invalidate drops the cached token after the org rejected it. It reports
	// whether a subsequent Token call can produce a different token.
	Invalidate() bool
}
