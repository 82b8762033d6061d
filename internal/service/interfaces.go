// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side business layer between the
// SyncModalController and the transport adapter.
package service

import (
	"context"

	"github.com/MKhiriev/quote-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/quote_service_mock.go -package=mock

// QuoteService exposes the two remote operations the sync modal depends on.
// Errors returned by the org are reported as [*RemoteError]; an empty quote
// id is rejected with [ErrEmptyQuoteID] before any call is made.
type QuoteService interface {
	// GetQuoteDetails returns the display data of the Quote identified by
	// quoteID: its name, the related Opportunity name and the sync flag.
	GetQuoteDetails(ctx context.Context, quoteID string) (models.QuoteDetails, error)

	// SyncQuoteWithOpportunity triggers the sync of the Quote into its
	// Opportunity and returns the outcome message reported by the org.
	SyncQuoteWithOpportunity(ctx context.Context, quoteID string) (string, error)
}

// AppInfoService provides build metadata of the running binary.
type AppInfoService interface {
	// GetBuildInfo returns the build metadata injected at link time.
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
