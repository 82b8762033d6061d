// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/quote-sync/internal/adapter"
	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/models"
)

// Services groups the client services built on top of one adapter.
type Services struct {
	QuoteService   QuoteService
	AppInfoService AppInfoService
}

func NewServices(quoteAdapter adapter.QuoteAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		QuoteService:   NewQuoteService(quoteAdapter, logger),
		AppInfoService: NewAppInfoService(buildInfo),
	}
}
