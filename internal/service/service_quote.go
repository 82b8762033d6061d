// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/quote-sync/internal/adapter"
	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/utils"
	"github.com/MKhiriev/quote-sync/models"
)

const (
	opGetQuoteDetails          = "getQuoteDetails"
	opSyncQuoteWithOpportunity = "syncQuoteWithOpportunity"
)

type quoteService struct {
	adapter adapter.QuoteAdapter
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

// NewQuoteService returns a [QuoteService] backed by quoteAdapter.
func NewQuoteService(quoteAdapter adapter.QuoteAdapter, logger *logger.Logger) QuoteService {
	return &quoteService{
		adapter: quoteAdapter,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

func (s *quoteService) GetQuoteDetails(ctx context.Context, quoteID string) (models.QuoteDetails, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return models.QuoteDetails{}, ErrEmptyQuoteID
	}

	ctx, requestID := s.ids.EnsureRequestID(ctx)
	log := s.logger.With().Str("quote_id", quoteID).Str("request_id", requestID).Logger()

	details, err := s.adapter.GetQuoteDetails(ctx, quoteID)
	if err != nil {
		log.Err(err).Str("op", opGetQuoteDetails).Msg("remote call failed")
		return models.QuoteDetails{}, mapAdapterError(opGetQuoteDetails, err)
	}

	log.Debug().
		Str("quote_name", details.Name).
		Str("opportunity_name", details.Opportunity.Name).
		Bool("is_syncing", details.IsSyncing).
		Msg("quote details fetched")

	return details, nil
}

func (s *quoteService) SyncQuoteWithOpportunity(ctx context.Context, quoteID string) (string, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return "", ErrEmptyQuoteID
	}

	ctx, requestID := s.ids.EnsureRequestID(ctx)
	log := s.logger.With().Str("quote_id", quoteID).Str("request_id", requestID).Logger()

	result, err := s.adapter.SyncQuoteWithOpportunity(ctx, quoteID)
	if err != nil {
		log.Err(err).Str("op", opSyncQuoteWithOpportunity).Msg("remote call failed")
		return "", mapAdapterError(opSyncQuoteWithOpportunity, err)
	}

	log.Info().Str("result", result).Msg("quote synced")
	return result, nil
}
