// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/quote-sync/internal/config"
	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/utils"
	"github.com/MKhiriev/quote-sync/models"
	"github.com/go-resty/resty/v2"
)

const (
	detailsPath = "/details"
	syncPath    = "/sync"

	requestIDHeader = "X-Request-Id"
)

type apexAdapter struct {
	client   *utils.HTTPClient
	apexPath string
	tokens   TokenSource
	ids      *utils.UUIDGenerator

	logger *logger.Logger
}

// NewApexAdapter constructs the Apex REST implementation of [QuoteAdapter].
// It normalises and validates the instance URL, configures the underlying
// HTTP client with the resolved base URL and request timeout, and builds the
// token source described by authCfg (static token or JWT bearer grant).
//
// Returns an error if the instance URL cannot be parsed or the private key
// for the JWT bearer grant cannot be loaded.
func NewApexAdapter(adapterCfg config.ClientAdapter, authCfg config.ClientAuth, logger *logger.Logger) (QuoteAdapter, error) {
	tokens, err := newTokenSource(authCfg, adapterCfg.RequestTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("create token source: %w", err)
	}

	return NewApexAdapterWithTokens(adapterCfg, tokens, logger)
}

// NewApexAdapterWithTokens is [NewApexAdapter] with an explicit token source.
func NewApexAdapterWithTokens(adapterCfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (QuoteAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.InstanceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter instance url: %w", err)
	}

	apexPath := "/" + strings.Trim(adapterCfg.ApexPath, "/")
	if apexPath == "/" {
		apexPath = config.DefaultApexPath
	}

	return &apexAdapter{
		client:   utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		apexPath: apexPath,
		tokens:   tokens,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetQuoteDetails implements [QuoteAdapter]. It POSTs {"quoteId": quoteID}
// to {apexPath}/details and decodes Name, Opportunity_Name__r.Name and
// IsSyncing__c from the response. Returns an [*HTTPError] on a non-2xx
// status and [ErrUnexpectedResponse] (wrapped) when the body lacks a name.
func (a *apexAdapter) GetQuoteDetails(ctx context.Context, quoteID string) (models.QuoteDetails, error) {
	resp, err := a.post(ctx, detailsPath, quoteID)
	if err != nil {
		return models.QuoteDetails{}, fmt.Errorf("get quote details request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.QuoteDetails{}, err
	}

	details, err := decodeQuoteDetails(resp.Body())
	if err != nil {
		return models.QuoteDetails{}, fmt.Errorf("decode quote details: %w", err)
	}

	return details, nil
}

// SyncQuoteWithOpportunity implements [QuoteAdapter]. It POSTs
// {"quoteId": quoteID} to {apexPath}/sync and returns the outcome message.
// Returns an [*HTTPError] on a non-2xx status.
func (a *apexAdapter) SyncQuoteWithOpportunity(ctx context.Context, quoteID string) (string, error) {
	resp, err := a.post(ctx, syncPath, quoteID)
	if err != nil {
		return "", fmt.Errorf("sync quote request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return decodeSyncResult(resp.Body()), nil
}

// post sends the request once and, if the org answers 401 and the token
// source can refresh, once more with a new token.
func (a *apexAdapter) post(ctx context.Context, operation, quoteID string) (*resty.Response, error) {
	ctx, requestID := a.ids.EnsureRequestID(ctx)
	log := a.logger.With().
		Str("request_id", requestID).
		Str("operation", operation).
		Str("quote_id", quoteID).
		Logger()

	resp, err := a.send(ctx, requestID, operation, quoteID)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() == http.StatusUnauthorized && a.tokens.Invalidate() {
		log.Debug().Msg("access token rejected, requesting a new one")
		resp, err = a.send(ctx, requestID, operation, quoteID)
		if err != nil {
			return nil, err
		}
	}

	log.Debug().
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("apex call finished")

	return resp, nil
}

func (a *apexAdapter) send(ctx context.Context, requestID, operation, quoteID string) (*resty.Response, error) {
	token, err := a.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	return a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+token).
		SetHeader(requestIDHeader, requestID).
		SetBody(models.QuoteRequest{QuoteID: quoteID}).
		Post(a.apexPath + operation)
}
