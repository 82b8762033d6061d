// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/quote-sync/internal/logger"
)

var ErrNilUI = errors.New("client: ui is nil")

type App struct {
	ui      UI
	quoteID string

	logger *logger.Logger
}

func NewApp(ui UI, quoteID string, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNilUI
	}

	return &App{
		ui:      ui,
		quoteID: quoteID,
		logger:  logger,
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	a.logger.Info().Str("quote_id", a.quoteID).Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	a.logger.Info().Str("quote_id", a.quoteID).Msg("client stopped")

	return nil
}
