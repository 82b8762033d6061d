// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui hosts the sync modal in a terminal: it renders the record page
// and the modal from the controller's view state and stacks the toasts
// published on the notify bus.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/quote-sync/internal/controller"
	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/notify"
	"github.com/MKhiriev/quote-sync/internal/service"
	"github.com/MKhiriev/quote-sync/internal/viewstate"
	tea "github.com/charmbracelet/bubbletea"
)

const toastBuffer = 16

var ErrNilController = errors.New("tui: controller is nil")

type TUI struct {
	controller *controller.SyncModalController
	bus        *notify.Bus
	appInfo    service.AppInfoService

	logger *logger.Logger
}

func New(c *controller.SyncModalController, bus *notify.Bus, appInfo service.AppInfoService, logger *logger.Logger) (*TUI, error) {
	if c == nil {
		return nil, ErrNilController
	}

	return &TUI{
		controller: c,
		bus:        bus,
		appInfo:    appInfo,
		logger:     logger,
	}, nil
}

// Run blocks until the user quits. The controller is detached on return, so
// remote calls still in flight change nothing.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer t.controller.Detach()

	changes := make(chan struct{}, 1)
	unsubscribe := t.controller.Store().Subscribe(func(viewstate.ViewState) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	toasts := make(chan notify.Toast, toastBuffer)
	t.bus.Subscribe(func(n notify.Toast) {
		select {
		case toasts <- n:
		case <-ctx.Done():
		}
	})

	model := newRecordModel(ctx, t.controller, t.appInfo.GetBuildInfo(ctx), changes, toasts)

	t.logger.Debug().Str("quote_id", t.controller.State().RecordID).Msg("starting tui")
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	return nil
}
