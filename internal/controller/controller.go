// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package controller implements the sync modal of a Quote record: it loads
// the quote details, drives the open/closed modal state and triggers the
// sync of the Quote with its Opportunity.
//
// The controller does not depend on any UI framework. Hosts render
// [viewstate.ViewState] snapshots obtained from [SyncModalController.Store]
// and forward user actions to the exported methods. Remote calls block, so
// hosts run Initialize, CheckIfQuoteIsSynced and SyncQuote off their event
// loop.
package controller

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/quote-sync/internal/app"
	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/notify"
	"github.com/MKhiriev/quote-sync/internal/service"
	"github.com/MKhiriev/quote-sync/internal/viewstate"
)

// SyncModalController owns the view state of one Quote record.
type SyncModalController struct {
	recordID string
	quotes   service.QuoteService
	notifier Notifier
	store    *viewstate.Store

	initOnce sync.Once
	detached atomic.Bool

	logger *logger.Logger
}

// NewSyncModalController returns a controller for the Quote identified by
// recordID. The record id is fixed for the controller's lifetime.
func NewSyncModalController(recordID string, quotes service.QuoteService, notifier Notifier, logger *logger.Logger) *SyncModalController {
	return &SyncModalController{
		recordID: recordID,
		quotes:   quotes,
		notifier: notifier,
		store:    viewstate.NewStore(recordID),
		logger:   logger,
	}
}

// Store returns the observable view state.
func (c *SyncModalController) Store() *viewstate.Store {
	return c.store
}

// State returns a snapshot of the view state.
func (c *SyncModalController) State() viewstate.ViewState {
	return c.store.Get()
}

// Initialize fetches the quote details. Only the first call does any work.
func (c *SyncModalController) Initialize(ctx context.Context) {
	c.initOnce.Do(func() {
		c.CheckIfQuoteIsSynced(ctx)
	})
}

// Detach marks the controller as torn down. Remote calls completing
// afterwards leave the state untouched and show no toast.
func (c *SyncModalController) Detach() {
	c.detached.Store(true)
}

// Detached reports whether Detach was called.
func (c *SyncModalController) Detached() bool {
	return c.detached.Load()
}

// OpenModal shows the modal. It does not wait for the quote details: opened
// before they load, the modal shows an empty message.
func (c *SyncModalController) OpenModal() {
	c.store.Update(func(v *viewstate.ViewState) {
		v.IsModalOpen = true
	})
}

// CloseModal hides the modal.
func (c *SyncModalController) CloseModal() {
	c.store.Update(func(v *viewstate.ViewState) {
		v.IsModalOpen = false
	})
}

// CheckIfQuoteIsSynced fetches the quote details and derives the modal
// message. On failure the quote fields keep their previous values and an
// error toast is shown. There is no retry.
func (c *SyncModalController) CheckIfQuoteIsSynced(ctx context.Context) {
	c.store.Update(func(v *viewstate.ViewState) {
		v.Status = viewstate.StatusLoading
	})

	details, err := c.quotes.GetQuoteDetails(ctx, c.recordID)
	if c.dropped("getQuoteDetails") {
		return
	}

	if err != nil {
		c.logger.Error().Err(err).Str("quote_id", c.recordID).Msg("error fetching quote details")
		c.store.Update(func(v *viewstate.ViewState) {
			v.Status = viewstate.StatusLoadFailed
		})
		c.notifier.ShowToast(app.MsgErrorFetchingQuoteDetails, notify.VariantError)
		return
	}

	c.store.Update(func(v *viewstate.ViewState) {
		v.QuoteName = details.Name
		v.OpportunityName = details.Opportunity.Name
		v.IsQuoteAlreadySynced = details.IsSyncing
		v.SyncMessage = syncMessage(details.Name, details.Opportunity.Name, details.IsSyncing)
		v.Status = viewstate.StatusReady
	})
}

// SyncQuote syncs the Quote with its Opportunity and reports the outcome as
// a toast. A Quote already known to be synced is rejected without a remote
// call. The modal is closed on every path.
func (c *SyncModalController) SyncQuote(ctx context.Context) {
	if c.store.Get().IsQuoteAlreadySynced {
		c.notifier.ShowToast(app.MsgQuoteAlreadySynced, notify.VariantError)
		c.CloseModal()
		return
	}

	c.store.Update(func(v *viewstate.ViewState) {
		v.Syncing = true
	})

	result, err := c.quotes.SyncQuoteWithOpportunity(ctx, c.recordID)
	if c.dropped("syncQuoteWithOpportunity") {
		return
	}

	if err != nil {
		c.logger.Error().Err(err).Str("quote_id", c.recordID).Msg("error syncing quote")

		message := app.MsgErrorSyncingQuote
		if remote, ok := service.RemoteMessage(err); ok {
			message = remote
		}
		c.notifier.ShowToast(message, notify.VariantError)
	} else {
		c.notifier.ShowToast(result, notify.VariantSuccess)
	}

	c.store.Update(func(v *viewstate.ViewState) {
		v.Syncing = false
		v.IsModalOpen = false
	})
}

func (c *SyncModalController) dropped(op string) bool {
	if !c.detached.Load() {
		return false
	}

	c.logger.Debug().Str("quote_id", c.recordID).Str("op", op).Msg("controller detached, result dropped")
	return true
}
