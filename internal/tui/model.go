// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/quote-sync/internal/controller"
	"github.com/MKhiriev/quote-sync/internal/notify"
	"github.com/MKhiriev/quote-sync/internal/viewstate"
	"github.com/MKhiriev/quote-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

type recordModel struct {
	ctx        context.Context
	controller *controller.SyncModalController
	buildInfo  models.AppBuildInfo

	changes <-chan struct{}
	toastCh <-chan notify.Toast

	state         viewstate.ViewState
	syncRequested bool

	spinner   spinner.Model
	toasts    *ToastController
	toastView *ToastView

	status string
	width  int
}

func newRecordModel(
	ctx context.Context,
	c *controller.SyncModalController,
	buildInfo models.AppBuildInfo,
	changes <-chan struct{},
	toastCh <-chan notify.Toast,
) recordModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	toasts := NewToastController()

	return recordModel{
		ctx:        ctx,
		controller: c,
		buildInfo:  buildInfo,
		changes:    changes,
		toastCh:    toastCh,
		state:      c.State(),
		spinner:    s,
		toasts:     toasts,
		toastView:  NewToastView(toasts),
	}
}

func (m recordModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		cmdInitialize(m.ctx, m.controller),
		waitForChange(m.changes),
		waitForToast(m.toastCh),
	)
}

func (m recordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case stateChangedMsg:
		m.state = m.controller.State()
		return m, waitForChange(m.changes)
	case toastMsg:
		m.toasts.Push(msg.toast)
		cmds := []tea.Cmd{waitForToast(m.toastCh)}
		if !m.toasts.Ticking() {
			m.toasts.SetTicking(true)
			cmds = append(cmds, scheduleToastTick())
		}
		return m, tea.Batch(cmds...)
	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if !m.toasts.HasToasts() {
			m.toasts.SetTicking(false)
			return m, nil
		}
		return m, scheduleToastTick()
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case initializedMsg:
		m.state = m.controller.State()
	case syncDoneMsg:
		m.syncRequested = false
		m.state = m.controller.State()
	case copiedMsg:
		m.status = "Copied to clipboard"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.status = fmt.Sprintf("Copy failed: %v", msg.err)
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
	}

	return m, nil
}

func (m recordModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.controller.Detach()
		return m, tea.Quit
	case key.Matches(msg, keys.copy):
		if t, ok := m.toasts.Newest(); ok {
			return m, cmdCopyToClipboard(t.Message)
		}
		return m, nil
	case key.Matches(msg, keys.dismiss):
		m.toasts.Dismiss()
		return m, nil
	}

	if m.state.IsModalOpen {
		switch {
		case key.Matches(msg, keys.yes):
			if m.syncRequested || m.state.Syncing {
				return m, nil
			}
			m.syncRequested = true
			return m, tea.Batch(m.spinner.Tick, cmdSyncQuote(m.ctx, m.controller))
		case key.Matches(msg, keys.no):
			if m.syncRequested {
				return m, nil
			}
			m.controller.CloseModal()
			m.state = m.controller.State()
		}
		return m, nil
	}

	if key.Matches(msg, keys.open) {
		m.controller.OpenModal()
		m.state = m.controller.State()
	}

	return m, nil
}

func (m recordModel) busy() bool {
	return m.syncRequested || m.state.Syncing || m.loading()
}

func (m recordModel) loading() bool {
	return m.state.Status == viewstate.StatusUninitialized || m.state.Status == viewstate.StatusLoading
}

func (m recordModel) View() string {
	body := renderPage("QUOTE SYNC", m.recordView(), m.footer())

	if m.state.IsModalOpen {
		modal := syncModal{
			message: m.state.SyncMessage,
			syncing: m.syncRequested || m.state.Syncing,
			spinner: m.spinner,
		}
		body += "\n\n" + modal.View()
	}

	return appStyle.Render(m.toastView.Overlay(body, m.width))
}

func (m recordModel) recordView() string {
	lines := []string{field("Quote ID", valueOrDash(m.state.RecordID))}

	if m.loading() {
		lines = append(lines, m.spinner.View()+" Loading...")
		return strings.Join(lines, "\n")
	}

	lines = append(lines,
		field("Quote", valueOrDash(m.state.QuoteName)),
		field("Opportunity", valueOrDash(m.state.OpportunityName)),
		field("Status", m.syncStatus()),
	)

	if m.status != "" {
		lines = append(lines, "", helpStyle.Render(m.status))
	}

	return strings.Join(lines, "\n")
}

func (m recordModel) syncStatus() string {
	switch {
	case m.state.Status == viewstate.StatusLoadFailed:
		return failedStyle.Render("Failed to load quote details")
	case m.state.IsQuoteAlreadySynced:
		return syncedStyle.Render("Synced")
	default:
		return unsyncedStyle.Render("Not synced")
	}
}

func (m recordModel) footer() string {
	help := helpLine(keys.open, keys.copy, keys.dismiss, keys.quit)
	return help + "\n  " + renderBuildInfoLine(m.buildInfo)
}

func cmdInitialize(ctx context.Context, c *controller.SyncModalController) tea.Cmd {
	return func() tea.Msg {
		c.Initialize(ctx)
		return initializedMsg{}
	}
}

func cmdSyncQuote(ctx context.Context, c *controller.SyncModalController) tea.Cmd {
	return func() tea.Msg {
		c.SyncQuote(ctx)
		return syncDoneMsg{}
	}
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

func waitForToast(toasts <-chan notify.Toast) tea.Cmd {
	return func() tea.Msg {
		t, ok := <-toasts
		if !ok {
			return nil
		}
		return toastMsg{toast: t}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
