// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/quote-sync/internal/notify"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type toastTickMsg time.Time

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(t time.Time) tea.Msg {
		return toastTickMsg(t)
	})
}

// ToastView renders the toast stack, oldest at the top.
type ToastView struct {
	controller *ToastController
}

func NewToastView(controller *ToastController) *ToastView {
	return &ToastView{controller: controller}
}

func (v *ToastView) View() string {
	toasts := v.controller.Toasts()
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, renderToast(t))
	}

	return strings.Join(rendered, "\n")
}

func renderToast(t toast) string {
	style := toastErrorStyle
	if t.notification.Variant == notify.VariantSuccess {
		style = toastSuccessStyle
	}

	content := titleStyle.Render(t.notification.Title) + "\n" + t.notification.Message
	return style.Render(content)
}

// Overlay places the toast stack under background, aligned to the right edge
// of a width wide area.
func (v *ToastView) Overlay(background string, width int) string {
	toastContent := v.View()
	if toastContent == "" {
		return background
	}

	width = max(width, lipgloss.Width(background), lipgloss.Width(toastContent))
	placed := lipgloss.PlaceHorizontal(width, lipgloss.Right, toastContent)

	return lipgloss.JoinVertical(lipgloss.Left, background, "", placed)
}
