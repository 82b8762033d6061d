// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	labelStyle      = lipgloss.NewStyle().Faint(true).Width(14)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	syncedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	unsyncedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	toastBaseStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(toastWidth)
	toastSuccessStyle = toastBaseStyle.BorderForeground(lipgloss.Color("2"))
	toastErrorStyle   = toastBaseStyle.BorderForeground(lipgloss.Color("1"))
)
