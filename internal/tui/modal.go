// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
)

// syncModal renders the confirmation dialog. It holds no state of its own:
// the message and the syncing flag come from the controller.
type syncModal struct {
	message string
	syncing bool
	spinner spinner.Model
}

func (m syncModal) View() string {
	content := titleStyle.Render("Sync Quote") + "\n\n"
	content += m.message + "\n\n"

	if m.syncing {
		content += m.spinner.View() + " Syncing..."
	} else {
		content += helpStyle.Render(helpLine(keys.yes, keys.no))
	}

	return overlayBoxStyle.Render(content)
}
