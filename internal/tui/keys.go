// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	open    key.Binding
	yes     key.Binding
	no      key.Binding
	copy    key.Binding
	dismiss key.Binding
	quit    key.Binding
}

var keys = keyMap{
	open:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync with opportunity")),
	yes:     key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y/enter", "confirm")),
	no:      key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n/esc", "cancel")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy toast")),
	dismiss: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss toast")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return joinWithGap(parts)
}
