// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/medico-tui/internal/ui/styles"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// Shortcut is a key binding hint shown in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar renders the bottom bar of key binding hints.
type StatusBar struct {
	Width     int
	shortcuts []Shortcut
	theme     *styles.Theme
}

// NewStatusBar creates a status bar with the given shortcuts.
func NewStatusBar(theme *styles.Theme, shortcuts ...Shortcut) *StatusBar {
	return &StatusBar{
		Width:     80,
		shortcuts: shortcuts,
		theme:     theme,
	}
}

// SetWidth updates the bar width.
func (b *StatusBar) SetWidth(width int) {
	b.Width = width
}

// SetShortcuts replaces the displayed shortcuts. Views call this when the
// available actions change (e.g. after login).
func (b *StatusBar) SetShortcuts(shortcuts ...Shortcut) {
	b.shortcuts = shortcuts
}

// View renders the status bar.
func (b *StatusBar) View() string {
	parts := make([]string, 0, len(b.shortcuts))
	for _, sc := range b.shortcuts {
		parts = append(parts,
			b.theme.ShortcutKey.Render(sc.Key)+" "+b.theme.ShortcutDesc.Render(sc.Desc))
	}

	bar := strings.Join(parts, b.theme.ShortcutDesc.Render("  |  "))
	return b.theme.StatusBar.Width(b.Width).Render(bar)
}
