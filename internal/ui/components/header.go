// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/medico-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the title bar. When a user is logged in it shows the identity
// line (username and role) under the brand.
type Header struct {
	Title    string // Main title (default: "medico")
	Subtitle string // Tagline under the brand
	Username string // Logged-in username, empty when anonymous
	RoleName string // Logged-in role display name
	Width    int    // Available width
	theme    *styles.Theme
}

// NewHeader creates a new Header component with default values.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:    "medico",
		Subtitle: "Document Q&A Assistant",
		Width:    80,
		theme:    theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// SetIdentity updates the logged-in identity line. Pass empty strings to
// clear it on logout.
func (h *Header) SetIdentity(username, roleName string) {
	h.Username = username
	h.RoleName = roleName
}

// View renders the header component.
func (h *Header) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}

	// Inner width accounts for borders and padding
	innerWidth := width - 6

	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Teal)

	accentStyle := lipgloss.NewStyle().
		Foreground(styles.Blue)

	brand := accentStyle.Render("< ") +
		brandStyle.Render(h.Title) +
		accentStyle.Render(" >")

	subtitleParts := []string{}
	if h.Subtitle != "" {
		subtitleParts = append(subtitleParts, h.theme.HeaderSubtitle.Render(h.Subtitle))
	}
	if h.Username != "" {
		identity := h.Username
		if h.RoleName != "" {
			identity += " (" + h.RoleName + ")"
		}
		subtitleParts = append(subtitleParts, h.theme.HeaderIdentity.Render(identity))
	}
	subtitle := strings.Join(subtitleParts, "  ")

	brandLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Render(brand)

	subtitleLine := lipgloss.NewStyle().
		Width(innerWidth).
		Align(lipgloss.Center).
		Foreground(styles.TextMuted).
		Render(subtitle)

	content := lipgloss.JoinVertical(lipgloss.Center, brandLine, subtitleLine)

	headerBox := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Teal).
		Background(styles.SurfaceDim).
		Padding(0, 2).
		Width(width)

	return headerBox.Render(content)
}

// ViewCompact renders a compact single-line header for narrow terminals.
func (h *Header) ViewCompact() string {
	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Teal)

	accentStyle := lipgloss.NewStyle().
		Foreground(styles.Blue)

	brand := accentStyle.Render("<") +
		brandStyle.Render(h.Title) +
		accentStyle.Render(">")

	parts := []string{brand}
	if h.Username != "" {
		identity := h.Username
		if h.RoleName != "" {
			identity += " (" + h.RoleName + ")"
		}
		parts = append(parts, h.theme.HeaderIdentity.Render(identity))
	}

	separator := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render(" | ")

	return strings.Join(parts, separator)
}
