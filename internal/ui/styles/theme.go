// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	HeaderIdentity lipgloss.Style

	// ==========================================================================
	// TAB BAR STYLES
	// ==========================================================================

	Tab       lipgloss.Style
	TabActive lipgloss.Style

	// ==========================================================================
	// FORM STYLES
	// ==========================================================================

	FormBox       lipgloss.Style
	FormTitle     lipgloss.Style
	FieldLabel    lipgloss.Style
	FieldFocused  lipgloss.Style
	FieldBlurred  lipgloss.Style
	RoleOption    lipgloss.Style
	RoleSelected  lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	// ==========================================================================
	// ALERT STYLES
	// ==========================================================================

	AlertError   lipgloss.Style
	AlertSuccess lipgloss.Style
	AlertInfo    lipgloss.Style

	// ==========================================================================
	// CHAT STYLES
	// ==========================================================================

	QuestionText lipgloss.Style
	AnswerBox    lipgloss.Style
	SourceHeader lipgloss.Style
	SourceItem   lipgloss.Style

	// ==========================================================================
	// STATUS BAR AND SPINNER STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	Spinner      lipgloss.Style
	WaitingText  lipgloss.Style
}

// NewTheme creates a new theme with all styles configured. The light/dark
// variant follows lipgloss' background detection, which NewThemeWithMode
// may have overridden.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := lipgloss.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// NewThemeWithMode creates a theme honoring a configured mode. "dark" and
// "light" override the terminal's background detection; "auto" (and any
// other value) keeps it.
func NewThemeWithMode(mode string) *Theme {
	switch strings.ToLower(mode) {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}
	return NewTheme()
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	// App container
	t.App = lipgloss.NewStyle()
	t.Container = lipgloss.NewStyle().Padding(0, 1)

	// Header
	t.Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal).
		Background(SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Teal).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.HeaderIdentity = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Tab bar
	t.Tab = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 2)

	t.TabActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Teal).
		Padding(0, 2)

	// Forms
	t.FormBox = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(1, 2)

	t.FormTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal).
		MarginBottom(1)

	t.FieldLabel = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.FieldFocused = lipgloss.NewStyle().
		Foreground(Teal)

	t.FieldBlurred = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.RoleOption = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.RoleSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Blue).
		Padding(0, 1)

	t.Button = lipgloss.NewStyle().
		Foreground(TextSecondary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 3)

	t.ButtonFocused = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextInverse).
		Background(Teal).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Teal).
		Padding(0, 3)

	// Alerts
	t.AlertError = lipgloss.NewStyle().
		Bold(true).
		Foreground(Rose)

	t.AlertSuccess = lipgloss.NewStyle().
		Bold(true).
		Foreground(Emerald)

	t.AlertInfo = lipgloss.NewStyle().
		Foreground(Blue)

	// Chat
	t.QuestionText = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.AnswerBox = lipgloss.NewStyle().
		Foreground(TextPrimary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Blue).
		Padding(0, 2)

	t.SourceHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextSecondary)

	t.SourceItem = lipgloss.NewStyle().
		Foreground(TextMuted).
		PaddingLeft(2)

	// Status bar and spinner
	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Teal)

	t.WaitingText = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)
}

// SetSize updates the theme's layout dimensions on terminal resize.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}
