// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "github.com/jeranaias/medico-tui/internal/ui/styles"

// =============================================================================
// INLINE ALERT COMPONENT
// =============================================================================

// AlertKind categorizes an alert for styling and its shape indicator.
type AlertKind int

const (
	AlertNone AlertKind = iota
	AlertError
	AlertSuccess
	AlertInfo
)

// Alert is a dismissible inline message scoped to the view that owns it.
// Every error surfaced to the user goes through one of these; none are
// fatal and the user can always retry the action that produced it.
type Alert struct {
	kind    AlertKind
	message string
	theme   *styles.Theme
}

// NewAlert creates an empty (hidden) alert.
func NewAlert(theme *styles.Theme) Alert {
	return Alert{theme: theme}
}

// Error shows an error message, replacing any previous alert.
func (a *Alert) Error(message string) {
	a.kind = AlertError
	a.message = message
}

// Success shows a success message, replacing any previous alert.
func (a *Alert) Success(message string) {
	a.kind = AlertSuccess
	a.message = message
}

// Info shows an informational message, replacing any previous alert.
func (a *Alert) Info(message string) {
	a.kind = AlertInfo
	a.message = message
}

// Clear dismisses the alert.
func (a *Alert) Clear() {
	a.kind = AlertNone
	a.message = ""
}

// Visible reports whether the alert has something to show.
func (a *Alert) Visible() bool {
	return a.kind != AlertNone && a.message != ""
}

// Message returns the current message text.
func (a *Alert) Message() string {
	return a.message
}

// Kind returns the current alert kind.
func (a *Alert) Kind() AlertKind {
	return a.kind
}

// View renders the alert, or an empty string when hidden.
// ACCESSIBILITY: Each kind carries a shape indicator alongside its color.
func (a *Alert) View() string {
	if !a.Visible() {
		return ""
	}

	switch a.kind {
	case AlertError:
		return a.theme.AlertError.Render(styles.StatusIndicators.Error + " " + a.message)
	case AlertSuccess:
		return a.theme.AlertSuccess.Render(styles.StatusIndicators.Success + " " + a.message)
	case AlertInfo:
		return a.theme.AlertInfo.Render(styles.StatusIndicators.Info + " " + a.message)
	default:
		return ""
	}
}
