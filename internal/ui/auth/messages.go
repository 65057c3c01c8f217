// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file defines the Bubble Tea message types used by the auth view.

package auth

import "github.com/jeranaias/medico-tui/internal/model"

// =============================================================================
// RESULT MESSAGES (from commands)
// =============================================================================

// loginResultMsg delivers the outcome of a login request.
type loginResultMsg struct {
	Username string
	Password string
	Role     model.Role
	Err      error
}

// signupResultMsg delivers the outcome of a signup request.
type signupResultMsg struct {
	Username string
	Err      error
}

// =============================================================================
// OUTBOUND MESSAGES (to the shell)
// =============================================================================

// LoggedInMsg reports a successful authentication upward. The shell owns
// the session store and swaps views; the auth view never mutates session
// state itself.
type LoggedInMsg struct {
	Username string
	Password string
	Role     model.Role
}
