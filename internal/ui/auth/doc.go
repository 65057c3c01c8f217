// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth provides the login and signup view for the TUI.
//
// The view has two sub-modes, Login and Signup, toggled with ctrl+t. Login
// verifies credentials against the backend and reports the authenticated
// identity upward via LoggedInMsg; the shell owns the session store and
// performs the actual transition. Signup registers a new account and then
// switches back to the Login sub-mode with the username pre-filled; it
// never authenticates by itself.
//
// Both sub-modes validate that username and password are non-empty before
// any request is sent, and a busy flag makes a second submit while a
// request is in flight a no-op.
package auth
