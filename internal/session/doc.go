// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the authenticated identity for the lifetime of the
// application.
//
// The Store is a two-state machine: anonymous (initial) and authenticated.
// The only transition into the authenticated state is SetLoggedIn after a
// successful login; the only transition out is Logout. The session is
// replaced wholesale on every change, never partially mutated.
//
// Sessions persist to disk so a restart does not force a new login. The
// persisted copy stores the credentials in cleartext; this mirrors the
// backend's per-request Basic authentication, which has no revocable token
// to store instead. The file is written with owner-only permissions.
//
// # Key Types
//
//   - Session: immutable snapshot of the authenticated identity
//   - Store: thread-safe owner of the current Session with change
//     notification and disk persistence
package session
