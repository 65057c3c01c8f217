// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chatview provides the question-and-answer view for the TUI.
//
// The user types a question and submits it to the backend, which answers
// from the documents the session's role may read. Submitting clears any
// previous answer and sources immediately, so stale results never linger
// while a new request is in flight. The answer renders as markdown; the
// source documents the backend drew from are listed under it in the order
// the backend ranked them, and the panel is omitted entirely when there
// are none.
package chatview
