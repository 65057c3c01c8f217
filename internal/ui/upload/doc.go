// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package upload provides the admin document upload view for the TUI.
//
// The view is only reachable when the session role is admin; the shell
// re-checks that gate from the current session on every render. The user
// types a path to a PDF, picks which role may read the document, and
// submits. On success the view shows the returned document id and clears
// the selection; on failure it keeps the selection so the user can retry
// without re-entering the path.
package upload
