// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the shared visual UI components for the
// medico TUI: the title header, inline alerts, the loading spinner, and
// the shortcut status bar.
//
// Components are plain view helpers. They hold display state only and are
// rendered by the views that own them; none of them talk to the network or
// the session store.
package components
