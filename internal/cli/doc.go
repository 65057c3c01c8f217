// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line argument parsing for medico.
//
// The binary has one primary mode, the TUI, plus version and help output.
// Parse inspects os.Args and returns the command to run with any flags.
package cli
