// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the medico TUI.
//
// All colors use Lip Gloss AdaptiveColor so the palette adjusts to light
// and dark terminals automatically. The Theme struct bundles the styled
// components used across views; construct one at startup with NewTheme
// and share it.
//
// # Key Types
//
//   - Theme: all styled components, plus detected terminal capabilities
//
// # Usage
//
//	theme := styles.NewTheme()
//	fmt.Println(theme.Header.Render("MEDICO"))
package styles
