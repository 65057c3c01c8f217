// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatview

import "github.com/jeranaias/medico-tui/internal/model"

// chatResultMsg delivers the outcome of a chat request.
type chatResultMsg struct {
	Question string
	Result   *model.ChatResult
	Err      error
}
