// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatview

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/medico-tui/internal/api"
)

// chatCmd performs the chat request in the background.
func chatCmd(client *api.Client, username, password, message string) tea.Cmd {
	return func() tea.Msg {
		result, err := client.Chat(context.Background(), username, password, message)
		return chatResultMsg{Question: message, Result: result, Err: err}
	}
}
