// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/medico-tui/internal/api"
	"github.com/jeranaias/medico-tui/internal/model"
)

// loginCmd performs the login request in the background.
func loginCmd(client *api.Client, username, password string) tea.Cmd {
	return func() tea.Msg {
		role, err := client.Login(context.Background(), username, password)
		return loginResultMsg{
			Username: username,
			Password: password,
			Role:     role,
			Err:      err,
		}
	}
}

// signupCmd performs the signup request in the background.
func signupCmd(client *api.Client, username, password string, role model.Role) tea.Cmd {
	return func() tea.Msg {
		err := client.Signup(context.Background(), username, password, role)
		return signupResultMsg{Username: username, Err: err}
	}
}
