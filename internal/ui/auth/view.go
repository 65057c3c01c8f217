// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/medico-tui/internal/model"
)

// View renders the auth view.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.FormTitle.Render(m.mode.String()))
	b.WriteString("\n\n")

	b.WriteString(m.theme.FieldLabel.Render("Username"))
	b.WriteString("\n")
	b.WriteString(m.username.View())
	b.WriteString("\n\n")

	b.WriteString(m.theme.FieldLabel.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n")

	if m.mode == ModeSignup {
		b.WriteString("\n")
		b.WriteString(m.theme.FieldLabel.Render("Role"))
		b.WriteString("\n")
		b.WriteString(m.viewRoleSelector())
		b.WriteString("\n")
	}

	if m.spinner.Active() {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString("\n")
	} else if m.alert.Visible() {
		b.WriteString("\n")
		b.WriteString(m.alert.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.viewHints())

	boxWidth := m.width - 4
	if boxWidth > 60 {
		boxWidth = 60
	}
	return m.theme.FormBox.Width(boxWidth).Render(b.String())
}

// viewRoleSelector renders the signup role options with the selection
// highlighted.
func (m Model) viewRoleSelector() string {
	parts := make([]string, 0, len(model.SignupRoles))
	for i, role := range model.SignupRoles {
		if i == m.roleIdx {
			parts = append(parts, m.theme.RoleSelected.Render(role.Display()))
		} else {
			parts = append(parts, m.theme.RoleOption.Render(role.Display()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (m Model) viewHints() string {
	hints := []string{
		m.theme.ShortcutKey.Render("Enter") + " " + m.theme.ShortcutDesc.Render("submit"),
		m.theme.ShortcutKey.Render("Tab") + " " + m.theme.ShortcutDesc.Render("next field"),
	}
	if m.mode == ModeLogin {
		hints = append(hints,
			m.theme.ShortcutKey.Render("C-t")+" "+m.theme.ShortcutDesc.Render("sign up"))
	} else {
		hints = append(hints,
			m.theme.ShortcutKey.Render("C-t")+" "+m.theme.ShortcutDesc.Render("back to login"))
	}
	return strings.Join(hints, m.theme.ShortcutDesc.Render("  "))
}
