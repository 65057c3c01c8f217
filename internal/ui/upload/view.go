// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/medico-tui/internal/model"
)

// View renders the upload view.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.FormTitle.Render("Upload Document"))
	b.WriteString("\n\n")

	b.WriteString(m.theme.FieldLabel.Render("PDF file"))
	b.WriteString("\n")
	b.WriteString(m.path.View())
	b.WriteString("\n\n")

	b.WriteString(m.theme.FieldLabel.Render("Accessible to"))
	b.WriteString("\n")
	b.WriteString(m.viewRoleSelector())
	b.WriteString("\n")

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
	b.WriteString(m.theme.ShortcutKey.Render("Enter") + " " + m.theme.ShortcutDesc.Render("upload") +
		m.theme.ShortcutDesc.Render("  ") +
		m.theme.ShortcutKey.Render("Tab") + " " + m.theme.ShortcutDesc.Render("switch field"))

	boxWidth := m.width - 4
	if boxWidth > 70 {
		boxWidth = 70
	}
	return m.theme.FormBox.Width(boxWidth).Render(b.String())
}

func (m Model) viewRoleSelector() string {
	parts := make([]string, 0, len(model.UploadTargetRoles))
	for i, role := range model.UploadTargetRoles {
		if i == m.roleIdx {
			parts = append(parts, m.theme.RoleSelected.Render(role.Display()))
		} else {
			parts = append(parts, m.theme.RoleOption.Render(role.Display()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
