// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatview

import (
	"strings"
)

// View renders the chat view.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.FormTitle.Render("Ask"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
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

	if m.answer != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.QuestionText.Render("Q: " + m.question))
		b.WriteString("\n")
		b.WriteString(m.theme.AnswerBox.Width(m.boxWidth()).Render(m.renderAnswer()))
		b.WriteString("\n")

		// The sources panel only appears when the backend returned any
		// and the sources preference is on
		if m.showSources && len(m.sources) > 0 {
			b.WriteString(m.theme.SourceHeader.Render("Sources"))
			b.WriteString("\n")
			for _, src := range m.sources {
				b.WriteString(m.theme.SourceItem.Render("- " + src))
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(m.theme.ShortcutKey.Render("Enter") + " " + m.theme.ShortcutDesc.Render("ask"))

	return m.theme.Container.Render(b.String())
}

// renderAnswer renders the answer as markdown, falling back to the raw
// text when the renderer is unavailable.
func (m Model) renderAnswer() string {
	if m.renderer == nil {
		return m.answer
	}
	out, err := m.renderer.Render(m.answer)
	if err != nil {
		return m.answer
	}
	return strings.TrimSpace(out)
}

func (m Model) boxWidth() int {
	w := m.width - 6
	if w > 80 {
		w = 80
	}
	if w < 20 {
		w = 20
	}
	return w
}
