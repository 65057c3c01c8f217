// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewTheme(t *testing.T) {
	theme := NewTheme()
	if theme == nil {
		t.Fatal("NewTheme returned nil")
	}

	// Every style should render without panicking
	styles := map[string]func(...string) string{
		"Header":       theme.Header.Render,
		"TabActive":    theme.TabActive.Render,
		"FormBox":      theme.FormBox.Render,
		"AlertError":   theme.AlertError.Render,
		"AlertSuccess": theme.AlertSuccess.Render,
		"AnswerBox":    theme.AnswerBox.Render,
		"SourceItem":   theme.SourceItem.Render,
		"StatusBar":    theme.StatusBar.Render,
	}
	for name, render := range styles {
		if out := render("x"); !strings.Contains(out, "x") {
			t.Errorf("%s.Render should contain the input text, got %q", name, out)
		}
	}
}

func TestNewThemeWithMode(t *testing.T) {
	prev := lipgloss.HasDarkBackground()
	defer lipgloss.SetHasDarkBackground(prev)

	if theme := NewThemeWithMode("dark"); !theme.IsDark {
		t.Error("configured dark mode should override background detection")
	}
	if theme := NewThemeWithMode("light"); theme.IsDark {
		t.Error("configured light mode should override background detection")
	}
	if theme := NewThemeWithMode("Light"); theme.IsDark {
		t.Error("mode matching should be case-insensitive")
	}

	// "auto" keeps whatever was detected (or previously configured)
	lipgloss.SetHasDarkBackground(true)
	if theme := NewThemeWithMode("auto"); !theme.IsDark {
		t.Error("auto mode should keep the detected background")
	}
}

func TestTheme_SetSize(t *testing.T) {
	theme := NewTheme()
	theme.SetSize(120, 40)
	if theme.Width != 120 || theme.Height != 40 {
		t.Errorf("SetSize stored %dx%d, want 120x40", theme.Width, theme.Height)
	}
}

func TestStatusIndicators_ASCIIOnly(t *testing.T) {
	indicators := []string{
		StatusIndicators.Success,
		StatusIndicators.Error,
		StatusIndicators.Warning,
		StatusIndicators.Info,
		StatusIndicators.Pending,
	}
	for _, ind := range indicators {
		for _, r := range ind {
			if r > 127 {
				t.Errorf("indicator %q contains non-ASCII rune %q", ind, r)
			}
		}
	}
}

func TestRenderHelpers_IncludeIndicator(t *testing.T) {
	if out := RenderSuccess("saved"); !strings.Contains(out, "[OK]") {
		t.Errorf("RenderSuccess missing shape indicator: %q", out)
	}
	if out := RenderError("failed"); !strings.Contains(out, "[X]") {
		t.Errorf("RenderError missing shape indicator: %q", out)
	}
	if out := RenderInfo("note"); !strings.Contains(out, "[i]") {
		t.Errorf("RenderInfo missing shape indicator: %q", out)
	}
}
