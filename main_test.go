// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/medico-tui/internal/api"
	"github.com/jeranaias/medico-tui/internal/config"
	"github.com/jeranaias/medico-tui/internal/model"
	"github.com/jeranaias/medico-tui/internal/session"
	"github.com/jeranaias/medico-tui/internal/ui/auth"
	"github.com/jeranaias/medico-tui/internal/ui/styles"
)

func newTestShell() Model {
	return NewModel(config.Default(), styles.NewTheme(), api.NewClient(), session.NewStore())
}

func loginAs(t *testing.T, m Model, role model.Role) Model {
	t.Helper()
	next, _ := m.Update(auth.LoggedInMsg{Username: "alice", Password: "secret", Role: role})
	shell, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return shell
}

func TestShell_StartsAnonymous(t *testing.T) {
	m := newTestShell()
	if m.state != StateAuth {
		t.Error("shell should start in the auth state with no session")
	}
}

func TestShell_LoginTransition(t *testing.T) {
	m := loginAs(t, newTestShell(), model.RoleDoctor)

	if m.state != StateHome {
		t.Error("accepted credentials should move the shell to the home state")
	}
	if m.tab != TabChat {
		t.Error("chat should be the initial panel after login")
	}
	sess := m.store.Current()
	if !sess.LoggedIn || sess.Username != "alice" || sess.Role != model.RoleDoctor {
		t.Errorf("session = %+v, want the accepted credentials", sess)
	}
}

func TestShell_UploadPanelGatedByRole(t *testing.T) {
	// Admin session: ctrl+t reaches the upload panel and the tab renders
	m := loginAs(t, newTestShell(), model.RoleAdmin)
	if !m.canUpload() {
		t.Fatal("admin session should pass the upload gate")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = next.(Model)
	if m.tab != TabUpload {
		t.Error("ctrl+t should switch an admin to the upload panel")
	}
	if !strings.Contains(m.View(), "Upload") {
		t.Error("upload tab should render for an admin")
	}

	// Non-admin session: the gate holds and ctrl+t stays on chat
	m = loginAs(t, newTestShell(), model.RolePatient)
	if m.canUpload() {
		t.Fatal("non-admin session must not pass the upload gate")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = next.(Model)
	if m.tab != TabChat {
		t.Error("ctrl+t must not reach the upload panel for a non-admin")
	}
	if strings.Contains(m.View(), "Upload") {
		t.Error("upload tab must not render for a non-admin")
	}
}

func TestShell_RoleGateReadsLiveSession(t *testing.T) {
	m := loginAs(t, newTestShell(), model.RoleAdmin)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	m = next.(Model)
	if m.tab != TabUpload {
		t.Fatal("admin should reach the upload panel")
	}

	// The session changed underneath the shell; the render-time gate
	// falls back to chat instead of showing the stale panel
	m.store.SetLoggedIn("bob", "pw", model.RoleDoctor)
	if strings.Contains(m.View(), "Upload Document") {
		t.Error("upload panel must not render once the session role loses the gate")
	}
}

func TestShell_Logout(t *testing.T) {
	m := loginAs(t, newTestShell(), model.RoleAdmin)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m = next.(Model)
	if m.state != StateAuth {
		t.Error("ctrl+l should return the shell to the auth state")
	}
	if m.store.Current().LoggedIn {
		t.Error("logout should clear the session")
	}
}

func TestShell_CompactHeader(t *testing.T) {
	cfg := config.Default()
	cfg.UI.CompactMode = true

	m := NewModel(cfg, styles.NewTheme(), api.NewClient(), session.NewStore())
	out := m.View()
	if !strings.Contains(out, "medico") {
		t.Fatalf("view missing brand: %q", out)
	}
	// The full header centers the brand as "< medico >"; compact mode
	// renders the tighter "<medico>" single-line form
	if strings.Contains(out, "< medico >") {
		t.Error("compact mode should use the single-line header")
	}
}

func TestShell_RestoredSessionSkipsAuth(t *testing.T) {
	store := session.NewStore()
	store.SetLoggedIn("alice", "secret", model.RoleAdmin)

	m := NewModel(config.Default(), styles.NewTheme(), api.NewClient(), store)
	if m.state != StateHome {
		t.Error("a restored session should skip the auth view")
	}
	if !m.canUpload() {
		t.Error("restored admin session should pass the upload gate")
	}
}
