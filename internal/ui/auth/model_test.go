// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/medico-tui/internal/api"
	"github.com/jeranaias/medico-tui/internal/model"
	"github.com/jeranaias/medico-tui/internal/ui/styles"
)

func newTestModel() Model {
	return New(api.NewClient(), styles.NewTheme())
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestSubmit_EmptyCredentialsBlocked(t *testing.T) {
	m := newTestModel()

	m, cmd := m.Update(enterKey())
	if cmd != nil {
		t.Error("empty login must not issue a request")
	}
	if m.AlertMessage() != "Please enter your credentials" {
		t.Errorf("alert = %q, want the login validation message", m.AlertMessage())
	}

	// Username alone is still incomplete
	m.username.SetValue("alice")
	m, cmd = m.Update(enterKey())
	if cmd != nil {
		t.Error("login with empty password must not issue a request")
	}
}

func TestSubmit_SignupValidationMessage(t *testing.T) {
	m := newTestModel()
	m.mode = ModeSignup

	m, cmd := m.Update(enterKey())
	if cmd != nil {
		t.Error("empty signup must not issue a request")
	}
	if m.AlertMessage() != "Please enter signup credentials" {
		t.Errorf("alert = %q, want the signup validation message", m.AlertMessage())
	}
}

func TestSubmit_BusyIsNoOp(t *testing.T) {
	m := newTestModel()
	m.username.SetValue("alice")
	m.password.SetValue("secret")
	m.busy = true

	m, cmd := m.Update(enterKey())
	if cmd != nil {
		t.Error("submit while a request is in flight must be a no-op")
	}
	if !m.Busy() {
		t.Error("busy flag should remain set")
	}
}

func TestSubmit_ValidLoginStartsRequest(t *testing.T) {
	m := newTestModel()
	m.username.SetValue("alice")
	m.password.SetValue("secret")

	m, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("valid login should issue the request command")
	}
	if !m.Busy() {
		t.Error("busy flag should be set while the request is in flight")
	}
	if m.AlertMessage() != "" {
		t.Errorf("previous alert should be cleared on submit, got %q", m.AlertMessage())
	}
}

func TestLoginResult_FailureShowsDetail(t *testing.T) {
	m := newTestModel()
	m.busy = true

	m, _ = m.Update(loginResultMsg{
		Err: &api.StatusError{Code: 401, Detail: "bad credentials"},
	})

	if m.Busy() {
		t.Error("busy flag should clear when the result arrives")
	}
	if m.AlertMessage() != "bad credentials" {
		t.Errorf("alert = %q, want exactly the backend detail", m.AlertMessage())
	}
}

func TestLoginResult_FailureFallback(t *testing.T) {
	m := newTestModel()
	m.busy = true

	m, _ = m.Update(loginResultMsg{Err: &api.StatusError{Code: 500}})
	if m.AlertMessage() != "Login failed" {
		t.Errorf("alert = %q, want the fixed fallback", m.AlertMessage())
	}

	m.busy = true
	m, _ = m.Update(loginResultMsg{Err: api.ErrUnreachable})
	if m.AlertMessage() != "Network error. Please try again." {
		t.Errorf("alert = %q, want the connectivity message", m.AlertMessage())
	}
}

func TestLoginResult_SuccessReportsUpward(t *testing.T) {
	m := newTestModel()
	m.busy = true

	m, cmd := m.Update(loginResultMsg{
		Username: "alice",
		Password: "secret",
		Role:     model.RoleAdmin,
	})
	if cmd == nil {
		t.Fatal("successful login should emit a message to the shell")
	}

	msg, ok := cmd().(LoggedInMsg)
	if !ok {
		t.Fatalf("expected LoggedInMsg, got %T", cmd())
	}
	if msg.Username != "alice" || msg.Password != "secret" || msg.Role != model.RoleAdmin {
		t.Errorf("LoggedInMsg = %+v, want alice/secret/admin", msg)
	}
}

func TestSignupResult_SuccessSwitchesToLogin(t *testing.T) {
	m := newTestModel()
	m.mode = ModeSignup
	m.busy = true

	m, cmd := m.Update(signupResultMsg{Username: "bob"})
	if cmd != nil {
		t.Error("signup success must not authenticate")
	}
	if m.Mode() != ModeLogin {
		t.Error("signup success should switch to the login sub-mode")
	}
	if m.username.Value() != "bob" {
		t.Errorf("username = %q, should be pre-filled after signup", m.username.Value())
	}
	if m.password.Value() != "" {
		t.Error("password should be cleared after signup")
	}
	if m.AlertMessage() != "Signup successful! Please login." {
		t.Errorf("alert = %q", m.AlertMessage())
	}
}

func TestSignupResult_Failure(t *testing.T) {
	m := newTestModel()
	m.mode = ModeSignup
	m.busy = true

	m, _ = m.Update(signupResultMsg{Username: "bob", Err: errors.New("boom")})
	if m.Mode() != ModeSignup {
		t.Error("failed signup should stay in signup mode")
	}
	if m.AlertMessage() != "Signup failed" {
		t.Errorf("alert = %q, want the fixed fallback", m.AlertMessage())
	}
}

func TestSwitchMode(t *testing.T) {
	m := newTestModel()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.Mode() != ModeSignup {
		t.Error("ctrl+t should switch to signup")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.Mode() != ModeLogin {
		t.Error("ctrl+t should switch back to login")
	}

	// Mode is locked while a request is in flight
	m.busy = true
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.Mode() != ModeLogin {
		t.Error("mode switch should be a no-op while busy")
	}
}

func TestSignupRoleDefault(t *testing.T) {
	m := newTestModel()
	if model.SignupRoles[m.roleIdx] != model.RoleDoctor {
		t.Errorf("default signup role = %q, want doctor", model.SignupRoles[m.roleIdx])
	}
}
