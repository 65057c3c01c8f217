// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/medico-tui/internal/api"
	"github.com/jeranaias/medico-tui/internal/model"
	"github.com/jeranaias/medico-tui/internal/ui/styles"
)

func newTestModel() Model {
	m := New(api.NewClient(), styles.NewTheme())
	m.SetCredentials("root", "pw")
	return m
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestSubmit_NoFileBlocked(t *testing.T) {
	m := newTestModel()

	m, cmd := m.Update(enterKey())
	if cmd != nil {
		t.Error("submit with no file must not issue a request")
	}
	if m.AlertMessage() != "Please select a PDF file" {
		t.Errorf("alert = %q, want the validation message", m.AlertMessage())
	}
}

func TestSubmit_NonPDFBlocked(t *testing.T) {
	m := newTestModel()
	m.path.SetValue("/tmp/notes.txt")

	m, cmd := m.Update(enterKey())
	if cmd != nil {
		t.Error("submit with a non-PDF file must not issue a request")
	}
	if m.AlertMessage() != "Please select a PDF file" {
		t.Errorf("alert = %q, want the validation message", m.AlertMessage())
	}
}

func TestSubmit_ValidFileStartsRequest(t *testing.T) {
	m := newTestModel()
	m.path.SetValue("/tmp/notes.pdf")

	m, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("valid file should issue the upload command")
	}
	if !m.Busy() {
		t.Error("busy flag should be set while the upload is in flight")
	}
}

func TestSubmit_BusyIsNoOp(t *testing.T) {
	m := newTestModel()
	m.path.SetValue("/tmp/notes.pdf")
	m.busy = true

	m, cmd := m.Update(enterKey())
	if cmd != nil {
		t.Error("a second submit while one upload is in flight must be a no-op")
	}
}

func TestResult_FailureRetainsSelection(t *testing.T) {
	m := newTestModel()
	m.path.SetValue("/tmp/notes.pdf")
	m.busy = true

	m, _ = m.Update(uploadResultMsg{Err: &api.StatusError{Code: 403, Detail: "admins only"}})

	if m.Busy() {
		t.Error("busy flag should clear when the result arrives")
	}
	if m.Path() != "/tmp/notes.pdf" {
		t.Error("file selection must survive a failed upload so the user can retry")
	}
	if m.AlertMessage() != "admins only" {
		t.Errorf("alert = %q, want the backend detail", m.AlertMessage())
	}
}

func TestResult_FailureFallbackMessage(t *testing.T) {
	m := newTestModel()
	m.busy = true

	m, _ = m.Update(uploadResultMsg{Err: &api.StatusError{Code: 500}})
	if m.AlertMessage() != "Upload failed. Please try again." {
		t.Errorf("alert = %q, want the fixed fallback", m.AlertMessage())
	}
}

func TestResult_NetworkFailureMessage(t *testing.T) {
	m := newTestModel()
	m.busy = true

	m, _ = m.Update(uploadResultMsg{Err: api.ErrUnreachable})
	if m.AlertMessage() != "Network error. Please check your connection." {
		t.Errorf("alert = %q, want the connectivity message", m.AlertMessage())
	}
}

func TestResult_SuccessClearsSelection(t *testing.T) {
	m := newTestModel()
	m.path.SetValue("/tmp/notes.pdf")
	m.busy = true

	m, _ = m.Update(uploadResultMsg{
		Result: &model.UploadResult{DocID: "d-42", AccessibleTo: model.RolePatient},
	})

	if m.Path() != "" {
		t.Error("file selection should clear after a successful upload")
	}
	msg := m.AlertMessage()
	if msg == "" {
		t.Fatal("success should show a confirmation")
	}
	for _, want := range []string{"notes.pdf", "d-42", "Patient"} {
		if !strings.Contains(msg, want) {
			t.Errorf("confirmation %q should mention %q", msg, want)
		}
	}
}

func TestRoleSelector_Cycles(t *testing.T) {
	m := newTestModel()
	if model.UploadTargetRoles[m.roleIdx] != model.RoleDoctor {
		t.Errorf("default target role = %q, want doctor", model.UploadTargetRoles[m.roleIdx])
	}

	// Move focus to the role selector, then cycle
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if model.UploadTargetRoles[m.roleIdx] != model.RolePatient {
		t.Errorf("after cycling, target role = %q, want patient", model.UploadTargetRoles[m.roleIdx])
	}
}
