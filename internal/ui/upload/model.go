// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/medico-tui/internal/api"
	"github.com/jeranaias/medico-tui/internal/model"
	"github.com/jeranaias/medico-tui/internal/ui/components"
	"github.com/jeranaias/medico-tui/internal/ui/styles"
)

// Field focus positions.
const (
	focusPath = iota
	focusRole
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the upload view state.
type Model struct {
	client *api.Client
	theme  *styles.Theme

	// Per-request credentials, set by the shell from the current session
	username string
	password string

	path    textinput.Model
	roleIdx int // index into model.UploadTargetRoles
	focus   int

	busy    bool
	alert   components.Alert
	spinner components.Spinner

	width int
}

// New creates the upload view.
func New(client *api.Client, theme *styles.Theme) Model {
	path := textinput.New()
	path.Placeholder = "/path/to/document.pdf"
	path.CharLimit = 512
	path.Focus()

	return Model{
		client:  client,
		theme:   theme,
		path:    path,
		alert:   components.NewAlert(theme),
		spinner: components.NewSpinner(theme),
		width:   80,
	}
}

// SetCredentials updates the credentials sent with upload requests. The
// shell calls this whenever the session changes.
func (m *Model) SetCredentials(username, password string) {
	m.username = username
	m.password = password
}

// SetWidth updates the view width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// Busy reports whether a request is in flight.
func (m Model) Busy() bool {
	return m.busy
}

// AlertMessage returns the currently displayed alert text, if any.
func (m Model) AlertMessage() string {
	return m.alert.Message()
}

// Path returns the current file path entry.
func (m Model) Path() string {
	return m.path.Value()
}

// Init returns the initial command for the view.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages for the upload view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case uploadResultMsg:
		return m.handleResult(msg)
	}

	var cmds []tea.Cmd
	if cmd := m.spinner.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.path, cmd = m.path.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submit()

	case "tab", "shift+tab":
		if m.focus == focusPath {
			m.focus = focusRole
			m.path.Blur()
		} else {
			m.focus = focusPath
			m.path.Focus()
		}
		return m, nil
	}

	if m.focus == focusRole {
		switch msg.String() {
		case "left", "h":
			m.roleIdx = (m.roleIdx + len(model.UploadTargetRoles) - 1) % len(model.UploadTargetRoles)
			return m, nil
		case "right", "l", " ":
			m.roleIdx = (m.roleIdx + 1) % len(model.UploadTargetRoles)
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.path, cmd = m.path.Update(msg)
	return m, cmd
}

// submit validates the selection and issues the upload. A second submit
// while one is in flight is a no-op.
func (m Model) submit() (Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	path := strings.TrimSpace(m.path.Value())
	if path == "" || !strings.HasSuffix(strings.ToLower(path), ".pdf") {
		m.alert.Error("Please select a PDF file")
		return m, nil
	}

	m.busy = true
	m.alert.Clear()
	return m, tea.Batch(
		m.spinner.Start("Uploading"),
		uploadCmd(m.client, m.username, m.password, path, model.UploadTargetRoles[m.roleIdx]),
	)
}

func (m Model) handleResult(msg uploadResultMsg) (Model, tea.Cmd) {
	m.busy = false
	m.spinner.Stop()

	if msg.Err != nil {
		// Keep the file selection so the user can retry without
		// re-entering the path
		m.alert.Error(api.UserMessage(msg.Err,
			"Upload failed. Please try again.", "Network error. Please check your connection."))
		return m, nil
	}

	name := filepath.Base(strings.TrimSpace(m.path.Value()))
	m.alert.Success("Uploaded " + name + " as " + msg.Result.DocID +
		" (accessible to " + msg.Result.AccessibleTo.Display() + ")")
	m.path.SetValue("")
	return m, nil
}
