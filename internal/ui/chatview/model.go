// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatview

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/medico-tui/internal/api"
	"github.com/jeranaias/medico-tui/internal/ui/components"
	"github.com/jeranaias/medico-tui/internal/ui/styles"
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the chat view state.
type Model struct {
	client *api.Client
	theme  *styles.Theme

	// Per-request credentials, set by the shell from the current session
	username string
	password string

	input    textinput.Model
	question string   // last submitted question
	answer   string   // current answer, empty when none
	sources  []string // current sources, in backend ranking order

	busy    bool
	alert   components.Alert
	spinner components.Spinner

	showSources bool
	renderer    *glamour.TermRenderer
	width       int
}

// New creates the chat view.
func New(client *api.Client, theme *styles.Theme) Model {
	input := textinput.New()
	input.Placeholder = "Ask a question about your documents"
	input.CharLimit = 1024
	input.Focus()

	// Markdown rendering for answers; nil renderer falls back to plain text
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	if err != nil {
		renderer = nil
	}

	return Model{
		client:      client,
		theme:       theme,
		input:       input,
		alert:       components.NewAlert(theme),
		spinner:     components.NewSpinner(theme),
		showSources: true,
		renderer:    renderer,
		width:       80,
	}
}

// SetCredentials updates the credentials sent with chat requests. The
// shell calls this whenever the session changes.
func (m *Model) SetCredentials(username, password string) {
	m.username = username
	m.password = password
}

// SetWidth updates the view width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetShowSources toggles the sources panel under answers. On by default;
// the shell applies the configured preference at startup.
func (m *Model) SetShowSources(show bool) {
	m.showSources = show
}

// Busy reports whether a request is in flight.
func (m Model) Busy() bool {
	return m.busy
}

// Answer returns the current answer text, empty when none.
func (m Model) Answer() string {
	return m.answer
}

// Sources returns the current source list in backend ranking order.
func (m Model) Sources() []string {
	return m.sources
}

// AlertMessage returns the currently displayed alert text, if any.
func (m Model) AlertMessage() string {
	return m.alert.Message()
}

// Init returns the initial command for the view.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages for the chat view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			return m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case chatResultMsg:
		return m.handleResult(msg)
	}

	var cmds []tea.Cmd
	if cmd := m.spinner.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit validates the question and issues the request. Whitespace-only
// input counts as empty. A second submit while a request is in flight is
// a no-op.
func (m Model) submit() (Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	message := strings.TrimSpace(m.input.Value())
	if message == "" {
		m.alert.Error("Please enter a query")
		return m, nil
	}

	// Clear the previous result immediately so stale answers never
	// linger while the new request is in flight
	m.question = message
	m.answer = ""
	m.sources = nil
	m.busy = true
	m.alert.Clear()
	m.input.SetValue("")

	return m, tea.Batch(
		m.spinner.Start("Thinking"),
		chatCmd(m.client, m.username, m.password, message),
	)
}

func (m Model) handleResult(msg chatResultMsg) (Model, tea.Cmd) {
	m.busy = false
	m.spinner.Stop()

	if msg.Err != nil {
		m.answer = ""
		m.sources = nil
		m.alert.Error(api.UserMessage(msg.Err,
			"Something went wrong. Please try again.",
			"Network error. Please check your connection."))
		return m, nil
	}

	m.answer = msg.Result.Answer
	m.sources = msg.Result.Sources
	return m, nil
}
