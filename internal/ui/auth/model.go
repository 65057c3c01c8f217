// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/medico-tui/internal/api"
	"github.com/jeranaias/medico-tui/internal/model"
	"github.com/jeranaias/medico-tui/internal/ui/components"
	"github.com/jeranaias/medico-tui/internal/ui/styles"
)

// =============================================================================
// MODE
// =============================================================================

// Mode is the active sub-mode of the auth view.
type Mode int

const (
	ModeLogin Mode = iota
	ModeSignup
)

// String returns the display title for the mode.
func (m Mode) String() string {
	if m == ModeSignup {
		return "Sign Up"
	}
	return "Login"
}

// Field focus positions. The role selector only exists in signup mode.
const (
	focusUsername = iota
	focusPassword
	focusRole
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the auth view state.
type Model struct {
	client *api.Client
	theme  *styles.Theme
	keys   KeyMap

	mode     Mode
	username textinput.Model
	password textinput.Model
	roleIdx  int // index into model.SignupRoles, signup mode only
	focus    int

	busy    bool
	alert   components.Alert
	spinner components.Spinner

	width int
}

// New creates the auth view in login mode.
func New(client *api.Client, theme *styles.Theme) Model {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return Model{
		client:   client,
		theme:    theme,
		keys:     DefaultKeyMap(),
		mode:     ModeLogin,
		username: username,
		password: password,
		roleIdx:  defaultRoleIdx(),
		alert:    components.NewAlert(theme),
		spinner:  components.NewSpinner(theme),
		width:    80,
	}
}

// defaultRoleIdx returns the index of the default signup role.
func defaultRoleIdx() int {
	for i, r := range model.SignupRoles {
		if r == model.RoleDoctor {
			return i
		}
	}
	return 0
}

// Mode returns the active sub-mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Busy reports whether a request is in flight.
func (m Model) Busy() bool {
	return m.busy
}

// AlertMessage returns the currently displayed alert text, if any.
func (m Model) AlertMessage() string {
	return m.alert.Message()
}

// SetWidth updates the view width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// Init returns the initial command for the view.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages for the auth view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case loginResultMsg:
		return m.handleLoginResult(msg)

	case signupResultMsg:
		return m.handleSignupResult(msg)
	}

	var cmds []tea.Cmd
	if cmd := m.spinner.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.username, cmd = m.username.Update(msg)
	cmds = append(cmds, cmd)
	m.password, cmd = m.password.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.SwitchMode):
		if m.busy {
			return m, nil
		}
		if m.mode == ModeLogin {
			m.mode = ModeSignup
		} else {
			m.mode = ModeLogin
		}
		m.alert.Clear()
		return m.setFocus(focusUsername), nil

	case key.Matches(msg, m.keys.NextField):
		return m.setFocus(m.nextFocus(1)), nil

	case key.Matches(msg, m.keys.PrevField):
		return m.setFocus(m.nextFocus(-1)), nil
	}

	// Role selector: left/right cycles through roles
	if m.mode == ModeSignup && m.focus == focusRole {
		switch msg.String() {
		case "left", "h":
			m.roleIdx = (m.roleIdx + len(model.SignupRoles) - 1) % len(model.SignupRoles)
			return m, nil
		case "right", "l", " ":
			m.roleIdx = (m.roleIdx + 1) % len(model.SignupRoles)
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusUsername:
		m.username, cmd = m.username.Update(msg)
	case focusPassword:
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// nextFocus returns the focus position after moving by delta, wrapping
// around the fields available in the current mode.
func (m Model) nextFocus(delta int) int {
	fields := 2
	if m.mode == ModeSignup {
		fields = 3
	}
	return (m.focus + delta + fields) % fields
}

func (m Model) setFocus(focus int) Model {
	m.focus = focus
	m.username.Blur()
	m.password.Blur()
	switch focus {
	case focusUsername:
		m.username.Focus()
	case focusPassword:
		m.password.Focus()
	}
	return m
}

// submit validates the form and issues the request for the active mode.
// While a request is in flight, submitting again is a no-op.
func (m Model) submit() (Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	username := m.username.Value()
	password := m.password.Value()

	if m.mode == ModeLogin {
		if username == "" || password == "" {
			m.alert.Error("Please enter your credentials")
			return m, nil
		}
		m.busy = true
		m.alert.Clear()
		return m, tea.Batch(
			m.spinner.Start("Logging in"),
			loginCmd(m.client, username, password),
		)
	}

	if username == "" || password == "" {
		m.alert.Error("Please enter signup credentials")
		return m, nil
	}
	m.busy = true
	m.alert.Clear()
	return m, tea.Batch(
		m.spinner.Start("Creating account"),
		signupCmd(m.client, username, password, model.SignupRoles[m.roleIdx]),
	)
}

func (m Model) handleLoginResult(msg loginResultMsg) (Model, tea.Cmd) {
	m.busy = false
	m.spinner.Stop()

	if msg.Err != nil {
		m.alert.Error(api.UserMessage(msg.Err,
			"Login failed", "Network error. Please try again."))
		return m, nil
	}

	// Report upward; the shell owns the session transition
	result := LoggedInMsg{
		Username: msg.Username,
		Password: msg.Password,
		Role:     msg.Role,
	}
	return m, func() tea.Msg { return result }
}

func (m Model) handleSignupResult(msg signupResultMsg) (Model, tea.Cmd) {
	m.busy = false
	m.spinner.Stop()

	if msg.Err != nil {
		m.alert.Error(api.UserMessage(msg.Err,
			"Signup failed", "Network error. Please try again."))
		return m, nil
	}

	// Signup never authenticates. Switch to login with the username
	// pre-filled so the user can log in with the new account.
	m.mode = ModeLogin
	m.username.SetValue(msg.Username)
	m.password.SetValue("")
	m.alert.Success("Signup successful! Please login.")
	return m.setFocus(focusPassword), nil
}
