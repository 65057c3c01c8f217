// medico TUI - A terminal client for role-gated document Q&A.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/medico-tui/internal/api"
	"github.com/jeranaias/medico-tui/internal/cli"
	"github.com/jeranaias/medico-tui/internal/config"
	"github.com/jeranaias/medico-tui/internal/session"
	"github.com/jeranaias/medico-tui/internal/ui/auth"
	"github.com/jeranaias/medico-tui/internal/ui/chatview"
	"github.com/jeranaias/medico-tui/internal/ui/components"
	"github.com/jeranaias/medico-tui/internal/ui/styles"
	"github.com/jeranaias/medico-tui/internal/ui/upload"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI(args)
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	}
}

func runTUI(args cli.Args) {
	// Load configuration at startup
	var cfg *config.Config
	if args.ConfigPath != "" {
		loaded, err := config.LoadFromPath(args.ConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
		config.SetGlobal(cfg)
	} else {
		cfg = config.Global()
	}

	// CLI args override config
	if args.Server != "" {
		cfg.API.BaseURL = args.Server
	}

	theme := styles.NewThemeWithMode(cfg.UI.Theme)

	client := api.NewClientWithConfig(&api.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: time.Duration(cfg.API.TimeoutSecs) * time.Second,
	})

	// Restore any persisted session so a restart does not force re-login
	store := session.NewStore()
	if dir, err := config.ConfigDir(); err == nil {
		store = session.NewPersistentStore(filepath.Join(dir, "session.json"))
	}

	m := NewModel(cfg, theme, client, store)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running medico: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// APPLICATION MODEL
// =============================================================================

// State represents the current application state.
type State int

const (
	StateAuth State = iota // Login/signup
	StateHome              // Authenticated: chat and (for admins) upload
)

// Tab is the active panel in the authenticated state.
type Tab int

const (
	TabChat Tab = iota
	TabUpload
)

// Model is the main Bubble Tea model for the application. It owns the
// session store; child views report auth results upward and receive
// read-only credentials.
type Model struct {
	state State
	tab   Tab

	theme       *styles.Theme
	compact     bool
	showSources bool
	width       int
	height      int

	client *api.Client
	store  *session.Store

	header    *components.Header
	statusBar *components.StatusBar

	authView   auth.Model
	chatView   chatview.Model
	uploadView upload.Model
}

// NewModel creates the application model. A restored session skips the
// auth view.
func NewModel(cfg *config.Config, theme *styles.Theme, client *api.Client, store *session.Store) Model {
	m := Model{
		state:       StateAuth,
		theme:       theme,
		compact:     cfg.UI.CompactMode,
		showSources: cfg.UI.ShowSources,
		client:      client,
		store:       store,
		header:      components.NewHeader(theme),
		statusBar:   components.NewStatusBar(theme),
		authView:    auth.New(client, theme),
		chatView:    chatview.New(client, theme),
		uploadView:  upload.New(client, theme),
		width:       80,
		height:      24,
	}
	m.chatView.SetShowSources(m.showSources)

	if sess := store.Current(); sess.LoggedIn {
		m.applySession(sess)
		m.state = StateHome
	}

	return m
}

// applySession pushes the session's credentials and identity into the
// views and header.
func (m *Model) applySession(sess session.Session) {
	m.chatView.SetCredentials(sess.Username, sess.Password)
	m.uploadView.SetCredentials(sess.Username, sess.Password)
	m.header.SetIdentity(sess.Username, sess.Role.Display())
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	if m.state == StateHome {
		return m.chatView.Init()
	}
	return m.authView.Init()
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles all application messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.header.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		m.authView.SetWidth(msg.Width)
		m.chatView.SetWidth(msg.Width)
		m.uploadView.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+l":
			if m.state == StateHome {
				return m.logout()
			}

		case "ctrl+t":
			// In the home state ctrl+t switches panels; the upload
			// panel is gated on the current session role every time
			if m.state == StateHome {
				if m.tab == TabChat && m.canUpload() {
					m.tab = TabUpload
				} else {
					m.tab = TabChat
				}
				return m, nil
			}
		}

	case auth.LoggedInMsg:
		return m.login(msg)
	}

	return m.routeToActiveView(msg)
}

// login performs the anonymous-to-authenticated transition. The auth view
// only reports the accepted credentials; the store transition happens
// here, exactly once.
func (m Model) login(msg auth.LoggedInMsg) (tea.Model, tea.Cmd) {
	if err := m.store.SetLoggedIn(msg.Username, msg.Password, msg.Role); err != nil {
		// The session still works for this run; only persistence failed
		fmt.Fprintf(os.Stderr, "Warning: could not persist session: %v\n", err)
	}

	m.applySession(m.store.Current())
	m.state = StateHome
	m.tab = TabChat
	return m, m.chatView.Init()
}

// logout clears the session wholesale, purges the persisted copy, and
// returns to a fresh auth view.
func (m Model) logout() (tea.Model, tea.Cmd) {
	if err := m.store.Logout(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	m.header.SetIdentity("", "")
	m.chatView.SetCredentials("", "")
	m.uploadView.SetCredentials("", "")
	m.authView = auth.New(m.client, m.theme)
	m.authView.SetWidth(m.width)
	m.chatView = chatview.New(m.client, m.theme)
	m.chatView.SetShowSources(m.showSources)
	m.chatView.SetWidth(m.width)
	m.uploadView = upload.New(m.client, m.theme)
	m.uploadView.SetWidth(m.width)
	m.state = StateAuth
	m.tab = TabChat
	return m, m.authView.Init()
}

// canUpload re-evaluates the role gate from the current session value.
// The result is never cached; a session change is picked up immediately.
func (m Model) canUpload() bool {
	return m.store.Current().Role.CanUpload()
}

// routeToActiveView forwards a message to the view that should handle it.
// Key presses go only to the focused view; everything else (spinner
// ticks, request results) fans out so background requests resolve even
// when their view is not focused.
func (m Model) routeToActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == StateAuth {
		var cmd tea.Cmd
		m.authView, cmd = m.authView.Update(msg)
		return m, cmd
	}

	if _, isKey := msg.(tea.KeyMsg); isKey {
		var cmd tea.Cmd
		if m.tab == TabUpload && m.canUpload() {
			m.uploadView, cmd = m.uploadView.Update(msg)
		} else {
			m.chatView, cmd = m.chatView.Update(msg)
		}
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.chatView, cmd = m.chatView.Update(msg)
	cmds = append(cmds, cmd)
	m.uploadView, cmd = m.uploadView.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the application.
func (m Model) View() string {
	var body string

	if m.state == StateAuth {
		body = m.authView.View()
		m.statusBar.SetShortcuts(
			components.Shortcut{Key: "Enter", Desc: "submit"},
			components.Shortcut{Key: "C-t", Desc: "login/signup"},
			components.Shortcut{Key: "C-c", Desc: "quit"},
		)
	} else {
		// The upload tab is gated on the current session role at render
		// time; a non-admin session never sees it
		tab := m.tab
		if tab == TabUpload && !m.canUpload() {
			tab = TabChat
		}

		if tab == TabUpload {
			body = m.uploadView.View()
		} else {
			body = m.chatView.View()
		}
		body = m.viewTabBar(tab) + "\n" + body

		shortcuts := []components.Shortcut{
			{Key: "Enter", Desc: "submit"},
			{Key: "C-l", Desc: "logout"},
			{Key: "C-c", Desc: "quit"},
		}
		if m.canUpload() {
			shortcuts = append([]components.Shortcut{{Key: "C-t", Desc: "switch panel"}}, shortcuts...)
		}
		m.statusBar.SetShortcuts(shortcuts...)
	}

	header := m.header.View()
	if m.compact {
		header = m.header.ViewCompact()
	}
	return m.theme.App.Render(
		header + "\n" + body + "\n" + m.statusBar.View())
}

// viewTabBar renders the panel tabs. The upload tab only exists for
// sessions whose role allows uploading.
func (m Model) viewTabBar(active Tab) string {
	chat := m.theme.Tab.Render("Chat")
	if active == TabChat {
		chat = m.theme.TabActive.Render("Chat")
	}
	if !m.canUpload() {
		return chat
	}

	uploadTab := m.theme.Tab.Render("Upload")
	if active == TabUpload {
		uploadTab = m.theme.TabActive.Render("Upload")
	}
	return chat + uploadTab
}
