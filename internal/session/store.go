// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/jeranaias/medico-tui/internal/model"
	"github.com/jeranaias/medico-tui/internal/util"
)

// =============================================================================
// SESSION
// =============================================================================

// Session is a snapshot of the authenticated identity. The zero value is
// the anonymous session.
//
// LoggedIn is true iff Username and Password are non-empty and the backend
// accepted them. The credentials are kept because the backend requires them
// on every request (HTTP Basic, no token).
type Session struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
	LoggedIn bool       `json:"loggedIn"`
}

// =============================================================================
// STORE
// =============================================================================

// Store owns the current Session. All access goes through the Store; the
// Session itself is only ever replaced wholesale, never mutated in place.
//
// When a persistence path is configured, every state change is written to
// disk and Logout removes the file. The Store is thread-safe.
type Store struct {
	mu        sync.RWMutex
	current   Session
	path      string // empty = no persistence
	listeners []func(Session)
}

// NewStore creates a Store with no persistence. The initial session is
// anonymous.
func NewStore() *Store {
	return &Store{}
}

// NewPersistentStore creates a Store that persists the session to path on
// every change. If a previous session exists at path, it is restored.
// A corrupt or unreadable file is ignored and the Store starts anonymous.
func NewPersistentStore(path string) *Store {
	s := &Store{path: path}
	s.restore()
	return s
}

// Current returns a copy of the current session.
func (s *Store) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetLoggedIn transitions the store to the authenticated state. Call this
// only after the backend has accepted the credentials. Empty credentials
// are rejected: a logged-in session must be able to authenticate requests.
func (s *Store) SetLoggedIn(username, password string, role model.Role) error {
	if username == "" || password == "" {
		return fmt.Errorf("cannot log in without credentials")
	}

	sess := Session{
		Username: username,
		Password: password,
		Role:     role,
		LoggedIn: true,
	}

	s.mu.Lock()
	s.current = sess
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(sess)
	}
	return s.persist(sess)
}

// Logout clears the session back to anonymous and removes the persisted
// copy from disk.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.current = Session{}
	listeners := s.listeners
	path := s.path
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(Session{})
	}

	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// Subscribe registers a listener invoked synchronously with the new session
// on every state change. Listeners must not call back into the Store.
func (s *Store) Subscribe(fn func(Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// =============================================================================
// PERSISTENCE
// =============================================================================

// persist writes the session to disk. The file holds credentials, so it is
// written atomically with owner-only permissions.
func (s *Store) persist(sess Session) error {
	if s.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := util.AtomicWriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// restore loads a previously persisted session. Anything short of a valid
// logged-in session leaves the store anonymous.
func (s *Store) restore() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return
	}
	// A session without credentials cannot authenticate requests
	if !sess.LoggedIn || sess.Username == "" || sess.Password == "" {
		return
	}

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
}
