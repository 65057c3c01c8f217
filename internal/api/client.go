// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jeranaias/medico-tui/internal/model"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents a transport-level failure: the request never
// produced an HTTP response.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeUnreachable
	ErrTypeTimeout
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrUnreachable = &ClientError{Type: ErrTypeUnreachable, Message: "backend is not reachable"}
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
)

// StatusError represents a non-2xx response from the backend. Detail carries
// the backend's human-readable message when the body contained one, and is
// empty otherwise; callers substitute their own fallback message.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Code, e.Detail)
	}
	return fmt.Sprintf("backend returned %d", e.Code)
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the backend client.
type ClientConfig struct {
	// BaseURL is the backend API base URL (default: http://127.0.0.1:8000)
	// Note: Uses explicit IPv4 address instead of localhost to avoid IPv6 resolution issues on Windows
	BaseURL string

	// Timeout for requests (default: 60s; chat answers can take a while)
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: "http://127.0.0.1:8000",
		Timeout: 60 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the Medico backend API.
//
// The Client is thread-safe for concurrent use. It holds no credentials;
// the backend authenticates every request with HTTP Basic auth, so the
// authenticated methods take the username and password each call.
//
// Example:
//
//	client := api.NewClient()
//	role, err := client.Login(ctx, "alice", "secret")
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new backend client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new backend client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:8000"
	}
	if config.Timeout == 0 {
		config.Timeout = 60 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// =============================================================================
// OPERATIONS
// =============================================================================

type loginResponse struct {
	Role model.Role `json:"role"`
}

// Login verifies the credentials against the backend and returns the role
// the account was registered with.
func (c *Client) Login(ctx context.Context, username, password string) (model.Role, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/login", nil)
	if err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", BasicAuth(username, password))

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var lr loginResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode login response", Cause: err}
	}
	return lr.Role, nil
}

type signupRequest struct {
	Username string     `json:"username"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

// Signup registers a new account with the requested role. This is the one
// unauthenticated operation; no Authorization header is sent. A successful
// signup does not log the user in.
func (c *Client) Signup(ctx context.Context, username, password string, role model.Role) error {
	payload, err := json.Marshal(signupRequest{Username: username, Password: password, Role: role})
	if err != nil {
		return &ClientError{Type: ErrTypeUnknown, Message: "failed to encode signup request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/signup", bytes.NewReader(payload))
	if err != nil {
		return &ClientError{Type: ErrTypeUnknown, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req)
	return err
}

type uploadResponse struct {
	DocID        string     `json:"doc_id"`
	AccessibleTo model.Role `json:"accessible_to"`
}

// UploadDocument sends a document to the backend as a multipart form with
// fields "file" (preserving the filename) and "role" (which role may read
// the document). Requires admin credentials; the backend rejects others.
func (c *Client) UploadDocument(ctx context.Context, username, password, filename string, content io.Reader, roleForDoc model.Role) (*model.UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnknown, Message: "failed to build multipart form", Cause: err}
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, &ClientError{Type: ErrTypeUnknown, Message: "failed to read document", Cause: err}
	}
	if err := mw.WriteField("role", string(roleForDoc)); err != nil {
		return nil, &ClientError{Type: ErrTypeUnknown, Message: "failed to build multipart form", Cause: err}
	}
	if err := mw.Close(); err != nil {
		return nil, &ClientError{Type: ErrTypeUnknown, Message: "failed to finalize multipart form", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/upload_docs", &buf)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnknown, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", BasicAuth(username, password))
	req.Header.Set("Content-Type", mw.FormDataContentType())

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var ur uploadResponse
	if err := json.Unmarshal(body, &ur); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode upload response", Cause: err}
	}
	return &model.UploadResult{DocID: ur.DocID, AccessibleTo: ur.AccessibleTo}, nil
}

type chatResponse struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}

// Chat submits a question and returns the backend's answer along with the
// source documents it drew from, in the order the backend ranked them.
// The body is form-urlencoded with a single "message" field.
func (c *Client) Chat(ctx context.Context, username, password, message string) (*model.ChatResult, error) {
	form := url.Values{}
	form.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnknown, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Authorization", BasicAuth(username, password))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var cr chatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode chat response", Cause: err}
	}
	// A missing sources field means no sources, not an error
	return &model.ChatResult{Answer: cr.Answer, Sources: cr.Sources}, nil
}

// =============================================================================
// REQUEST EXECUTION
// =============================================================================

// do executes the request and returns the response body. Non-2xx statuses
// become a *StatusError carrying the backend's detail message; transport
// failures become ErrTimeout or ErrUnreachable.
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		var ue *url.Error
		if errors.As(err, &ue) && ue.Timeout() {
			return nil, ErrTimeout
		}
		return nil, ErrUnreachable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, Detail: extractDetail(body)}
	}
	return body, nil
}

// UserMessage converts an error from a Client call into the message shown
// to the user. Non-2xx responses use the backend's detail when present and
// fall back to fallback otherwise; transport failures use network, since no
// structured detail exists for them.
func UserMessage(err error, fallback, network string) string {
	var se *StatusError
	if errors.As(err, &se) {
		if se.Detail != "" {
			return se.Detail
		}
		return fallback
	}
	var ce *ClientError
	if errors.As(err, &ce) {
		switch ce.Type {
		case ErrTypeUnreachable, ErrTypeTimeout:
			return network
		}
	}
	return fallback
}

// extractDetail pulls the backend's "detail" message out of an error body.
// The backend normally responds with {"detail": "..."}, but a proxy or a
// crashed handler may return HTML or nothing; those degrade to an empty
// string and the caller's fallback message.
func extractDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Detail
}
