// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for communicating with the Medico
// backend service.
//
// The backend exposes four operations: login, signup, document upload, and
// chat. Each method on Client builds exactly one HTTP request with the
// method, headers, and body encoding the backend expects, and decodes the
// response into a domain type.
//
// # Key Types
//
//   - Client: thread-safe HTTP client for all backend operations
//   - ClientConfig: base URL and timeout configuration
//   - StatusError: a non-2xx response with the backend's detail message
//   - ClientError: a transport-level failure (unreachable, timeout)
//
// # Usage
//
//	client := api.NewClient()
//	role, err := client.Login(ctx, "alice", "secret")
//	if err != nil {
//	    var se *api.StatusError
//	    if errors.As(err, &se) {
//	        // non-2xx: se.Detail carries the backend's message
//	    }
//	}
//
// Credentials are never stored by this package. The backend uses HTTP Basic
// authentication per request, so every authenticated method takes the
// username and password explicitly.
package api
