// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"encoding/base64"
	"errors"
	"strings"
)

// =============================================================================
// BASIC AUTH CODEC
// =============================================================================

// BasicAuth encodes a username and password into an HTTP Basic
// Authorization header value: "Basic " + base64(username + ":" + password).
func BasicAuth(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

// DecodeBasicAuth decodes a Basic Authorization header value back into the
// username and password. The password may itself contain colons; only the
// first colon separates the two fields.
func DecodeBasicAuth(header string) (username, password string, err error) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", errors.New("not a Basic authorization header")
	}

	raw, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", errors.New("invalid base64 in authorization header")
	}

	username, password, ok := strings.Cut(string(raw), ":")
	if !ok {
		return "", "", errors.New("authorization header missing colon separator")
	}
	return username, password, nil
}
