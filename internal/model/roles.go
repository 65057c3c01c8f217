// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "strings"

// =============================================================================
// ROLES
// =============================================================================

// Role is the role tag the backend attaches to an account. It gates which
// panels the client shows; the backend enforces the actual permissions.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// SignupRoles lists the roles offered on the signup form, in display order.
var SignupRoles = []Role{RoleAdmin, RoleDoctor, RolePatient}

// UploadTargetRoles lists the roles a document can be made accessible to,
// in display order.
var UploadTargetRoles = []Role{RoleDoctor, RolePatient}

// CanUpload reports whether this role may see the document upload panel.
// Only the administrative role qualifies; the check is evaluated from the
// live session value on every render, never cached.
func (r Role) CanUpload() bool {
	return r == RoleAdmin
}

// Display returns the role with its first letter capitalized, for headers
// and selectors.
func (r Role) Display() string {
	s := string(r)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
