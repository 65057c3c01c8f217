// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "testing"

func TestRole_CanUpload(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleAdmin, true},
		{RoleDoctor, false},
		{RolePatient, false},
		{Role(""), false},
		{Role("Admin"), false}, // exact match only
	}

	for _, tc := range tests {
		if got := tc.role.CanUpload(); got != tc.want {
			t.Errorf("CanUpload(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestRole_Display(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleAdmin, "Admin"},
		{RoleDoctor, "Doctor"},
		{RolePatient, "Patient"},
		{Role(""), ""},
	}

	for _, tc := range tests {
		if got := tc.role.Display(); got != tc.want {
			t.Errorf("Display(%q) = %q, want %q", tc.role, got, tc.want)
		}
	}
}

func TestChatResult_HasSources(t *testing.T) {
	r := ChatResult{Answer: "X"}
	if r.HasSources() {
		t.Error("HasSources should be false with no sources")
	}

	r.Sources = []string{"a.pdf", "b.pdf"}
	if !r.HasSources() {
		t.Error("HasSources should be true with sources")
	}
}
