// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		wantCmd  Command
		wantArgs Args
	}{
		{"no args starts TUI", nil, CmdTUI, Args{}},
		{"version word", []string{"version"}, CmdVersion, Args{}},
		{"version flag", []string{"--version"}, CmdVersion, Args{}},
		{"short version", []string{"-v"}, CmdVersion, Args{}},
		{"help word", []string{"help"}, CmdHelp, Args{}},
		{"short help", []string{"-h"}, CmdHelp, Args{}},
		{
			"server override",
			[]string{"--server", "http://10.0.0.5:8000"},
			CmdTUI,
			Args{Server: "http://10.0.0.5:8000"},
		},
		{
			"config override",
			[]string{"--config", "/etc/medico/config.toml"},
			CmdTUI,
			Args{ConfigPath: "/etc/medico/config.toml"},
		},
		{"unknown arg shows help", []string{"frobnicate"}, CmdHelp, Args{}},
		{"dangling server flag shows help", []string{"--server"}, CmdHelp, Args{}},
		{"dangling config flag shows help", []string{"--config"}, CmdHelp, Args{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, args := parse(tc.argv)
			if cmd != tc.wantCmd {
				t.Errorf("command = %v, want %v", cmd, tc.wantCmd)
			}
			if args != tc.wantArgs {
				t.Errorf("args = %+v, want %+v", args, tc.wantArgs)
			}
		})
	}
}
