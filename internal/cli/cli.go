// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
	"runtime"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Server overrides the configured backend base URL
	Server string

	// ConfigPath loads configuration from an explicit file
	ConfigPath string
}

const usageText = `medico - document Q&A assistant

Medico is a terminal client for a role-gated document question-answering
service. Users log in, admins upload reference documents, and everyone can
ask questions answered from the documents their role may read.

Usage:
  medico                     Start the TUI (default)
  medico version, -v         Show version information
  medico help, -h            Show this help

Flags:
  --server URL               Backend base URL (default from config)
  --config PATH              Load configuration from an explicit file

Environment:
  MEDICO_API_URL             Overrides the backend base URL
  MEDICO_THEME               Overrides the UI theme (dark, light, auto)

Configuration:
  ~/.medico/config.toml      Preferred configuration file
  ~/.medico/config.json      JSON fallback
`

// PrintUsage prints the usage text to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}

// PrintVersion prints version information to stdout.
func PrintVersion() {
	fmt.Printf("medico %s\n", Version)
	fmt.Printf("  commit:  %s\n", GitCommit)
	fmt.Printf("  built:   %s\n", BuildDate)
	fmt.Printf("  runtime: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Parse parses os.Args and returns the command to run plus its arguments.
func Parse() (Command, Args) {
	return parse(os.Args[1:])
}

func parse(argv []string) (Command, Args) {
	var args Args
	cmd := CmdTUI

	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch arg {
		case "version", "--version", "-v":
			cmd = CmdVersion
		case "help", "--help", "-h":
			cmd = CmdHelp
		case "--server":
			if i+1 >= len(argv) {
				fmt.Fprintf(os.Stderr, "missing value for %s\n\n", arg)
				cmd = CmdHelp
				break
			}
			i++
			args.Server = argv[i]
		case "--config":
			if i+1 >= len(argv) {
				fmt.Fprintf(os.Stderr, "missing value for %s\n\n", arg)
				cmd = CmdHelp
				break
			}
			i++
			args.ConfigPath = argv[i]
		default:
			// Unknown arguments fall through to help so a typo never
			// silently starts the TUI
			fmt.Fprintf(os.Stderr, "unknown argument: %s\n\n", arg)
			cmd = CmdHelp
		}
	}

	return cmd, args
}
