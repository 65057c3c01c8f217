// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/medico-tui/internal/api"
	"github.com/jeranaias/medico-tui/internal/model"
)

// uploadCmd reads the file and performs the upload request in the
// background. The filename sent to the backend is the base name, matching
// what a browser file picker would submit.
func uploadCmd(client *api.Client, username, password, path string, roleForDoc model.Role) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return uploadResultMsg{Err: fmt.Errorf("could not open file: %w", err)}
		}
		defer f.Close()

		result, err := client.UploadDocument(context.Background(),
			username, password, filepath.Base(path), f, roleForDoc)
		return uploadResultMsg{Result: result, Err: err}
	}
}
