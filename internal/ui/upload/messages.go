// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package upload

import "github.com/jeranaias/medico-tui/internal/model"

// uploadResultMsg delivers the outcome of an upload request.
type uploadResultMsg struct {
	Result *model.UploadResult
	Err    error
}
