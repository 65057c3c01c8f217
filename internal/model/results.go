// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// RESULT VALUES
// =============================================================================

// ChatResult is the outcome of one chat query: the answer text and the
// ordered list of source documents it was grounded on. It lives only in the
// chat view and is replaced wholesale on every query.
type ChatResult struct {
	Answer  string
	Sources []string
}

// HasSources reports whether a sources panel should be rendered at all.
// A response that omits sources renders no panel, not an empty one.
func (r ChatResult) HasSources() bool {
	return len(r.Sources) > 0
}

// UploadResult is the receipt for a successfully uploaded document.
type UploadResult struct {
	DocID        string
	AccessibleTo Role
}
