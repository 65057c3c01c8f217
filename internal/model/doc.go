// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures shared across the client.
//
// This package defines the core domain types used throughout the
// application for representing roles, chat answers, and upload receipts.
//
// # Key Types
//
//   - Role: role tag returned by the backend (admin, doctor, patient)
//   - ChatResult: answer plus ordered source documents for one query
//   - UploadResult: receipt for a successfully uploaded document
//
// # Usage
//
// Gate a panel on the current role:
//
//	if session.Role.CanUpload() {
//	    // show the upload panel
//	}
package model
