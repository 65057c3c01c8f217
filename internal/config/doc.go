// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// the medico client.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.medico/config.toml
//   - ~/.medico/config.json
//   - Built-in defaults
//
// # Environment Variables
//
//   - MEDICO_API_URL: overrides api.base_url
//   - MEDICO_TIMEOUT: overrides api.timeout_secs
//   - MEDICO_THEME: overrides ui.theme
//
// # Usage
//
//	cfg := config.Global()
//	client := api.NewClientWithConfig(&api.ClientConfig{BaseURL: cfg.API.BaseURL})
package config
