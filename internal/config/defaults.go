// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultTokenIssuer      = "go-contacts"
	defaultTokenDuration    = time.Hour
	defaultPasswordHashCost = 10
	defaultBaseURL          = "http://localhost:8080"
	defaultHTTPAddress      = "localhost:8080"
	defaultAvatarDir        = "public/avatars"
	defaultMaxUploadSize    = 5 << 20
	defaultMailAPIURL       = "https://api.sendgrid.com"
	defaultMailTimeout      = 10 * time.Second
)

// applyDefaults fills every field that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = defaultPasswordHashCost
	}
	if cfg.App.BaseURL == "" {
		cfg.App.BaseURL = defaultBaseURL
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.MaxUploadSize == 0 {
		cfg.Server.MaxUploadSize = defaultMaxUploadSize
	}
	if cfg.Storage.Files.AvatarDir == "" {
		cfg.Storage.Files.AvatarDir = defaultAvatarDir
	}
	if cfg.Mail.APIURL == "" {
		cfg.Mail.APIURL = defaultMailAPIURL
	}
	if cfg.Mail.RequestTimeout == 0 {
		cfg.Mail.RequestTimeout = defaultMailTimeout
	}
}
