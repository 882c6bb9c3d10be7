// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const defaultGatewayTimeout = 10 * time.Second

var supportedDSNPrefixes = []string{"postgres://", "postgresql://", "sqlite://", "file:"}

// validateServer checks the settings the core server cannot start without:
// an HTTP address and a DSN with a supported scheme.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if !hasSupportedScheme(cfg.Storage.DB.DSN) {
		return fmt.Errorf("%w: unsupported dsn %q", ErrInvalidStorageConfigs, cfg.Storage.DB.DSN)
	}

	return nil
}

func (cfg *StructuredConfig) validateGateway() error {
	if cfg.Gateway.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidGatewayConfigs)
	}

	u, err := url.Parse(cfg.Gateway.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: invalid server url %q", ErrInvalidGatewayConfigs, cfg.Gateway.ServerURL)
	}

	if cfg.Gateway.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidGatewayConfigs)
	}

	if cfg.Gateway.RateLimit < 0 || cfg.Gateway.RateBurst < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidGatewayConfigs)
	}

	if cfg.Gateway.RateLimit > 0 && cfg.Gateway.RateBurst == 0 {
		cfg.Gateway.RateBurst = 1
	}

	return nil
}

func hasSupportedScheme(dsn string) bool {
	for _, prefix := range supportedDSNPrefixes {
		if strings.HasPrefix(dsn, prefix) {
			return true
		}
	}
	return false
}
