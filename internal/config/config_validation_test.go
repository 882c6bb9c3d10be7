// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── validateServer ────────────────────────────────────────────────────────────

func TestValidateServer(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "postgres dsn",
			cfg: StructuredConfig{
				Server:  Server{HTTPAddress: "localhost:9090"},
				Storage: Storage{DB: DB{DSN: "postgres://u:p@localhost/shareit"}},
			},
		},
		{
			name: "sqlite dsn",
			cfg: StructuredConfig{
				Server:  Server{HTTPAddress: ":9090"},
				Storage: Storage{DB: DB{DSN: "sqlite://:memory:"}},
			},
		},
		{
			name:    "missing address",
			cfg:     StructuredConfig{Storage: Storage{DB: DB{DSN: "sqlite://x.db"}}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name: "negative timeout",
			cfg: StructuredConfig{
				Server:  Server{HTTPAddress: ":9090", RequestTimeout: -time.Second},
				Storage: Storage{DB: DB{DSN: "sqlite://x.db"}},
			},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "empty dsn",
			cfg:     StructuredConfig{Server: Server{HTTPAddress: ":9090"}},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "unsupported dsn",
			cfg: StructuredConfig{
				Server:  Server{HTTPAddress: ":9090"},
				Storage: Storage{DB: DB{DSN: "mysql://localhost/shareit"}},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validateServer()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── validateGateway ───────────────────────────────────────────────────────────

func TestValidateGateway(t *testing.T) {
	valid := func() StructuredConfig {
		return StructuredConfig{Gateway: Gateway{
			HTTPAddress:    ":8080",
			ServerURL:      "http://localhost:9090",
			RequestTimeout: time.Second,
		}}
	}

	t.Run("valid", func(t *testing.T) {
		cfg := valid()
		assert.NoError(t, cfg.validateGateway())
	})

	t.Run("missing address", func(t *testing.T) {
		cfg := valid()
		cfg.Gateway.HTTPAddress = ""
		assert.ErrorIs(t, cfg.validateGateway(), ErrInvalidGatewayConfigs)
	})

	t.Run("server url without scheme", func(t *testing.T) {
		cfg := valid()
		cfg.Gateway.ServerURL = "localhost:9090"
		assert.ErrorIs(t, cfg.validateGateway(), ErrInvalidGatewayConfigs)
	})

	t.Run("negative rate", func(t *testing.T) {
		cfg := valid()
		cfg.Gateway.RateLimit = -1
		assert.ErrorIs(t, cfg.validateGateway(), ErrInvalidGatewayConfigs)
	})

	t.Run("burst defaults to one when limiting", func(t *testing.T) {
		cfg := valid()
		cfg.Gateway.RateLimit = 10
		require.NoError(t, cfg.validateGateway())
		assert.Equal(t, 1, cfg.Gateway.RateBurst)
	})
}
