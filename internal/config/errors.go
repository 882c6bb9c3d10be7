package config

import "errors"

// Validation errors returned by [GetServerConfig] and [GetGatewayConfig]
// when required configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or an unsupported scheme).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid core server settings
	// (for example, a missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidGatewayConfigs indicates invalid gateway settings
	// (for example, a missing core server URL or a negative rate limit).
	ErrInvalidGatewayConfigs = errors.New("invalid gateway configuration")
)
