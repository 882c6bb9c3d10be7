// Package config provides configuration loading, merging, and validation
// facilities for the ShareIt server and gateway binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (loaded into the environment, never overriding it)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetServerConfig] for the core server and
// [GetGatewayConfig] for the gateway.
package config
