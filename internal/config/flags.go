package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args. Every call uses its
// own flag set, so it is safe to call more than once.
//
// Flags:
//
//	-a server HTTP address in format [host]:[port]
//	-grpc-address server gRPC health address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-gateway-address gateway HTTP address in format [host]:[port]
//	-server-url core server URL used by the gateway
//	-gateway-timeout gateway relay timeout
//	-rate-limit requests per second per client IP at the gateway
//	-rate-burst token bucket size per client IP at the gateway
//	-version application version string
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress, gatewayAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout, gatewayTimeout time.Duration
	var serverURL string
	var rateLimit float64
	var rateBurst int
	var version string

	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc health address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Var(&gatewayAddress, "gateway-address", "Gateway net address host:port")
	fs.StringVar(&serverURL, "server-url", "", "Core server URL for the gateway")
	fs.DurationVar(&gatewayTimeout, "gateway-timeout", 0, "Gateway relay timeout (e.g., 10s)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Gateway requests per second per client IP (0 disables)")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Gateway burst size per client IP")
	fs.StringVar(&version, "version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Gateway: Gateway{
			HTTPAddress:    gatewayAddress.String(),
			ServerURL:      serverURL,
			RequestTimeout: gatewayTimeout,
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) == 0 {
		return "shareit"
	}
	return os.Args[0]
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
