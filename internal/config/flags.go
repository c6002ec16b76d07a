package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d credential store DSN (postgres or mongodb)
//	-mongo-db mongo database name
//	-redis-address redis address enabling token revocation
//	-nats-url nats url enabling domain events
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration login token lifetime (e.g. "7h")
//	-remember-me-duration remember-me token lifetime (e.g. "720h")
//	-signup-token-duration signup token lifetime (e.g. "1h")
//	-bcrypt-cost bcrypt work factor
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-log-level zerolog level
//	-server-url API address used by the client
//	-local-dsn client SQLite DSN
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var cfg StructuredConfig

	fs := flag.NewFlagSet("fraud-shield", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.MongoDatabase, "mongo-db", "", "Mongo database name")
	fs.StringVar(&cfg.Storage.Redis.Address, "redis-address", "", "Redis address for token revocation")
	fs.StringVar(&cfg.Events.NATSURL, "nats-url", "", "NATS url for domain events")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Login token lifetime (e.g., 7h)")
	fs.DurationVar(&cfg.App.RememberMeTokenDuration, "remember-me-duration", 0, "Remember-me token lifetime (e.g., 720h)")
	fs.DurationVar(&cfg.App.SignupTokenDuration, "signup-token-duration", 0, "Signup token lifetime (e.g., 1h)")
	fs.IntVar(&cfg.App.BcryptCost, "bcrypt-cost", 0, "Bcrypt cost")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "server-url", "", "API server address used by the client")
	fs.StringVar(&cfg.Storage.Local.DSN, "local-dsn", "", "Client SQLite DSN")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()

	return &cfg, nil
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
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

