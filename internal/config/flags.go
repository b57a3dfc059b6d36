package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-password-hash-cost bcrypt cost factor
//	-base-url public URL used in verification links
//	-avatar-dir directory for resized avatars
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-upload-size avatar upload limit in bytes
//	-mail-api-key mail provider API key
//	-mail-api-url mail provider base URL
//	-mail-from sender address
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var passwordHashCost int
	var baseURL string
	var avatarDir string
	var requestTimeout time.Duration
	var maxUploadSize int64
	var mailAPIKey string
	var mailAPIURL string
	var mailFrom string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.IntVar(&passwordHashCost, "password-hash-cost", 0, "Bcrypt cost factor")
	fs.StringVar(&baseURL, "base-url", "", "Public base URL")
	fs.StringVar(&avatarDir, "avatar-dir", "", "Avatar directory")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Avatar upload limit in bytes")
	fs.StringVar(&mailAPIKey, "mail-api-key", "", "Mail provider API key")
	fs.StringVar(&mailAPIURL, "mail-api-url", "", "Mail provider base URL")
	fs.StringVar(&mailFrom, "mail-from", "", "Sender address")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:     tokenSignKey,
			TokenIssuer:      tokenIssuer,
			TokenDuration:    tokenDuration,
			PasswordHashCost: passwordHashCost,
			BaseURL:          baseURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				AvatarDir: avatarDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxUploadSize:  maxUploadSize,
		},
		Mail: Mail{
			APIKey: mailAPIKey,
			APIURL: mailAPIURL,
			From:   mailFrom,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be within [1, 65535]")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
