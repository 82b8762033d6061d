// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net/url"
	"os"
	"strings"
	"time"
)

// URLValue holds an absolute http(s) URL. It implements the flag.Value
// interface.
type URLValue struct {
	raw string
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-q quote record id
//	-u org instance URL
//	-apex-path Apex REST URL mapping
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-token access token
//	-login-url OAuth login URL
//	-client-id connected app consumer key
//	-username integration username
//	-private-key path to the PEM RSA key used for the JWT bearer grant
//	-token-duration assertion lifetime (e.g., "3m")
//	-log log file path
//	-log-level log level
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("quote-sync", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var instanceURL, loginURL URLValue
	var quoteID, apexPath string
	var accessToken, clientID, username, privateKeyPath string
	var logPath, logLevel string
	var jsonConfigPath string
	var requestTimeout, tokenDuration time.Duration

	fs.StringVar(&quoteID, "q", "", "Quote record id")
	fs.Var(&instanceURL, "u", "Org instance URL")
	fs.StringVar(&apexPath, "apex-path", "", "Apex REST URL mapping")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&accessToken, "token", "", "Access token")
	fs.Var(&loginURL, "login-url", "OAuth login URL")
	fs.StringVar(&clientID, "client-id", "", "Connected app consumer key")
	fs.StringVar(&username, "username", "", "Integration username")
	fs.StringVar(&privateKeyPath, "private-key", "", "PEM RSA private key path")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "JWT assertion lifetime (e.g., 3m)")
	fs.StringVar(&logPath, "log", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			QuoteID: quoteID,
		},
		Adapter: Adapter{
			InstanceURL:    instanceURL.String(),
			ApexPath:       apexPath,
			RequestTimeout: requestTimeout,
		},
		Auth: Auth{
			AccessToken:    accessToken,
			LoginURL:       loginURL.String(),
			ClientID:       clientID,
			Username:       username,
			PrivateKeyPath: privateKeyPath,
			TokenDuration:  tokenDuration,
		},
		Log: Log{
			FilePath: logPath,
			Level:    logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the URL without a trailing slash, or "" when unset.
func (u *URLValue) String() string {
	return u.raw
}

// Set validates that s is an absolute http or https URL with a host.
func (u *URLValue) Set(s string) error {
	parsed, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("url scheme must be http or https")
	}
	if parsed.Host == "" {
		return errors.New("url must include a host")
	}

	u.raw = strings.TrimRight(parsed.String(), "/")
	return nil
}
