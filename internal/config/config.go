// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Defaults applied to the merged configuration when a source leaves the
// field empty.
const (
	DefaultApexPath       = "/services/apexrest/QuoteSync"
	DefaultLoginURL       = "https://login.salesforce.com"
	DefaultRequestTimeout = 30 * time.Second
	DefaultTokenDuration  = 3 * time.Minute
	DefaultLogLevel       = "debug"
)

// StructuredConfig is the top-level configuration container for the
// quote-sync client. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the record the client is opened for and the version label.
	App App `envPrefix:"APP_"`

	// Adapter holds the org endpoint and transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Auth holds the credentials used to obtain a bearer token.
	Auth Auth `envPrefix:"AUTH_"`

	// Log holds the log sink settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// QuoteID is the record id of the Quote the modal operates on. It is the
	// only input of the sync modal and cannot be changed at runtime.
	// Env: APP_QUOTE_ID
	QuoteID string `env:"QUOTE_ID"`

	// Version is the version label shown in the build info overlay.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds the settings of the outbound Apex REST transport.
type Adapter struct {
	// InstanceURL is the base URL of the org (e.g. "https://acme.my.salesforce.com").
	// Env: ADAPTER_INSTANCE_URL
	InstanceURL string `env:"INSTANCE_URL"`

	// ApexPath is the URL mapping of the QuoteSync Apex REST resource.
	// Env: ADAPTER_APEX_PATH
	ApexPath string `env:"APEX_PATH"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Auth holds credentials. Either AccessToken is set, or the JWT bearer
// grant fields (ClientID, Username, PrivateKeyPath) are.
type Auth struct {
	// AccessToken is a ready-to-use bearer token.
	// Env: AUTH_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// LoginURL is the OAuth authorization server used for the JWT bearer
	// grant and the "aud" claim of the assertion.
	// Env: AUTH_LOGIN_URL
	LoginURL string `env:"LOGIN_URL"`

	// ClientID is the consumer key of the connected app ("iss" claim).
	// Env: AUTH_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// Username is the integration user ("sub" claim).
	// Env: AUTH_USERNAME
	Username string `env:"USERNAME"`

	// PrivateKeyPath points to the PEM encoded RSA key that signs the assertion.
	// Env: AUTH_PRIVATE_KEY_PATH
	PrivateKeyPath string `env:"PRIVATE_KEY_PATH"`

	// TokenDuration is the lifetime of the signed assertion.
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Log holds the log sink settings.
type Log struct {
	// FilePath is the file the client writes its JSON log to.
	// Env: LOG_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to fields left empty by every source.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Adapter.ApexPath == "" {
		cfg.Adapter.ApexPath = DefaultApexPath
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Auth.LoginURL == "" {
		cfg.Auth.LoginURL = DefaultLoginURL
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = DefaultTokenDuration
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
}
