// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// QuoteID is the record the sync modal is opened for.
	QuoteID string
	// Version is the configured version label.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// InstanceURL is the org base URL.
	InstanceURL string
	// ApexPath is the URL mapping of the Apex REST resource.
	ApexPath string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientAuth holds the credentials used by the adapter.
type ClientAuth struct {
	AccessToken    string
	LoginURL       string
	ClientID       string
	Username       string
	PrivateKeyPath string
	TokenDuration  time.Duration
}

// UsesJWTBearer reports whether the token must be obtained through the JWT
// bearer grant instead of a static access token.
func (a ClientAuth) UsesJWTBearer() bool {
	return a.AccessToken == ""
}

// ClientLog holds the log sink settings.
type ClientLog struct {
	FilePath string
	Level    string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the org endpoint and timeouts.
	Adapter ClientAdapter
	// Auth contains credentials.
	Auth ClientAuth
	// Log contains logging settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			QuoteID: cfg.App.QuoteID,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			InstanceURL:    cfg.Adapter.InstanceURL,
			ApexPath:       cfg.Adapter.ApexPath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Auth: ClientAuth{
			AccessToken:    cfg.Auth.AccessToken,
			LoginURL:       cfg.Auth.LoginURL,
			ClientID:       cfg.Auth.ClientID,
			Username:       cfg.Auth.Username,
			PrivateKeyPath: cfg.Auth.PrivateKeyPath,
			TokenDuration:  cfg.Auth.TokenDuration,
		},
		Log: ClientLog{
			FilePath: cfg.Log.FilePath,
			Level:    cfg.Log.Level,
		},
	}
}
