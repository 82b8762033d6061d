// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_QUOTE_ID": "0Q0000000000001",
		"APP_VERSION":  "1.2.3",

		"ADAPTER_INSTANCE_URL":    "https://acme.my.salesforce.com",
		"ADAPTER_APEX_PATH":       "/services/apexrest/Custom",
		"ADAPTER_REQUEST_TIMEOUT": "10s",

		"AUTH_ACCESS_TOKEN":     "00Dxx!token",
		"AUTH_LOGIN_URL":        "https://test.salesforce.com",
		"AUTH_CLIENT_ID":        "consumer-key",
		"AUTH_USERNAME":         "integration@acme.com",
		"AUTH_PRIVATE_KEY_PATH": "/keys/server.key",
		"AUTH_TOKEN_DURATION":   "2m",

		"LOG_FILE_PATH": "/var/log/quote-sync.log",
		"LOG_LEVEL":     "info",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "0Q0000000000001", cfg.App.QuoteID)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "https://acme.my.salesforce.com", cfg.Adapter.InstanceURL)
	assert.Equal(t, "/services/apexrest/Custom", cfg.Adapter.ApexPath)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "00Dxx!token", cfg.Auth.AccessToken)
	assert.Equal(t, "https://test.salesforce.com", cfg.Auth.LoginURL)
	assert.Equal(t, "consumer-key", cfg.Auth.ClientID)
	assert.Equal(t, "integration@acme.com", cfg.Auth.Username)
	assert.Equal(t, "/keys/server.key", cfg.Auth.PrivateKeyPath)
	assert.Equal(t, 2*time.Minute, cfg.Auth.TokenDuration)

	assert.Equal(t, "/var/log/quote-sync.log", cfg.Log.FilePath)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParseEnv_NoVariables(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.App.QuoteID)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "forever")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}
