// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		QuoteID string `json:"quote_id"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Adapter struct {
		InstanceURL    string   `json:"instance_url"`
		ApexPath       string   `json:"apex_path"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Auth struct {
		AccessToken    string   `json:"access_token"`
		LoginURL       string   `json:"login_url"`
		ClientID       string   `json:"client_id"`
		Username       string   `json:"username"`
		PrivateKeyPath string   `json:"private_key_path"`
		TokenDuration  Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Log struct {
		FilePath string `json:"file_path"`
		Level    string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			QuoteID: jsonCfg.App.QuoteID,
			Version: jsonCfg.App.Version,
		},
		Adapter: Adapter{
			InstanceURL:    jsonCfg.Adapter.InstanceURL,
			ApexPath:       jsonCfg.Adapter.ApexPath,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Auth: Auth{
			AccessToken:    jsonCfg.Auth.AccessToken,
			LoginURL:       jsonCfg.Auth.LoginURL,
			ClientID:       jsonCfg.Auth.ClientID,
			Username:       jsonCfg.Auth.Username,
			PrivateKeyPath: jsonCfg.Auth.PrivateKeyPath,
			TokenDuration:  time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Log: Log{
			FilePath: jsonCfg.Log.FilePath,
			Level:    jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
