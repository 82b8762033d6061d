// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.App.QuoteID) == "" {
		return fmt.Errorf("%w: quote id is required", ErrInvalidAppConfigs)
	}

	if err := validateBaseURL(cfg.Adapter.InstanceURL); err != nil {
		return fmt.Errorf("%w: instance url: %v", ErrInvalidAdapterConfigs, err)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}
	if !strings.HasPrefix(cfg.Adapter.ApexPath, "/") {
		return fmt.Errorf("%w: apex path must start with /", ErrInvalidAdapterConfigs)
	}

	if cfg.Auth.UsesJWTBearer() {
		if cfg.Auth.ClientID == "" || cfg.Auth.Username == "" || cfg.Auth.PrivateKeyPath == "" {
			return fmt.Errorf("%w: access token or client id, username and private key are required", ErrInvalidAuthConfigs)
		}
		if err := validateBaseURL(cfg.Auth.LoginURL); err != nil {
			return fmt.Errorf("%w: login url: %v", ErrInvalidAuthConfigs, err)
		}
		if cfg.Auth.TokenDuration <= 0 {
			return fmt.Errorf("%w: token duration must be positive", ErrInvalidAuthConfigs)
		}
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}

	return nil
}

func validateBaseURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("address must include host and scheme")
	}

	return nil
}
