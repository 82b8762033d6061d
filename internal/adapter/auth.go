// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/rsa"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/quote-sync/internal/config"
	"github.com/MKhiriev/quote-sync/internal/logger"
	"github.com/MKhiriev/quote-sync/internal/utils"
	"github.com/tidwall/gjson"
)

const (
	tokenEndpoint  = "/services/oauth2/token"
	jwtBearerGrant = "urn:ietf:params:oauth:grant-type:jwt-bearer"
)

type staticTokenSource struct {
	token string
}

// NewStaticTokenSource returns a [TokenSource] that always yields token.
func NewStaticTokenSource(token string) TokenSource {
	return &staticTokenSource{token: strings.TrimSpace(token)}
}

func (s *staticTokenSource) Token(context.Context) (string, error) {
	if s.token == "" {
		return "", fmt.Errorf("%w: empty access token", ErrAuthFailed)
	}
	return s.token, nil
}

func (s *staticTokenSource) Invalidate() bool {
	return false
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	InstanceURL string `json:"instance_url"`
	TokenType   string `json:"token_type"`
}

type jwtBearerTokenSource struct {
	client *utils.HTTPClient
	params utils.BearerAssertionParams
	key    *rsa.PrivateKey
	now    func() time.Time

	mu    sync.Mutex
	token string

	logger *logger.Logger
}

// NewJWTBearerTokenSource returns a [TokenSource] that exchanges an RS256
// signed assertion for an access token at authCfg.LoginURL. The token is
// cached until Invalidate is called.
func NewJWTBearerTokenSource(authCfg config.ClientAuth, key *rsa.PrivateKey, timeout time.Duration, logger *logger.Logger) TokenSource {
	loginURL := strings.TrimRight(authCfg.LoginURL, "/")

	return &jwtBearerTokenSource{
		client: utils.NewHTTPClient(loginURL, timeout),
		params: utils.BearerAssertionParams{
			Issuer:   authCfg.ClientID,
			Subject:  authCfg.Username,
			Audience: loginURL,
			Duration: authCfg.TokenDuration,
		},
		key:    key,
		now:    time.Now,
		logger: logger,
	}
}

func (s *jwtBearerTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" {
		return s.token, nil
	}

	assertion, err := utils.GenerateBearerAssertion(s.params, s.key, s.now())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}

	var result tokenResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type": jwtBearerGrant,
			"assertion":  assertion,
		}).
		SetResult(&result).
		Post(tokenEndpoint)
	if err != nil {
		return "", fmt.Errorf("%w: token request: %v", ErrAuthFailed, err)
	}
	if resp.IsError() {
		desc := gjson.GetBytes(resp.Body(), "error_description").String()
		if desc == "" {
			desc = strings.TrimSpace(string(resp.Body()))
		}
		return "", fmt.Errorf("%w: http %d: %s", ErrAuthFailed, resp.StatusCode(), desc)
	}
	if result.AccessToken == "" {
		return "", fmt.Errorf("%w: token response has no access_token", ErrAuthFailed)
	}

	s.logger.Debug().
		Str("instance_url", result.InstanceURL).
		Str("subject", s.params.Subject).
		Msg("obtained access token")

	s.token = result.AccessToken
	return s.token, nil
}

func (s *jwtBearerTokenSource) Invalidate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	return true
}

func newTokenSource(authCfg config.ClientAuth, timeout time.Duration, logger *logger.Logger) (TokenSource, error) {
	if !authCfg.UsesJWTBearer() {
		return NewStaticTokenSource(authCfg.AccessToken), nil
	}

	key, err := utils.LoadRSAPrivateKey(authCfg.PrivateKeyPath)
	if err != nil {
		return nil, err
	}

	return NewJWTBearerTokenSource(authCfg, key, timeout, logger), nil
}
