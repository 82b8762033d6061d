// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// BearerAssertionParams describes the claims of an OAuth 2.0 JWT bearer
// assertion.
type BearerAssertionParams struct {
	// Issuer is the connected app consumer key (iss).
	Issuer string
	// Subject is the username the token is requested for (sub).
	Subject string
	// Audience is the authorization server URL (aud).
	Audience string
	// Duration is added to now to produce the exp claim.
	Duration time.Duration
}

// GenerateBearerAssertion creates an RS256 signed JWT carrying iss, sub, aud
// and exp claims, as required by the JWT bearer token grant.
//
// All params fields and key are required. Returns an error if any of them are
// empty or signing fails.
//
// Example usage:
//
//	assertion, err := utils.GenerateBearerAssertion(params, key, time.Now())
func GenerateBearerAssertion(params BearerAssertionParams, key *rsa.PrivateKey, now time.Time) (string, error) {
	if params.Issuer == "" || params.Subject == "" || params.Audience == "" || params.Duration <= 0 || key == nil {
		return "", errors.New("invalid params for generating JWT bearer assertion")
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    params.Issuer,
		Subject:   params.Subject,
		Audience:  jwt.ClaimStrings{params.Audience},
		ExpiresAt: jwt.NewNumericDate(now.Add(params.Duration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT bearer assertion: %w", err)
	}

	return signed, nil
}

// LoadRSAPrivateKey reads a PEM encoded PKCS#1 or PKCS#8 RSA private key
// from path.
func LoadRSAPrivateKey(path string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(data)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	return key, nil
}
