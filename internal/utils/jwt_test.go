// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func newTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	return key
}

func validParams() BearerAssertionParams {
	return BearerAssertionParams{
		Issuer:   "consumer-key",
		Subject:  "user@acme.com",
		Audience: "https://login.salesforce.com",
		Duration: 3 * time.Minute,
	}
}

func TestGenerateBearerAssertion_Success(t *testing.T) {
	key := newTestKey(t)
	now := time.Now()

	signed, err := GenerateBearerAssertion(validParams(), key, now)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	if err != nil {
		t.Fatalf("expected valid token, got: %v", err)
	}
	if !token.Valid {
		t.Fatal("expected token to be valid")
	}
	if claims.Issuer != "consumer-key" {
		t.Errorf("unexpected issuer %s", claims.Issuer)
	}
	if claims.Subject != "user@acme.com" {
		t.Errorf("unexpected subject %s", claims.Subject)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != "https://login.salesforce.com" {
		t.Errorf("unexpected audience %v", claims.Audience)
	}
	if claims.ExpiresAt.Unix() != now.Add(3*time.Minute).Unix() {
		t.Errorf("unexpected exp %v", claims.ExpiresAt)
	}
}

func TestGenerateBearerAssertion_InvalidParams(t *testing.T) {
	key := newTestKey(t)

	tests := []struct {
		name   string
		mutate func(p *BearerAssertionParams)
		key    *rsa.PrivateKey
	}{
		{"empty issuer", func(p *BearerAssertionParams) { p.Issuer = "" }, key},
		{"empty subject", func(p *BearerAssertionParams) { p.Subject = "" }, key},
		{"empty audience", func(p *BearerAssertionParams) { p.Audience = "" }, key},
		{"zero duration", func(p *BearerAssertionParams) { p.Duration = 0 }, key},
		{"nil key", func(p *BearerAssertionParams) {}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			if _, err := GenerateBearerAssertion(p, tt.key, time.Now()); err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestLoadRSAPrivateKey(t *testing.T) {
	key := newTestKey(t)
	path := filepath.Join(t.TempDir(), "server.key")
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	if err := os.WriteFile(path, pemBytes, 0o600); err != nil {
		t.Fatalf("write key: %v", err)
	}

	loaded, err := LoadRSAPrivateKey(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !loaded.Equal(key) {
		t.Error("loaded key differs from the written one")
	}
}

func TestLoadRSAPrivateKey_Errors(t *testing.T) {
	if _, err := LoadRSAPrivateKey(filepath.Join(t.TempDir(), "missing.key")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "garbage.key")
	if err := os.WriteFile(path, []byte("not a key"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadRSAPrivateKey(path); err == nil {
		t.Error("expected error for garbage key")
	}
}
