// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"

	"github.com/google/uuid"
)

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time ordered UUIDv7, falling back to a random UUIDv4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// EnsureRequestID returns the request id stored in ctx, generating and
// storing a new one when absent.
func (g *UUIDGenerator) EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id, ok := GetRequestIDFromContext(ctx); ok {
		return ctx, id
	}
	id := g.Generate()
	return WithRequestID(ctx, id), id
}
