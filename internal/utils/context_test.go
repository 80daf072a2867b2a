// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestRingCtxKey(t *testing.T) {
	if RingCtxKey.String() != "ring" {
		t.Errorf("expected 'ring', got '%s'", RingCtxKey.String())
	}
}

func TestGetRingFromContext_Success(t *testing.T) {
	ctx := WithRing(context.Background(), "Dev")

	ring, ok := GetRingFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if ring != "Dev" {
		t.Errorf("expected ring=Dev, got %s", ring)
	}
}

func TestGetRingFromContext_Missing(t *testing.T) {
	ring, ok := GetRingFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for missing ring")
	}
	if ring != "" {
		t.Errorf("expected empty ring, got %s", ring)
	}
}

func TestGetRingFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), RingCtxKey, 42)

	if _, ok := GetRingFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}
