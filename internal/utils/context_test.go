// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-contacts/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUserCtxKey(t *testing.T) {
	if UserCtxKey.String() != "user" {
		t.Errorf("expected 'user', got '%s'", UserCtxKey.String())
	}
}

func TestGetUserFromContext_Success(t *testing.T) {
	user := models.User{UserID: "u-1", Email: "a@x.com"}
	ctx := WithUser(context.Background(), user)

	got, ok := GetUserFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got.UserID != "u-1" || got.Email != "a@x.com" {
		t.Errorf("unexpected user in context: %+v", got)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	got, ok := GetUserFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if got.UserID != "" {
		t.Errorf("expected zero user, got %+v", got)
	}
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-user")

	_, ok := GetUserFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetUserFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), models.User{UserID: "u-2"})

	_, ok := GetUserFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
