// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestGravatarURL_KnownDigest(t *testing.T) {
	// md5("test@example.com")
	want := "https://www.gravatar.com/avatar/55502f40dc8b7c769880b10874abc9d0?s=250&d=identicon"

	if got := GravatarURL("test@example.com"); got != want {
		t.Errorf("GravatarURL mismatch:\n  got:  %s\n  want: %s", got, want)
	}
}

func TestGravatarURL_NormalizesEmail(t *testing.T) {
	if GravatarURL("  Test@Example.COM ") != GravatarURL("test@example.com") {
		t.Error("addresses differing only in case and spaces must share an avatar")
	}
}

func TestGravatarURL_DifferentEmails(t *testing.T) {
	if GravatarURL("a@x.com") == GravatarURL("b@x.com") {
		t.Error("different emails must produce different avatars")
	}
}

func TestNewVerificationToken(t *testing.T) {
	first := NewVerificationToken()
	second := NewVerificationToken()

	if first == "" || strings.TrimSpace(first) != first {
		t.Fatalf("unexpected token %q", first)
	}
	if first == second {
		t.Error("tokens must be unique")
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Errorf("token is not a UUID: %v", err)
	}
}
