package service

import (
	"errors"
	"testing"
	"time"
)

func TestTokenIssueVerify(t *testing.T) {
	svc, err := NewTokenService("test-secret")
	if err != nil {
		t.Fatalf("token service init failed: %v", err)
	}

	token, err := svc.Issue(42, "a@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	user, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if user.ID != 42 || user.Email != "a@x.com" {
		t.Fatalf("unexpected identity: %+v", user)
	}
}

func TestTokenVerifyTamperedSignature(t *testing.T) {
	svc, _ := NewTokenService("test-secret")
	other, _ := NewTokenService("another-secret")

	token, err := other.Issue(1, "a@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenVerifyGarbage(t *testing.T) {
	svc, _ := NewTokenService("test-secret")
	if _, err := svc.Verify("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenVerifyExpired(t *testing.T) {
	svc, _ := NewTokenService("test-secret")
	svc.now = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }

	token, err := svc.Issue(1, "a@x.com")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestTokenServiceRequiresSecret(t *testing.T) {
	if _, err := NewTokenService(""); !errors.Is(err, ErrMisconfigured) {
		t.Fatalf("expected ErrMisconfigured, got %v", err)
	}
}
