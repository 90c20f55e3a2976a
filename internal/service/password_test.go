package service

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	digest, err := h.Hash("pw1")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	ok, err := h.Verify("pw1", digest)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = h.Verify("wrong", digest)
	if err != nil {
		t.Fatalf("wrong password must not error: %v", err)
	}
	if ok {
		t.Fatal("wrong password verified")
	}
}

func TestPasswordHashFreshSalt(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	first, err := h.Hash("same-plaintext")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := h.Hash("same-plaintext")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same plaintext must differ")
	}
}

func TestPasswordHashEmptyInput(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)
	if _, err := h.Hash(""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPasswordVerifyCorruptDigest(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)
	ok, err := h.Verify("pw1", "not-a-bcrypt-digest")
	if ok {
		t.Fatal("corrupt digest verified")
	}
	if !errors.Is(err, ErrCorruptDigest) {
		t.Fatalf("expected ErrCorruptDigest, got %v", err)
	}
}
