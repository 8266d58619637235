package crypto

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_SaltedPerCall(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("p@ssw0rd", MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("p@ssw0rd", MinCost)
	if err != nil {
		t.Fatalf("HashPassword(2): %v", err)
	}
	if len(h1) == 0 || len(h2) == 0 {
		t.Fatalf("empty hash")
	}
	if bytes.Equal(h1, h2) {
		t.Fatalf("two hashes of the same password are equal; salt not random")
	}
	if bytes.Contains(h1, []byte("p@ssw0rd")) {
		t.Fatalf("hash contains plaintext")
	}
}

func TestHashPassword_CostFallback(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("pw", 1)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	cost, err := bcrypt.Cost(h)
	if err != nil {
		t.Fatalf("Cost: %v", err)
	}
	if cost != DefaultCost {
		t.Fatalf("cost=%d, want=%d", cost, DefaultCost)
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	t.Parallel()

	if _, err := HashPassword(strings.Repeat("x", 73), MinCost); !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("want ErrPasswordTooLong, got %v", err)
	}
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	pw := "correct horse battery staple"
	hash, err := HashPassword(pw, MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if !VerifyPassword(hash, pw) {
		t.Fatalf("VerifyPassword: expected true for correct password")
	}
	if VerifyPassword(hash, "wrong") {
		t.Fatalf("VerifyPassword: expected false for wrong password")
	}
	if VerifyPassword(hash, "") {
		t.Fatalf("VerifyPassword: expected false for empty password")
	}
	if VerifyPassword([]byte("not-a-bcrypt-hash"), pw) {
		t.Fatalf("VerifyPassword: expected false for malformed hash")
	}
}

func TestVerifyPassword_RejectsBytesPastLimit(t *testing.T) {
	t.Parallel()

	pw := strings.Repeat("p", MaxPasswordLen)
	hash, err := HashPassword(pw, MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !VerifyPassword(hash, pw) {
		t.Fatalf("VerifyPassword: expected true at exactly %d bytes", MaxPasswordLen)
	}
	if VerifyPassword(hash, pw+"WRONG-SUFFIX") {
		t.Fatalf("VerifyPassword: password sharing only the first %d bytes must not match", MaxPasswordLen)
	}
}
