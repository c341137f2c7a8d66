package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestComparePassword_Plain(t *testing.T) {
	tests := []struct {
		name     string
		provided string
		expected string
		want     bool
	}{
		{"equal", "s3cret", "s3cret", true},
		{"different", "s3cret", "s3creT", false},
		{"prefix", "s3c", "s3cret", false},
		{"longer", "s3cret-and-more", "s3cret", false},
		{"empty provided", "", "s3cret", false},
		{"unicode", "пароль", "пароль", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComparePassword(tt.provided, tt.expected, "key"); got != tt.want {
				t.Errorf("ComparePassword(%q, %q) = %v, want %v", tt.provided, tt.expected, got, tt.want)
			}
		})
	}
}

func TestComparePassword_KeyDoesNotAffectResult(t *testing.T) {
	for _, key := range []string{"", "a", "a-much-longer-hash-key"} {
		if !ComparePassword("pw", "pw", key) {
			t.Errorf("expected match with key %q", key)
		}
		if ComparePassword("pw", "PW", key) {
			t.Errorf("expected mismatch with key %q", key)
		}
	}
}

func TestComparePassword_Bcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}

	if !ComparePassword("s3cret", string(hash), "key") {
		t.Error("expected bcrypt hash to match its password")
	}
	if ComparePassword("wrong", string(hash), "key") {
		t.Error("expected bcrypt hash to reject a wrong password")
	}
	if ComparePassword(string(hash), string(hash), "key") {
		t.Error("the hash itself must not be accepted as the password")
	}
}

func TestIsBcryptHash(t *testing.T) {
	tests := map[string]bool{
		"$2a$10$abcdefghijklmnopqrstuv": true,
		"$2b$12$abcdefghijklmnopqrstuv": true,
		"$2y$04$abcdefghijklmnopqrstuv": true,
		"plain-password":                false,
		"$1$md5crypt":                   false,
		"":                              false,
	}

	for input, want := range tests {
		if got := IsBcryptHash(input); got != want {
			t.Errorf("IsBcryptHash(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestHashString_Deterministic(t *testing.T) {
	a := HashString("data", "key")
	b := HashString("data", "key")
	c := HashString("data", "other-key")

	if a != b {
		t.Error("expected same digest for same input and key")
	}
	if a == c {
		t.Error("expected different digest for a different key")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}
