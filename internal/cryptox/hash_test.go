package cryptox

import (
	"encoding/hex"
	"testing"
)

func TestHashPassword_Deterministic(t *testing.T) {
	h1 := HashPassword("testpassword")
	h2 := HashPassword("testpassword")

	if h1 != h2 {
		t.Errorf("expected same result for same inputs, got %s and %s", h1, h2)
	}
}

func TestHashPassword_KnownVector(t *testing.T) {
	// snapshot of sha256("test")
	expected := "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"
	if got := HashPassword("test"); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestHashPassword_EmptyInput(t *testing.T) {
	// sha256 of the empty string is still a full-length digest
	expected := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := HashPassword(""); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestHashPassword_DifferentInputs(t *testing.T) {
	h1 := HashPassword("password1")
	h2 := HashPassword("password2")

	if h1 == h2 {
		t.Errorf("expected different results for different inputs, got same")
	}
}

func TestHashPassword_LengthAndHex(t *testing.T) {
	inputs := []string{"", "a", "alice123", "пароль", "a long passphrase with spaces"}
	for _, in := range inputs {
		got := HashPassword(in)
		if len(got) != HashLength {
			t.Fatalf("HashPassword(%q): expected length %d, got %d", in, HashLength, len(got))
		}
		if _, err := hex.DecodeString(got); err != nil {
			t.Fatalf("HashPassword(%q) is not valid hex: %v", in, err)
		}
	}
}
