package crypto

import (
	"errors"
	"strings"
	"testing"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key, err := KeyFromHex(strings.Repeat("ab", 32))
	if err != nil {
		t.Fatalf("KeyFromHex: %v", err)
	}
	return key
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	key := testKey(t)

	plaintext := "1//0refresh-token-from-google"
	encoded, err := Encrypt(key, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if encoded == plaintext {
		t.Fatal("ciphertext equals plaintext")
	}

	got, err := Decrypt(key, encoded)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if got != plaintext {
		t.Fatalf("round trip = %q, want %q", got, plaintext)
	}
}

func TestEncryptProducesUniqueCiphertexts(t *testing.T) {
	key := testKey(t)

	a, err := Encrypt(key, "same input")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	b, err := Encrypt(key, "same input")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if a == b {
		t.Fatal("two encryptions of the same input produced identical output")
	}
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	key := testKey(t)
	other, err := KeyFromHex(strings.Repeat("cd", 32))
	if err != nil {
		t.Fatalf("KeyFromHex: %v", err)
	}

	encoded, err := Encrypt(key, "secret")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if _, err := Decrypt(other, encoded); err == nil {
		t.Fatal("Decrypt with wrong key succeeded")
	}
}

func TestKeyFromHexRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"not hex", "zz"},
		{"too short", strings.Repeat("ab", 16)},
		{"too long", strings.Repeat("ab", 33)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := KeyFromHex(tc.in); err == nil {
				t.Fatalf("KeyFromHex(%q) succeeded", tc.in)
			}
		})
	}
}

func TestDecryptRejectsShortCiphertext(t *testing.T) {
	key := testKey(t)

	// Valid base64 but shorter than a GCM nonce.
	if _, err := Decrypt(key, "AAAA"); !errors.Is(err, ErrCiphertextTooShort) {
		t.Fatalf("err = %v, want ErrCiphertextTooShort", err)
	}
}

func TestHashIsDeterministic(t *testing.T) {
	a := Hash("value")
	b := Hash("value")
	if a != b {
		t.Fatal("Hash is not deterministic")
	}
	if len(a) != 64 {
		t.Fatalf("digest length = %d, want 64 hex chars", len(a))
	}
	if Hash("other") == a {
		t.Fatal("distinct inputs produced the same digest")
	}
}
