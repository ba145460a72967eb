package security

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	h := NewArgon2Hasher(DefaultArgon2Params())

	encoded, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Errorf("encoded hash has wrong prefix: %s", encoded)
	}

	if !h.Verify("correct horse battery staple", encoded) {
		t.Error("correct password should verify")
	}
	if h.Verify("wrong password", encoded) {
		t.Error("wrong password should not verify")
	}
}

func TestHashIsSalted(t *testing.T) {
	h := NewArgon2Hasher(DefaultArgon2Params())

	a, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, err := h.Hash("same password")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password should differ")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	h := NewArgon2Hasher(DefaultArgon2Params())

	for _, encoded := range []string{"", "not a hash", "$argon2id$v=19$broken"} {
		if h.Verify("password", encoded) {
			t.Errorf("Verify accepted malformed hash %q", encoded)
		}
	}
}
