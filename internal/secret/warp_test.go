package secret

import (
	"crypto/sha256"
	"testing"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// Full-cost warpwallet parameters (N=2^18) are too expensive for unit tests,
// so the construction is exercised with reduced cost and checked against the
// primitives composed by hand.
func TestWarpwalletConstruction(t *testing.T) {
	const scryptN, pbkdf2Iter = 1 << 4, 1 << 4

	candidate := []byte("hunter2")
	salt := []byte("user@example.com")

	deriver := warpwallet(salt, scryptN, pbkdf2Iter)
	secret, err := deriver(candidate)
	if err != nil {
		t.Fatalf("Warpwallet derivation failed: %v", err)
	}

	s1, err := scrypt.Key(append([]byte("hunter2"), 0x01), append([]byte("user@example.com"), 0x01),
		scryptN, warpScryptR, warpScryptP, 32)
	if err != nil {
		t.Fatalf("Reference scrypt failed: %v", err)
	}
	s2 := pbkdf2.Key(append([]byte("hunter2"), 0x02), append([]byte("user@example.com"), 0x02),
		pbkdf2Iter, 32, sha256.New)

	for i := range secret {
		if secret[i] != s1[i]^s2[i] {
			t.Fatalf("Byte %d: got %02x, expected %02x", i, secret[i], s1[i]^s2[i])
		}
	}
}

func TestWarpwalletDeterminism(t *testing.T) {
	deriver := warpwallet([]byte("salt"), 1<<4, 1<<4)

	first, err := deriver([]byte("passphrase"))
	if err != nil {
		t.Fatalf("Derivation failed: %v", err)
	}
	second, err := deriver([]byte("passphrase"))
	if err != nil {
		t.Fatalf("Derivation failed: %v", err)
	}
	if first != second {
		t.Errorf("Repeated derivations disagree:\n  %x\n  %x", first, second)
	}
}

func TestWarpwalletSaltChangesSecret(t *testing.T) {
	a, _ := warpwallet([]byte("alice@example.com"), 1<<4, 1<<4)([]byte("passphrase"))
	b, _ := warpwallet([]byte("bob@example.com"), 1<<4, 1<<4)([]byte("passphrase"))
	if a == b {
		t.Error("Different salts should derive different secrets")
	}
}

func TestWarpwalletDoesNotMutateInputs(t *testing.T) {
	candidate := []byte("passphrase")
	salt := []byte("salt")

	if _, err := warpwallet(salt, 1<<4, 1<<4)(candidate); err != nil {
		t.Fatalf("Derivation failed: %v", err)
	}

	if string(candidate) != "passphrase" || string(salt) != "salt" {
		t.Error("Derivation mutated its inputs")
	}
}
