package scanner

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"brainscan/internal/keys"
)

func TestNewFormatterRejectsUnknownField(t *testing.T) {
	if _, err := NewFormatter("secret,balance"); err == nil {
		t.Error("Expected error for unknown display field")
	}
}

func TestFormatterCanonicalOrder(t *testing.T) {
	// Selection order must not matter; output order is fixed
	f, err := NewFormatter("compressed,hash160,secret")
	if err != nil {
		t.Fatalf("NewFormatter failed: %v", err)
	}

	secret := sha256.Sum256([]byte("password"))
	material, err := keys.Build(secret)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	hash := keys.Hash160(material.Uncompressed[:])

	got := f.Format([]byte("password"), secret, hash, false)
	expected := hex.EncodeToString(secret[:]) + ":" + hex.EncodeToString(hash[:]) + ":u:password\n"
	if got != expected {
		t.Errorf("Format mismatch:\n  got:      %q\n  expected: %q", got, expected)
	}
}

func TestFormatterCandidateOnly(t *testing.T) {
	f, err := NewFormatter("")
	if err != nil {
		t.Fatalf("NewFormatter failed: %v", err)
	}
	if got := f.Format([]byte("just the words"), [32]byte{}, [20]byte{}, true); got != "just the words\n" {
		t.Errorf("Expected bare candidate line, got %q", got)
	}
}

func TestFormatterWIFVectors(t *testing.T) {
	// Canonical WIF encodings of private key 1
	var secret [32]byte
	secret[31] = 0x01

	f, err := NewFormatter("wif")
	if err != nil {
		t.Fatalf("NewFormatter failed: %v", err)
	}

	uncompressed := f.Format([]byte("k1"), secret, [20]byte{}, false)
	if !strings.HasPrefix(uncompressed, "5HpHagT65TZzG1PH3CSu63k8DbpvD8s5ip4nEB3kEsreAnchuDf:") {
		t.Errorf("Unexpected uncompressed WIF line: %q", uncompressed)
	}

	compressed := f.Format([]byte("k1"), secret, [20]byte{}, true)
	if !strings.HasPrefix(compressed, "KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgd9M7rFU73sVHnoWn:") {
		t.Errorf("Unexpected compressed WIF line: %q", compressed)
	}
}

func TestFormatterAddressField(t *testing.T) {
	secret := sha256.Sum256([]byte("correct horse battery staple"))
	material, err := keys.Build(secret)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	hash := keys.Hash160(material.Uncompressed[:])

	addr, err := btcutil.NewAddressPubKeyHash(hash[:], &chaincfg.MainNetParams)
	if err != nil {
		t.Fatalf("Failed to encode address: %v", err)
	}

	f, err := NewFormatter("address,compressed")
	if err != nil {
		t.Fatalf("NewFormatter failed: %v", err)
	}

	got := f.Format([]byte("correct horse battery staple"), secret, hash, false)
	expected := addr.EncodeAddress() + ":u:correct horse battery staple\n"
	if got != expected {
		t.Errorf("Format mismatch:\n  got:      %q\n  expected: %q", got, expected)
	}
}
