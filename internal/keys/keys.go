// Package keys builds the public key encodings and address hashes for a
// derived secret.
package keys

import (
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
)

// ErrSecretOutOfRange marks a secret that is zero or not below the secp256k1
// group order. Candidates deriving such a secret are skipped, not fatal.
var ErrSecretOutOfRange = errors.New("secret is zero or exceeds the curve order")

// Material holds both serializations of one public key. Compressed shares the
// X coordinate bytes of Uncompressed.
type Material struct {
	Uncompressed [65]byte // 0x04 || X || Y
	Compressed   [33]byte // (0x02|0x03) || X
}

// Build runs one EC multiplication for secret and assembles both encodings.
// The compressed form is not recomputed: its X bytes are copied from the
// uncompressed result and its tag takes the parity of the uncompressed Y
// coordinate's last byte.
func Build(secret [32]byte) (Material, error) {
	var m Material

	var scalar btcec.ModNScalar
	if overflow := scalar.SetBytes(&secret); overflow != 0 || scalar.IsZero() {
		return m, ErrSecretOutOfRange
	}

	_, pub := btcec.PrivKeyFromBytes(secret[:])
	copy(m.Uncompressed[:], pub.SerializeUncompressed())

	m.Compressed[0] = 0x02 | (m.Uncompressed[64] & 0x01)
	copy(m.Compressed[1:], m.Uncompressed[1:33])

	return m, nil
}

// Hash160 computes RIPEMD160(SHA256(encoding)), the 20-byte address
// fingerprint tested against the membership filter.
func Hash160(encoding []byte) [20]byte {
	var h [20]byte
	copy(h[:], btcutil.Hash160(encoding))
	return h
}
