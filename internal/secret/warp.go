package secret

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/crypto/scrypt"
)

// Warpwallet parameters, per the published warpwallet construction:
//
//	s1     = scrypt(passphrase||0x01, salt||0x01, N=2^18, r=8, p=1, 32)
//	s2     = pbkdf2-sha256(passphrase||0x02, salt||0x02, 2^16 iterations, 32)
//	secret = s1 XOR s2
//
// The salt is the warpwallet "email" field, empty unless configured.
const (
	warpScryptN    = 1 << 18
	warpScryptR    = 8
	warpScryptP    = 1
	warpPBKDF2Iter = 1 << 16
)

// Warpwallet returns a deriver that key-stretches candidates with the
// warpwallet construction. The stretch primitives are x/crypto's scrypt and
// pbkdf2; this package only assembles their inputs and combines their output.
func Warpwallet(salt []byte) Deriver {
	return warpwallet(salt, warpScryptN, warpPBKDF2Iter)
}

// warpwallet is split out so tests can run the construction with cheap
// parameters; production callers always go through Warpwallet.
func warpwallet(salt []byte, scryptN, pbkdf2Iter int) Deriver {
	return func(candidate []byte) ([32]byte, error) {
		var secret [32]byte

		s1, err := scrypt.Key(suffixed(candidate, 0x01), suffixed(salt, 0x01),
			scryptN, warpScryptR, warpScryptP, 32)
		if err != nil {
			return secret, fmt.Errorf("scrypt stretch: %w", err)
		}

		s2 := pbkdf2.Key(suffixed(candidate, 0x02), suffixed(salt, 0x02),
			pbkdf2Iter, 32, sha256.New)

		for i := range secret {
			secret[i] = s1[i] ^ s2[i]
		}
		return secret, nil
	}
}

// suffixed copies b with one tag byte appended, leaving the caller's slice
// untouched.
func suffixed(b []byte, tag byte) []byte {
	out := make([]byte, len(b)+1)
	copy(out, b)
	out[len(b)] = tag
	return out
}
