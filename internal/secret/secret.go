// Package secret turns candidate passphrases into 256-bit private key secrets.
package secret

import (
	"crypto/sha256"
	"fmt"
)

// Mode selects how a candidate line is turned into a secret. It is fixed for
// the lifetime of a run.
type Mode int

const (
	// ModeBrainwallet hashes the candidate with a single SHA-256.
	ModeBrainwallet Mode = iota

	// ModeWarpwallet stretches the candidate with scrypt and PBKDF2.
	ModeWarpwallet

	// ModeHexwallet packs the candidate as bare ASCII hex, right justified.
	ModeHexwallet
)

// ParseMode resolves a mode label (brainwallet, warpwallet, hexwallet).
func ParseMode(name string) (Mode, error) {
	switch name {
	case "brainwallet":
		return ModeBrainwallet, nil
	case "warpwallet":
		return ModeWarpwallet, nil
	case "hexwallet":
		return ModeHexwallet, nil
	}
	return 0, fmt.Errorf("unknown attack mode %q", name)
}

func (m Mode) String() string {
	switch m {
	case ModeBrainwallet:
		return "Brainwallet"
	case ModeWarpwallet:
		return "Warpwallet"
	case ModeHexwallet:
		return "Hexwallet"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Deriver maps one candidate to its secret. Derivers are pure: the same
// candidate always yields the same secret, across calls and goroutines.
type Deriver func(candidate []byte) ([32]byte, error)

// ForMode returns the deriver for mode, resolved once at startup so the scan
// loop never branches on the mode. The salt is only used by warpwallet.
func ForMode(mode Mode, salt []byte) (Deriver, error) {
	switch mode {
	case ModeBrainwallet:
		return Brainwallet, nil
	case ModeWarpwallet:
		return Warpwallet(salt), nil
	case ModeHexwallet:
		return Hexwallet, nil
	}
	return nil, fmt.Errorf("unknown attack mode %d", int(mode))
}

// Brainwallet derives the secret as SHA256(candidate). Defined for empty
// input (the hash of the empty string).
func Brainwallet(candidate []byte) ([32]byte, error) {
	return sha256.Sum256(candidate), nil
}

// Hexwallet packs an ASCII hex candidate (no 0x prefix) into the secret,
// right justified: short inputs behave as if left-padded with zero nibbles,
// so "1234" and "00001234" derive the same secret. Input beyond 64 characters
// is dropped, not shifted. An odd-length input contributes its unpaired FIRST
// character as the low nibble of the leading consumed byte ("123" == "0123").
// Characters outside [0-9a-fA-F] decode as zero nibbles; derivation never
// fails, it is deterministic garbage-in garbage-out.
func Hexwallet(candidate []byte) ([32]byte, error) {
	var secret [32]byte

	if len(candidate) > 64 {
		candidate = candidate[:64]
	}

	// ceil(len/2) bytes, written starting that far from the end
	off := 32 - (len(candidate)+1)/2

	i := 0
	if len(candidate)%2 == 1 {
		secret[off] = nibble(candidate[0])
		off++
		i = 1
	}
	for ; i < len(candidate); i += 2 {
		secret[off] = nibble(candidate[i])<<4 | nibble(candidate[i+1])
		off++
	}

	return secret, nil
}

func nibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
