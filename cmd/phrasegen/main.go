// phrasegen emits candidate streams for piping into brainscan: random BIP39
// mnemonics by default, or the hex of each mnemonic's m/0 child private key
// with -derive (for hexwallet-mode audits).
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"
)

var (
	count  = flag.Int("count", 1000, "Number of candidate lines to emit (0 = unlimited)")
	bits   = flag.Int("bits", 128, "Mnemonic entropy bits: 128 (12 words) or 256 (24 words)")
	derive = flag.Bool("derive", false, "Emit the hex m/0 child private key instead of the mnemonic")
)

func main() {
	flag.Parse()

	if *bits != 128 && *bits != 256 {
		log.Fatal("Entropy bits must be 128 (12 words) or 256 (24 words)")
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for i := 0; *count == 0 || i < *count; i++ {
		entropy, err := bip39.NewEntropy(*bits)
		if err != nil {
			log.Fatalf("Failed to generate entropy: %v", err)
		}
		mnemonic, err := bip39.NewMnemonic(entropy)
		if err != nil {
			log.Fatalf("Failed to create mnemonic: %v", err)
		}

		if !*derive {
			fmt.Fprintln(w, mnemonic)
			continue
		}

		seed := bip39.NewSeed(mnemonic, "")
		masterKey, err := bip32.NewMasterKey(seed)
		if err != nil {
			log.Fatalf("Failed to create master key: %v", err)
		}
		childKey, err := masterKey.NewChildKey(0)
		if err != nil {
			log.Fatalf("Failed to derive child key: %v", err)
		}
		fmt.Fprintln(w, hex.EncodeToString(childKey.Key))
	}
}
