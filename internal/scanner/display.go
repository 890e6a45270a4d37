package scanner

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// Field is one column of match output.
type Field int

const (
	FieldSecret     Field = iota // hex of the 32-byte secret
	FieldHash160                 // hex of the 20-byte address hash
	FieldWIF                     // Wallet Import Format secret encoding
	FieldAddress                 // Base58Check pay-to-pubkey-hash address
	FieldCompressed              // 'c' or 'u'
)

var fieldNames = []string{"secret", "hash160", "wif", "address", "compressed"}

// Formatter renders match lines. Fields appear in canonical order regardless
// of how the selection was written; the candidate text is always last;
// columns are colon separated. Formatting is pure and returns an owned
// string, so emission locks never cover it.
type Formatter struct {
	fields []Field
}

// NewFormatter resolves a comma separated field selection over
// secret, hash160, wif, address, compressed. The selection is resolved once
// at startup, never per candidate.
func NewFormatter(selection string) (*Formatter, error) {
	want := make(map[string]bool)
	for _, name := range strings.Split(selection, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		known := false
		for _, f := range fieldNames {
			if name == f {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown display field %q", name)
		}
		want[name] = true
	}

	f := &Formatter{}
	for i, name := range fieldNames {
		if want[name] {
			f.fields = append(f.fields, Field(i))
		}
	}
	return f, nil
}

// Format renders one match line, trailing newline included.
func (f *Formatter) Format(candidate []byte, secret [32]byte, hash [20]byte, compressed bool) string {
	var b strings.Builder
	for _, field := range f.fields {
		switch field {
		case FieldSecret:
			b.WriteString(hex.EncodeToString(secret[:]))
		case FieldHash160:
			b.WriteString(hex.EncodeToString(hash[:]))
		case FieldWIF:
			b.WriteString(wifString(secret, compressed))
		case FieldAddress:
			b.WriteString(addressString(hash))
		case FieldCompressed:
			if compressed {
				b.WriteByte('c')
			} else {
				b.WriteByte('u')
			}
		}
		b.WriteByte(':')
	}
	b.Write(candidate)
	b.WriteByte('\n')
	return b.String()
}

func wifString(secret [32]byte, compressed bool) string {
	priv, _ := btcec.PrivKeyFromBytes(secret[:])
	wif, err := btcutil.NewWIF(priv, &chaincfg.MainNetParams, compressed)
	if err != nil {
		return ""
	}
	return wif.String()
}

func addressString(hash [20]byte) string {
	addr, err := btcutil.NewAddressPubKeyHash(hash[:], &chaincfg.MainNetParams)
	if err != nil {
		return ""
	}
	return addr.EncodeAddress()
}
