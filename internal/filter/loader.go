package filter

import (
	"bufio"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/lib/pq"
)

// ParseEntry decodes one address-list line into a hash160: either 40 hex
// characters, or a Base58Check P2PKH address whose embedded hash is
// extracted. The two forms cannot collide on length.
func ParseEntry(line string) ([20]byte, error) {
	var h [20]byte

	if len(line) == 40 {
		if _, err := hex.Decode(h[:], []byte(line)); err != nil {
			return h, fmt.Errorf("decoding hash160 %q: %w", line, err)
		}
		return h, nil
	}

	addr, err := btcutil.DecodeAddress(line, &chaincfg.MainNetParams)
	if err != nil {
		return h, fmt.Errorf("decoding address %q: %w", line, err)
	}
	pkh, ok := addr.(*btcutil.AddressPubKeyHash)
	if !ok {
		return h, fmt.Errorf("address %q is not pay-to-pubkey-hash", line)
	}
	copy(h[:], pkh.Hash160()[:])
	return h, nil
}

// AddFromReader inserts one entry per non-blank line of r and returns the
// number added.
func (f *Filter) AddFromReader(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	added := 0
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h, err := ParseEntry(line)
		if err != nil {
			return added, fmt.Errorf("line %d: %w", lineno, err)
		}
		f.Add(h)
		added++
	}
	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("scanning address list: %w", err)
	}
	return added, nil
}

// AddFromDB inserts every address of a PostgreSQL table (single text column
// named address, hash160 hex or P2PKH form) and returns the number added.
func (f *Filter) AddFromDB(connStr, table string) (int, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return 0, fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(fmt.Sprintf("SELECT address FROM %s", pq.QuoteIdentifier(table)))
	if err != nil {
		return 0, fmt.Errorf("querying %s: %w", table, err)
	}
	defer rows.Close()

	added := 0
	for rows.Next() {
		var entry string
		if err := rows.Scan(&entry); err != nil {
			return added, fmt.Errorf("scanning row: %w", err)
		}
		h, err := ParseEntry(strings.TrimSpace(entry))
		if err != nil {
			return added, err
		}
		f.Add(h)
		added++
	}
	if err := rows.Err(); err != nil {
		return added, fmt.Errorf("iterating rows: %w", err)
	}
	return added, nil
}
