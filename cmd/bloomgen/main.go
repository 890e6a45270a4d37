// bloomgen builds the bloom filter file that brainscan loads. Entries come
// from a line file (hash160 hex or P2PKH addresses) or from a PostgreSQL
// address table.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"time"

	"brainscan/internal/filter"
)

var (
	inPath  = flag.String("in", "", "Path to entry file: hash160 hex or P2PKH address per line")
	connStr = flag.String("db", "", "PostgreSQL connection string (alternative to -in)")
	table   = flag.String("table", "btc_addresses", "Address table name for -db")
	outPath = flag.String("out", "filter.blf", "Output filter path")
	entries = flag.Uint("n", 0, "Expected entry count (required with -db, counted from -in otherwise)")
	fpRate  = flag.Float64("fp", 1e-9, "Target false positive rate")
)

func main() {
	flag.Parse()

	if (*inPath == "") == (*connStr == "") {
		log.Fatal("Specify exactly one of -in <file> or -db <connection-string>")
	}

	capacity := *entries
	if capacity == 0 {
		if *connStr != "" {
			log.Fatal("-db requires -n, the expected entry count")
		}
		n, err := countLines(*inPath)
		if err != nil {
			log.Fatalf("Failed to count entries: %v", err)
		}
		capacity = n
	}

	f := filter.New(capacity, *fpRate)

	start := time.Now()
	var added int
	var err error

	if *inPath != "" {
		file, openErr := os.Open(*inPath)
		if openErr != nil {
			log.Fatalf("Failed to open %s: %v", *inPath, openErr)
		}
		added, err = f.AddFromReader(bufio.NewReader(file))
		file.Close()
	} else {
		added, err = f.AddFromDB(*connStr, *table)
	}
	if err != nil {
		log.Fatalf("Failed to load entries: %v", err)
	}
	log.Printf("Added %d entries in %v", added, time.Since(start).Round(time.Millisecond))

	written, err := f.Save(*outPath)
	if err != nil {
		log.Fatalf("Failed to write %s: %v", *outPath, err)
	}
	log.Printf("Wrote %s: %d bytes, %d filter bits, target fp rate %g",
		*outPath, written, f.Bits(), *fpRate)
}

// countLines pre-scans the entry file so the filter can be sized before
// insertion, blank lines excluded.
func countLines(path string) (uint, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var n uint
	for scanner.Scan() {
		if len(scanner.Bytes()) > 0 {
			n++
		}
	}
	return n, scanner.Err()
}
