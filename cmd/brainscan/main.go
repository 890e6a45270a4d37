// brainscan audits brainwallet-style key derivation: it derives a private key
// from every candidate passphrase on stdin and tests both public key
// encodings against a bloom filter of known address hashes, printing a line
// per hit. Diagnostics go to stderr, matches to stdout.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"brainscan/internal/filter"
	"brainscan/internal/scanner"
	"brainscan/internal/secret"
)

// Build-time selection, the Go analog of the classic compile-time switches.
// Override with, e.g.:
//
//	go build -ldflags "-X main.attackMode=warpwallet -X main.benchmark=true"
var (
	attackMode    = "brainwallet"
	displayFields = "wif,address,compressed"
	warpSalt      = ""
	benchmark     = "false"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "incorrect number of arguments, expected 1, got %d\n", len(os.Args)-1)
		fmt.Fprintf(os.Stderr, "usage:  %s  BLOOM_FILTER  <  WORD_LIST\n", os.Args[0])
		os.Exit(1)
	}

	// Mode and display configuration are resolved exactly once, before any
	// worker starts; the scan loop branches on neither.
	mode, err := secret.ParseMode(attackMode)
	if err != nil {
		log.Fatalf("Bad build configuration: %v", err)
	}
	deriver, err := secret.ForMode(mode, []byte(warpSalt))
	if err != nil {
		log.Fatalf("Bad build configuration: %v", err)
	}
	format, err := scanner.NewFormatter(displayFields)
	if err != nil {
		log.Fatalf("Bad build configuration: %v", err)
	}

	log.Printf("Loading bloom filter %s", os.Args[1])
	start := time.Now()
	f, err := filter.Load(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to load bloom filter: %v", err)
	}
	log.Printf("Bloom filter loaded in %.2f seconds (%d bits)", time.Since(start).Seconds(), f.Bits())

	// Pool size follows GOMAXPROCS, which defaults to the available
	// hardware parallelism and is overridable via the environment.
	workers := runtime.GOMAXPROCS(0)
	log.Printf("Using attack mode %s", mode)
	log.Printf("Spawning %d workers", workers)

	var tok scanner.Token
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-interrupts
		log.Print("Interrupt received, draining workers")
		tok.Cancel()
	}()

	s := scanner.New(os.Stdin, os.Stdout, scanner.Config{
		Workers: workers,
		Deriver: deriver,
		Filter:  f,
		Format:  format,
	})

	start = time.Now()
	stats := s.Run(&tok)

	if benchmark == "true" {
		elapsed := time.Since(start).Seconds()
		log.Printf("Words: %d", stats.Lines)
		log.Printf("Matches: %d", stats.Matches)
		log.Printf("Time: %.1f sec", elapsed)
		if elapsed > 0 {
			log.Printf("Words/sec: %.1f", float64(stats.Lines)/elapsed)
		}
	}
}
