// Package filter wraps the probabilistic membership structure the scanner
// tests address hashes against. It may yield false positives at the
// configured rate, never false negatives.
package filter

import (
	"bufio"
	"fmt"
	"os"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter is a read-only view once loaded: Test takes no locks and is safe for
// concurrent use across all workers.
type Filter struct {
	bf *bloom.BloomFilter
}

// New creates an empty filter sized for n entries at the given false positive
// rate. Used by the construction tool and tests; the scanner only loads.
func New(n uint, fp float64) *Filter {
	return &Filter{bf: bloom.NewWithEstimates(n, fp)}
}

// Add inserts one address hash. Not safe concurrently with Test.
func (f *Filter) Add(hash [20]byte) {
	f.bf.Add(hash[:])
}

// Test reports whether hash may be a member. Read-only, no side effects.
func (f *Filter) Test(hash [20]byte) bool {
	return f.bf.Test(hash[:])
}

// Bits returns the size of the backing bit array, for diagnostics.
func (f *Filter) Bits() uint {
	return f.bf.Cap()
}

// Load reads a filter previously written by Save.
func Load(path string) (*Filter, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening filter: %w", err)
	}
	defer file.Close()

	bf := &bloom.BloomFilter{}
	if _, err := bf.ReadFrom(bufio.NewReader(file)); err != nil {
		return nil, fmt.Errorf("reading filter %s: %w", path, err)
	}
	return &Filter{bf: bf}, nil
}

// Save writes the filter in its binary format, returning the bytes written.
func (f *Filter) Save(path string) (int64, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating filter file: %w", err)
	}

	w := bufio.NewWriter(file)
	n, err := f.bf.WriteTo(w)
	if err != nil {
		file.Close()
		return n, fmt.Errorf("writing filter: %w", err)
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return n, fmt.Errorf("flushing filter: %w", err)
	}
	if err := file.Close(); err != nil {
		return n, fmt.Errorf("closing filter file: %w", err)
	}
	return n, nil
}
