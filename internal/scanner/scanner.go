// Package scanner drives the candidate pipeline: acquire a line, derive the
// secret, build both public key encodings, hash them, test the filter, emit
// matches. Acquisition and emission are the only serialized operations, each
// behind its own lock, so the compute path between them never contends.
package scanner

import (
	"bufio"
	"io"
	"runtime"
	"sync"
	"sync/atomic"

	"brainscan/internal/filter"
	"brainscan/internal/keys"
	"brainscan/internal/secret"
)

// Token is the process-wide cancellation cell: set once by the interrupt
// handler, polled non-blockingly by every worker at loop top. Workers always
// finish the candidate in hand before stopping.
type Token struct {
	cancelled atomic.Bool
}

// Cancel requests a graceful drain. Safe to call more than once.
func (t *Token) Cancel() {
	t.cancelled.Store(true)
}

// Cancelled reports whether a drain has been requested.
func (t *Token) Cancelled() bool {
	return t.cancelled.Load()
}

// Config wires the scanner's collaborators. Deriver and Format are resolved
// once before Run; the worker loop never branches on mode or display choice.
type Config struct {
	// Workers is the pool size; zero or negative means the available
	// hardware parallelism (runtime.GOMAXPROCS).
	Workers int

	Deriver secret.Deriver
	Filter  *filter.Filter
	Format  *Formatter
}

// Stats are the aggregate counters, combined via one atomic add per worker at
// exit, never under a per-candidate lock.
type Stats struct {
	Lines   uint64
	Matches uint64
}

// Scanner runs a fixed pool of workers over a shared line stream.
type Scanner struct {
	cfg Config

	inputMu sync.Mutex
	input   *bufio.Scanner

	outputMu sync.Mutex
	output   io.Writer

	lines   atomic.Uint64
	matches atomic.Uint64
}

// New prepares a scanner reading candidates from input and writing match
// lines to output.
func New(input io.Reader, output io.Writer, cfg Config) *Scanner {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	in := bufio.NewScanner(input)
	in.Buffer(make([]byte, 64*1024), 1024*1024)

	return &Scanner{
		cfg:    cfg,
		input:  in,
		output: output,
	}
}

// Run blocks until every worker has exited, on end of input or cancellation,
// and returns the aggregate counters. A read failure ends only the worker
// that observed it.
func (s *Scanner) Run(tok *Token) Stats {
	var wg sync.WaitGroup
	for i := 0; i < s.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.worker(tok)
		}()
	}
	wg.Wait()

	return Stats{
		Lines:   s.lines.Load(),
		Matches: s.matches.Load(),
	}
}

func (s *Scanner) worker(tok *Token) {
	var myLines, myMatches uint64
	defer func() {
		s.lines.Add(myLines)
		s.matches.Add(myMatches)
	}()

	for !tok.Cancelled() {
		candidate, ok := s.nextLine()
		if !ok {
			return
		}
		myLines++

		// Everything from here to the filter tests is thread-local
		sec, err := s.cfg.Deriver(candidate)
		if err != nil {
			continue
		}
		material, err := keys.Build(sec)
		if err != nil {
			// zero / out-of-range secret, skip the candidate
			continue
		}

		uncompressed := keys.Hash160(material.Uncompressed[:])
		compressed := keys.Hash160(material.Compressed[:])

		if s.cfg.Filter.Test(uncompressed) {
			s.emit(s.cfg.Format.Format(candidate, sec, uncompressed, false))
			myMatches++
		}
		if s.cfg.Filter.Test(compressed) {
			s.emit(s.cfg.Format.Format(candidate, sec, compressed, true))
			myMatches++
		}
	}
}

// nextLine is the acquisition critical section. The trailing newline is
// already stripped by the line scanner; the bytes are copied out because the
// scanner reuses its buffer after the lock is released.
func (s *Scanner) nextLine() ([]byte, bool) {
	s.inputMu.Lock()
	defer s.inputMu.Unlock()

	if !s.input.Scan() {
		return nil, false
	}
	return append([]byte(nil), s.input.Bytes()...), true
}

// emit is the emission critical section: the line is fully formatted before
// the lock is taken, so the lock covers only the write.
func (s *Scanner) emit(line string) {
	s.outputMu.Lock()
	io.WriteString(s.output, line)
	s.outputMu.Unlock()
}
