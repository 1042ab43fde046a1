package bench

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/eightpiece/board"
)

var ErrInvalidDepth = errors.New("invalid depth")

// Result is the outcome of a perft run. Captures counts leaf moves landing on
// an occupied square.
type Result struct {
	Depth    int
	Nodes    uint64
	Captures uint64
	Elapsed  time.Duration
}

func (r Result) String() string {
	return message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d (%.3fs elapsed)",
			r.Depth, r.Nodes, rate(r.Nodes, r.Elapsed), r.Captures, r.Elapsed.Seconds())
}

func rate[T constraints.Integer](n T, elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	return int(float64(n) / elapsed.Seconds())
}

type perftConfig struct {
	parallel bool
	verbose  bool
	cache    *Cache
	out      chan<- string
}

type PerftOption func(*perftConfig)

// WithParallel explores each root move in its own goroutine.
func WithParallel(parallel bool) PerftOption {
	return func(cfg *perftConfig) {
		cfg.parallel = parallel
	}
}

// WithVerbose reports the subtree size of every root move on out.
func WithVerbose(out chan<- string) PerftOption {
	return func(cfg *perftConfig) {
		cfg.verbose = out != nil
		cfg.out = out
	}
}

func WithCache(c *Cache) PerftOption {
	return func(cfg *perftConfig) {
		cfg.cache = c
	}
}

// Perft counts the leaf positions reachable from b in depth plies of
// pseudo-legal moves. b is not modified.
func Perft(b *board.Board, depth int, opts ...PerftOption) (Result, error) {
	if depth < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidDepth, depth)
	}
	cfg := &perftConfig{}
	for _, f := range opts {
		f(cfg)
	}

	start := time.Now()
	var nodes, captures uint64
	if cfg.parallel {
		nodes, captures = runPerftParallel(b.Clone(), depth, cfg)
	} else {
		nodes, captures = runPerft(b.Clone(), depth, true, cfg)
	}
	return Result{
		Depth:    depth,
		Nodes:    nodes,
		Captures: captures,
		Elapsed:  time.Since(start),
	}, nil
}

// runPerft returns the leaf count and the leaf captures below b.
func runPerft(b *board.Board, d int, root bool, cfg *perftConfig) (uint64, uint64) {
	if d == 0 {
		return 1, 0
	}
	if cfg.cache != nil && !root {
		if nodes, captures, ok := cfg.cache.Get(b, d); ok {
			return nodes, captures
		}
	}

	var nodes, captures uint64
	for _, mv := range b.GenerateMoves(board.ModeAll) {
		var child uint64
		if d == 1 {
			// bulk count the leaves
			child = 1
			if b.PieceAt(mv.To()) != board.NoPiece {
				captures++
			}
		} else {
			bb := b.Clone()
			bb.MakeMove(mv)
			var childCaptures uint64
			child, childCaptures = runPerft(bb, d-1, false, cfg)
			captures += childCaptures
		}
		if cfg.verbose && root {
			cfg.out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		nodes += child
	}
	if cfg.cache != nil {
		cfg.cache.Set(b, d, nodes, captures)
	}
	return nodes, captures
}

func runPerftParallel(b *board.Board, d int, cfg *perftConfig) (uint64, uint64) {
	if d <= 1 {
		return runPerft(b, d, true, cfg)
	}

	var nodes, captures uint64
	var wg sync.WaitGroup
	for _, mv := range b.GenerateMoves(board.ModeAll) {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			bb := b.Clone()
			bb.MakeMove(mv)
			child, childCaptures := runPerft(bb, d-1, false, cfg)
			if cfg.verbose {
				cfg.out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
			}
			atomic.AddUint64(&nodes, child)
			atomic.AddUint64(&captures, childCaptures)
		}()
	}
	wg.Wait()
	return nodes, captures
}
