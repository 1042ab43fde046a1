package bench

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/daystram/eightpiece/board"
)

func newBoard(t *testing.T, v board.Variant, fen string) *board.Board {
	t.Helper()
	opts := []board.BoardOption{board.WithVariant(v)}
	if fen != "" {
		opts = append(opts, board.WithFEN(fen))
	}
	b, err := board.NewBoard(opts...)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return b
}

func TestPerft(t *testing.T) {
	t.Parallel()

	tests := []struct {
		variant      board.Variant
		fen          string
		depth        int
		wantNodes    uint64
		wantCaptures uint64
	}{
		{variant: board.VariantStandard, depth: 0, wantNodes: 1},
		{variant: board.VariantStandard, depth: 1, wantNodes: 20},
		{variant: board.VariantStandard, depth: 2, wantNodes: 400},
		{variant: board.VariantStandard, depth: 3, wantNodes: 8_902, wantCaptures: 34},
		{variant: board.VariantEightpiece, depth: 1, wantNodes: 18},
		{variant: board.VariantEightpiece, depth: 2, wantNodes: 324},
		{
			variant:      board.VariantStandard,
			fen:          "4k3/8/8/3p1p2/4P3/8/8/4K3 w - - 0 1",
			depth:        1,
			wantNodes:    5 + 3,
			wantCaptures: 2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("perft(%d): %s %s", tt.depth, tt.variant, tt.fen), func(t *testing.T) {
			t.Parallel()
			b := newBoard(t, tt.variant, tt.fen)
			for _, parallel := range []bool{false, true} {
				res, err := Perft(b, tt.depth, WithParallel(parallel))
				if err != nil {
					t.Fatal("unexpected error:", err)
				}
				if res.Nodes != tt.wantNodes {
					t.Errorf("unexpected nodes (parallel=%v): got=%d want=%d", parallel, res.Nodes, tt.wantNodes)
				}
				if res.Captures != tt.wantCaptures {
					t.Errorf("unexpected captures (parallel=%v): got=%d want=%d", parallel, res.Captures, tt.wantCaptures)
				}
			}
		})
	}
}

func TestPerftParallelMatchesSequential(t *testing.T) {
	t.Parallel()
	fens := []struct {
		variant board.Variant
		fen     string
	}{
		{variant: board.VariantEightpiece},
		{variant: board.VariantEightpiece, fen: "j1s1k3/pLsw1pppp1/2p5/3Ln4/4s3/2lse2P2/PPP2PPP/J1S1K2R w - - 0 1 -"},
		{variant: board.VariantStandard, fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"},
	}
	for _, tt := range fens {
		tt := tt
		t.Run(tt.variant.String()+" "+tt.fen, func(t *testing.T) {
			t.Parallel()
			b := newBoard(t, tt.variant, tt.fen)
			fen := b.FEN()
			seq, err := Perft(b, 3)
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			par, err := Perft(b, 3, WithParallel(true))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			cached, err := Perft(b, 3, WithCache(NewCache(1<<12)))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			for _, got := range []Result{par, cached} {
				if got.Nodes != seq.Nodes || got.Captures != seq.Captures {
					t.Errorf("unexpected result: got=%d/%d want=%d/%d", got.Nodes, got.Captures, seq.Nodes, seq.Captures)
				}
			}
			if b.FEN() != fen {
				t.Errorf("unexpected FEN: got=%s want=%s", b.FEN(), fen)
			}
		})
	}
}

func TestPerftVerbose(t *testing.T) {
	t.Parallel()
	b, err := board.NewBoard(board.WithVariant(board.VariantStandard))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	out := make(chan string, 64)
	res, err := Perft(b, 2, WithVerbose(out))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	close(out)
	var lines []string
	for s := range out {
		lines = append(lines, s)
	}
	if len(lines) != 20 {
		t.Fatalf("unexpected line count: got=%d want=%d", len(lines), 20)
	}
	for _, l := range lines {
		if !strings.HasSuffix(l, ": 20") {
			t.Errorf("unexpected line: %q", l)
		}
	}
	if !strings.Contains(res.String(), "nodes=400") {
		t.Errorf("unexpected summary: %s", res)
	}
}

func TestPerftInvalidDepth(t *testing.T) {
	t.Parallel()
	b, err := board.NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if _, err := Perft(b, -1); !errors.Is(err, ErrInvalidDepth) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrInvalidDepth)
	}
}

func TestCache(t *testing.T) {
	t.Parallel()
	b, err := board.NewBoard()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	c := NewCache(16)
	if _, _, ok := c.Get(b, 2); ok {
		t.Error("unexpected hit on empty cache")
	}
	c.Set(b, 2, 324, 0)
	if nodes, _, ok := c.Get(b, 2); !ok || nodes != 324 {
		t.Errorf("unexpected entry: got=%d,%v want=%d,true", nodes, ok, 324)
	}
	if _, _, ok := c.Get(b, 3); ok {
		t.Error("unexpected hit on other depth")
	}
	hits, misses, writes := c.Stats()
	if hits != 1 || misses != 2 || writes != 1 {
		t.Errorf("unexpected stats: got=%d/%d/%d want=1/2/1", hits, misses, writes)
	}
	c.ResetStats()
	if hits, misses, writes := c.Stats(); hits+misses+writes != 0 {
		t.Errorf("unexpected stats after reset: got=%d/%d/%d", hits, misses, writes)
	}
}

func BenchmarkPerft(b *testing.B) {
	for _, parallel := range []bool{false, true} {
		parallel := parallel
		b.Run(fmt.Sprintf("parallel=%v", parallel), func(b *testing.B) {
			bb, err := board.NewBoard()
			if err != nil {
				b.Fatal("unexpected error:", err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = Perft(bb, 3, WithParallel(parallel))
			}
		})
	}
}
