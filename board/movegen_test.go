package board

import (
	"sort"
	"testing"
)

func TestGeneratePseudoLegalMoves(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		variant     Variant
		fen         string
		side        Side
		mode        MoveGenMode
		want        int
		wantContain []string
	}{
		{name: "standard white", variant: VariantStandard, side: SideWhite, mode: ModeAll, want: 20, wantContain: []string{"e2e4", "g1f3", "b1a3"}},
		{name: "standard black", variant: VariantStandard, side: SideBlack, mode: ModeAll, want: 20, wantContain: []string{"e7e5", "b8c6"}},
		{name: "standard violent", variant: VariantStandard, side: SideWhite, mode: ModeViolent, want: 0},
		{name: "eightpiece white", variant: VariantEightpiece, side: SideWhite, mode: ModeAll, want: 18, wantContain: []string{"a2a4", "g1h3"}},
		{name: "eightpiece black", variant: VariantEightpiece, side: SideBlack, mode: ModeAll, want: 18},
		{
			name:        "lancer and jailer",
			variant:     VariantEightpiece,
			fen:         "4k3/8/8/3p4/8/8/8/JLne2K3 w - - 0 1 -",
			side:        SideWhite,
			mode:        ModeAll,
			want:        6 + 7 + 5,
			wantContain: []string{"b1c2", "b1d3", "a1a8", "e1f2"},
		},
		{
			name:        "violent captures",
			variant:     VariantStandard,
			fen:         "4k3/8/8/3p1p2/4P3/8/8/4K3 w - - 0 1",
			side:        SideWhite,
			mode:        ModeViolent,
			want:        2,
			wantContain: []string{"e4d5", "e4f5"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := []BoardOption{WithVariant(tt.variant)}
			if tt.fen != "" {
				opts = append(opts, WithFEN(tt.fen))
			}
			b := mustBoard(t, opts...)
			mvs := b.GeneratePseudoLegalMoves(tt.mode, tt.side)
			if len(mvs) != tt.want {
				t.Errorf("unexpected move count: got=%d want=%d moves=%v", len(mvs), tt.want, mvs)
			}
			got := make(map[string]bool, len(mvs))
			for _, mv := range mvs {
				got[mv.UCI()] = true
			}
			for _, uci := range tt.wantContain {
				if !got[uci] {
					t.Errorf("missing move %s in %v", uci, mvs)
				}
			}
		})
	}
}

func TestGeneratePseudoLegalMovesModes(t *testing.T) {
	t.Parallel()
	fens := []struct {
		variant Variant
		fen     string
	}{
		{variant: VariantStandard, fen: "r3k2r/1bppqppp/p1n2n2/2b1p3/B3P3/2NP1N2/1PP2PPP/R1BQ1RK1 b kq - 2 10"},
		{variant: VariantEightpiece, fen: "j1s1k3/pLsw1pppp1/2p5/3Ln4/4s3/2lse2P2/PPP2PPP/J1S1K2R w - - 0 1 -"},
	}
	for _, tt := range fens {
		tt := tt
		t.Run(tt.fen, func(t *testing.T) {
			t.Parallel()
			b := mustBoard(t, WithVariant(tt.variant), WithFEN(tt.fen))
			for _, s := range []Side{SideWhite, SideBlack} {
				all := b.GeneratePseudoLegalMoves(ModeAll, s)
				split := append(b.GeneratePseudoLegalMoves(ModeViolent, s), b.GeneratePseudoLegalMoves(ModeQuiet, s)...)
				if len(all) != len(split) {
					t.Fatalf("unexpected split count: got=%d want=%d", len(split), len(all))
				}
				sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
				sort.Slice(split, func(i, j int) bool { return split[i] < split[j] })
				for i := range all {
					if all[i] != split[i] {
						t.Fatalf("unexpected move: got=%s want=%s", split[i], all[i])
					}
				}
				for _, mv := range all {
					if b.PieceAt(mv.From()).Side() != s || b.PieceAt(mv.From()) == NoPiece {
						t.Errorf("unexpected origin of %s", mv)
					}
					if to := b.PieceAt(mv.To()); to != NoPiece && to.Side() == s {
						t.Errorf("unexpected own destination of %s", mv)
					}
				}
			}
		})
	}
}

func TestGeneratePseudoLegalMovesStable(t *testing.T) {
	t.Parallel()
	b := mustBoard(t)
	fen := b.FEN()
	first := b.GenerateMoves(ModeAll)
	second := b.GenerateMoves(ModeAll)
	if len(first) != len(second) {
		t.Fatalf("unexpected length: got=%d want=%d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("unexpected move at %d: got=%s want=%s", i, second[i], first[i])
		}
	}
	if b.FEN() != fen {
		t.Errorf("unexpected FEN: got=%s want=%s", b.FEN(), fen)
	}
}
