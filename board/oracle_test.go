package board

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/daystram/eightpiece/position"
)

// toLERF converts a bitmap to little-endian rank-file order, a1 being bit 0.
func toLERF(bm Bitmap) uint64 {
	var out uint64
	for _, pos := range bm.Positions() {
		out |= 1 << uint(pos)
	}
	return out
}

func TestSliderAttacksAgainstDragontooth(t *testing.T) {
	t.Parallel()
	tables := DefaultTables()
	r := NewPseudoRand(0xC0FFEE)
	for i := 0; i < 4000; i++ {
		occupied := Bitmap(r.Uint64() & r.Uint64())
		for pos := position.Pos(0); pos < TotalCells; pos += 7 {
			occ := occupied &^ Cell(pos)
			if got, want := toLERF(tables.RookAttack(pos, occ)), dragontoothmg.CalculateRookMoveBitboard(uint8(pos), toLERF(occ)); got != want {
				t.Fatalf("unexpected rook attack on %s: got=%#016x want=%#016x", pos, got, want)
			}
			if got, want := toLERF(tables.BishopAttack(pos, occ)), dragontoothmg.CalculateBishopMoveBitboard(uint8(pos), toLERF(occ)); got != want {
				t.Fatalf("unexpected bishop attack on %s: got=%#016x want=%#016x", pos, got, want)
			}
		}
	}
}

func TestStartPositionAgainstDragontooth(t *testing.T) {
	t.Parallel()
	b := mustBoard(t, WithVariant(VariantStandard))
	ref := dragontoothmg.ParseFen(VariantStandard.StartingFEN())
	want := ref.GenerateLegalMoves()
	got := b.GenerateMoves(ModeAll)
	if len(got) != len(want) {
		t.Fatalf("unexpected move count: got=%d want=%d", len(got), len(want))
	}
	ucis := make(map[string]bool, len(want))
	for _, mv := range want {
		ucis[mv.String()] = true
	}
	for _, mv := range got {
		if !ucis[mv.UCI()] {
			t.Errorf("unexpected move %s", mv)
		}
	}
}
