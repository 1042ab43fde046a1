package board

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/daystram/eightpiece/position"
)

func TestMagicSpace(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		entries [TotalCells]MagicEntry
		want    int
	}{
		{name: "bishop", entries: BishopMagics, want: 18976},
		{name: "rook", entries: RookMagics, want: 387072},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := MagicSpace(tt.entries); got != tt.want {
				t.Errorf("unexpected magic space: got=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestBakedMagics(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		deltas  []position.Delta
		entries [TotalCells]MagicEntry
	}{
		{name: "bishop", deltas: DeltasBishop, entries: BishopMagics},
		{name: "rook", deltas: DeltasRook, entries: RookMagics},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for pos := position.Pos(0); pos < TotalCells; pos++ {
				mask := RelevantMask(pos, tt.deltas)
				if _, err := buildMagicAttacks(pos, tt.deltas, mask, tt.entries[pos]); err != nil {
					t.Errorf("unexpected error on %s: %v", pos, err)
				}
			}
		})
	}
}

func TestMagicLookup(t *testing.T) {
	t.Parallel()
	tables := DefaultTables()
	r := NewPseudoRand(42)
	for i := 0; i < 2000; i++ {
		occupied := Bitmap(r.Uint64() & r.Uint64())
		pos := position.Pos(r.Uint64() % uint64(TotalCells))
		if got, want := tables.BishopAttack(pos, occupied), SlidingAttack(pos, DeltasBishop, occupied); got != want {
			t.Fatalf("unexpected bishop attack on %s occ=%s: got=%s want=%s", pos, occupied, got, want)
		}
		if got, want := tables.RookAttack(pos, occupied), SlidingAttack(pos, DeltasRook, occupied); got != want {
			t.Fatalf("unexpected rook attack on %s occ=%s: got=%s want=%s", pos, occupied, got, want)
		}
	}
}

func TestSearchMagicsBishop(t *testing.T) {
	t.Parallel()
	entries, err := SearchMagics(DeltasBishop, DefaultBishopSearch, nil)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		e := entries[pos]
		if e.Shift < DefaultBishopSearch.MinShift || e.Shift > DefaultBishopSearch.MaxShift {
			t.Errorf("unexpected shift on %s: got=%d", pos, e.Shift)
		}
		if _, err := buildMagicAttacks(pos, DeltasBishop, RelevantMask(pos, DeltasBishop), e); err != nil {
			t.Errorf("unexpected error on %s: %v", pos, err)
		}
	}
	if got, want := entries[position.A1].Shift, uint8(6); got != want {
		t.Errorf("unexpected a1 shift: got=%d want=%d", got, want)
	}

	again, err := SearchMagics(DeltasBishop, DefaultBishopSearch, nil)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if again != entries {
		t.Error("unexpected difference between identical searches")
	}
}

func TestMagicSearchFind(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		pos     position.Pos
		deltas  []position.Delta
		search  MagicSearch
		want    uint8
		wantErr error
	}{
		{name: "rook a1", pos: position.A1, deltas: DeltasRook, search: DefaultRookSearch, want: 13},
		{name: "rook d4", pos: position.D4, deltas: DeltasRook, search: DefaultRookSearch, want: 12},
		{name: "rook h8", pos: position.H8, deltas: DeltasRook, search: DefaultRookSearch, want: 14},
		{name: "bishop d4", pos: position.D4, deltas: DeltasBishop, search: DefaultBishopSearch, want: 10},
		{
			name:    "too narrow",
			pos:     position.A1,
			deltas:  DeltasRook,
			search:  MagicSearch{MinShift: 1, MaxShift: 2, MaxTries: 16, Seed: 1},
			wantErr: ErrMagicNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, err := tt.search.Find(tt.pos, tt.deltas)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if e.Shift != tt.want {
				t.Errorf("unexpected shift: got=%d want=%d", e.Shift, tt.want)
			}
			if _, err := buildMagicAttacks(tt.pos, tt.deltas, RelevantMask(tt.pos, tt.deltas), e); err != nil {
				t.Error("unexpected error:", err)
			}
		})
	}
}

func TestNewTablesCollision(t *testing.T) {
	t.Parallel()
	var broken [TotalCells]MagicEntry
	for pos := range broken {
		broken[pos] = MagicEntry{Magic: 0, Shift: 1}
	}
	_, err := NewTables(WithMagicEntries(broken, RookMagics))
	if !errors.Is(err, ErrMagicCollision) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrMagicCollision)
	}
}

func TestNewTablesWithSearch(t *testing.T) {
	t.Parallel()
	var logged atomic.Int64
	search := DefaultBishopSearch
	tables, err := NewTables(WithMagicSearch(&search, nil), WithLogger(func(...any) { logged.Add(1) }))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	bishop, rook := tables.MagicSpace()
	if rook != 387072 {
		t.Errorf("unexpected rook space: got=%d want=%d", rook, 387072)
	}
	if bishop == 0 {
		t.Error("unexpected empty bishop space")
	}
	if got, want := tables.BishopAttack(position.A1, Cell(position.D4)), cells(t, "b2", "c3", "d4"); got != want {
		t.Errorf("unexpected attack: got=%s want=%s", got, want)
	}
	if logged.Load() == 0 {
		t.Error("expected logger calls")
	}
}
