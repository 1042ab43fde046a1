package position

import (
	"errors"
	"testing"
)

func TestNewPosFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Pos
		wantErr  error
	}{
		{
			name:     "ok 1",
			notation: "e4",
			want:     Pos(28),
			wantErr:  nil,
		},
		{
			name:     "ok 2",
			notation: "h8",
			want:     Pos(63),
			wantErr:  nil,
		},
		{
			name:     "ok 3",
			notation: "a1",
			want:     Pos(0),
			wantErr:  nil,
		},
		{
			name:     "ok 4",
			notation: "d3",
			want:     D3,
			wantErr:  nil,
		},
		{
			name:     "bad 1",
			notation: "",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 2",
			notation: "a",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 3",
			notation: "4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 4",
			notation: "m4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 5",
			notation: "e9",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 6",
			notation: "e0",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 7",
			notation: "E4",
			wantErr:  ErrInvalidNotation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewPosFromNotation(tt.notation)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestNotationRoundTrip(t *testing.T) {
	t.Parallel()
	for p := Pos(0); p < TotalCells; p++ {
		got, err := NewPosFromNotation(p.Notation())
		if err != nil {
			t.Fatalf("unexpected error for %d: %v", p, err)
		}
		if got != p {
			t.Errorf("unexpected round trip: got=%d want=%d", got, p)
		}
		if NewPos(p.Rank(), p.File()) != p {
			t.Errorf("unexpected rank/file split for %d: rank=%d file=%d", p, p.Rank(), p.File())
		}
	}
	if PosNone.Notation() != "" {
		t.Errorf("unexpected notation for PosNone: %q", PosNone.Notation())
	}
}

func TestNotationComponents(t *testing.T) {
	t.Parallel()
	tests := []struct {
		v     Pos
		wantX string
		wantY string
	}{
		{v: 0, wantX: "a", wantY: "1"},
		{v: 4, wantX: "e", wantY: "5"},
		{v: LastFile, wantX: "h", wantY: "8"},
		{v: -1, wantX: "", wantY: ""},
		{v: MaxComponentScalar, wantX: "", wantY: ""},
	}
	for _, tt := range tests {
		if got := tt.v.NotationComponentX(); got != tt.wantX {
			t.Errorf("unexpected file notation of %d: got=%q want=%q", tt.v, got, tt.wantX)
		}
		if got := tt.v.NotationComponentY(); got != tt.wantY {
			t.Errorf("unexpected rank notation of %d: got=%q want=%q", tt.v, got, tt.wantY)
		}
	}
	for p := Pos(0); p < TotalCells; p++ {
		if got, want := p.File().NotationComponentX()+p.Rank().NotationComponentY(), p.Notation(); got != want {
			t.Errorf("unexpected notation of %d: got=%s want=%s", p, got, want)
		}
	}
}

func TestApply(t *testing.T) {
	t.Parallel()
	tests := []struct {
		from   Pos
		delta  Delta
		want   Pos
		wantOK bool
	}{
		{from: E4, delta: DeltaN, want: E5, wantOK: true},
		{from: E4, delta: DeltaSW, want: D3, wantOK: true},
		{from: E4, delta: DeltaNNE, want: F6, wantOK: true},
		{from: E4, delta: DeltaSWW, want: C3, wantOK: true},
		{from: A1, delta: DeltaS, wantOK: false},
		{from: A1, delta: DeltaW, wantOK: false},
		{from: A1, delta: DeltaNE, want: B2, wantOK: true},
		{from: H8, delta: DeltaN, wantOK: false},
		{from: H8, delta: DeltaE, wantOK: false},
		{from: H1, delta: DeltaE, wantOK: false},
		{from: G7, delta: DeltaNNE, wantOK: false},
		{from: B1, delta: DeltaNWW, wantOK: false},
		{from: B1, delta: DeltaNNW, want: A3, wantOK: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.from.Notation()+" "+tt.delta.String(), func(t *testing.T) {
			t.Parallel()
			got, ok := tt.from.Apply(tt.delta)
			if ok != tt.wantOK {
				t.Fatalf("unexpected ok: got=%v want=%v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("unexpected square: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestApplyStaysOnBoard(t *testing.T) {
	t.Parallel()
	for p := Pos(0); p < TotalCells; p++ {
		for d := Delta(0); d < TotalDeltas; d++ {
			to, ok := p.Apply(d)
			if !ok {
				continue
			}
			if !to.IsValid() {
				t.Fatalf("%v %v produced off-board square %d", p, d, to)
			}
			dRank, dFile := d.Offset()
			if to.Rank()-p.Rank() != dRank || to.File()-p.File() != dFile {
				t.Errorf("%v %v produced %v", p, d, to)
			}
		}
	}
}
