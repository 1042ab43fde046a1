package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/daystram/eightpiece/board"
	"github.com/daystram/eightpiece/position"
)

func TestBoard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		variant     board.Variant
		highlight   board.Bitmap
		wantPieces  int
		wantMarks   int
		wantLancers int
	}{
		{variant: board.VariantStandard, wantPieces: 32},
		{variant: board.VariantEightpiece, wantPieces: 32, wantLancers: 2},
		{
			variant:     board.VariantEightpiece,
			highlight:   board.BitmapRank1 | board.Cell(position.E4),
			wantPieces:  32,
			wantMarks:   9,
			wantLancers: 2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.variant.String(), func(t *testing.T) {
			t.Parallel()
			b, err := board.NewBoard(board.WithVariant(tt.variant))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			var buf bytes.Buffer
			if err := Board(&buf, b, tt.highlight); err != nil {
				t.Fatal("unexpected error:", err)
			}
			out := buf.String()
			if !strings.Contains(out, "<svg") || !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
				t.Fatalf("unexpected document: %s", out)
			}
			if got := strings.Count(out, `class="piece"`); got != tt.wantPieces {
				t.Errorf("unexpected pieces: got=%d want=%d", got, tt.wantPieces)
			}
			if got := strings.Count(out, `class="mark"`); got != tt.wantMarks {
				t.Errorf("unexpected marks: got=%d want=%d", got, tt.wantMarks)
			}
			if got := strings.Count(out, "<line"); got != tt.wantLancers {
				t.Errorf("unexpected lancer arrows: got=%d want=%d", got, tt.wantLancers)
			}
		})
	}
}

func TestBitmap(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	bm := board.BitmapFileA | board.BitmapRank8
	if err := Bitmap(&buf, bm); err != nil {
		t.Fatal("unexpected error:", err)
	}
	out := buf.String()
	if got, want := strings.Count(out, `class="mark"`), bm.Count(); got != want {
		t.Errorf("unexpected marks: got=%d want=%d", got, want)
	}
	if got := strings.Count(out, `class="piece"`); got != 0 {
		t.Errorf("unexpected pieces: got=%d want=%d", got, 0)
	}
	if !strings.Contains(out, bm.String()) {
		t.Errorf("missing title %s", bm)
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestWriteError(t *testing.T) {
	t.Parallel()
	if err := Bitmap(failingWriter{}, board.BitmapEmpty); !errors.Is(err, errWrite) {
		t.Errorf("unexpected error: got=%v want=%v", err, errWrite)
	}
}
