package board

import "github.com/daystram/eightpiece/position"

var (
	DeltasKnight = []position.Delta{
		position.DeltaNNE, position.DeltaNEE, position.DeltaSEE, position.DeltaSSE,
		position.DeltaSSW, position.DeltaSWW, position.DeltaNWW, position.DeltaNNW,
	}
	DeltasBishop = []position.Delta{position.DeltaNE, position.DeltaSE, position.DeltaSW, position.DeltaNW}
	DeltasRook   = []position.Delta{position.DeltaN, position.DeltaE, position.DeltaS, position.DeltaW}
	DeltasQueen  = []position.Delta{
		position.DeltaN, position.DeltaNE, position.DeltaE, position.DeltaSE,
		position.DeltaS, position.DeltaSW, position.DeltaW, position.DeltaNW,
	}
	DeltasKing = DeltasQueen
)

// Shape selects one of the occupancy-free attack tables.
type Shape uint8

const (
	ShapeKnight Shape = iota
	ShapeBishop
	ShapeRook
	ShapeQueen
	ShapeKing
	ShapeKingArea

	TotalShapes
)

func (s Shape) String() string {
	switch s {
	case ShapeKnight:
		return "knight"
	case ShapeBishop:
		return "bishop"
	case ShapeRook:
		return "rook"
	case ShapeQueen:
		return "queen"
	case ShapeKing:
		return "king"
	case ShapeKingArea:
		return "king area"
	default:
		return ""
	}
}

// ApplyIfUnoccupied is position.Pos.Apply that also fails when the destination
// is in occupied.
func ApplyIfUnoccupied(p position.Pos, d position.Delta, occupied Bitmap) (position.Pos, bool) {
	dst, ok := p.Apply(d)
	if !ok || occupied.Has(dst) {
		return position.PosNone, false
	}
	return dst, true
}

// JumpAttack applies every delta once, keeping destinations on the board and
// outside occupied.
func JumpAttack(p position.Pos, deltas []position.Delta, occupied Bitmap) Bitmap {
	var bm Bitmap
	for _, d := range deltas {
		if dst, ok := ApplyIfUnoccupied(p, d, occupied); ok {
			bm.Set(dst)
		}
	}
	return bm
}

// SlidingAttack walks each delta until the board edge or the first occupied
// square, which is included.
func SlidingAttack(p position.Pos, deltas []position.Delta, occupied Bitmap) Bitmap {
	var bm Bitmap
	for _, d := range deltas {
		for cur, ok := p.Apply(d); ok; cur, ok = cur.Apply(d) {
			bm.Set(cur)
			if occupied.Has(cur) {
				break
			}
		}
	}
	return bm
}

// RelevantMask is the empty-board sliding attack without the last square of
// every ray. Pieces on those squares cannot block anything further.
func RelevantMask(p position.Pos, deltas []position.Delta) Bitmap {
	var bm Bitmap
	for _, d := range deltas {
		cur, ok := p.Apply(d)
		for ok {
			next, more := cur.Apply(d)
			if !more {
				break
			}
			bm.Set(cur)
			cur, ok = next, more
		}
	}
	return bm
}

type attackTables struct {
	shapes [TotalShapes][TotalCells]Bitmap
	lancer [TotalLancers][TotalCells]Bitmap

	bishopMask [TotalCells]Bitmap
	rookMask   [TotalCells]Bitmap
}

func newAttackTables() *attackTables {
	t := &attackTables{}
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		t.shapes[ShapeKnight][pos] = JumpAttack(pos, DeltasKnight, BitmapEmpty)
		t.shapes[ShapeBishop][pos] = SlidingAttack(pos, DeltasBishop, BitmapEmpty)
		t.shapes[ShapeRook][pos] = SlidingAttack(pos, DeltasRook, BitmapEmpty)
		t.shapes[ShapeQueen][pos] = SlidingAttack(pos, DeltasQueen, BitmapEmpty)
		t.shapes[ShapeKing][pos] = JumpAttack(pos, DeltasKing, BitmapEmpty)
		t.shapes[ShapeKingArea][pos] = t.shapes[ShapeKing][pos] | Cell(pos)

		// lancer directions share the order of the first eight deltas
		for dir := 0; dir < TotalLancers; dir++ {
			t.lancer[dir][pos] = SlidingAttack(pos, []position.Delta{position.Delta(dir)}, BitmapEmpty)
		}

		t.bishopMask[pos] = RelevantMask(pos, DeltasBishop)
		t.rookMask[pos] = RelevantMask(pos, DeltasRook)
	}
	return t
}
