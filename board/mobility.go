package board

import "github.com/daystram/eightpiece/position"

// MoveGenMode selects which destinations a mobility query returns.
type MoveGenMode uint8

const (
	// ModeAll is every destination not held by the own side.
	ModeAll MoveGenMode = iota

	// ModeViolent is destinations held by the enemy.
	ModeViolent

	// ModeQuiet is empty destinations.
	ModeQuiet
)

func (m MoveGenMode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeViolent:
		return "violent"
	case ModeQuiet:
		return "quiet"
	default:
		return ""
	}
}

func (m MoveGenMode) filter(bm, own, enemy Bitmap) Bitmap {
	switch m {
	case ModeViolent:
		return bm & enemy
	case ModeQuiet:
		return bm &^ (own | enemy)
	default:
		return bm &^ own
	}
}

type mobilityFunc func(t *Tables, mode MoveGenMode, p position.Pos, s Side, f Figure, own, enemy Bitmap) Bitmap

var mobilityFuncs [TotalFigures]mobilityFunc

func init() {
	mobilityFuncs = [TotalFigures]mobilityFunc{
		FigurePawn: func(t *Tables, mode MoveGenMode, p position.Pos, s Side, _ Figure, own, enemy Bitmap) Bitmap {
			return t.PawnMobility(mode, p, s, own, enemy)
		},
		FigureKnight: staticMobility((*Tables).KnightMobility),
		FigureBishop: staticMobility((*Tables).BishopMobility),
		FigureRook:   staticMobility((*Tables).RookMobility),
		FigureQueen:  staticMobility((*Tables).QueenMobility),
		FigureKing:   staticMobility((*Tables).KingMobility),
		FigureSentry: staticMobility((*Tables).SentryMobility),
		FigureJailer: staticMobility((*Tables).JailerMobility),
	}
	for f := LancerMin; f <= LancerMax; f++ {
		mobilityFuncs[f] = func(t *Tables, mode MoveGenMode, p position.Pos, _ Side, f Figure, own, enemy Bitmap) Bitmap {
			return t.LancerMobility(mode, p, f.LancerDirection(), own, enemy)
		}
	}
}

func staticMobility(fn func(*Tables, MoveGenMode, position.Pos, Bitmap, Bitmap) Bitmap) mobilityFunc {
	return func(t *Tables, mode MoveGenMode, p position.Pos, _ Side, _ Figure, own, enemy Bitmap) Bitmap {
		return fn(t, mode, p, own, enemy)
	}
}

// Mobility dispatches to the mobility of f. Figures without movement rules,
// such as an undirected lancer, have none.
func (t *Tables) Mobility(mode MoveGenMode, p position.Pos, s Side, f Figure, own, enemy Bitmap) Bitmap {
	if f >= TotalFigures || mobilityFuncs[f] == nil {
		return BitmapEmpty
	}
	return mobilityFuncs[f](t, mode, p, s, f, own, enemy)
}

func (t *Tables) PawnMobility(mode MoveGenMode, p position.Pos, s Side, own, enemy Bitmap) Bitmap {
	occupied := own | enemy
	var quiet Bitmap
	// double push needs the square in between free
	if single := t.pawnPush[s][p] &^ occupied; single != 0 {
		quiet = single | t.pawnDouble[s][p]&^occupied
	}
	violent := t.pawnCapture[s][p] & enemy
	switch mode {
	case ModeViolent:
		return violent
	case ModeQuiet:
		return quiet
	default:
		return quiet | violent
	}
}

func (t *Tables) KnightMobility(mode MoveGenMode, p position.Pos, own, enemy Bitmap) Bitmap {
	return mode.filter(t.shapes[ShapeKnight][p], own, enemy)
}

func (t *Tables) BishopMobility(mode MoveGenMode, p position.Pos, own, enemy Bitmap) Bitmap {
	return mode.filter(t.BishopAttack(p, own|enemy), own, enemy)
}

func (t *Tables) RookMobility(mode MoveGenMode, p position.Pos, own, enemy Bitmap) Bitmap {
	return mode.filter(t.RookAttack(p, own|enemy), own, enemy)
}

func (t *Tables) QueenMobility(mode MoveGenMode, p position.Pos, own, enemy Bitmap) Bitmap {
	return mode.filter(t.QueenAttack(p, own|enemy), own, enemy)
}

func (t *Tables) KingMobility(mode MoveGenMode, p position.Pos, own, enemy Bitmap) Bitmap {
	return mode.filter(t.shapes[ShapeKing][p], own, enemy)
}

// LancerMobility slides along the single ray the lancer faces.
func (t *Tables) LancerMobility(mode MoveGenMode, p position.Pos, dir int, own, enemy Bitmap) Bitmap {
	return mode.filter(t.lancer[dir][p]&t.QueenAttack(p, own|enemy), own, enemy)
}

// SentryMobility moves like a bishop.
func (t *Tables) SentryMobility(mode MoveGenMode, p position.Pos, own, enemy Bitmap) Bitmap {
	return t.BishopMobility(mode, p, own, enemy)
}

// JailerMobility slides like a rook but never captures.
func (t *Tables) JailerMobility(mode MoveGenMode, p position.Pos, own, enemy Bitmap) Bitmap {
	occupied := own | enemy
	return mode.filter(t.RookAttack(p, occupied)&^occupied, own, enemy)
}
