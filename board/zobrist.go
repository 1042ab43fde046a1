package board

import "github.com/daystram/eightpiece/position"

type zobristKeys struct {
	piece        [TotalPieces][TotalCells]uint64
	enPassant    [TotalCells]uint64
	castleRights [1 << 4]uint64
	sideWhite    uint64
}

func newZobristKeys(seed uint64) *zobristKeys {
	z := &zobristKeys{}
	r := NewPseudoRand(seed)
	for p := range z.piece {
		for pos := range z.piece[p] {
			z.piece[p][pos] = r.Uint64()
		}
	}
	for pos := range z.enPassant {
		z.enPassant[pos] = r.Uint64()
	}
	for c := range z.castleRights {
		z.castleRights[c] = r.Uint64()
	}
	z.sideWhite = r.Uint64()
	return z
}

func (z *zobristKeys) enPassantKey(p position.Pos) uint64 {
	if !p.IsValid() {
		return 0
	}
	return z.enPassant[p]
}
