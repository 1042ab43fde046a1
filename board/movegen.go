package board

// GeneratePseudoLegalMoves lists the moves of side s that follow the movement
// rules of each figure. Moves leaving the own king attacked are included. The
// order is the pop order of origins, then of destinations.
func (b *Board) GeneratePseudoLegalMoves(mode MoveGenMode, s Side) []Move {
	own, enemy := b.sides[s], b.sides[s.Opposite()]
	mvs := make([]Move, 0, 64)
	for from, rest, ok := own.PopPos(); ok; from, rest, ok = rest.PopPos() {
		dst := b.tables.Mobility(mode, from, s, b.cells[from].Figure(), own, enemy)
		for to, more, ok := dst.PopPos(); ok; to, more, ok = more.PopPos() {
			mvs = append(mvs, NewMove(from, to))
		}
	}
	return mvs
}

// GenerateMoves is GeneratePseudoLegalMoves for the side to move.
func (b *Board) GenerateMoves(mode MoveGenMode) []Move {
	return b.GeneratePseudoLegalMoves(mode, b.turn)
}
