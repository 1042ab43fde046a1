package board

import (
	"fmt"

	"github.com/daystram/eightpiece/position"
)

// Move packs the origin in the low 6 bits and the destination in the next 6.
type Move uint16

const (
	moveSquareBits = 6
	moveSquareMask = 1<<moveSquareBits - 1
)

func NewMove(from, to position.Pos) Move {
	return Move(from)&moveSquareMask | Move(to)&moveSquareMask<<moveSquareBits
}

// NewMoveFromUCI parses coordinate notation such as "e2e4".
func NewMoveFromUCI(uci string) (Move, error) {
	if len(uci) != 4 {
		return 0, fmt.Errorf("%w: %q", position.ErrInvalidNotation, uci)
	}
	from, err := position.NewPosFromNotation(uci[:2])
	if err != nil {
		return 0, err
	}
	to, err := position.NewPosFromNotation(uci[2:])
	if err != nil {
		return 0, err
	}
	return NewMove(from, to), nil
}

func (m Move) From() position.Pos {
	return position.Pos(m & moveSquareMask)
}

func (m Move) To() position.Pos {
	return position.Pos(m >> moveSquareBits & moveSquareMask)
}

func (m Move) UCI() string {
	return m.From().Notation() + m.To().Notation()
}

func (m Move) String() string {
	return m.UCI()
}
