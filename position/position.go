package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// TotalCells is the number of squares on the board.
	TotalCells = MaxComponentScalar * MaxComponentScalar

	LastRank = MaxComponentScalar - 1
	LastFile = MaxComponentScalar - 1

	rankShift = 3
	fileMask  = 1<<rankShift - 1
)

// PosNone marks the absence of a square, e.g. no en passant target.
const PosNone Pos = -1

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Pos is a board square, rank*8 + file.
type Pos int8

func NewPos(rank, file Pos) Pos {
	return rank<<rankShift + file
}

func NewPosFromNotation(n string) (Pos, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return 0, err
	}
	return NewPos(y, x), nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.IsValid() {
		return ""
	}
	return string(rune('a'+p.File())) + string(rune('1'+p.Rank()))
}

func (p Pos) IsValid() bool {
	return p >= 0 && p < TotalCells
}

func (p Pos) Rank() Pos {
	return p >> rankShift
}

func (p Pos) File() Pos {
	return p & fileMask
}

func notationToXY(n string) (Pos, Pos, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	pX, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	pY, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return pX, pY, nil
}

func notationToX(x byte) (Pos, error) {
	if x < 'a' || x > 'a'+byte(LastFile) {
		return 0, ErrInvalidNotation
	}
	return Pos(x - 'a'), nil
}

func notationToY(y byte) (Pos, error) {
	if y < '1' || y > '1'+byte(LastRank) {
		return 0, ErrInvalidNotation
	}
	return Pos(y - '1'), nil
}

func (p Pos) NotationComponentX() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('a' + p))
}

func (p Pos) NotationComponentY() string {
	if p < 0 || MaxComponentScalar <= p {
		return ""
	}
	return string(rune('0' + p + 1))
}
