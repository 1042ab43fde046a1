package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/eightpiece/position"
)

var (
	ErrInvalidFEN = errors.New("invalid fen")

	ErrInvalidFieldCount     = fmt.Errorf("%w: invalid field count", ErrInvalidFEN)
	ErrInvalidPlacement      = fmt.Errorf("%w: invalid placement", ErrInvalidFEN)
	ErrInvalidLancerEscape   = fmt.Errorf("%w: invalid lancer escape", ErrInvalidFEN)
	ErrInvalidTurn           = fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	ErrInvalidCastling       = fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	ErrInvalidSquareNotation = fmt.Errorf("%w: invalid square notation", ErrInvalidFEN)
	ErrInvalidCounter        = fmt.Errorf("%w: invalid move counter", ErrInvalidFEN)
	ErrInvalidDisabledMove   = fmt.Errorf("%w: invalid disabled move", ErrInvalidFEN)

	// ErrUnencodablePiece is returned when marshalling a piece without a FEN
	// symbol, such as an undirected lancer.
	ErrUnencodablePiece = errors.New("piece has no fen symbol")
)

var pieceBySymbol = map[byte]Piece{}

func init() {
	for f := FigureMin; f <= FigureMax; f++ {
		if f.IsLancer() || f == FigureLancer {
			continue
		}
		for _, s := range []Side{SideBlack, SideWhite} {
			p := NewPiece(s, f)
			pieceBySymbol[p.SymbolFEN()[0]] = p
		}
	}
}

// UnmarshalFEN loads fen into b, keeping its tables and variant. b is left
// untouched on error.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	fields := strings.Fields(fen)
	if n := len(fields); n != 4 && n != 6 && n != 7 {
		return fmt.Errorf("%w: got %d", ErrInvalidFieldCount, n)
	}

	nb := Board{tables: b.tables, variant: b.variant}
	if nb.tables == nil {
		nb.tables = DefaultTables()
	}
	nb.reset()

	if err := nb.parsePlacement(fields[0]); err != nil {
		return err
	}

	switch fields[1] {
	case "w":
		nb.turn = SideWhite
	case "b":
		nb.turn = SideBlack
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTurn, fields[1])
	}

	castleRights, err := parseCastleRights(fields[2])
	if err != nil {
		return err
	}
	nb.castleRights = castleRights

	if fields[3] != "-" {
		pos, err := position.NewPosFromNotation(fields[3])
		if err != nil {
			return fmt.Errorf("%w: en passant %q: %w", ErrInvalidSquareNotation, fields[3], err)
		}
		nb.enPassant = pos
	}

	if len(fields) >= 6 {
		if nb.halfMoveClock, err = parseCounter(fields[4]); err != nil {
			return err
		}
		if nb.fullMoveClock, err = parseCounter(fields[5]); err != nil {
			return err
		}
	}

	if len(fields) == 7 {
		mv, ok, err := parseDisabledMove(fields[6])
		if err != nil {
			return err
		}
		if nb.variant.HasDisabledMove() {
			nb.disabledMove, nb.hasDisabled = mv, ok
		}
	}

	nb.hash = nb.computeHash()
	*b = nb
	return nil
}

func (b *Board) parsePlacement(placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: %d ranks", ErrInvalidPlacement, len(rows))
	}
	for i, row := range rows {
		y, x := Height-1-position.Pos(i), position.Pos(0)
		for j := 0; j < len(row); j++ {
			c := row[j]
			if '1' <= c && c <= '8' {
				x += position.Pos(c - '0')
				if x > Width {
					return fmt.Errorf("%w: rank %d overflows", ErrInvalidPlacement, y+1)
				}
				continue
			}

			var piece Piece
			switch c {
			case 'l', 'L':
				f, n, err := parseLancer(row[j+1:])
				if err != nil {
					return fmt.Errorf("%w: rank %d", err, y+1)
				}
				j += n
				piece = NewPiece(SideBlack, f)
				if c == 'L' {
					piece = NewPiece(SideWhite, f)
				}
			default:
				var ok bool
				if piece, ok = pieceBySymbol[c]; !ok {
					return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidPlacement, string(c))
				}
			}
			if x >= Width {
				return fmt.Errorf("%w: rank %d overflows", ErrInvalidPlacement, y+1)
			}
			b.Put(position.NewPos(y, x), piece)
			x++
		}
		if x != Width {
			return fmt.Errorf("%w: rank %d has %d cells", ErrInvalidPlacement, y+1, x)
		}
	}
	return nil
}

// parseLancer reads the direction suffix following a lancer letter and
// returns how many bytes it used. A lone n or s is a straight lancer.
func parseLancer(suffix string) (Figure, int, error) {
	if len(suffix) == 0 {
		return NoFigure, 0, fmt.Errorf("%w: missing direction", ErrInvalidLancerEscape)
	}
	switch suffix[0] {
	case 'e':
		return FigureLancerE, 1, nil
	case 'w':
		return FigureLancerW, 1, nil
	case 'n', 's':
		north := suffix[0] == 'n'
		if len(suffix) > 1 {
			switch {
			case suffix[1] == 'e' && north:
				return FigureLancerNE, 2, nil
			case suffix[1] == 'e':
				return FigureLancerSE, 2, nil
			case suffix[1] == 'w' && north:
				return FigureLancerNW, 2, nil
			case suffix[1] == 'w':
				return FigureLancerSW, 2, nil
			}
		}
		if north {
			return FigureLancerN, 1, nil
		}
		return FigureLancerS, 1, nil
	default:
		return NoFigure, 0, fmt.Errorf("%w: unexpected '%s'", ErrInvalidLancerEscape, string(suffix[0]))
	}
}

func parseCastleRights(field string) (CastleRights, error) {
	var c CastleRights
	if field == "-" {
		return c, nil
	}
	if len(field) > 4 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCastling, field)
	}
crLoop:
	for _, e := range field {
		for _, d := range castleDirections {
			if e == d.Symbol() {
				c.Set(d, true)
				continue crLoop
			}
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidCastling, field)
	}
	return c, nil
}

func parseCounter(field string) (uint32, error) {
	v, err := strconv.ParseUint(field, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCounter, field)
	}
	return uint32(v), nil
}

func parseDisabledMove(field string) (Move, bool, error) {
	if field == "-" {
		return 0, false, nil
	}
	mv, err := NewMoveFromUCI(field)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrInvalidDisabledMove, field)
	}
	return mv, true, nil
}

func MarshalFEN(b *Board) (string, error) {
	if b == nil {
		return "", fmt.Errorf("invalid board")
	}
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		var skip int
		for x := position.Pos(0); x < Width; x++ {
			piece := b.cells[position.NewPos(y, x)]
			if piece == NoPiece {
				skip++
				continue
			}
			if piece.Figure() == FigureLancer {
				return "", fmt.Errorf("%w: %s on %s", ErrUnencodablePiece, piece.Figure(), position.NewPos(y, x))
			}
			if skip != 0 {
				_, _ = builder.WriteString(strconv.Itoa(skip))
				skip = 0
			}
			_, _ = builder.WriteString(piece.SymbolFEN())
		}
		if skip != 0 {
			_, _ = builder.WriteString(strconv.Itoa(skip))
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %s %s ", b.turn.SymbolFEN(), b.castleRights))

	if b.enPassant == position.PosNone {
		_, _ = builder.WriteRune('-')
	} else {
		_, _ = builder.WriteString(b.enPassant.Notation())
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveClock))

	if b.variant.HasDisabledMove() {
		if b.hasDisabled {
			_, _ = builder.WriteString(" " + b.disabledMove.UCI())
		} else {
			_, _ = builder.WriteString(" -")
		}
	}

	return builder.String(), nil
}

// FEN is MarshalFEN without the error. It is empty when the board holds a
// piece that has no FEN symbol.
func (b *Board) FEN() string {
	fen, _ := MarshalFEN(b)
	return fen
}
