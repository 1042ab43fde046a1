package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/eightpiece/position"
)

var (
	drawLight = color.New(color.FgBlack, color.BgHiGreen)
	drawDark  = color.New(color.FgBlack, color.BgGreen)
	drawLabel = color.New(color.Bold)
)

// Board is a position: a piece per square kept in sync with per-side and
// per-figure bitmaps, plus the FEN meta fields.
type Board struct {
	tables *Tables

	// grid data
	cells  [TotalCells]Piece
	pieces [2][TotalFigures]Bitmap
	sides  [2]Bitmap

	// meta
	turn          Side
	castleRights  CastleRights
	enPassant     position.Pos
	halfMoveClock uint32
	fullMoveClock uint32
	variant       Variant
	disabledMove  Move
	hasDisabled   bool

	hash uint64
}

type boardConfig struct {
	fen     string
	fenSet  bool
	variant Variant
	tables  *Tables
}

type BoardOption func(*boardConfig)

// WithFEN loads fen instead of the starting position of the variant. An
// empty fen is invalid.
func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen = fen
		cfg.fenSet = true
	}
}

func WithVariant(v Variant) BoardOption {
	return func(cfg *boardConfig) {
		cfg.variant = v
	}
}

func WithTables(t *Tables) BoardOption {
	return func(cfg *boardConfig) {
		cfg.tables = t
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		variant: DefaultVariant,
	}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.tables == nil {
		cfg.tables = DefaultTables()
	}
	if !cfg.fenSet {
		cfg.fen = cfg.variant.StartingFEN()
	}

	b := &Board{
		tables:  cfg.tables,
		variant: cfg.variant,
	}
	if err := UnmarshalFEN(cfg.fen, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Init resets b to the starting position of v.
func (b *Board) Init(v Variant) error {
	b.variant = v
	return UnmarshalFEN(v.StartingFEN(), b)
}

func (b *Board) reset() {
	b.cells = [TotalCells]Piece{}
	b.pieces = [2][TotalFigures]Bitmap{}
	b.sides = [2]Bitmap{}
	b.turn = SideWhite
	b.castleRights = 0
	b.enPassant = position.PosNone
	b.halfMoveClock = 0
	b.fullMoveClock = 1
	b.disabledMove, b.hasDisabled = 0, false
	b.hash = 0
}

// Put places piece on p, replacing whatever stood there.
func (b *Board) Put(p position.Pos, piece Piece) {
	b.Remove(p)
	if piece.Figure() == NoFigure {
		return
	}
	s, f := piece.Side(), piece.Figure()
	b.cells[p] = piece
	b.pieces[s][f].Set(p)
	b.sides[s].Set(p)
	b.hash ^= b.tables.zobrist.piece[piece][p]
}

// Remove clears p and returns the piece that stood there.
func (b *Board) Remove(p position.Pos) Piece {
	piece := b.cells[p]
	if piece == NoPiece {
		return NoPiece
	}
	s, f := piece.Side(), piece.Figure()
	b.cells[p] = NoPiece
	b.pieces[s][f].Unset(p)
	b.sides[s].Unset(p)
	b.hash ^= b.tables.zobrist.piece[piece][p]
	return piece
}

// MakeMove moves the piece on the origin to the destination, overwriting any
// occupant, and passes the turn. Legality is not checked: an empty origin
// leaves the destination empty.
func (b *Board) MakeMove(mv Move) {
	piece := b.Remove(mv.From())
	b.Remove(mv.To())
	b.Put(mv.To(), piece)
	b.setTurn(b.turn.Opposite())
}

func (b *Board) setTurn(s Side) {
	if b.turn == SideWhite {
		b.hash ^= b.tables.zobrist.sideWhite
	}
	b.turn = s
	if b.turn == SideWhite {
		b.hash ^= b.tables.zobrist.sideWhite
	}
}

// Clone copies b. The tables are shared.
func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

func (b *Board) PieceAt(p position.Pos) Piece {
	return b.cells[p]
}

func (b *Board) Turn() Side {
	return b.turn
}

func (b *Board) Variant() Variant {
	return b.variant
}

func (b *Board) CastleRights() CastleRights {
	return b.castleRights
}

// EnPassant is the en passant target, or position.PosNone.
func (b *Board) EnPassant() position.Pos {
	return b.enPassant
}

func (b *Board) HalfMoveClock() uint32 {
	return b.halfMoveClock
}

func (b *Board) FullMoveClock() uint32 {
	return b.fullMoveClock
}

// DisabledMove is the move forbidden by the seventh FEN field, if any.
func (b *Board) DisabledMove() (Move, bool) {
	return b.disabledMove, b.hasDisabled
}

func (b *Board) Hash() uint64 {
	return b.hash
}

func (b *Board) Tables() *Tables {
	return b.tables
}

// Bitmap returns the squares holding fig of side s.
func (b *Board) Bitmap(s Side, fig Figure) Bitmap {
	return b.pieces[s][fig]
}

func (b *Board) SideBitmap(s Side) Bitmap {
	return b.sides[s]
}

func (b *Board) Occupied() Bitmap {
	return b.sides[SideBlack] | b.sides[SideWhite]
}

// MobilityAt is the mobility of fig of side s standing on p in this position.
func (b *Board) MobilityAt(mode MoveGenMode, p position.Pos, s Side, fig Figure) Bitmap {
	return b.tables.Mobility(mode, p, s, fig, b.sides[s], b.sides[s.Opposite()])
}

// computeHash rebuilds the hash from scratch.
func (b *Board) computeHash() uint64 {
	z := b.tables.zobrist
	var h uint64
	for pos, piece := range b.cells {
		if piece != NoPiece {
			h ^= z.piece[piece][pos]
		}
	}
	if b.turn == SideWhite {
		h ^= z.sideWhite
	}
	h ^= z.castleRights[b.castleRights]
	h ^= z.enPassantKey(b.enPassant)
	return h
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +-----+-----+-----+-----+-----+-----+-----+-----+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			sym := " "
			if piece := b.cells[position.NewPos(y, x)]; piece != NoPiece {
				sym = piece.SymbolFEN()
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %-3s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +-----+-----+-----+-----+-----+-----+-----+-----+\n   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf("   %s  ", x.NotationComponentX()))
	}
	return builder.String()
}

func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %s ", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			sym := ""
			if piece := b.cells[position.NewPos(y, x)]; piece != NoPiece {
				sym = piece.SymbolFEN()
			}
			cell := drawDark
			if (x+y)%2 == 1 {
				cell = drawLight
			}
			_, _ = builder.WriteString(cell.Sprintf(" %-3s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(drawLabel.Sprintf("  %s  ", x.NotationComponentX()))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	disabled := "-"
	if b.hasDisabled {
		disabled = b.disabledMove.UCI()
	}
	return fmt.Sprintf("vari: %s\nturn: %s\ncast: %s (%s)\nenps: %s\nhalf: %4d\nfull: %4d\ndisa: %s\nhash: %#016x",
		b.variant, b.turn, b.castleRights, b.castleRights.Describe(), b.enPassant, b.halfMoveClock, b.fullMoveClock, disabled, b.hash)
}
