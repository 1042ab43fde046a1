package game

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/daystram/eightpiece/board"
)

var (
	ErrUnknownMove = errors.New("unknown move")
	ErrEmptyStack  = errors.New("no move to undo")
)

// Game is a linear sequence of positions. Each pushed move clones the current
// board, so earlier states stay available for undo and repetition counting.
type Game struct {
	ID uuid.UUID

	tables *board.Tables
	states []*board.Board
	moves  []board.Move
}

type gameConfig struct {
	variant board.Variant
	fen     string
	tables  *board.Tables
}

type GameOption func(*gameConfig)

func WithVariant(v board.Variant) GameOption {
	return func(cfg *gameConfig) {
		cfg.variant = v
	}
}

// WithFEN starts the game from fen. An empty fen keeps the starting position
// of the variant.
func WithFEN(fen string) GameOption {
	return func(cfg *gameConfig) {
		cfg.fen = fen
	}
}

func WithTables(t *board.Tables) GameOption {
	return func(cfg *gameConfig) {
		cfg.tables = t
	}
}

func NewGame(opts ...GameOption) (*Game, error) {
	cfg := &gameConfig{
		variant: board.DefaultVariant,
	}
	for _, f := range opts {
		f(cfg)
	}
	if cfg.tables == nil {
		cfg.tables = board.DefaultTables()
	}
	boardOpts := []board.BoardOption{
		board.WithVariant(cfg.variant),
		board.WithTables(cfg.tables),
	}
	if cfg.fen != "" {
		boardOpts = append(boardOpts, board.WithFEN(cfg.fen))
	}
	b, err := board.NewBoard(boardOpts...)
	if err != nil {
		return nil, err
	}
	return &Game{
		ID:     uuid.New(),
		tables: cfg.tables,
		states: []*board.Board{b},
	}, nil
}

// Init restarts the game from the starting position of v.
func (g *Game) Init(v board.Variant) error {
	b, err := board.NewBoard(board.WithVariant(v), board.WithTables(g.tables))
	if err != nil {
		return err
	}
	g.reset(b)
	return nil
}

// SetFEN restarts the game from fen, keeping the current variant.
func (g *Game) SetFEN(fen string) error {
	b, err := board.NewBoard(
		board.WithVariant(g.Current().Variant()),
		board.WithFEN(fen),
		board.WithTables(g.tables),
	)
	if err != nil {
		return err
	}
	g.reset(b)
	return nil
}

func (g *Game) reset(b *board.Board) {
	g.ID = uuid.New()
	g.states = []*board.Board{b}
	g.moves = nil
}

func (g *Game) Current() *board.Board {
	return g.states[len(g.states)-1]
}

func (g *Game) Ply() int {
	return len(g.moves)
}

// History returns the moves played since the game was set up.
func (g *Game) History() []board.Move {
	return append([]board.Move(nil), g.moves...)
}

// Push plays mv on a copy of the current position. The move is not checked.
func (g *Game) Push(mv board.Move) {
	b := g.Current().Clone()
	b.MakeMove(mv)
	g.states = append(g.states, b)
	g.moves = append(g.moves, mv)
}

// Pop undoes the last move.
func (g *Game) Pop() (board.Move, error) {
	if len(g.moves) == 0 {
		return 0, ErrEmptyStack
	}
	mv := g.moves[len(g.moves)-1]
	g.states = g.states[:len(g.states)-1]
	g.moves = g.moves[:len(g.moves)-1]
	return mv, nil
}

// PushUCI plays a move given in coordinate notation. It must be one of the
// pseudo-legal moves of the side to move.
func (g *Game) PushUCI(uci string) error {
	mv, err := board.NewMoveFromUCI(uci)
	if err != nil {
		return err
	}
	for _, candidate := range g.MoveList() {
		if candidate == mv {
			g.Push(mv)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownMove, uci)
}

// PushIndex plays the n-th entry of MoveList, counting from 1.
func (g *Game) PushIndex(n int) error {
	mvs := g.MoveList()
	if n < 1 || n > len(mvs) {
		return fmt.Errorf("%w: index %d of %d", ErrUnknownMove, n, len(mvs))
	}
	g.Push(mvs[n-1])
	return nil
}

// PushMove plays either a coordinate move or a MoveList index.
func (g *Game) PushMove(arg string) error {
	if n, err := strconv.Atoi(arg); err == nil {
		return g.PushIndex(n)
	}
	return g.PushUCI(arg)
}

// MoveList returns the pseudo-legal moves of the side to move sorted by their
// coordinate notation.
func (g *Game) MoveList() []board.Move {
	mvs := g.Current().GenerateMoves(board.ModeAll)
	sort.Slice(mvs, func(i, j int) bool {
		return mvs[i].UCI() < mvs[j].UCI()
	})
	return mvs
}

// Repetitions counts the earlier positions with the same hash as the current one.
func (g *Game) Repetitions() int {
	hash := g.Current().Hash()
	var n int
	for _, b := range g.states[:len(g.states)-1] {
		if b.Hash() == hash {
			n++
		}
	}
	return n
}

// FormatMoveList numbers mvs from 1, six entries per line.
func FormatMoveList(mvs []board.Move) string {
	builder := strings.Builder{}
	for i, mv := range mvs {
		_, _ = builder.WriteString(fmt.Sprintf("%-16s", fmt.Sprintf("%d. %s", i+1, mv.UCI())))
		if i%6 == 5 {
			_, _ = builder.WriteRune('\n')
		}
	}
	return builder.String()
}

// String renders the current position, its FEN and the numbered move list.
func (g *Game) String() string {
	b := g.Current()
	return fmt.Sprintf("%s\n\nvariant %s fen %s\ncastling %s\n\n%s\n",
		b.Draw(), b.Variant(), b.FEN(), b.CastleRights().Describe(), FormatMoveList(g.MoveList()))
}
