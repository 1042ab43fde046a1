// Package uci runs the line based command loop.
package uci

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/eightpiece/bench"
	"github.com/daystram/eightpiece/board"
	"github.com/daystram/eightpiece/game"
	"github.com/daystram/eightpiece/position"
	"github.com/daystram/eightpiece/render"
)

var (
	EngineName   = "Eightpiece"
	EngineAuthor = "easychessanimations"

	defaultOptions = options{
		debug:         false,
		hashTableSize: bench.DefaultCacheSize,
		parallelPerft: true,
	}

	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidArgs    = errors.New("invalid arguments")

	errorColor = color.New(color.FgRed).SprintFunc()
)

type options struct {
	debug         bool
	hashTableSize uint64
	parallelPerft bool
}

// Interface reads commands from in and writes replies to out.
type Interface struct {
	in      io.Reader
	out     io.Writer
	game    *game.Game
	tables  *board.Tables
	options options
}

func NewInterface(in io.Reader, out io.Writer, g *game.Game) *Interface {
	return &Interface{
		in:      in,
		out:     out,
		game:    g,
		tables:  g.Current().Tables(),
		options: defaultOptions,
	}
}

// Run processes commands until a quit command, the end of input or ctx is done.
func (i *Interface) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(i.in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		quit, err := i.Execute(ctx, scanner.Text())
		if err != nil {
			i.println(errorColor("error:"), err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// Execute handles a single command line. quit is true for the quit commands.
func (i *Interface) Execute(ctx context.Context, line string) (quit bool, err error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}

	switch args[0] {
	case "q", "quit", "x", "exit":
		return true, nil
	case "uci":
		i.commandUCI(ctx)
	case "ucinewgame":
		return false, i.game.Init(i.game.Current().Variant())
	case "isready":
		i.println("readyok")
	case "setoption":
		return false, i.commandSetOption(ctx, args[1:])
	case "position":
		return false, i.commandPosition(ctx, args[1:])
	case "variant":
		return false, i.commandVariant(ctx, args[1:])
	case "i", "d":
		i.println(i.game.String())
	case "bb":
		i.commandBitmaps(ctx)
	case "demo":
		return false, i.commandDemo(ctx, args[1:])
	case "m":
		return false, i.commandMove(ctx, args[1:])
	case "u":
		if _, err := i.game.Pop(); err != nil {
			return false, err
		}
		i.println(i.game.String())
	case "go":
		return false, i.commandGo(ctx, args[1:])
	case "svg":
		return false, i.commandSVG(ctx, args[1:])
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return false, nil
}

func (i *Interface) commandUCI(_ context.Context) {
	i.println(fmt.Sprintf("id name %s", EngineName))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println(fmt.Sprintf("option name Debug type check default %v", defaultOptions.debug))
	i.println(fmt.Sprintf("option name Hash type spin default %d min 1 max 16777216", defaultOptions.hashTableSize))
	i.println(fmt.Sprintf("option name Parallel type check default %v", defaultOptions.parallelPerft))
	i.println(fmt.Sprintf("option name UCI_Variant type combo default %s%s", board.DefaultVariant, variantVars()))
	i.println("uciok")
}

func variantVars() string {
	builder := strings.Builder{}
	for v := board.Variant(0); v < board.TotalVariants; v++ {
		_, _ = builder.WriteString(" var " + v.String())
	}
	return builder.String()
}

func (i *Interface) commandSetOption(ctx context.Context, args []string) error {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		return fmt.Errorf("%w: setoption name <name> value <value>", ErrInvalidArgs)
	}
	switch name, valueStr := strings.ToLower(args[1]), args[3]; name {
	case "debug":
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidArgs, err)
		}
		i.options.debug = value
	case "hash":
		value, err := strconv.ParseUint(valueStr, 10, 64)
		if err != nil || value == 0 || value > 1<<24 || value&(value-1) != 0 {
			return fmt.Errorf("%w: hash must be a power of two up to %d", ErrInvalidArgs, 1<<24)
		}
		i.options.hashTableSize = value
	case "parallel":
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidArgs, err)
		}
		i.options.parallelPerft = value
	case "uci_variant":
		return i.commandVariant(ctx, args[3:4])
	default:
		return fmt.Errorf("%w: unknown option %s", ErrInvalidArgs, args[1])
	}
	return nil
}

func (i *Interface) commandPosition(_ context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: position startpos|fen <fen> [moves ...]", ErrInvalidArgs)
	}

	var fen string
	moves := len(args)
	for j, arg := range args {
		if arg == "moves" {
			moves = j
			break
		}
	}
	switch args[0] {
	case "fen":
		if fen = strings.Join(args[1:moves], " "); fen == "" {
			return fmt.Errorf("%w: missing fen", ErrInvalidArgs)
		}
	case "startpos":
		fen = i.game.Current().Variant().StartingFEN()
	default:
		return fmt.Errorf("%w: unknown position %s", ErrInvalidArgs, args[0])
	}

	g, err := game.NewGame(
		game.WithVariant(i.game.Current().Variant()),
		game.WithFEN(fen),
		game.WithTables(i.tables),
	)
	if err != nil {
		return err
	}
	if moves < len(args) {
		for _, mv := range args[moves+1:] {
			if err := g.PushUCI(mv); err != nil {
				return err
			}
		}
	}
	i.game = g
	return nil
}

func (i *Interface) commandVariant(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: variant <name>", ErrInvalidArgs)
	}
	v, err := board.ParseVariant(args[0])
	if err != nil {
		return err
	}
	if err := i.game.Init(v); err != nil {
		return err
	}
	i.println(i.game.String())
	return nil
}

func (i *Interface) commandBitmaps(_ context.Context) {
	b := i.game.Current()
	for _, s := range []board.Side{board.SideWhite, board.SideBlack} {
		for f := board.FigureMin; f <= board.FigureMax; f++ {
			if bm := b.Bitmap(s, f); bm != board.BitmapEmpty {
				i.println(fmt.Sprintf("%s %s\n%s\n", s, f, bm.Dump()))
			}
		}
		i.println(fmt.Sprintf("%s\n%s\n", s, b.SideBitmap(s).Dump()))
	}
}

func (i *Interface) commandDemo(_ context.Context, args []string) error {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	switch arg {
	case "occup":
		mask := i.tables.Geometry(board.ShapeBishop, position.C7)
		for index := 0; index < mask.VariationCount(); index++ {
			i.println(fmt.Sprintf("%d\n%s", index, board.Translate(index, mask).Dump()))
		}
	case "mob":
		own := board.Cell(position.G6) | board.Cell(position.C4)
		enemy := board.Cell(position.D5) | board.Cell(position.E7)
		i.println(i.tables.QueenMobility(board.ModeAll, position.E4, own, enemy).Dump())
	case "space":
		i.println(magicSpace(i.tables))
	case "":
		i.demo()
	default:
		return fmt.Errorf("%w: demo [occup|mob|space]", ErrInvalidArgs)
	}
	return nil
}

func (i *Interface) demo() {
	i.println(board.Bitmap(0xffff00000000ffff).Dump())

	sq := position.D3
	i.println(fmt.Sprintf("square %s file %d rank %d", sq, sq.File(), sq.Rank()))

	fig := board.FigureLancerNE
	i.println(fmt.Sprintf("\nfigure %s symbol %s", fig, fig.Symbol()))

	p := board.NewPiece(board.SideWhite, board.FigureLancerNE)
	i.println(fmt.Sprintf("\npiece %s fen symbol %s san symbol %s uci symbol %s san letter %s",
		p, p.SymbolFEN(), p.SymbolSAN(), p.SymbolUCI(), p.SANLetter()))

	bm := board.Cell(sq) | board.Cell(position.G6)
	for {
		i.println("\n" + bm.Dump())
		pos, rest, ok := bm.PopPos()
		if !ok {
			i.println("no square could be popped")
			i.println()
			break
		}
		i.println(pos.Notation())
		bm = rest
	}

	i.println(board.JumpAttack(position.E4, board.DeltasKnight, board.Cell(position.F6)).Dump())
	i.println(board.SlidingAttack(position.E4, board.DeltasQueen, board.Cell(position.G6)).Dump())
	i.println(i.tables.Geometry(board.ShapeBishop, position.C7).Dump())
	i.println(i.tables.Geometry(board.ShapeKingArea, position.G8).Dump())
}

func magicSpace(t *board.Tables) string {
	const unit = 8 // bytes per bitmap
	tb, tr := t.MagicSpace()
	sb, sr := tb*unit, tr*unit
	p := message.NewPrinter(language.English)
	return p.Sprintf("total bishop magic space %d bytes\n", sb) +
		p.Sprintf("total rook magic space %d bytes\n", sr) +
		p.Sprintf("\ngrand total magic space %d bytes = %.2f MiBs\n", sb+sr, float64(sb+sr)/(1<<20)) +
		p.Sprintf("magic units bishop %d rook %d total %d", tb, tr, tb+tr)
}

func (i *Interface) commandMove(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: m <uci>|<index>", ErrInvalidArgs)
	}
	if err := i.game.PushMove(args[0]); err != nil {
		return err
	}
	i.println(i.game.String())
	return nil
}

func (i *Interface) commandGo(_ context.Context, args []string) error {
	if len(args) != 2 || args[0] != "perft" {
		return fmt.Errorf("%w: go perft <depth>", ErrInvalidArgs)
	}
	depth, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidArgs, err)
	}

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			i.println(s)
		}
	}()

	opts := []bench.PerftOption{bench.WithVerbose(out), bench.WithParallel(i.options.parallelPerft)}
	var cache *bench.Cache
	if depth > 2 {
		cache = bench.NewCache(i.options.hashTableSize)
		opts = append(opts, bench.WithCache(cache))
	}
	res, err := bench.Perft(i.game.Current(), depth, opts...)
	close(out)
	<-done
	if err != nil {
		return err
	}
	i.println(res.String())
	if i.options.debug && cache != nil {
		hits, misses, writes := cache.Stats()
		i.println(fmt.Sprintf("cache hits=%d misses=%d writes=%d", hits, misses, writes))
	}
	return nil
}

// commandSVG writes the current position to a file. An optional square
// highlights the mobility of the piece standing there.
func (i *Interface) commandSVG(_ context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: svg <path> [square]", ErrInvalidArgs)
	}
	b := i.game.Current()
	highlight := board.BitmapEmpty
	if len(args) == 2 {
		pos, err := position.NewPosFromNotation(args[1])
		if err != nil {
			return err
		}
		if piece := b.PieceAt(pos); piece != board.NoPiece {
			highlight = b.MobilityAt(board.ModeAll, pos, piece.Side(), piece.Figure())
		}
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	if err := render.Board(f, b, highlight); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	i.println("written", args[0])
	return nil
}

func (i *Interface) println(a ...any) {
	_, _ = fmt.Fprintln(i.out, a...)
}
