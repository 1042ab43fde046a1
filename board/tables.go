package board

import (
	"fmt"
	"sync"

	"github.com/daystram/eightpiece/position"
)

// Tables holds every precomputed lookup the boards need. It is immutable once
// built and is shared by pointer.
type Tables struct {
	*attackTables

	bishopMagics *magicTable
	rookMagics   *magicTable

	pawnPush    [2][TotalCells]Bitmap
	pawnDouble  [2][TotalCells]Bitmap
	pawnCapture [2][TotalCells]Bitmap

	zobrist *zobristKeys
}

type tablesConfig struct {
	bishopEntries [TotalCells]MagicEntry
	rookEntries   [TotalCells]MagicEntry
	bishopSearch  *MagicSearch
	rookSearch    *MagicSearch
	zobristSeed   uint64
	logger        func(...any)
}

type TablesOption func(*tablesConfig)

// WithMagicEntries replaces the baked magic constants.
func WithMagicEntries(bishop, rook [TotalCells]MagicEntry) TablesOption {
	return func(cfg *tablesConfig) {
		cfg.bishopEntries = bishop
		cfg.rookEntries = rook
	}
}

// WithMagicSearch derives the magics at construction instead of using
// constants. A nil search keeps the constants of that slider.
func WithMagicSearch(bishop, rook *MagicSearch) TablesOption {
	return func(cfg *tablesConfig) {
		cfg.bishopSearch = bishop
		cfg.rookSearch = rook
	}
}

func WithZobristSeed(seed uint64) TablesOption {
	return func(cfg *tablesConfig) {
		cfg.zobristSeed = seed
	}
}

func WithLogger(logger func(...any)) TablesOption {
	return func(cfg *tablesConfig) {
		cfg.logger = logger
	}
}

const defaultZobristSeed = 7

func NewTables(opts ...TablesOption) (*Tables, error) {
	cfg := &tablesConfig{
		bishopEntries: BishopMagics,
		rookEntries:   RookMagics,
		zobristSeed:   defaultZobristSeed,
	}
	for _, f := range opts {
		f(cfg)
	}

	var err error
	if cfg.bishopSearch != nil {
		if cfg.bishopEntries, err = SearchMagics(DeltasBishop, *cfg.bishopSearch, cfg.logger); err != nil {
			return nil, fmt.Errorf("bishop: %w", err)
		}
	}
	if cfg.rookSearch != nil {
		if cfg.rookEntries, err = SearchMagics(DeltasRook, *cfg.rookSearch, cfg.logger); err != nil {
			return nil, fmt.Errorf("rook: %w", err)
		}
	}

	t := &Tables{
		attackTables: newAttackTables(),
		zobrist:      newZobristKeys(cfg.zobristSeed),
	}
	if t.bishopMagics, err = newMagicTable(DeltasBishop, t.bishopMask, cfg.bishopEntries); err != nil {
		return nil, fmt.Errorf("bishop: %w", err)
	}
	if t.rookMagics, err = newMagicTable(DeltasRook, t.rookMask, cfg.rookEntries); err != nil {
		return nil, fmt.Errorf("rook: %w", err)
	}
	if cfg.logger != nil {
		cfg.logger("magic space", "bishop", MagicSpace(cfg.bishopEntries), "rook", MagicSpace(cfg.rookEntries))
	}
	t.initPawns()
	return t, nil
}

var (
	defaultTables    *Tables
	defaultTablesErr error
	defaultTableOnce sync.Once
)

// DefaultTables builds the tables from the baked constants once per process.
// It panics if the constants are broken.
func DefaultTables() *Tables {
	defaultTableOnce.Do(func() {
		defaultTables, defaultTablesErr = NewTables()
	})
	if defaultTablesErr != nil {
		panic(defaultTablesErr)
	}
	return defaultTables
}

func (t *Tables) initPawns() {
	pushes := [2]position.Delta{SideBlack: position.DeltaS, SideWhite: position.DeltaN}
	captures := [2][2]position.Delta{
		SideBlack: {position.DeltaSW, position.DeltaSE},
		SideWhite: {position.DeltaNW, position.DeltaNE},
	}
	startRank := [2]position.Pos{SideBlack: position.Rank7, SideWhite: position.Rank2}
	for _, s := range []Side{SideBlack, SideWhite} {
		for pos := position.Pos(0); pos < TotalCells; pos++ {
			t.pawnPush[s][pos] = JumpAttack(pos, pushes[s:s+1], BitmapEmpty)
			t.pawnCapture[s][pos] = JumpAttack(pos, captures[s][:], BitmapEmpty)
			if pos.Rank() == startRank[s] {
				one, _ := pos.Apply(pushes[s])
				t.pawnDouble[s][pos] = JumpAttack(one, pushes[s:s+1], BitmapEmpty)
			}
		}
	}
}

// Geometry is the attack of shape from p on an empty board.
func (t *Tables) Geometry(shape Shape, p position.Pos) Bitmap {
	return t.shapes[shape][p]
}

// LancerRay is the empty-board ray of a lancer facing dir.
func (t *Tables) LancerRay(dir int, p position.Pos) Bitmap {
	return t.lancer[dir][p]
}

func (t *Tables) BishopMask(p position.Pos) Bitmap {
	return t.bishopMask[p]
}

func (t *Tables) RookMask(p position.Pos) Bitmap {
	return t.rookMask[p]
}

func (t *Tables) BishopAttack(p position.Pos, occupied Bitmap) Bitmap {
	return t.bishopMagics.attack(p, occupied)
}

func (t *Tables) RookAttack(p position.Pos, occupied Bitmap) Bitmap {
	return t.rookMagics.attack(p, occupied)
}

func (t *Tables) QueenAttack(p position.Pos, occupied Bitmap) Bitmap {
	return t.BishopAttack(p, occupied) | t.RookAttack(p, occupied)
}

// MagicSpace reports the table units used by the bishop and rook lookups.
func (t *Tables) MagicSpace() (int, int) {
	return MagicSpace(t.bishopMagics.entries), MagicSpace(t.rookMagics.entries)
}
