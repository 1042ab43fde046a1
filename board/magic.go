package board

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/daystram/eightpiece/position"
)

var (
	ErrMagicNotFound  = errors.New("magic not found")
	ErrMagicCollision = errors.New("magic collision")
)

// seedSpread decorrelates the per-square generators of a search.
const seedSpread uint64 = 0x9E3779B97F4A7C15

// MagicEntry hashes an occupancy into a table of 1<<Shift attacks.
type MagicEntry struct {
	Magic uint64
	Shift uint8
}

func (e MagicEntry) Index(occupancy Bitmap) int {
	return int((uint64(occupancy) * e.Magic) >> (64 - e.Shift))
}

func (e MagicEntry) Size() int {
	return 1 << e.Shift
}

func (e MagicEntry) String() string {
	return fmt.Sprintf("{Magic: %#016x, Shift: %d}", e.Magic, e.Shift)
}

// MagicSpace is the number of table units the entries need.
func MagicSpace(entries [TotalCells]MagicEntry) int {
	var total int
	for _, e := range entries {
		total += e.Size()
	}
	return total
}

// MagicSearch configures the randomized magic search. Widths are tried from
// MaxShift down to MinShift with at most MaxTries candidates each.
type MagicSearch struct {
	MinShift uint8
	MaxShift uint8
	MaxTries int
	Seed     uint64
}

var (
	DefaultBishopSearch = MagicSearch{MinShift: 5, MaxShift: 10, MaxTries: 1 << 12, Seed: 1}
	DefaultRookSearch   = MagicSearch{MinShift: 10, MaxShift: 14, MaxTries: 1 << 10, Seed: 1}
)

// occupancyVariations lists every subset of mask with the sliding attack it
// produces.
func occupancyVariations(p position.Pos, deltas []position.Delta, mask Bitmap) ([]Bitmap, []Bitmap) {
	n := mask.VariationCount()
	occupancies, attacks := make([]Bitmap, n), make([]Bitmap, n)
	for i := 0; i < n; i++ {
		occupancies[i] = Translate(i, mask)
		attacks[i] = SlidingAttack(p, deltas, occupancies[i])
	}
	return occupancies, attacks
}

// Find returns the narrowest magic it can find for a slider on p. The search
// stops at the first width that fails.
func (s MagicSearch) Find(p position.Pos, deltas []position.Delta) (MagicEntry, error) {
	occupancies, attacks := occupancyVariations(p, deltas, RelevantMask(p, deltas))
	r := NewPseudoRand(s.Seed ^ (uint64(p)+1)*seedSpread)

	var (
		best  MagicEntry
		found bool
	)
	for shift := int(s.MaxShift); shift >= int(s.MinShift) && shift > 0; shift-- {
		magic, ok := s.findMagic(uint8(shift), occupancies, attacks, r)
		if !ok {
			break
		}
		best, found = MagicEntry{Magic: magic, Shift: uint8(shift)}, true
	}
	if !found {
		return MagicEntry{}, fmt.Errorf("%w: square %s at shift %d", ErrMagicNotFound, p, s.MaxShift)
	}
	return best, nil
}

func (s MagicSearch) findMagic(shift uint8, occupancies, attacks []Bitmap, r *PseudoRand) (uint64, bool) {
	size := 1 << shift
	used := make([]Bitmap, size)
	epoch := make([]int, size)
	for try := 1; try <= s.MaxTries; try++ {
		entry := MagicEntry{Magic: r.SparseUint64(), Shift: shift}
		ok := true
		for i, occ := range occupancies {
			idx := entry.Index(occ)
			if epoch[idx] != try {
				epoch[idx], used[idx] = try, attacks[i]
				continue
			}
			if used[idx] != attacks[i] {
				ok = false
				break
			}
		}
		if ok {
			return entry.Magic, true
		}
	}
	return 0, false
}

// SearchMagics runs Find for every square concurrently. Each square owns its
// generator, so the result does not depend on scheduling.
func SearchMagics(deltas []position.Delta, search MagicSearch, logger func(...any)) ([TotalCells]MagicEntry, error) {
	var entries [TotalCells]MagicEntry
	g := errgroup.Group{}
	g.SetLimit(runtime.NumCPU())
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		pos := pos
		g.Go(func() error {
			e, err := search.Find(pos, deltas)
			if err != nil {
				return err
			}
			entries[pos] = e
			if logger != nil {
				logger("magic", pos, e)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return [TotalCells]MagicEntry{}, err
	}
	return entries, nil
}

// buildMagicAttacks fills the lookup table of one square. A second, different
// attack landing on a filled slot means entry is not a valid magic for mask.
func buildMagicAttacks(p position.Pos, deltas []position.Delta, mask Bitmap, entry MagicEntry) ([]Bitmap, error) {
	table := make([]Bitmap, entry.Size())
	filled := make([]bool, entry.Size())
	occupancies, attacks := occupancyVariations(p, deltas, mask)
	for i, occ := range occupancies {
		idx := entry.Index(occ)
		if filled[idx] && table[idx] != attacks[i] {
			return nil, fmt.Errorf("%w: square %s magic %#016x", ErrMagicCollision, p, entry.Magic)
		}
		table[idx], filled[idx] = attacks[i], true
	}
	return table, nil
}

type magicTable struct {
	masks   [TotalCells]Bitmap
	entries [TotalCells]MagicEntry
	attacks [TotalCells][]Bitmap
}

func newMagicTable(deltas []position.Delta, masks [TotalCells]Bitmap, entries [TotalCells]MagicEntry) (*magicTable, error) {
	m := &magicTable{masks: masks, entries: entries}
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		table, err := buildMagicAttacks(pos, deltas, masks[pos], entries[pos])
		if err != nil {
			return nil, err
		}
		m.attacks[pos] = table
	}
	return m, nil
}

func (m *magicTable) attack(p position.Pos, occupied Bitmap) Bitmap {
	return m.attacks[p][m.entries[p].Index(occupied&m.masks[p])]
}
