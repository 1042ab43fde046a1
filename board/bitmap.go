package board

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/eightpiece/position"
)

// Bitmap is a set of squares. Files are mirrored inside each rank byte: the
// bit of a square is 1 << ((LastFile-file) + rank*8), so a1 is bit 7 and h8 is
// bit 56.
type Bitmap uint64

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalCells
)

const (
	BitmapEmpty  Bitmap = 0
	BitmapMiddle Bitmap = 0x_00_7E_7E_7E_7E_7E_7E_00

	BitmapRank1       Bitmap = 0x_00_00_00_00_00_00_00_FF
	BitmapRank1Middle Bitmap = 0x_00_00_00_00_00_00_00_7E
	BitmapRank8       Bitmap = 0x_FF_00_00_00_00_00_00_00
	BitmapRank8Middle Bitmap = 0x_7E_00_00_00_00_00_00_00
	BitmapFileA       Bitmap = 0x_80_80_80_80_80_80_80_80
	BitmapFileAMiddle Bitmap = 0x_00_80_80_80_80_80_80_00
	BitmapFileH       Bitmap = 0x_01_01_01_01_01_01_01_01
	BitmapFileHMiddle Bitmap = 0x_00_01_01_01_01_01_01_00
)

var (
	maskCell [TotalCells]Bitmap

	dumpSet = color.New(color.FgHiGreen, color.Bold).SprintFunc()
)

func init() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		maskCell[pos] = 1 << ((position.LastFile - pos.File()) + pos.Rank()*Width)
	}
}

// Cell returns the singleton bitmap of pos.
func Cell(pos position.Pos) Bitmap {
	return maskCell[pos]
}

// cellPos is the inverse of Cell for a singleton bitmap.
func cellPos(bm Bitmap) position.Pos {
	i := position.Pos(bits.TrailingZeros64(uint64(bm)))
	return position.NewPos(i/Width, position.LastFile-i%Width)
}

func (bm Bitmap) Has(pos position.Pos) bool {
	return bm&maskCell[pos] != 0
}

func (bm *Bitmap) Set(pos position.Pos) {
	*bm |= maskCell[pos]
}

func (bm *Bitmap) Unset(pos position.Pos) {
	*bm &^= maskCell[pos]
}

func (bm Bitmap) Count() int {
	return bits.OnesCount64(uint64(bm))
}

// VariationCount is the number of subsets of bm.
func (bm Bitmap) VariationCount() int {
	return 1 << bm.Count()
}

// PopLowest splits off the least significant set bit. ok is false when bm is
// empty.
func (bm Bitmap) PopLowest() (lowest, rest Bitmap, ok bool) {
	if bm == 0 {
		return 0, 0, false
	}
	lowest = bm & -bm
	return lowest, bm &^ lowest, true
}

// PopPos is PopLowest returning the square of the popped bit.
func (bm Bitmap) PopPos() (pos position.Pos, rest Bitmap, ok bool) {
	lowest, rest, ok := bm.PopLowest()
	if !ok {
		return position.PosNone, 0, false
	}
	return cellPos(lowest), rest, true
}

// Positions lists the squares of bm in pop order.
func (bm Bitmap) Positions() []position.Pos {
	ps := make([]position.Pos, 0, bm.Count())
	for {
		pos, rest, ok := bm.PopPos()
		if !ok {
			return ps
		}
		ps = append(ps, pos)
		bm = rest
	}
}

// Translate maps index in [0, mask.VariationCount()) to a subset of mask. Bit
// i of index decides whether the i-th lowest bit of mask is included.
func Translate(index int, mask Bitmap) Bitmap {
	var subset Bitmap
	for i := 0; ; i++ {
		lowest, rest, ok := mask.PopLowest()
		if !ok {
			return subset
		}
		if index&(1<<i) != 0 {
			subset |= lowest
		}
		mask = rest
	}
}

func (bm Bitmap) String() string {
	return fmt.Sprintf("%#016x", uint64(bm))
}

func (bm Bitmap) Dump(sym ...rune) string {
	builder := strings.Builder{}
	_, _ = builder.WriteString(fmt.Sprintf("bitmap %s\n", bm))
	for y := Height - 1; y >= 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", y.NotationComponentY()))
		for x := position.Pos(0); x < Width; x++ {
			if bm.Has(position.NewPos(y, x)) {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", dumpSet(s)))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := position.Pos(0); x < Width; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}
