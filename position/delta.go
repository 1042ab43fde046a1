package position

import "golang.org/x/exp/constraints"

// Delta is one of the 8 compass directions or one of the 8 knight leaps.
type Delta uint8

const (
	DeltaN Delta = iota
	DeltaNE
	DeltaE
	DeltaSE
	DeltaS
	DeltaSW
	DeltaW
	DeltaNW
	DeltaNNE
	DeltaNEE
	DeltaSEE
	DeltaSSE
	DeltaSSW
	DeltaSWW
	DeltaNWW
	DeltaNNW

	TotalDeltas
)

// deltaOffsets holds {dRank, dFile} per delta.
var deltaOffsets = [TotalDeltas][2]Pos{
	DeltaN:   {+1, +0},
	DeltaNE:  {+1, +1},
	DeltaE:   {+0, +1},
	DeltaSE:  {-1, +1},
	DeltaS:   {-1, +0},
	DeltaSW:  {-1, -1},
	DeltaW:   {+0, -1},
	DeltaNW:  {+1, -1},
	DeltaNNE: {+2, +1},
	DeltaNEE: {+1, +2},
	DeltaSEE: {-1, +2},
	DeltaSSE: {-2, +1},
	DeltaSSW: {-2, -1},
	DeltaSWW: {-1, -2},
	DeltaNWW: {+1, -2},
	DeltaNNW: {+2, -1},
}

var deltaNames = [TotalDeltas]string{
	"N", "NE", "E", "SE", "S", "SW", "W", "NW",
	"NNE", "NEE", "SEE", "SSE", "SSW", "SWW", "NWW", "NNW",
}

func (d Delta) String() string {
	if d >= TotalDeltas {
		return ""
	}
	return deltaNames[d]
}

// Offset returns the rank and file offsets of d.
func (d Delta) Offset() (Pos, Pos) {
	o := deltaOffsets[d]
	return o[0], o[1]
}

// Apply returns the square reached from p by d, or false when it falls off the board.
func (p Pos) Apply(d Delta) (Pos, bool) {
	dRank, dFile := d.Offset()
	rank, file := p.Rank()+dRank, p.File()+dFile
	if !within(rank, 0, LastRank) || !within(file, 0, LastFile) {
		return PosNone, false
	}
	return NewPos(rank, file), true
}

func within[T constraints.Integer](v, lo, hi T) bool {
	return lo <= v && v <= hi
}
