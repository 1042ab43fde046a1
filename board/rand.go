package board

// PseudoRand is a xorshift64* generator. It is deterministic for a given seed,
// which keeps magic searches and zobrist keys reproducible.
type PseudoRand struct {
	s uint64
}

// NewPseudoRand returns a generator seeded with seed. A zero seed would lock
// the state at zero, so it is replaced by 1.
func NewPseudoRand(seed uint64) *PseudoRand {
	r := &PseudoRand{}
	r.Seed(seed)
	return r
}

func (r *PseudoRand) Seed(seed uint64) {
	if seed == 0 {
		seed = 1
	}
	r.s = seed
}

// SparseUint64 returns a value with roughly one bit in eight set.
func (r *PseudoRand) SparseUint64() uint64 {
	//nolint:staticcheck // SA4000 intentional
	return r.Uint64() & r.Uint64() & r.Uint64()
}

func (r *PseudoRand) Uint64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}
