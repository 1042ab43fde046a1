package board

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownVariant = errors.New("unknown variant")

type Variant uint8

const (
	VariantStandard Variant = iota
	VariantEightpiece
	VariantAtomic

	TotalVariants

	DefaultVariant = VariantEightpiece
)

var (
	variantNames = [TotalVariants]string{
		VariantStandard:   "Standard",
		VariantEightpiece: "Eightpiece",
		VariantAtomic:     "Atomic",
	}
	variantStartingFEN = [TotalVariants]string{
		VariantStandard:   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		VariantEightpiece: "jlsesqkbnr/pppppppp/8/8/8/8/PPPPPPPP/JLneSQKBNR w KQkq - 0 1 -",
		VariantAtomic:     "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	}
)

func ParseVariant(name string) (Variant, error) {
	for v := Variant(0); v < TotalVariants; v++ {
		if strings.EqualFold(name, variantNames[v]) {
			return v, nil
		}
	}
	return DefaultVariant, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

func (v Variant) String() string {
	if v >= TotalVariants {
		return ""
	}
	return variantNames[v]
}

func (v Variant) StartingFEN() string {
	if v >= TotalVariants {
		return ""
	}
	return variantStartingFEN[v]
}

// HasDisabledMove tells whether the FEN of the variant carries a seventh field.
func (v Variant) HasDisabledMove() bool {
	return v == VariantEightpiece
}
