package board

import "strings"

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

var maskCastleRights = [5]CastleRights{
	CastleDirectionWhiteRight: 0b1000,
	CastleDirectionWhiteLeft:  0b0100,
	CastleDirectionBlackRight: 0b0010,
	CastleDirectionBlackLeft:  0b0001,
}

// castleDirections is in canonical FEN order.
var castleDirections = []CastleDirection{
	CastleDirectionWhiteRight,
	CastleDirectionWhiteLeft,
	CastleDirectionBlackRight,
	CastleDirectionBlackLeft,
}

func NewCastleDirection(s Side, kingSide bool) CastleDirection {
	switch {
	case s == SideWhite && kingSide:
		return CastleDirectionWhiteRight
	case s == SideWhite:
		return CastleDirectionWhiteLeft
	case kingSide:
		return CastleDirectionBlackRight
	default:
		return CastleDirectionBlackLeft
	}
}

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) IsWhite() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionWhiteLeft
}

func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

// Symbol is the FEN letter of d, or 0 for CastleDirectionUnknown.
func (d CastleDirection) Symbol() rune {
	if d == CastleDirectionUnknown || d > CastleDirectionBlackLeft {
		return 0
	}
	sym := 'q'
	if d.IsRight() {
		sym = 'k'
	}
	if d.IsWhite() {
		sym -= 'a' - 'A'
	}
	return sym
}

// CastleRights holds one bit per side and wing.
type CastleRights uint8

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	return c.IsAllowed(NewCastleDirection(s, true)) || c.IsAllowed(NewCastleDirection(s, false))
}

// String is the FEN castling field.
func (c CastleRights) String() string {
	if c == 0 {
		return "-"
	}
	var sym []rune
	for _, d := range castleDirections {
		if c.IsAllowed(d) {
			sym = append(sym, d.Symbol())
		}
	}
	return string(sym)
}

// Describe lists the allowed castlings of each side.
func (c CastleRights) Describe() string {
	var parts []string
	for _, s := range []Side{SideWhite, SideBlack} {
		if !c.IsSideAllowed(s) {
			parts = append(parts, s.String()+" none")
			continue
		}
		for _, d := range castleDirections {
			if d.IsWhite() == (s == SideWhite) && c.IsAllowed(d) {
				parts = append(parts, d.String())
			}
		}
	}
	return strings.Join(parts, ", ")
}
