package board

// Figure is a piece kind without color.
type Figure uint8

const (
	NoFigure Figure = iota
	FigurePawn
	FigureKnight
	FigureBishop
	FigureRook
	FigureQueen
	FigureKing
	FigureLancer
	FigureLancerN
	FigureLancerNE
	FigureLancerE
	FigureLancerSE
	FigureLancerS
	FigureLancerSW
	FigureLancerW
	FigureLancerNW
	FigureSentry
	FigureJailer

	TotalFigures
)

const (
	FigureMin = FigurePawn
	FigureMax = FigureJailer

	LancerMin = FigureLancerN
	LancerMax = FigureLancerNW

	TotalLancers = int(LancerMax-LancerMin) + 1
)

var (
	figureSymbols = [TotalFigures]string{
		".", "p", "n", "b", "r", "q", "k",
		"l", "ln", "lne", "le", "lse", "ls", "lsw", "lw", "lnw",
		"s", "j",
	}
	figureSANLetters = [TotalFigures]string{
		".", "P", "N", "B", "R", "Q", "K",
		"L", "L", "L", "L", "L", "L", "L", "L", "L",
		"S", "J",
	}
	figureNames = [TotalFigures]string{
		"", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King",
		"Lancer", "LancerN", "LancerNE", "LancerE", "LancerSE", "LancerS", "LancerSW", "LancerW", "LancerNW",
		"Sentry", "Jailer",
	}
)

func (f Figure) String() string {
	return f.Name()
}

func (f Figure) Name() string {
	if f >= TotalFigures {
		return ""
	}
	return figureNames[f]
}

// Symbol is the lower case FEN symbol of the figure.
func (f Figure) Symbol() string {
	if f >= TotalFigures {
		return ""
	}
	return figureSymbols[f]
}

func (f Figure) SANLetter() string {
	if f >= TotalFigures {
		return ""
	}
	return figureSANLetters[f]
}

func (f Figure) IsLancer() bool {
	return LancerMin <= f && f <= LancerMax
}

// BaseFigure collapses every lancer direction to FigureLancer.
func (f Figure) BaseFigure() Figure {
	if f.IsLancer() {
		return FigureLancer
	}
	return f
}

// LancerDirection indexes lancer rays in N, NE, E, SE, S, SW, W, NW order.
// Only meaningful for lancers.
func (f Figure) LancerDirection() int {
	return int(f - LancerMin)
}

// Side is the color of a piece.
type Side uint8

const (
	SideBlack Side = iota
	SideWhite
)

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	return s ^ 1
}

// SymbolFEN is the turn field letter.
func (s Side) SymbolFEN() string {
	if s == SideWhite {
		return "w"
	}
	return "b"
}

// Piece packs a figure and a side as 2*figure + side.
type Piece uint8

const (
	NoPiece Piece = 0

	TotalPieces = 2 * int(TotalFigures)
)

func NewPiece(s Side, f Figure) Piece {
	return Piece(2*f) + Piece(s)
}

func (p Piece) Side() Side {
	return Side(p & 1)
}

func (p Piece) Figure() Figure {
	return Figure(p >> 1)
}

// SymbolFEN is the FEN symbol of the piece, capitalised for white.
func (p Piece) SymbolFEN() string {
	if p.Figure() == NoFigure {
		return "."
	}
	sym := p.Figure().Symbol()
	if p.Side() == SideWhite {
		// only the leading letter carries the color
		return string(sym[0]-0x20) + sym[1:]
	}
	return sym
}

// SymbolUCI is the lower case figure symbol.
func (p Piece) SymbolUCI() string {
	return p.Figure().Symbol()
}

// SymbolSAN is the capitalised FEN symbol regardless of side.
func (p Piece) SymbolSAN() string {
	return NewPiece(SideWhite, p.Figure()).SymbolFEN()
}

func (p Piece) SANLetter() string {
	return p.Figure().SANLetter()
}

func (p Piece) String() string {
	return p.SymbolFEN()
}
