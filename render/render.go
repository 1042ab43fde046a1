// Package render draws boards and bitmaps as SVG diagrams.
package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/daystram/eightpiece/board"
	"github.com/daystram/eightpiece/position"
)

const (
	CellSize = 48
	margin   = 20

	styleLight  = "fill:#eeeed2"
	styleDark   = "fill:#769656"
	styleMark   = "fill:#f6f669;fill-opacity:0.6"
	styleLabel  = "font-family:sans-serif;font-size:12px;fill:#333333;text-anchor:middle"
	styleWhite  = "font-family:sans-serif;font-size:20px;font-weight:bold;fill:#ffffff;stroke:#000000;stroke-width:1;text-anchor:middle"
	styleBlack  = "font-family:sans-serif;font-size:20px;font-weight:bold;fill:#000000;text-anchor:middle"
	styleLancer = "stroke:#b33a3a;stroke-width:3;stroke-linecap:round"
)

// errWriter keeps the first write error, svgo drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// Board draws b, marking the squares of highlight.
func Board(w io.Writer, b *board.Board, highlight board.Bitmap) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	start(canvas, "board "+b.FEN())
	grid(canvas, highlight)
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		if piece := b.PieceAt(pos); piece != board.NoPiece {
			drawPiece(canvas, pos, piece)
		}
	}
	canvas.End()
	return ew.err
}

// Bitmap draws the squares of bm on an empty board.
func Bitmap(w io.Writer, bm board.Bitmap) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	start(canvas, "bitmap "+bm.String())
	grid(canvas, bm)
	canvas.End()
	return ew.err
}

func start(canvas *svg.SVG, title string) {
	size := margin + int(board.Width)*CellSize
	canvas.Start(size, size)
	canvas.Title(title)
}

// origin is the top left corner of the square.
func origin(pos position.Pos) (int, int) {
	return margin + int(pos.File())*CellSize, int(position.LastRank-pos.Rank()) * CellSize
}

func grid(canvas *svg.SVG, marks board.Bitmap) {
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		x, y := origin(pos)
		style := styleDark
		if (pos.Rank()+pos.File())%2 == 1 {
			style = styleLight
		}
		canvas.Rect(x, y, CellSize, CellSize, style)
		if marks.Has(pos) {
			canvas.Rect(x, y, CellSize, CellSize, `class="mark"`, styleMark)
		}
	}
	bottom := int(board.Height) * CellSize
	for i := position.Pos(0); i < board.Width; i++ {
		canvas.Text(margin+int(i)*CellSize+CellSize/2, bottom+margin*3/4, i.NotationComponentX(), styleLabel)
		canvas.Text(margin/2, int(position.LastRank-i)*CellSize+CellSize/2+4, i.NotationComponentY(), styleLabel)
	}
}

func drawPiece(canvas *svg.SVG, pos position.Pos, piece board.Piece) {
	x, y := origin(pos)
	cx, cy := x+CellSize/2, y+CellSize/2
	fig := piece.Figure()
	if fig.IsLancer() {
		dRank, dFile := position.Delta(fig.LancerDirection()).Offset()
		reach := CellSize * 2 / 5
		canvas.Line(cx, cy, cx+int(dFile)*reach, cy-int(dRank)*reach, styleLancer)
	}
	style := styleBlack
	if piece.Side() == board.SideWhite {
		style = styleWhite
	}
	canvas.Text(cx, cy+7, piece.SANLetter(), `class="piece"`, style)
}
