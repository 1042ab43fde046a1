package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/daystram/eightpiece/board"
	"github.com/daystram/eightpiece/position"
)

// magics searches both slider tables and prints them in the layout of the
// baked constants.
func magics(w io.Writer, seed uint64) error {
	bishopSearch, rookSearch := board.DefaultBishopSearch, board.DefaultRookSearch
	bishopSearch.Seed, rookSearch.Seed = seed, seed

	logger := func(a ...any) { log.Println(a...) }
	bishop, err := board.SearchMagics(board.DeltasBishop, bishopSearch, logger)
	if err != nil {
		return fmt.Errorf("bishop: %w", err)
	}
	rook, err := board.SearchMagics(board.DeltasRook, rookSearch, logger)
	if err != nil {
		return fmt.Errorf("rook: %w", err)
	}
	log.Printf("magic space: bishop=%d rook=%d\n", board.MagicSpace(bishop), board.MagicSpace(rook))

	_, err = io.WriteString(w, magicsSource(bishop, rook))
	return err
}

func magicsSource(bishop, rook [board.TotalCells]board.MagicEntry) string {
	builder := strings.Builder{}
	_, _ = builder.WriteString("package board\n\n")
	_, _ = builder.WriteString("import \"github.com/daystram/eightpiece/position\"\n\n")
	_, _ = builder.WriteString("var (\n")
	for _, table := range []struct {
		name    string
		entries [board.TotalCells]board.MagicEntry
	}{
		{name: "BishopMagics", entries: bishop},
		{name: "RookMagics", entries: rook},
	} {
		_, _ = builder.WriteString(fmt.Sprintf("\t%s = [TotalCells]MagicEntry{\n", table.name))
		for pos := position.Pos(0); pos < board.TotalCells; pos++ {
			e := table.entries[pos]
			_, _ = builder.WriteString(fmt.Sprintf("\t\tposition.%s: {Magic: 0x%016X, Shift: %d},\n",
				strings.ToUpper(pos.Notation()), e.Magic, e.Shift))
		}
		_, _ = builder.WriteString("\t}\n")
	}
	_, _ = builder.WriteString(")\n")
	return builder.String()
}
