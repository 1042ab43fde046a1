package main

import (
	"log"

	"github.com/daystram/eightpiece/bench"
	"github.com/daystram/eightpiece/board"
)

func perft(b *board.Board, depth int, parallel bool) error {
	log.Printf("============ perft(%d): %s %s\n", depth, b.Variant(), b.FEN())

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			log.Println(s)
		}
	}()

	res, err := bench.Perft(b, depth,
		bench.WithParallel(parallel),
		bench.WithVerbose(out),
		bench.WithCache(bench.NewCache(bench.DefaultCacheSize)),
	)
	close(out)
	<-done
	if err != nil {
		return err
	}
	log.Println(res)
	return nil
}
