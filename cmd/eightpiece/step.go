package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/daystram/eightpiece/board"
	"github.com/daystram/eightpiece/game"
)

// step plays random pseudo-legal moves and reports the average time spent
// generating and applying them.
func step(w io.Writer, g *game.Game, plies int, seed int64, delay time.Duration) error {
	log.Println("============ step")
	var timesGenerateMoves, timesPush []time.Duration
	rng := rand.New(rand.NewSource(seed))
	start := g.Current()
	for ply := 0; ply < plies; ply++ {
		t1 := time.Now()
		mvs := g.MoveList()
		timesGenerateMoves = append(timesGenerateMoves, time.Since(t1))
		if len(mvs) == 0 {
			log.Printf("no moves left after %d plies\n", ply)
			break
		}
		mv := mvs[rng.Intn(len(mvs))]

		t1 = time.Now()
		g.Push(mv)
		timesPush = append(timesPush, time.Since(t1))

		b := g.Current()
		_, _ = fmt.Fprintf(w, "\n===== [#%d] %s: %s\n", moveNumber(start, ply), b.Turn().Opposite(), mv)
		_, _ = fmt.Fprintln(w, b.Draw())
		_, _ = fmt.Fprintln(w, b.FEN())
		if n := g.Repetitions(); n > 0 {
			_, _ = fmt.Fprintf(w, "repeated %d times\n", n)
		}
		if delay > 0 {
			<-time.After(delay)
		}
	}

	log.Printf("avg movegen=%s push=%s\n", avg(timesGenerateMoves), avg(timesPush))
	return nil
}

// moveNumber is the full move number of the ply-th move played from start,
// counting plies from 0.
func moveNumber(start *board.Board, ply int) uint32 {
	if start.Turn() == board.SideBlack {
		ply++
	}
	return start.FullMoveClock() + uint32(ply/2)
}

func avg(ds []time.Duration) time.Duration {
	if len(ds) == 0 {
		return 0
	}
	var s time.Duration
	for _, d := range ds {
		s += d
	}
	return s / time.Duration(len(ds))
}
