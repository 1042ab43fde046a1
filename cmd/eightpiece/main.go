package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/daystram/eightpiece/board"
	"github.com/daystram/eightpiece/game"
	"github.com/daystram/eightpiece/uci"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	variantName = flag.String("variant", board.DefaultVariant.String(), "variant to play")

	perftDepth    = flag.Int("perft", 0, "run perft to the given depth and exit")
	perftParallel = flag.Bool("perft.parallel", true, "explore root moves concurrently in perft mode")

	magicsRun  = flag.Bool("magics", false, "search magic numbers and print them as Go source")
	magicsSeed = flag.Uint64("magics.seed", 1, "seed of the magic search")

	stepRun   = flag.Int("step", 0, "play the given number of random plies")
	stepSeed  = flag.Int64("step.seed", 1, "seed of the random playout")
	stepDelay = flag.Duration("step.delay", 0, "pause between plies in step mode")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

// realMain takes the trailing FEN fields, if any.
func realMain(args []string) error {
	v, err := board.ParseVariant(*variantName)
	if err != nil {
		return err
	}
	if *magicsRun {
		return magics(os.Stdout, *magicsSeed)
	}

	g, err := game.NewGame(game.WithVariant(v), game.WithFEN(strings.Join(args, " ")))
	if err != nil {
		return err
	}
	if *perftDepth > 0 {
		return perft(g.Current(), *perftDepth, *perftParallel)
	}
	if *stepRun > 0 {
		return step(os.Stdout, g, *stepRun, *stepSeed, *stepDelay)
	}

	return uci.NewInterface(os.Stdin, os.Stdout, g).Run(context.Background())
}
