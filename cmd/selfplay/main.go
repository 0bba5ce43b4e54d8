package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go.uber.org/zap"

	"chessmm/internal/chess"
	"chessmm/internal/engine"
)

func main() {
	depth := flag.Int("depth", 3, "search depth")
	workers := flag.Int("workers", 1, "root moves searched in parallel")
	maxMoves := flag.Int("maxmoves", 40, "max plies to play")
	fen := flag.String("fen", "", "start position (default: initial position)")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	games := flag.Int("games", 0, "play a depth match of this many games instead (see -depth-a/-depth-b)")
	depthA := flag.Int("depth-a", 2, "match: first player's depth")
	depthB := flag.Int("depth-b", 3, "match: second player's depth")
	verbose := flag.Bool("v", false, "log every search")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof listening on %s", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				log.Printf("pprof failed: %v", err)
			}
		}()
	}

	var e *engine.Engine
	if *verbose {
		l, _ := zap.NewDevelopment()
		e = engine.NewEngine(l.Sugar())
	} else {
		e = engine.NewEngine(nil)
	}

	if *games > 0 {
		runMatch(e, *games, *depthA, *depthB, *workers, *maxMoves)
		return
	}

	pos := chess.NewInitialPosition()
	if *fen != "" {
		p, err := chess.DecodePosition(*fen)
		if err != nil {
			log.Fatalf("bad -fen: %v", err)
		}
		pos = p
	}

	cfg := engine.SearchConfig{Depth: *depth, Workers: *workers}
	for i := 0; i < *maxMoves; i++ {
		status := pos.Status()
		if status.Finished() {
			log.Printf("Game over: %s, %s to move", status, pos.SideToMove)
			break
		}

		res := e.Search(pos, pos.SideToMove, cfg)
		var nps int64
		if res.TimeUsed > 0 {
			nps = int64(float64(res.Nodes) / res.TimeUsed.Seconds())
		}
		fmt.Printf("%3d. %-5s %s  score %8d  nodes %9d  time %-12v nps %d\n",
			i+1, pos.SideToMove, res.BestMove, res.Score, res.Nodes, res.TimeUsed.Round(time.Microsecond), nps)

		pos = pos.ApplyMove(res.BestMove)
	}

	fmt.Println("Final:", pos.Encode())
}
