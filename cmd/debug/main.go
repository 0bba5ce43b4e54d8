package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"chessmm/internal/chess"
)

func main() {
	fen := flag.String("fen", "", "position (default: initial position)")
	depth := flag.Int("depth", 3, "perft depth")
	divide := flag.Bool("divide", false, "print per-move counts")
	flag.Parse()

	pos := chess.NewInitialPosition()
	if *fen != "" {
		p, err := chess.DecodePosition(*fen)
		if err != nil {
			log.Fatalf("bad -fen: %v", err)
		}
		pos = p
	}

	fmt.Println("FEN:", pos.Encode())
	fmt.Println("Status:", pos.Status())
	fmt.Println("Legal moves:", len(pos.GenerateLegalMoves()))

	start := time.Now()
	if *divide {
		moves, counts := pos.Divide(*depth)
		var total int64
		for i, mv := range moves {
			fmt.Printf("%s: %d\n", mv, counts[i])
			total += counts[i]
		}
		fmt.Printf("\nMoves: %d  Nodes: %d  Time: %v\n", len(moves), total, time.Since(start))
		return
	}
	n := pos.Perft(*depth)
	fmt.Printf("perft(%d) = %d  (%v)\n", *depth, n, time.Since(start))
}
