package main

import (
	"fmt"

	"chessmm/internal/chess"
	"chessmm/internal/engine"
)

type PlayerConfig struct {
	Name string
	Cfg  engine.SearchConfig
}

// runMatch plays games between two depths, swapping colours every game.
func runMatch(e *engine.Engine, totalGames, depthA, depthB, workers, maxMoves int) {
	playerA := PlayerConfig{
		Name: fmt.Sprintf("Minimax (depth %d)", depthA),
		Cfg:  engine.SearchConfig{Depth: depthA, Workers: workers},
	}
	playerB := PlayerConfig{
		Name: fmt.Sprintf("Minimax (depth %d)", depthB),
		Cfg:  engine.SearchConfig{Depth: depthB, Workers: workers},
	}

	winsA, winsB, draws := 0, 0, 0
	for g := 0; g < totalGames; g++ {
		white, black := playerA, playerB
		if g%2 == 1 {
			white, black = playerB, playerA
		}

		fmt.Printf("\n=== Game %d: White [%s] vs Black [%s] ===\n", g+1, white.Name, black.Name)
		winner, plies := playGame(e, white, black, maxMoves)

		switch {
		case winner == chess.NoSide:
			draws++
			fmt.Printf("Result: draw after %d plies\n", plies)
		case (winner == chess.White) == (g%2 == 0):
			winsA++
			fmt.Printf("Result: %s wins in %d plies\n", playerA.Name, plies)
		default:
			winsB++
			fmt.Printf("Result: %s wins in %d plies\n", playerB.Name, plies)
		}
	}

	fmt.Printf("\n=== Final Score ===\n")
	fmt.Printf("%s: %d\n", playerA.Name, winsA)
	fmt.Printf("%s: %d\n", playerB.Name, winsB)
	fmt.Printf("Draws: %d\n", draws)
}

// playGame returns the winner (chess.NoSide for stalemate or the ply limit) and the plies played.
func playGame(e *engine.Engine, white, black PlayerConfig, maxMoves int) (chess.Side, int) {
	pos := chess.NewInitialPosition()
	for ply := 0; ply < maxMoves; ply++ {
		switch pos.Status() {
		case chess.StatusCheckmate:
			return pos.SideToMove.Opponent(), ply
		case chess.StatusStalemate:
			return chess.NoSide, ply
		}

		cfg := white.Cfg
		if pos.SideToMove == chess.Black {
			cfg = black.Cfg
		}
		res := e.Search(pos, pos.SideToMove, cfg)
		pos = pos.ApplyMove(res.BestMove)
	}
	return chess.NoSide, maxMoves
}
