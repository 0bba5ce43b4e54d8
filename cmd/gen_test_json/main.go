package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"chessmm/internal/chess"
)

// TestCase is one position reached in a random game together with its legal moves,
// in generation order.
type TestCase struct {
	FEN        string   `json:"fen"`
	InCheck    bool     `json:"in_check"`
	Status     string   `json:"status"`
	LegalMoves []string `json:"legal_moves"`
}

func main() {
	numGames := flag.Int("games", 10, "random games to play")
	maxPlies := flag.Int("maxplies", 200, "ply limit per game")
	seed := flag.Int64("seed", 1, "random seed")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	var testCases []TestCase

	for g := 0; g < *numGames; g++ {
		pos := chess.NewInitialPosition()
		for ply := 0; ply < *maxPlies; ply++ {
			legal := pos.GenerateLegalMoves()
			tc := TestCase{
				FEN:        pos.Encode(),
				InCheck:    pos.IsInCheck(pos.SideToMove),
				Status:     string(pos.Status()),
				LegalMoves: make([]string, len(legal)),
			}
			for i, mv := range legal {
				tc.LegalMoves[i] = mv.String()
			}
			testCases = append(testCases, tc)

			if len(legal) == 0 {
				break
			}
			pos = pos.ApplyMove(legal[rng.Intn(len(legal))])
		}
	}

	data, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	fmt.Printf("Generated %d test cases from %d random games to %s\n", len(testCases), *numGames, *out)
}
