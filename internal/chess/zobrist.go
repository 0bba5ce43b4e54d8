package chess

import "sync"

const zobristPieceTypes = 7 // PieceType in [1..6], 0 unused

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristPieceTypes][NumSquares]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		// splitmix64 with a fixed seed so hashes are stable across runs.
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for pt := 1; pt < zobristPieceTypes; pt++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][pt][sq] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func pieceHashKey(pc Piece, sq Square) uint64 {
	if pc == Empty || !sq.OnBoard() {
		return 0
	}
	initZobrist()

	side := pc.Side()
	if side != White && side != Black {
		return 0
	}
	return zobristPieces[side][pc.Type()][sq.Row*Cols+sq.Col]
}

// CalculateHash recomputes the Zobrist hash of the position from scratch.
func (p *Position) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			pc := p.Board.Squares[r][c]
			if pc == Empty {
				continue
			}
			h ^= pieceHashKey(pc, Square{Col: c, Row: r})
		}
	}
	if p.SideToMove == Black {
		h ^= zobristSide
	}
	return h
}
