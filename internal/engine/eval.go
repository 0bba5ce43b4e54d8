package engine

import (
	"chessmm/internal/chess"
)

// Material in centipawns. The king is priced so high that search never trades it.
var pieceValue = [...]int{
	chess.PieceNone:   0,
	chess.PiecePawn:   100,
	chess.PieceKnight: 320,
	chess.PieceBishop: 330,
	chess.PieceRook:   500,
	chess.PieceQueen:  900,
	chess.PieceKing:   20000,
}

// Piece-square tables, White's frame: index row*8+col with row 0 = 8th rank.
// Black pieces read them with the row mirrored.

// Pawns: push forward, hold d4/e4, keep f/g/h pawns home early.
var pawnTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

// Knights: centre good, rim bad.
var knightTable = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopTable = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

// Rooks: 7th rank bonus, avoid the a/h files.
var rookTable = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var queenTable = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-5, 0, 5, 5, 5, 5, 0, -5,
	0, 0, 5, 5, 5, 5, 0, -5,
	-10, 5, 5, 5, 5, 5, 0, -10,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

// King (middlegame): stay off the centre, sit in a corner behind a pawn shield.
var kingTable = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

var pieceSquareTables = [...]*[64]int{
	chess.PiecePawn:   &pawnTable,
	chess.PieceKnight: &knightTable,
	chess.PieceBishop: &bishopTable,
	chess.PieceRook:   &rookTable,
	chess.PieceQueen:  &queenTable,
	chess.PieceKing:   &kingTable,
}

func materialValue(pc chess.Piece) int {
	return pieceValue[pc.Type()]
}

// positionalValue looks pc up in its table; black mirrors the row.
func positionalValue(pc chess.Piece, row, col int) int {
	pt := pc.Type()
	if pt == chess.PieceNone {
		return 0
	}
	table := pieceSquareTables[pt]
	if pc.Side() == chess.Black {
		row = chess.Rows - 1 - row
	}
	return table[row*chess.Cols+col]
}

// Evaluate scores the position from perspective's point of view: material plus
// piece-square bonus, added for its own pieces and subtracted for the opponent's.
// Mate and stalemate are left to search.
func Evaluate(pos *chess.Position, perspective chess.Side) int {
	score := 0
	for r := 0; r < chess.Rows; r++ {
		for c := 0; c < chess.Cols; c++ {
			pc := pos.Board.Squares[r][c]
			if pc == chess.Empty {
				continue
			}
			val := materialValue(pc) + positionalValue(pc, r, c)
			if pc.Side() == perspective {
				score += val
			} else {
				score -= val
			}
		}
	}
	return score
}
