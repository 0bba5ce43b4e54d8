package chess

// Directions are {dCol, dRow}.
var rookDirs = [4][2]int{{+1, 0}, {-1, 0}, {0, +1}, {0, -1}}

var bishopDirs = [4][2]int{{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1}}

var queenDirs = [8][2]int{
	{+1, 0}, {-1, 0}, {0, +1}, {0, -1},
	{+1, +1}, {+1, -1}, {-1, +1}, {-1, -1},
}

// Slide along each direction: empty squares are targets, the first occupied square
// is a target only if it holds an enemy, and the ray stops there either way.
func genSlidingMoves(p *Position, pc Piece, from Square, dirs [][2]int, moves *[]Move) {
	side := pc.Side()
	for _, d := range dirs {
		r, c := from.Row+d[1], from.Col+d[0]
		for onBoard(r, c) {
			to := Square{Col: c, Row: r}
			dst := p.Board.Squares[r][c]
			if dst == Empty {
				*moves = append(*moves, Move{From: from, To: to})
			} else {
				if dst.Side() != side {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			r += d[1]
			c += d[0]
		}
	}
}

func genRookMoves(p *Position, pc Piece, from Square, moves *[]Move) {
	genSlidingMoves(p, pc, from, rookDirs[:], moves)
}

func genBishopMoves(p *Position, pc Piece, from Square, moves *[]Move) {
	genSlidingMoves(p, pc, from, bishopDirs[:], moves)
}

func genQueenMoves(p *Position, pc Piece, from Square, moves *[]Move) {
	genSlidingMoves(p, pc, from, queenDirs[:], moves)
}
