package chess

// {dCol, dRow}
var knightOffsets = [8][2]int{
	{+1, +2},
	{+2, +1},
	{+2, -1},
	{+1, -2},
	{-1, -2},
	{-2, -1},
	{-2, +1},
	{-1, +2},
}

// Row-major around the king: dRow -1..1, then dCol -1..1.
var kingOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {+1, -1},
	{-1, 0}, {+1, 0},
	{-1, +1}, {0, +1}, {+1, +1},
}

func genLeaperMoves(p *Position, pc Piece, from Square, offsets [][2]int, moves *[]Move) {
	side := pc.Side()
	for _, d := range offsets {
		r, c := from.Row+d[1], from.Col+d[0]
		if !onBoard(r, c) {
			continue
		}
		dst := p.Board.Squares[r][c]
		if dst == Empty || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: Square{Col: c, Row: r}})
		}
	}
}

func genKnightMoves(p *Position, pc Piece, from Square, moves *[]Move) {
	genLeaperMoves(p, pc, from, knightOffsets[:], moves)
}

// No castling.
func genKingMoves(p *Position, pc Piece, from Square, moves *[]Move) {
	genLeaperMoves(p, pc, from, kingOffsets[:], moves)
}
