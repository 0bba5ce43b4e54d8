package chess

// Pushes and diagonal captures only: no en passant, no promotion.
func genPawnMoves(p *Position, pc Piece, from Square, moves *[]Move) {
	side := pc.Side()
	dir := pawnDir(side)
	row, col := from.Row, from.Col

	r1 := row + dir
	if onBoard(r1, col) && p.Board.Squares[r1][col] == Empty {
		*moves = append(*moves, Move{From: from, To: Square{Col: col, Row: r1}})

		r2 := row + 2*dir
		if row == pawnHomeRow(side) && onBoard(r2, col) && p.Board.Squares[r2][col] == Empty {
			*moves = append(*moves, Move{From: from, To: Square{Col: col, Row: r2}})
		}
	}

	for _, dc := range [2]int{-1, +1} {
		c := col + dc
		if !onBoard(r1, c) {
			continue
		}
		dst := p.Board.Squares[r1][c]
		if dst != Empty && dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: Square{Col: c, Row: r1}})
		}
	}
}
