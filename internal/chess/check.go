package chess

// IsAttacked reports whether any piece of bySide attacks sq.
// Order: pawns, knights, king, orthogonal sliders, diagonal sliders.
func (p *Position) IsAttacked(sq Square, bySide Side) bool {
	if !sq.OnBoard() {
		return false
	}
	if bySide != White && bySide != Black {
		return false
	}
	row, col := sq.Row, sq.Col

	// An attacking pawn stands one step behind the target, seen from its own direction.
	pawn := MakePiece(bySide, PiecePawn)
	pr := row - pawnDir(bySide)
	for _, dc := range [2]int{-1, +1} {
		if onBoard(pr, col+dc) && p.Board.Squares[pr][col+dc] == pawn {
			return true
		}
	}

	knight := MakePiece(bySide, PieceKnight)
	for _, d := range knightOffsets {
		r, c := row+d[1], col+d[0]
		if onBoard(r, c) && p.Board.Squares[r][c] == knight {
			return true
		}
	}

	king := MakePiece(bySide, PieceKing)
	for _, d := range kingOffsets {
		r, c := row+d[1], col+d[0]
		if onBoard(r, c) && p.Board.Squares[r][c] == king {
			return true
		}
	}

	queen := MakePiece(bySide, PieceQueen)
	if p.rayHits(row, col, rookDirs[:], MakePiece(bySide, PieceRook), queen) {
		return true
	}
	return p.rayHits(row, col, bishopDirs[:], MakePiece(bySide, PieceBishop), queen)
}

// rayHits walks each direction from (row, col) and checks the first occupant.
func (p *Position) rayHits(row, col int, dirs [][2]int, a, b Piece) bool {
	for _, d := range dirs {
		r, c := row+d[1], col+d[0]
		for onBoard(r, c) {
			pc := p.Board.Squares[r][c]
			if pc != Empty {
				if pc == a || pc == b {
					return true
				}
				break
			}
			r += d[1]
			c += d[0]
		}
	}
	return false
}

// IsInCheck uses the cached king square; a side without a king is never in check.
func (p *Position) IsInCheck(side Side) bool {
	if !p.KingExists(side) {
		return false
	}
	return p.IsAttacked(p.KingSquare(side), side.Opponent())
}
