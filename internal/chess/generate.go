package chess

// PseudoLegalMoves lists geometric destinations for pc standing on from,
// ignoring whether the mover's king is left attacked.
func (p *Position) PseudoLegalMoves(pc Piece, from Square) []Move {
	if pc.Type() == PieceNone || !from.OnBoard() {
		return nil
	}
	var moves []Move
	switch pc.Type() {
	case PiecePawn:
		genPawnMoves(p, pc, from, &moves)
	case PieceKnight:
		genKnightMoves(p, pc, from, &moves)
	case PieceBishop:
		genBishopMoves(p, pc, from, &moves)
	case PieceRook:
		genRookMoves(p, pc, from, &moves)
	case PieceQueen:
		genQueenMoves(p, pc, from, &moves)
	case PieceKing:
		genKingMoves(p, pc, from, &moves)
	}
	return moves
}

// LegalMoves filters PseudoLegalMoves by playing each one and dropping those that
// leave the side to move in check. Generation order is kept.
func (p *Position) LegalMoves(pc Piece, from Square) []Move {
	pseudo := p.PseudoLegalMoves(pc, from)
	if len(pseudo) == 0 {
		return nil
	}
	out := make([]Move, 0, len(pseudo))
	side := p.SideToMove
	for _, mv := range pseudo {
		np := p.ApplyMove(mv)
		if np.IsInCheck(side) {
			continue
		}
		out = append(out, mv)
	}
	return out
}

// GenerateLegalMovesForSide scans the board row by row, column by column and
// concatenates the legal moves of every piece of side.
//
// The legality filter always checks the mover's king. When side is not
// p.SideToMove, moves are generated on a copy with side to move switched to
// side, so the result matches GenerateLegalMoves on that copy rather than a
// filter against p.SideToMove.
func (p *Position) GenerateLegalMovesForSide(side Side) []Move {
	view := p
	if p.SideToMove != side {
		view = p.WithSideToMove(side)
	}
	var moves []Move
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			pc := view.Board.Squares[r][c]
			if pc == Empty || pc.Side() != side {
				continue
			}
			moves = append(moves, view.LegalMoves(pc, Square{Col: c, Row: r})...)
		}
	}
	return moves
}

func (p *Position) GenerateLegalMoves() []Move {
	return p.GenerateLegalMovesForSide(p.SideToMove)
}

// ApplyMove plays m without any legality check and returns the new position;
// p itself is left untouched. Off-board squares or an empty origin give an unchanged copy.
func (p *Position) ApplyMove(m Move) *Position {
	np := *p
	if !m.IsValid() {
		return &np
	}
	pc := p.Board.At(m.From)
	if pc == Empty {
		return &np
	}
	captured := p.Board.At(m.To)

	np.Board.set(m.To, pc)
	np.Board.set(m.From, Empty)
	if pc.Type() == PieceKing {
		np.Kings[pc.Side()] = m.To
	}
	if captured.Type() == PieceKing && np.Kings[captured.Side()] == m.To {
		np.Kings[captured.Side()] = NoSquare
	}
	np.SideToMove = p.SideToMove.Opponent()

	// Incremental Zobrist: moving piece out of from, captured piece out, moving piece in, side flip.
	h := p.Hash
	if h == 0 {
		h = p.CalculateHash()
	}
	h ^= pieceHashKey(pc, m.From)
	if captured != Empty {
		h ^= pieceHashKey(captured, m.To)
	}
	h ^= pieceHashKey(pc, m.To)
	if p.SideToMove != np.SideToMove {
		h ^= zobristSide
	}
	np.Hash = h

	return &np
}

// ApplyWhitelisted applies m only when it appears in allowed. Otherwise the returned
// position is an unchanged copy (side to move not flipped) and ok is false.
func (p *Position) ApplyWhitelisted(m Move, allowed []Move) (*Position, bool) {
	for _, a := range allowed {
		if a == m {
			return p.ApplyMove(m), true
		}
	}
	np := *p
	return &np, false
}

// Perft counts leaf nodes of the legal move tree to the given depth.
func (p *Position) Perft(depth int) int64 {
	if depth <= 0 {
		return 1
	}
	moves := p.GenerateLegalMoves()
	if depth == 1 {
		return int64(len(moves))
	}
	var n int64
	for _, mv := range moves {
		n += p.ApplyMove(mv).Perft(depth - 1)
	}
	return n
}

// Divide returns perft counts per root move, in generation order.
func (p *Position) Divide(depth int) ([]Move, []int64) {
	moves := p.GenerateLegalMoves()
	counts := make([]int64, len(moves))
	for i, mv := range moves {
		counts[i] = p.ApplyMove(mv).Perft(depth - 1)
	}
	return moves, counts
}
