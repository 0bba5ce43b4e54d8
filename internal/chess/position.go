package chess

type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCheck     Status = "check"
	StatusCheckmate Status = "checkmate"
	StatusStalemate Status = "stalemate"
)

// Finished reports whether no further move can be played.
func (s Status) Finished() bool {
	return s == StatusCheckmate || s == StatusStalemate
}

func (p *Position) KingSquare(side Side) Square {
	if side != White && side != Black {
		return NoSquare
	}
	return p.Kings[side]
}

func (p *Position) KingExists(side Side) bool {
	return p.KingSquare(side).OnBoard()
}

// WithSideToMove returns a copy with the given side to move and a matching hash.
func (p *Position) WithSideToMove(side Side) *Position {
	np := *p
	if np.SideToMove != side {
		np.SideToMove = side
		np.Hash = np.CalculateHash()
	}
	return &np
}

// Status classifies the position for the side to move.
func (p *Position) Status() Status {
	inCheck := p.IsInCheck(p.SideToMove)
	if len(p.GenerateLegalMoves()) == 0 {
		if inCheck {
			return StatusCheckmate
		}
		return StatusStalemate
	}
	if inCheck {
		return StatusCheck
	}
	return StatusOngoing
}
