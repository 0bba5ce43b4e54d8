package chess

import "strings"

type Side int8

const (
	NoSide Side = -1
	White  Side = 0
	Black  Side = 1
)

// Opponent returns the other colour; NoSide stays NoSide.
func (s Side) Opponent() Side {
	switch s {
	case White:
		return Black
	case Black:
		return White
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

// ParseSide accepts "white"/"w", "black"/"b" and "none"/"" (NoSide), case-insensitively.
func ParseSide(s string) (Side, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, true
	case "black", "b":
		return Black, true
	case "none", "":
		return NoSide, true
	}
	return NoSide, false
}

type PieceType int8

const (
	PieceNone PieceType = iota
	PiecePawn
	PieceKnight
	PieceBishop
	PieceRook
	PieceQueen
	PieceKing
)

// Piece is a code in [0,12]: 0 empty, 1-6 white pawn..king, 7-12 black pawn..king.
type Piece int8

const (
	Empty Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

func MakePiece(side Side, pt PieceType) Piece {
	if pt <= PieceNone || pt > PieceKing {
		return Empty
	}
	switch side {
	case White:
		return Piece(pt)
	case Black:
		return Piece(pt) + 6
	}
	return Empty
}

func (p Piece) valid() bool { return p > Empty && p <= BlackKing }

func (p Piece) Type() PieceType {
	if !p.valid() {
		return PieceNone
	}
	return PieceType((p-1)%6 + 1)
}

func (p Piece) Side() Side {
	if !p.valid() {
		return NoSide
	}
	return Side((p - 1) / 6)
}

// Square addresses the grid as [Row][Col]; row 0 is black's back rank.
type Square struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// NoSquare marks "no square" in sentinel moves and in the king cache of a side without a king.
var NoSquare = Square{Col: -1, Row: -1}

func (s Square) OnBoard() bool { return onBoard(s.Row, s.Col) }

func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{byte('a' + s.Col), byte('8' - s.Row)})
}

type Board struct {
	Squares [Rows][Cols]Piece
}

// At returns the piece on sq, Empty when sq is off-board.
func (b *Board) At(sq Square) Piece {
	if !sq.OnBoard() {
		return Empty
	}
	return b.Squares[sq.Row][sq.Col]
}

func (b *Board) set(sq Square, pc Piece) {
	b.Squares[sq.Row][sq.Col] = pc
}

type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// NoMove is what search reports when a node has no legal move.
var NoMove = Move{From: NoSquare, To: NoSquare}

func (m Move) IsValid() bool { return m.From.OnBoard() && m.To.OnBoard() }

func (m Move) String() string {
	if !m.IsValid() {
		return "0000"
	}
	return m.From.String() + m.To.String()
}

// Position = board + side to move + cached king squares (no castling / en passant state).
type Position struct {
	Board      Board
	SideToMove Side
	Kings      [2]Square
	Hash       uint64
}
