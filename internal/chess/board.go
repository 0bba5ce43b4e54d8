package chess

import (
	"strings"
	"unicode"
)

const (
	Rows       = 8
	Cols       = 8
	NumSquares = Rows * Cols
)

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Pawn direction: white moves up (-1), black down (+1).
func pawnDir(side Side) int {
	switch side {
	case White:
		return -1
	case Black:
		return +1
	}
	return 0
}

// Row a pawn of this side starts on (double push allowed from here).
func pawnHomeRow(side Side) int {
	if side == White {
		return Rows - 2
	}
	return 1
}

var letterToPieceType = map[rune]PieceType{
	'p': PiecePawn,
	'n': PieceKnight,
	'b': PieceBishop,
	'r': PieceRook,
	'q': PieceQueen,
	'k': PieceKing,
}

var pieceTypeToLetter = [...]rune{
	PiecePawn:   'p',
	PieceKnight: 'n',
	PieceBishop: 'b',
	PieceRook:   'r',
	PieceQueen:  'q',
	PieceKing:   'k',
}

func pieceToChar(p Piece) rune {
	if p.Type() == PieceNone {
		return '.'
	}
	base := pieceTypeToLetter[p.Type()]
	if p.Side() == White {
		return unicode.ToUpper(base)
	}
	return base
}

const initialBoardString = `rnbqkbnr
pppppppp
........
........
........
........
PPPPPPPP
RNBQKBNR`

func parseInitialBoard() Board {
	var b Board
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("initialBoardString must have 8 rows")
	}
	for r := 0; r < Rows; r++ {
		if len(lines[r]) != Cols {
			panic("initialBoardString must have 8 columns")
		}
		for c, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			pt, ok := letterToPieceType[unicode.ToLower(ch)]
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = White
			}
			b.Squares[r][c] = MakePiece(side, pt)
		}
	}
	return b
}

// NewPosition wraps a board, locating both kings and computing the hash.
func NewPosition(b Board, side Side) *Position {
	pos := &Position{
		Board:      b,
		SideToMove: side,
		Kings:      [2]Square{NoSquare, NoSquare},
	}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			pc := b.Squares[r][c]
			if pc.Type() == PieceKing {
				pos.Kings[pc.Side()] = Square{Col: c, Row: r}
			}
		}
	}
	pos.Hash = pos.CalculateHash()
	return pos
}

func NewInitialPosition() *Position {
	return NewPosition(parseInitialBoard(), White)
}
