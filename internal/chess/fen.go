package chess

import (
	"errors"
	"strings"
	"unicode"
)

// Encode writes the FEN piece placement (rank 8 first) followed by w/b.
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := p.Board.Squares[r][c]
			if pc == Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if p.SideToMove == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}

var ErrInvalidFEN = errors.New("invalid FEN")

// DecodePosition parses the first two FEN fields; castling, en passant and clocks are ignored.
// Each side must have exactly one king.
func DecodePosition(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, ErrInvalidFEN
	}
	var b Board
	var kings [2]int
	for r := 0; r < Rows; r++ {
		c := 0
		for _, ch := range rows[r] {
			if c >= Cols {
				return nil, ErrInvalidFEN
			}
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				continue
			}
			pt, ok := letterToPieceType[unicode.ToLower(ch)]
			if !ok {
				return nil, ErrInvalidFEN
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = White
			}
			if pt == PieceKing {
				kings[side]++
			}
			b.Squares[r][c] = MakePiece(side, pt)
			c++
		}
		if c != Cols {
			return nil, ErrInvalidFEN
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return nil, ErrInvalidFEN
	}

	var stm Side
	switch parts[1] {
	case "w":
		stm = White
	case "b":
		stm = Black
	default:
		return nil, ErrInvalidFEN
	}
	return NewPosition(b, stm), nil
}

// MustDecodePosition is DecodePosition for literals known to be valid.
func MustDecodePosition(fen string) *Position {
	pos, err := DecodePosition(fen)
	if err != nil {
		panic(err.Error() + ": " + fen)
	}
	return pos
}
