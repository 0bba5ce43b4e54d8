package errors

import "errors"

var (
	ErrGameNotFound   = errors.New("game not found")
	ErrIllegalMove    = errors.New("illegal move")
	ErrGameOver       = errors.New("game is already finished")
	ErrNotEngineTurn  = errors.New("it is not the engine's turn")
	ErrNotPlayerTurn  = errors.New("it is the engine's turn")
	ErrCacheMiss      = errors.New("search result not cached")
	ErrInvalidRequest = errors.New("invalid request")
)
