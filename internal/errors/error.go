package errors

import "errors"

var (
	ErrBoardSize     = errors.New("board size is out of range (from 5x5 to 19x19)")
	ErrKomi          = errors.New("komi is out of range (from -64 to 63.5)")
	ErrColor         = errors.New("only black and white stones allowed")
	ErrPosition      = errors.New("position is off the board")
	ErrHistoryFull   = errors.New("move history is full")
	ErrSessionClosed = errors.New("game session is closed")
	ErrInternal      = errors.New("internal error")
)
