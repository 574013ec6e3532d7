package domain

import "errors"

var (
	ErrInvalidColumn = errors.New("invalid column")
	ErrIllegalState  = errors.New("illegal board state")
	ErrInvalidBoard  = errors.New("invalid board")
	ErrGameOver      = errors.New("game is over")
	ErrNotYourTurn   = errors.New("not your turn")
)
