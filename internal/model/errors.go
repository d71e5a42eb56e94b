package model

import "errors"

var (
	ErrMalformedInput     = errors.New("malformed input")
	ErrWrongSideAtSource  = errors.New("no pawn of this side at source")
	ErrIllegalDestination = errors.New("illegal move")
	ErrGameOver           = errors.New("game is over")
)
