package game

import (
	"fmt"
	"github.com/pkg/errors"
)

var ErrGameOver = errors.New("game is over")

type InvalidBoardParamsError struct {
	Width, Height   int
	MineProbability int
}

func (e *InvalidBoardParamsError) Error() string {
	switch {
	case e.Width <= 0:
		return fmt.Sprintf("cannot create a board with width: %d", e.Width)
	case e.Height <= 0:
		return fmt.Sprintf("cannot create a board with height: %d", e.Height)
	case e.MineProbability < 1:
		return fmt.Sprintf("mine probability must be at least 1 (1 in N), got: %d", e.MineProbability)
	default:
		return "cannot create board: unknown error"
	}
}

type InvalidMoveError struct {
	X, Y          int
	Width, Height int
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("move out of range - (%d, %d) - board (%d, %d)", e.X, e.Y, e.Width, e.Height)
}

type InvalidLayoutError struct {
	Row    int
	Reason string
}

func (e *InvalidLayoutError) Error() string {
	return fmt.Sprintf("invalid layout at row %d: %s", e.Row, e.Reason)
}
