package random

import (
	"github.com/they4kman/bombsquare/game"
)

// Director clicks hidden squares in a random order, fixed once at Init
type Director struct {
	board   *game.Board
	squares []*game.Square
	done    bool
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.done = false
	director.squares = board.UnrevealedSquares()

	board.Rand().Shuffle(len(director.squares), func(i, j int) {
		director.squares[i], director.squares[j] = director.squares[j], director.squares[i]
	})
}

func (director *Director) Act() bool {
	if director.done || director.board == nil {
		return false
	}

	for len(director.squares) > 0 {
		square := director.squares[0]
		director.squares = director.squares[1:]

		if square.IsRevealed() {
			continue
		}

		return director.click(square)
	}

	return false
}

// ActExcluding clicks the next hidden square not contained in skip
func (director *Director) ActExcluding(skip func(*game.Square) bool) bool {
	if director.done || director.board == nil {
		return false
	}

	for i, square := range director.squares {
		if square.IsRevealed() || skip(square) {
			continue
		}

		director.squares = append(director.squares[:i:i], director.squares[i+1:]...)
		return director.click(square)
	}

	return false
}

func (director *Director) click(square *game.Square) bool {
	game.Log.WithField("director", "random").Debugf("clicking %v", square)

	if _, err := director.board.Click(square.X(), square.Y()); err != nil {
		game.Log.WithField("director", "random").Warn(err)
		return false
	}
	return true
}

func (director *Director) End() {
	director.done = true
}
