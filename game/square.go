package game

import (
	"fmt"
	"github.com/sirupsen/logrus"
)

type SquareKind int

const (
	KindEmpty SquareKind = iota
	KindMine
)

func (kind SquareKind) String() string {
	if kind == KindMine {
		return "mine"
	}
	return "empty"
}

type Square struct {
	board *Board

	x, y int
	idx  uint
	kind SquareKind

	isRevealed bool
}

// Reveal is the signal handed to display collaborators for every square
// exposed by a click.
type Reveal struct {
	X, Y      int
	IsMine    bool
	MineCount int
}

func (reveal Reveal) State() CellState {
	if reveal.IsMine {
		return Mine
	}
	return countState(reveal.MineCount)
}

func (square *Square) String() string {
	return fmt.Sprintf("Square(%v, %v)", square.x, square.y)
}

func (square *Square) X() int {
	return square.x
}

func (square *Square) Y() int {
	return square.y
}

func (square *Square) Kind() SquareKind {
	return square.kind
}

func (square *Square) IsMine() bool {
	return square.kind == KindMine
}

func (square *Square) IsRevealed() bool {
	return square.isRevealed
}

// State is what a player sees on this square
func (square *Square) State() CellState {
	switch {
	case !square.isRevealed:
		return Unrevealed
	case square.IsMine():
		return Mine
	default:
		return countState(square.MineCount())
	}
}

func (square *Square) relSquare(dx, dy int) *Square {
	return square.board.SquareAt(square.x+dx, square.y+dy)
}

func (square *Square) Neighbors() []*Square {
	neighbors := make([]*Square, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		if neighbor := square.relSquare(offset[0], offset[1]); neighbor != nil {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

func (square *Square) AdjacentMines() int {
	numMines := 0
	for _, neighbor := range square.Neighbors() {
		if neighbor.IsMine() {
			numMines++
		}
	}
	return numMines
}

// ConsecutiveMines sums, over the 8 directions, the length of the run of
// mines starting next to this square. Each run stops at the first absent or
// non-mine square, or after maxRunSteps squares.
func (square *Square) ConsecutiveMines() int {
	numMines := 0
	for _, offset := range neighborOffsets {
		for step := 1; step <= maxRunSteps; step++ {
			other := square.relSquare(offset[0]*step, offset[1]*step)
			if other == nil || !other.IsMine() {
				break
			}
			numMines++
		}
	}
	return numMines
}

// MineCount is the number displayed on this square, per the board's metric
func (square *Square) MineCount() int {
	if square.board.metric == ConsecutiveMetric {
		return square.ConsecutiveMines()
	}
	return square.AdjacentMines()
}

// Reveal exposes this square and, if it borders no mines, every square
// connected to it through other mine-free squares. Returns one Reveal per
// newly exposed square; nil if this square was already revealed.
func (square *Square) Reveal() []Reveal {
	if square.isRevealed {
		return nil
	}

	var reveals []Reveal

	flood(
		square,
		func(square *Square) bool {
			if square.isRevealed {
				return false
			}

			reveal := square.reveal()
			reveals = append(reveals, reveal)

			return !reveal.IsMine && reveal.MineCount == 0
		},
		func(square *Square) []*Square {
			return square.unrevealedNeighbors()
		},
	)

	return reveals
}

func (square *Square) unrevealedNeighbors() []*Square {
	neighbors := square.Neighbors()
	unrevealed := neighbors[:0]
	for _, neighbor := range neighbors {
		if !neighbor.isRevealed {
			unrevealed = append(unrevealed, neighbor)
		}
	}
	return unrevealed
}

func (square *Square) reveal() Reveal {
	square.isRevealed = true

	reveal := Reveal{
		X:      square.x,
		Y:      square.y,
		IsMine: square.IsMine(),
	}

	if reveal.IsMine {
		Log.WithFields(logrus.Fields{
			"x": square.x,
			"y": square.y,
		}).Info("mine detonated")
	} else {
		reveal.MineCount = square.MineCount()

		Log.WithFields(logrus.Fields{
			"x":     square.x,
			"y":     square.y,
			"count": reveal.MineCount,
		}).Debug("revealed square")
	}

	square.board.markRevealed(reveal)

	return reveal
}

func (square *Square) serialize() string {
	return square.State().String()
}
