package constraint

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/bombsquare/director/random"
	"github.com/they4kman/bombsquare/game"
	"github.com/they4kman/bombsquare/util/collections"
	"math"
	"sort"
	"strings"
)

var log = game.Log.WithField("director", "constraint")

// Director deduces safe squares from the numbers already on the board, and
// only guesses when nothing can be deduced. Deduction assumes numbers count
// adjacent mines, so boards using another metric are played at random.
type Director struct {
	board    *game.Board
	fallback random.Director

	knownMines collections.Set[*game.Square]
	done       bool
}

// Observation states that exactly numMines of squares hold a mine
type Observation struct {
	origin   *game.Square
	numMines int
	squares  collections.Set[*game.Square]
}

func (observation Observation) String() string {
	var squaresRepr strings.Builder
	for _, square := range sortedSquares(observation.squares) {
		if squaresRepr.Len() > 0 {
			squaresRepr.WriteString(", ")
		}
		squaresRepr.WriteString(fmt.Sprintf("(%d, %d)", square.X(), square.Y()))
	}

	var originRepr string
	if observation.origin == nil {
		originRepr = "?"
	} else {
		originRepr = fmt.Sprintf("(%d, %d)", observation.origin.X(), observation.origin.Y())
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, squaresRepr.String())
}

func (observation Observation) MineProbability() float32 {
	return float32(observation.numMines) / float32(len(observation.squares))
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.knownMines = make(collections.Set[*game.Square])
	director.done = false
	director.fallback.Init(board)
}

// KnownMines returns the squares deduced to hold a mine so far
func (director *Director) KnownMines() collections.Set[*game.Square] {
	return director.knownMines
}

func (director *Director) Act() bool {
	if director.done || director.board == nil {
		return false
	}

	if director.board.Metric() == game.AdjacentMetric {
		observations := director.observe()

		if director.actDeliberate(observations) {
			return true
		}
		if director.actLowestProbability(observations) {
			return true
		}
	}

	return director.fallback.ActExcluding(director.knownMines.Contains)
}

func (director *Director) End() {
	director.done = true
	director.fallback.End()
}

func (director *Director) actDeliberate(observations []*Observation) bool {
	for _, observation := range observations {
		if observation.numMines == 0 {
			log.Debugf("deliberate click from %v", observation)
			return director.click(sortedSquares(observation.squares)[0])
		}
	}
	return false
}

func (director *Director) actLowestProbability(observations []*Observation) bool {
	lowestProbability := float32(math.Inf(1))
	var lowestProbabilitySquare *game.Square

	for _, observation := range observations {
		probability := observation.MineProbability()
		if probability < lowestProbability {
			lowestProbability = probability
			lowestProbabilitySquare = sortedSquares(observation.squares)[0]
		}
	}

	if lowestProbabilitySquare == nil {
		return false
	}

	log.WithFields(logrus.Fields{
		"probability": lowestProbability,
		"square":      lowestProbabilitySquare,
	}).Debug("guessing lowest probability square")

	return director.click(lowestProbabilitySquare)
}

func (director *Director) click(square *game.Square) bool {
	if _, err := director.board.Click(square.X(), square.Y()); err != nil {
		log.Warn(err)
		return false
	}
	return true
}

// observe gathers observations from revealed squares, recording every square
// they prove to be a mine, until no new mine can be proven
func (director *Director) observe() []*Observation {
	for {
		observations := simplifyObservations(director.collectObservations())

		foundMines := false
		for _, observation := range observations {
			if observation.numMines > 0 && observation.numMines == len(observation.squares) {
				for square := range observation.squares {
					director.knownMines.Add(square)
				}
				foundMines = true
			}
		}

		if !foundMines {
			return observations
		}
	}
}

func (director *Director) collectObservations() []*Observation {
	var observations []*Observation

	for _, square := range director.board.Squares() {
		if !square.IsRevealed() || square.IsMine() {
			continue
		}

		observation := Observation{
			origin:   square,
			numMines: square.MineCount(),
			squares:  make(collections.Set[*game.Square]),
		}

		for _, neighbor := range square.Neighbors() {
			if neighbor.IsRevealed() {
				continue
			}
			if director.knownMines.Contains(neighbor) {
				observation.numMines--
			} else {
				observation.squares.Add(neighbor)
			}
		}

		// Don't add vacuous observations
		if len(observation.squares) == 0 {
			continue
		}

		observations = append(observations, &observation)
	}

	return observations
}

// simplifyObservations adds, for each observation contained in another, an
// observation of the squares only the larger one covers
func simplifyObservations(observations []*Observation) []*Observation {
	simplified := observations

	for _, observation := range observations {
		for _, other := range observations {
			if observation == other || len(observation.squares) >= len(other.squares) {
				continue
			}

			shared := observation.squares.Intersection(other.squares)
			if len(shared) != len(observation.squares) {
				continue
			}

			simplified = append(simplified, &Observation{
				numMines: other.numMines - observation.numMines,
				squares:  other.squares.Difference(observation.squares),
			})
		}
	}

	return simplified
}

// sortedSquares orders squares row by row, so choices don't depend on map order
func sortedSquares(squares collections.Set[*game.Square]) []*game.Square {
	sorted := make([]*game.Square, 0, len(squares))
	for square := range squares {
		sorted = append(sorted, square)
	}

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y() != sorted[j].Y() {
			return sorted[i].Y() < sorted[j].Y()
		}
		return sorted[i].X() < sorted[j].X()
	})

	return sorted
}
