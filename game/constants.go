package game

type CellState int
type BoardState int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Mine
	// Counts above 8, which only ConsecutiveMetric produces
	NumberOverflow
)

var CellStates = []CellState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Mine,
	NumberOverflow,
}

// countState maps the number shown on a safe square to its state
func countState(count int) CellState {
	if count > int(Number8) {
		return NumberOverflow
	}
	return CellState(count)
}

func (state CellState) String() string {
	switch {
	case state == Unrevealed:
		return "#"
	case state == Empty:
		return "."
	case state == Mine:
		return "*"
	case state == NumberOverflow:
		return "+"
	case state >= Number1 && state <= Number8:
		return string(rune('0' + int(state)))
	default:
		return "?"
	}
}

const (
	Lost BoardState = iota
	Won
	Ongoing
)

func (state BoardState) String() string {
	switch state {
	case Lost:
		return "lost"
	case Won:
		return "won"
	case Ongoing:
		return "ongoing"
	default:
		return "unknown"
	}
}

// Offsets of the 8 neighbors of a square, in the order they are visited
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Maximum number of squares walked in one direction by ConsecutiveMetric
const maxRunSteps = 8

const (
	DefaultWidth           = 30
	DefaultHeight          = 16
	DefaultMineProbability = 10
)
