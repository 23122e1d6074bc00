package game

import (
	"github.com/sirupsen/logrus"
	"strings"
)

var Log = logrus.New()

// Listener receives the discrete signals produced by reveals. Display
// collaborators implement it to pick glyphs and announce the game's end.
type Listener interface {
	SquareRevealed(reveal Reveal)
	BoardStateChanged(state BoardState)
}

type Board struct {
	width, height int // in number of squares
	numMines      int
	squares       [][]Square

	state     BoardState
	numHidden int // safe squares not yet revealed
	metric    Metric

	listeners []Listener
	director  Director

	rand Rand
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumSquares() int {
	return board.width * board.height
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumHidden() int {
	return board.numHidden
}

func (board *Board) State() BoardState {
	return board.state
}

func (board *Board) Metric() Metric {
	return board.metric
}

// Rand returns the randomness source the board was built with
func (board *Board) Rand() Rand {
	return board.rand
}

// SquareAt returns the square at (x, y), or nil if (x, y) lies outside the board
func (board *Board) SquareAt(x, y int) *Square {
	if x >= 0 && y >= 0 && x < board.width && y < board.height {
		return &board.squares[y][x]
	}
	return nil
}

// Squares returns every square, row by row
func (board *Board) Squares() []*Square {
	squares := make([]*Square, 0, board.NumSquares())
	for y := range board.squares {
		for x := range board.squares[y] {
			squares = append(squares, &board.squares[y][x])
		}
	}
	return squares
}

func (board *Board) UnrevealedSquares() []*Square {
	var squares []*Square
	for _, square := range board.Squares() {
		if !square.isRevealed {
			squares = append(squares, square)
		}
	}
	return squares
}

func (board *Board) AddListener(listener Listener) {
	board.listeners = append(board.listeners, listener)
}

func (board *Board) CanPlay() bool {
	return board.state == Ongoing
}

// Click reveals the square at (x, y)
func (board *Board) Click(x, y int) ([]Reveal, error) {
	if !board.CanPlay() {
		return nil, ErrGameOver
	}

	square := board.SquareAt(x, y)
	if square == nil {
		return nil, &InvalidMoveError{X: x, Y: y, Width: board.width, Height: board.height}
	}

	return square.Reveal(), nil
}

// RequestDirectorAct asks the board's director, if any, to perform one step.
// Returns whether the director acted.
func (board *Board) RequestDirectorAct() bool {
	if board.director == nil || !board.CanPlay() {
		return false
	}
	return board.director.Act()
}

func (board *Board) String() string {
	var b strings.Builder
	for y := range board.squares {
		for x := range board.squares[y] {
			b.WriteString(board.squares[y][x].serialize())
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Layout renders mine positions, ignoring what has been revealed
func (board *Board) Layout() string {
	var b strings.Builder
	for y := range board.squares {
		for x := range board.squares[y] {
			if board.squares[y][x].IsMine() {
				b.WriteString(layoutMine)
			} else {
				b.WriteString(layoutSafe)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (board *Board) win() {
	board.setState(Won)
	board.endGame()
}

func (board *Board) lose() {
	board.setState(Lost)
	board.endGame()
}

func (board *Board) setState(state BoardState) {
	board.state = state

	Log.WithField("state", state).Info("board state changed")

	for _, listener := range board.listeners {
		listener.BoardStateChanged(state)
	}
}

func (board *Board) endGame() {
	if board.director != nil {
		board.director.End()
	}
}

func (board *Board) startGame() {
	if board.director != nil {
		board.director.Init(board)
	}
}

func (board *Board) markRevealed(reveal Reveal) {
	for _, listener := range board.listeners {
		listener.SquareRevealed(reveal)
	}

	if reveal.IsMine {
		if board.state == Ongoing {
			board.lose()
		}
		return
	}

	board.numHidden--
	if board.numHidden == 0 && board.state == Ongoing {
		board.win()
	}
}

// NewBoard builds a board from config. Mines are drawn from rng, 1 in
// config.MineProbability per square, unless config.Layout fixes them. A nil
// rng is replaced with one seeded from config.Seed.
func NewBoard(config GameConfig, rng Rand) (*Board, error) {
	if rng == nil {
		rng = NewRand(config.Seed)
	}

	var mines [][]bool
	if config.Layout != "" {
		var err error
		if mines, err = ParseLayout(config.Layout); err != nil {
			return nil, err
		}
		config.Height = len(mines)
		config.Width = len(mines[0])
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	board := createBoard(config, rng, func(x, y int) bool {
		if mines != nil {
			return mines[y][x]
		}
		return drawMine(rng, config.MineProbability)
	})

	Log.WithFields(logrus.Fields{
		"width":  board.width,
		"height": board.height,
		"mines":  board.numMines,
		"metric": board.metric,
	}).Debug("created board")

	board.startGame()

	return board, nil
}

func createBoard(config GameConfig, rng Rand, isMine func(x, y int) bool) *Board {
	board := Board{
		state:    Ongoing,
		width:    config.Width,
		height:   config.Height,
		squares:  make([][]Square, config.Height),
		metric:   config.Metric,
		director: config.Director,
		rand:     rng,
	}

	squareIdx := uint(0)

	for y := 0; y < config.Height; y++ {
		row := make([]Square, config.Width)
		board.squares[y] = row

		for x := 0; x < config.Width; x++ {
			square := &board.squares[y][x]
			square.board = &board
			square.idx = squareIdx
			square.x, square.y = x, y
			square.kind = KindEmpty

			if isMine(x, y) {
				square.kind = KindMine
				board.numMines++
			} else {
				board.numHidden++
			}

			squareIdx++
		}
	}

	return &board
}
