package constraint

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/bombsquare/game"
)

func TestMain(m *testing.M) {
	game.Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func newBoard(t *testing.T, layout string, director *Director) *game.Board {
	t.Helper()
	config := game.NewGameConfig()
	config.Layout = layout
	config.Director = director
	board, err := game.NewBoard(config, nil)
	require.NoError(t, err)
	return board
}

func TestDeducesMineThenSafeSquare(t *testing.T) {
	director := &Director{}
	board := newBoard(t, `
.*..
....
....
`, director)

	_, err := board.Click(3, 2)
	require.NoError(t, err)
	require.Equal(t, 1, board.NumHidden())

	assert.True(t, board.RequestDirectorAct())
	assert.Equal(t, game.Won, board.State())
	assert.True(t, board.SquareAt(0, 0).IsRevealed())
	assert.True(t, director.KnownMines().Contains(board.SquareAt(1, 0)))
	assert.Len(t, director.KnownMines(), 1)

	assert.False(t, board.RequestDirectorAct())
}

func TestDeducesFromContainedObservations(t *testing.T) {
	director := &Director{}
	board := newBoard(t, `
*.*
...
...
`, director)

	_, err := board.Click(1, 2)
	require.NoError(t, err)
	require.Equal(t, "###\n121\n...\n", board.String())

	assert.True(t, board.RequestDirectorAct())
	assert.Equal(t, game.Won, board.State())
	assert.True(t, director.KnownMines().Contains(board.SquareAt(0, 0)))
	assert.True(t, director.KnownMines().Contains(board.SquareAt(2, 0)))
}

func TestObservationString(t *testing.T) {
	director := &Director{}
	board := newBoard(t, "*..\n...\n", director)

	_, err := board.Click(2, 1)
	require.NoError(t, err)

	observations := director.collectObservations()
	require.Len(t, observations, 2)
	assert.Equal(t, "Obs[  (1, 0), 1 ε (0, 0), (0, 1)]", observations[0].String())
	assert.Equal(t, float32(0.5), observations[0].MineProbability())
}

func TestPlaysWholeGames(t *testing.T) {
	for _, metric := range []game.Metric{game.AdjacentMetric, game.ConsecutiveMetric} {
		for seed := int64(1); seed <= 5; seed++ {
			director := &Director{}
			board, err := game.NewBoard(game.GameConfig{
				Width:           10,
				Height:          8,
				MineProbability: 8,
				Seed:            seed,
				Metric:          metric,
				Director:        director,
			}, nil)
			require.NoError(t, err)

			for i := 0; i < board.NumSquares() && board.RequestDirectorAct(); i++ {
			}

			assert.NotEqual(t, game.Ongoing, board.State(), "metric %v, seed %d", metric, seed)
			for mine := range director.KnownMines() {
				assert.True(t, mine.IsMine(), "metric %v, seed %d: %v", metric, seed, mine)
			}
		}
	}
}
