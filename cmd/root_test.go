package cmd

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
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

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestClickCenter(t *testing.T) {
	out, err := run(t, "1 1\n", "--layout", "*../.../..*")
	require.NoError(t, err)

	assert.Equal(t, "reveal 1 1 2\nongoing\n###\n#2#\n###\n", out)
}

func TestClicksUntilWin(t *testing.T) {
	out, err := run(t, "# comment\n9 9\nfoo\n\n0,0\n1 1\n", "--layout", "../..")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[0], "error: move out of range"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "error: expected"), lines[1])
	assert.Equal(t, []string{
		"reveal 0 0 0",
		"reveal 0 1 0",
		"reveal 1 0 0",
		"reveal 1 1 0",
		"state won",
		"won",
		"..",
		"..",
	}, lines[2:])
}

func TestMineEndsGame(t *testing.T) {
	out, err := run(t, "0 0\n1 0\n", "-p", "1", "-w", "2", "-h", "1", "--board")
	require.NoError(t, err)

	assert.Equal(t, "mine 0 0\nstate lost\n*#\nlost\n*#\n", out)
}

func TestDirectorPlays(t *testing.T) {
	out, err := run(t, "", "-d", "constraint", "-w", "8", "-h", "6", "-p", "7", "-s", "3")
	require.NoError(t, err)

	assert.Regexp(t, `state (won|lost)\n(won|lost)\n`, out)
}

func TestConfigFileWithFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("metric: consecutive\nlayout: |\n  **\n"), 0644))

	out, err := run(t, "0 0\n", "-c", path, "--layout", "../..")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "won\n..\n..\n"), out)

	out, err = run(t, "0 0\n", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "mine 0 0\nstate lost\nlost\n*#\n", out)
}

func TestZeroSeedIsKept(t *testing.T) {
	args := []string{"-d", "random", "-s", "0", "-w", "6", "-h", "5", "-p", "3", "--board"}
	first, err := run(t, "", args...)
	require.NoError(t, err)
	second, err := run(t, "", args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, ioutil.WriteFile(path, []byte("seed: 0\nwidth: 6\nheight: 5\nmine_probability: 3\n"), 0644))

	fromFile, err := run(t, "", "-c", path, "-d", "random", "--board")
	require.NoError(t, err)
	assert.Equal(t, first, fromFile)
}

func TestInvalidInvocations(t *testing.T) {
	tests := map[string][]string{
		"unknown director": {"-d", "oracle"},
		"unknown metric":   {"--metric", "diagonal"},
		"zero probability": {"-p", "0"},
		"bad layout":       {"--layout", "../."},
		"missing config":   {"-c", filepath.Join(t.TempDir(), "missing.yaml")},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, "", args...)
			assert.Error(t, err)
		})
	}
}

func TestParseCoords(t *testing.T) {
	tests := []struct {
		line  string
		x, y  int
		valid bool
	}{
		{line: "3 4", x: 3, y: 4, valid: true},
		{line: "3,4", x: 3, y: 4, valid: true},
		{line: "-1\t7", x: -1, y: 7, valid: true},
		{line: "3", valid: false},
		{line: "a b", valid: false},
		{line: "1 2 3", valid: false},
	}

	for _, test := range tests {
		x, y, err := parseCoords(test.line)
		if !test.valid {
			assert.Error(t, err, test.line)
			continue
		}
		require.NoError(t, err, test.line)
		assert.Equal(t, test.x, x)
		assert.Equal(t, test.y, y)
	}
}
