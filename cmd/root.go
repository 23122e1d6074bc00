package cmd

import (
	"bufio"
	"fmt"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/bombsquare/director/constraint"
	"github.com/they4kman/bombsquare/director/random"
	"github.com/they4kman/bombsquare/game"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

type options struct {
	config     game.GameConfig
	configPath string
	director   string
	printBoard bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := options{config: game.NewGameConfig()}

	rootCmd := &cobra.Command{
		Use:   "bombsquare",
		Short: "Play Minesweeper by typing coordinates",
		Long: `bombsquare reveals squares of a Minesweeper board, one click per line
of input. Each line holds the x and y of the square to click:

	echo "3 4" | bombsquare -w 9 -h 9 -p 8

Use the director flag to make the computer play for you
	bombsquare -director constraint
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.gameConfig(cmd)
			if err != nil {
				return err
			}
			return play(cmd, config, opts)
		},
	}

	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	flags := rootCmd.Flags()
	flags.IntVarP(&opts.config.Width, "width", "w", game.DefaultWidth, "Width of game board, in squares")
	flags.IntVarP(&opts.config.Height, "height", "h", game.DefaultHeight, "Height of game board, in squares")
	flags.IntVarP(&opts.config.MineProbability, "probability", "p", game.DefaultMineProbability, "Each square holds a mine with a 1 in N chance")
	flags.Int64VarP(&opts.config.Seed, "seed", "s", 0, "Seed for mine placement (default: current time)")
	flags.Var(newMetricValue(game.AdjacentMetric, &opts.config.Metric), "metric", `Number shown on revealed squares.
adjacent: mines among the 8 neighbors
consecutive: runs of mines in each of the 8 directions, up to 8 squares (experimental)`)
	flags.StringVar(&opts.config.Layout, "layout", "", `Fixed mine layout, rows separated by "/" ("*" mine, "." safe)`)
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML file holding the game config; flags take precedence")
	flags.StringVarP(&opts.director, "director", "d", "none", "Make the computer play: none, random or constraint")
	flags.BoolVar(&opts.printBoard, "board", false, "Print the board after every click")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log every revealed square")

	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// gameConfig merges the config file, if any, with the flags set on cmd
func (opts options) gameConfig(cmd *cobra.Command) (game.GameConfig, error) {
	config := opts.config
	flags := cmd.Flags()
	hasSeed := flags.Changed("seed")

	if opts.configPath != "" {
		fileConfig, err := game.LoadConfig(opts.configPath)
		if err != nil {
			return config, err
		}

		if !flags.Changed("width") {
			config.Width = fileConfig.Width
		}
		if !flags.Changed("height") {
			config.Height = fileConfig.Height
		}
		if !flags.Changed("probability") {
			config.MineProbability = fileConfig.MineProbability
		}
		if !hasSeed {
			config.Seed = fileConfig.Seed
			hasSeed = fileConfig.HasSeed
		}
		if !flags.Changed("metric") {
			config.Metric = fileConfig.Metric
		}
		if !flags.Changed("layout") {
			config.Layout = fileConfig.Layout
		}
	}

	config.Layout = strings.ReplaceAll(config.Layout, "/", "\n")

	if !hasSeed {
		config.Seed = time.Now().UnixNano()
	}

	director, err := newDirector(opts.director)
	if err != nil {
		return config, err
	}
	config.Director = director

	return config, nil
}

func newDirector(name string) (game.Director, error) {
	switch name {
	case "", "none":
		return nil, nil
	case "random":
		return &random.Director{}, nil
	case "constraint":
		return &constraint.Director{}, nil
	default:
		return nil, errors.Errorf("invalid director %q", name)
	}
}

func play(cmd *cobra.Command, config game.GameConfig, opts options) error {
	out := cmd.OutOrStdout()

	game.Log.SetOutput(cmd.ErrOrStderr())
	if opts.verbose {
		game.Log.SetLevel(logrus.DebugLevel)
	}

	game.Log.WithFields(logrus.Fields{
		"seed":     config.Seed,
		"director": opts.director,
	}).Info("starting game")

	board, err := game.NewBoard(config, nil)
	if err != nil {
		return errors.Wrap(err, "creating board")
	}
	board.AddListener(&printer{out: out})

	if config.Director != nil {
		for board.RequestDirectorAct() {
			if opts.printBoard {
				fmt.Fprint(out, board)
			}
		}
	} else if err := readClicks(cmd.InOrStdin(), out, board, opts.printBoard); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s\n%s", board.State(), board)
	return nil
}

func readClicks(in io.Reader, out io.Writer, board *game.Board, printBoard bool) error {
	scanner := bufio.NewScanner(in)

	for board.CanPlay() && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		x, y, err := parseCoords(line)
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}

		if _, err := board.Click(x, y); err != nil {
			fmt.Fprintln(out, "error:", err)
			continue
		}

		if printBoard {
			fmt.Fprint(out, board)
		}
	}

	return errors.Wrap(scanner.Err(), "reading clicks")
}

func parseCoords(line string) (int, int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(fields) != 2 {
		return 0, 0, errors.Errorf("expected \"x y\", got %q", line)
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "parsing x of %q", line)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "parsing y of %q", line)
	}

	return x, y, nil
}

// printer writes every reveal signal as a line of text
type printer struct {
	out io.Writer
}

func (p *printer) SquareRevealed(reveal game.Reveal) {
	if reveal.IsMine {
		fmt.Fprintf(p.out, "mine %d %d\n", reveal.X, reveal.Y)
	} else {
		fmt.Fprintf(p.out, "reveal %d %d %d\n", reveal.X, reveal.Y, reveal.MineCount)
	}
}

func (p *printer) BoardStateChanged(state game.BoardState) {
	fmt.Fprintf(p.out, "state %s\n", state)
}

type metricValue game.Metric

func newMetricValue(val game.Metric, p *game.Metric) *metricValue {
	*p = val
	return (*metricValue)(p)
}

func (metricVal *metricValue) String() string {
	return game.Metric(*metricVal).String()
}

func (metricVal *metricValue) Set(value string) error {
	metric, err := game.ParseMetric(value)
	if err != nil {
		return err
	}
	*metricVal = metricValue(metric)
	return nil
}

func (metricVal *metricValue) Type() string {
	return "game.Metric"
}
