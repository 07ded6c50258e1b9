package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"snake-rules/ai"
	"snake-rules/game"
	"snake-rules/game/types"
	"snake-rules/sound"
	"snake-rules/term"
	"snake-rules/ui"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

type options struct {
	host      string
	width     int
	height    int
	seed      uint64
	avoidBody bool
	noReverse bool
	autopilot bool
	train     int
	qtable    string
	mute      bool
	logFile   string
}

func main() {
	var opts options
	flag.StringVar(&opts.host, "host", "window", "Host to run in: window or term")
	flag.IntVar(&opts.width, "width", 800, "Window width in pixels")
	flag.IntVar(&opts.height, "height", 600, "Window height in pixels")
	flag.Uint64Var(&opts.seed, "seed", 0, "Random seed (0 = current time)")
	flag.BoolVar(&opts.avoidBody, "avoid-body", false, "Never spawn apples on the snake")
	flag.BoolVar(&opts.noReverse, "no-reverse", false, "Ignore turns straight back into the body")
	flag.BoolVar(&opts.autopilot, "autopilot", false, "Let the Q-learning agent play")
	flag.IntVar(&opts.train, "train", 0, "Headless training games before playing")
	flag.StringVar(&opts.qtable, "qtable", "", "File the agent's Q-table is loaded from and saved to")
	flag.BoolVar(&opts.mute, "mute", false, "Disable sound")
	flag.StringVar(&opts.logFile, "log", "", "Log file (the terminal host logs nowhere by default)")
	flag.Parse()

	if opts.seed == 0 {
		opts.seed = uint64(time.Now().UnixNano())
	}

	// The game logger may be muted, so failures go straight to stderr
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

// run plays on the host named in opts until the player quits
func run(opts options) error {
	if opts.host != "window" && opts.host != "term" {
		return errors.Errorf("unknown host %q", opts.host)
	}

	logger, closeLog, err := newLogger(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	if opts.host == "term" {
		return errors.Wrap(runTerminal(opts, logger), "terminal host")
	}
	return errors.Wrap(runWindow(opts, logger), "window host")
}

func newLogger(opts options) (*log.Logger, func(), error) {
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open log file")
		}
		return log.New(f, "snake: ", log.LstdFlags), func() { f.Close() }, nil
	}
	if opts.host == "term" {
		// Anything written to stderr would tear the screen
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	return log.New(os.Stderr, "snake: ", log.LstdFlags), func() {}, nil
}

// checkGrid rejects viewports too small to hold a single cell
func checkGrid(grid types.Grid) error {
	if grid.Cells() == 0 {
		return errors.Errorf("viewport too small for a %dx%d grid", grid.Columns, grid.Rows)
	}
	return nil
}

func runWindow(opts options, logger *log.Logger) error {
	window := ui.Window{Width: int32(opts.width), Height: int32(opts.height), Title: "Snake"}
	window.Open()

	grid := ui.ViewportGrid()
	if err := checkGrid(grid); err != nil {
		window.Close()
		return err
	}

	g, input, cleanup := setup(opts, grid, logger)
	defer cleanup()
	window.Run(g, input)
	logSummary(g, logger)
	return nil
}

func runTerminal(opts options, logger *log.Logger) error {
	t, err := term.New()
	if err != nil {
		return err
	}
	defer t.Close()

	grid := t.Grid()
	if err := checkGrid(grid); err != nil {
		return err
	}

	g, input, cleanup := setup(opts, grid, logger)
	defer cleanup()
	t.Run(g, input)
	logSummary(g, logger)
	return nil
}

// setup builds the game for grid, trains the autopilot if asked and wires the
// sound cues. A nil input source means the host's keyboard. The returned
// func saves the Q-table and releases the audio device.
func setup(opts options, grid types.Grid, logger *log.Logger) (*game.Game, game.InputSource, func()) {
	cfg := game.Config{
		Grid: grid,
		Rules: game.Rules{
			AvoidBody:     opts.avoidBody,
			BlockReversal: opts.noReverse,
		},
		Seed:   opts.seed,
		Logger: logger,
	}

	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	var agent *ai.QLearning
	if opts.autopilot || opts.train > 0 {
		agent = newAgent(opts, logger)
		if opts.qtable != "" {
			cleanups = append(cleanups, func() {
				if err := agent.SaveQTable(opts.qtable); err != nil {
					logger.Printf("q-table not saved: %v", err)
				}
			})
		}
	}
	if opts.train > 0 {
		trainCfg := cfg
		trainCfg.Logger = nil
		stats := ai.Train(agent, trainCfg, opts.train)
		logger.Printf("trained %d games: high score %d, average %.2f, %d states",
			stats.Games, stats.HighScore, stats.AverageScore, len(agent.QTable))
	}

	g := game.NewGame(cfg)

	if !opts.mute {
		cues := sound.New()
		if err := cues.Init(); err != nil {
			logger.Printf("sound disabled: %v", err)
		} else {
			g.AddListener(cues)
			cleanups = append(cleanups, cues.Close)
		}
	}

	if opts.autopilot {
		return g, ai.NewAutopilot(g, agent), cleanup
	}
	return g, nil, cleanup
}

func newAgent(opts options, logger *log.Logger) *ai.QLearning {
	agent := ai.NewQLearning(rand.New(rand.NewSource(opts.seed)))
	if opts.qtable == "" {
		return agent
	}
	switch err := agent.LoadQTable(opts.qtable); {
	case err == nil:
		logger.Printf("loaded %d states from %s", len(agent.QTable), opts.qtable)
	case os.IsNotExist(errors.Cause(err)):
		logger.Printf("no q-table at %s yet, starting fresh", opts.qtable)
	default:
		logger.Printf("q-table ignored: %v", err)
	}
	return agent
}

func logSummary(g *game.Game, logger *log.Logger) {
	stats := g.Stats()
	logger.Printf("played %d games, high score %d, average %.2f",
		stats.GamesPlayed(), stats.GetHighScore(), stats.AverageScore())
}
