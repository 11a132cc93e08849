package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knights/board"
	"github.com/katalvlaran/knights/internal/config"
	"github.com/katalvlaran/knights/internal/logging"
	"github.com/katalvlaran/knights/report"
)

// app carries state shared by all subcommands once flags are parsed.
type app struct {
	cfgPath    string
	rows, cols int
	format     string
	logLevel   string
	logConsole bool

	cfg    config.Config
	log    zerolog.Logger
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	pf := &pathFlags{}

	root := &cobra.Command{
		Use:   "knights",
		Short: "Shortest knight-move paths on a rectangular board",
		Long: "knights finds one shortest sequence of knight moves between two squares\n" +
			"using breadth-first search. Squares are given as \"row,col\" (0-indexed)\n" +
			"or in algebraic notation (a1 is 0,0).",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPath(cmd, pf)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgPath, "config", "c", "", "YAML configuration file")
	flags.IntVar(&a.rows, "rows", 8, "board rows")
	flags.IntVar(&a.cols, "cols", 8, "board columns")
	flags.StringVarP(&a.format, "format", "f", string(report.Text), "output format: text, json or yaml")
	flags.StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVar(&a.logConsole, "log-console", false, "human-readable logs instead of JSON")
	pf.register(root)

	root.AddCommand(
		newPathCmd(a),
		newDistancesCmd(a),
		newNeighborsCmd(a),
		newBatchCmd(a),
	)
	return root
}

// setup loads the config file, applies explicit flags on top of it and
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Board.Rows = a.rows
	}
	if flags.Changed("cols") {
		cfg.Board.Cols = a.cols
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-console") {
		cfg.Log.Console = a.logConsole
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(a.stderr, cfg.Log.Level, cfg.Log.Console)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.Component(log, "knights")
	return nil
}

// board builds the configured board and logs its shape.
func (a *app) board() (*board.Board, error) {
	b, err := a.cfg.NewBoard()
	if err != nil {
		return nil, err
	}
	a.log.Debug().Int("rows", b.Rows()).Int("cols", b.Cols()).Int("offsets", len(b.Offsets())).Msg("board built")
	return b, nil
}

// outputFormat returns the validated output format.
func (a *app) outputFormat() report.Format {
	f, _ := report.ParseFormat(a.cfg.Format)
	return f
}

// square resolves an endpoint: the flag value if set, else the fallback.
func square(cmd *cobra.Command, flag, value string, fallback board.Square) (board.Square, error) {
	if !cmd.Flags().Changed(flag) {
		return fallback, nil
	}
	sq, err := board.ParseSquare(value)
	if err != nil {
		return board.Square{}, fmt.Errorf("--%s: %w", flag, err)
	}
	return sq, nil
}
