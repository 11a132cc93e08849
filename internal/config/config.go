// Package config loads the knights configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knights/board"
	"github.com/katalvlaran/knights/report"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full configuration of the knights binary.
type Config struct {
	Board BoardConfig `yaml:"board"`
	// From and To are the default query endpoints.
	From   board.Square `yaml:"from"`
	To     board.Square `yaml:"to"`
	Dump   bool         `yaml:"dump"`
	Format string       `yaml:"format"`
	Log    LogConfig    `yaml:"log"`
	Batch  BatchConfig  `yaml:"batch"`
}

// BoardConfig sets board dimensions and, optionally, a custom offset set
// given as [drow, dcol] pairs.
type BoardConfig struct {
	Rows    int      `yaml:"rows"`
	Cols    int      `yaml:"cols"`
	Offsets [][2]int `yaml:"offsets"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

// BatchConfig lists queries for the batch command.
type BatchConfig struct {
	Workers int         `yaml:"workers"`
	Queries []QueryConf `yaml:"queries"`
}

type QueryConf struct {
	ID   string       `yaml:"id"`
	From board.Square `yaml:"from"`
	To   board.Square `yaml:"to"`
}

// Default returns the standard 8×8 setup querying [0,0] → [7,7].
func Default() Config {
	return Config{
		Board:  BoardConfig{Rows: 8, Cols: 8},
		From:   board.Square{Row: 0, Col: 0},
		To:     board.Square{Row: 7, Col: 7},
		Format: string(report.Text),
		Log:    LogConfig{Level: "info"},
		Batch:  BatchConfig{Workers: runtime.NumCPU()},
	}
}

// Load reads path and overlays it on Default. An empty path returns the
// defaults. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks dimensions, offsets, format and worker count. Endpoint
// bounds are left to the search, which reports them as board.ErrOutOfBounds.
func (c Config) Validate() error {
	rows, cols := c.Board.Rows, c.Board.Cols
	if rows < 0 || cols < 0 || (cols != 0 && rows > board.MaxSquares/cols) {
		return fmt.Errorf("%w: board %dx%d", ErrInvalid, rows, cols)
	}
	if err := board.ValidateOffsets(c.offsets()...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("%w: batch.workers must be at least 1, got %d", ErrInvalid, c.Batch.Workers)
	}
	return nil
}

// BoardOptions converts the configured offsets, if any, into board options.
func (c Config) BoardOptions() []board.Option {
	if len(c.Board.Offsets) == 0 {
		return nil
	}
	return []board.Option{board.WithOffsets(c.offsets()...)}
}

func (c Config) offsets() []board.Offset {
	offs := make([]board.Offset, len(c.Board.Offsets))
	for i, o := range c.Board.Offsets {
		offs[i] = board.Offset{DRow: o[0], DCol: o[1]}
	}
	return offs
}

// NewBoard builds the configured board.
func (c Config) NewBoard() (*board.Board, error) {
	return board.NewBoard(c.Board.Rows, c.Board.Cols, c.BoardOptions()...)
}
