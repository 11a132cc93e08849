package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knights/board"
	"github.com/katalvlaran/knights/internal/config"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// TestDefaultQuery runs the bare command: [0,0] → [7,7] on 8×8.
func TestDefaultQuery(t *testing.T) {
	out, logs, err := run(t)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 8)
	require.Equal(t, "moves: 6", lines[0])
	require.Equal(t, "Node[0, 0] -> (distance:0, predecessor:none)", lines[1])
	require.Equal(t, "Node[7, 7] -> (distance:6, predecessor:Node[5, 6])", lines[7])
	require.Contains(t, logs, `"message":"path found"`)
	require.Contains(t, logs, `"moves":6`)
}

// TestPath_JSON checks algebraic input and structured output.
func TestPath_JSON(t *testing.T) {
	out, _, err := run(t, "path", "--from", "a1", "--to", "h8", "--format", "json")
	require.NoError(t, err)

	var sol struct {
		From  string `json:"from"`
		To    string `json:"to"`
		Moves int    `json:"moves"`
		Steps []any  `json:"steps"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &sol))
	require.Equal(t, "0,0", sol.From)
	require.Equal(t, "7,7", sol.To)
	require.Equal(t, 6, sol.Moves)
	require.Len(t, sol.Steps, 7)
}

// TestPath_OutOfBounds rejects a destination beyond the last row.
func TestPath_OutOfBounds(t *testing.T) {
	out, _, err := run(t, "path", "--to", "8,0")
	require.ErrorIs(t, err, board.ErrOutOfBounds)
	require.Empty(t, out)
}

// TestPath_BadNotation rejects unparsable squares.
func TestPath_BadNotation(t *testing.T) {
	_, _, err := run(t, "--from", "??")
	require.ErrorIs(t, err, board.ErrBadNotation)
}

// TestPath_Dump prints the adjacency before the path on a 3×3 board.
func TestPath_Dump(t *testing.T) {
	out, _, err := run(t, "path", "--rows", "3", "--cols", "3", "--to", "2,2", "--dump")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "[0,0] neighbors: [1,2] [2,1]\n"), out)
	require.Contains(t, out, "[1,1] neighbors:\n")
	require.Contains(t, out, "moves: 4\n")
}

// TestPath_Unreachable reports an isolated square without failing.
func TestPath_Unreachable(t *testing.T) {
	out, logs, err := run(t, "--rows", "3", "--cols", "3", "--to", "1,1")
	require.NoError(t, err)
	require.Equal(t, "moves: -1\nno path from [0,0] to [1,1]\n", out)
	require.Contains(t, logs, "destination unreachable")
}

// TestDistances renders the distance grid.
func TestDistances(t *testing.T) {
	out, _, err := run(t, "distances", "--rows", "3", "--cols", "3")
	require.NoError(t, err)
	require.Equal(t, "0 3 2\n3 . 1\n2 1 4\n", out)
}

// TestNeighbors_YAML emits the adjacency list as YAML.
func TestNeighbors_YAML(t *testing.T) {
	out, _, err := run(t, "neighbors", "--rows", "3", "--cols", "3", "-f", "yaml")
	require.NoError(t, err)
	require.Contains(t, out, "0,0")
	require.Equal(t, 9, strings.Count(out, "square:"))
}

// TestInvalidFormat fails validation before any work.
func TestInvalidFormat(t *testing.T) {
	_, _, err := run(t, "--format", "xml")
	require.ErrorIs(t, err, config.ErrInvalid)
}

// TestOversizedBoard fails validation instead of allocating the board.
func TestOversizedBoard(t *testing.T) {
	out, _, err := run(t, "--rows", "4294967296", "--cols", "4294967296")
	require.ErrorIs(t, err, config.ErrInvalid)
	require.Empty(t, out)
}

// TestBatch runs queries from a config file.
func TestBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knights.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: warn
batch:
  workers: 2
  queries:
    - id: corner
      from: a1
      to: h8
    - id: diag
      from: "0,0"
      to: "1,1"
`), 0o600))

	out, _, err := run(t, "batch", "--config", path)
	require.NoError(t, err)
	require.Equal(t,
		"corner: [0,0] -> [7,7] moves: 6\n"+
			"diag: [0,0] -> [1,1] moves: 4\n",
		out)
}

// TestBatch_Failure reports failed queries and exits with an error.
func TestBatch_Failure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knights.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
batch:
  queries:
    - id: off
      from: a1
      to: "9,9"
`), 0o600))

	out, _, err := run(t, "batch", "-c", path, "-w", "1")
	require.Error(t, err)
	require.Contains(t, out, "off: error:")
}

// TestBatch_Empty requires configured queries.
func TestBatch_Empty(t *testing.T) {
	_, _, err := run(t, "batch")
	require.Error(t, err)
}
