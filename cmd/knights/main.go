// Command knights prints shortest knight-move paths between squares.
//
//	knights                      # [0,0] → [7,7] on an 8×8 board
//	knights path --from b1 --to g8 --format json
//	knights distances --from e4
//	knights neighbors --rows 3 --cols 3
//	knights batch --config knights.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
