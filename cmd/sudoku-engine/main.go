// Command sudoku-engine solves, checks, and serves classic 9×9 Sudoku
// puzzles.
//
// Usage:
//
//	sudoku-engine solve "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
//	sudoku-engine check --file puzzle.txt
//	sudoku-engine serve --addr :8080 --storage badger
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
