package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-shift/internal/puzzle"
)

var (
	flagPuzzleQuantum    bool
	flagPuzzleDifficulty string
	flagPuzzleCount      int
)

var puzzleCmd = &cobra.Command{
	Use:   "puzzle",
	Short: "Print sample puzzles",
	Long: `Generate puzzles the way the game does and print them with answers.

Difficulty is one of easy, medium or hard.

Examples:
  quantum puzzle
  quantum puzzle --quantum --difficulty hard -n 10
  quantum puzzle --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPuzzle,
}

func init() {
	puzzleCmd.Flags().BoolVar(&flagPuzzleQuantum, "quantum", false, "Use the quantum reality operators")
	puzzleCmd.Flags().StringVar(&flagPuzzleDifficulty, "difficulty", "easy", "Difficulty tier")
	puzzleCmd.Flags().IntVarP(&flagPuzzleCount, "count", "n", 5, "Number of puzzles")
}

func runPuzzle(cmd *cobra.Command, _ []string) error {
	_, e, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	d, err := puzzle.ParseDifficulty(flagPuzzleDifficulty)
	if err != nil {
		return err
	}

	seed := e.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := puzzle.NewGenerator(seed)

	for i := 0; i < flagPuzzleCount; i++ {
		p, err := gen.GenerateFor(flagPuzzleQuantum, d)
		if err != nil {
			return err
		}
		fmt.Printf("%-28s = %s\n", p.Question, strconv.FormatFloat(p.Answer, 'f', -1, 64))
	}
	return nil
}
