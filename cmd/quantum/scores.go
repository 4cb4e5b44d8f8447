package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/quantum-shift/internal/storage"
)

var (
	flagScoresPlayer string
	flagScoresLimit  int
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the run history",
	Long: `Display the best runs, or the latest runs of one player.

Examples:
  quantum scores
  quantum scores --limit 20
  quantum scores --player ada
  quantum scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show the latest runs of this player")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the whole history")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bestStyle   = cellStyle.Foreground(lipgloss.Color("10"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func runScores(cmd *cobra.Command, _ []string) error {
	_, e, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// Open score storage
	store, err := storage.Open(e.DBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	var (
		runs  []storage.Run
		title string
	)
	if flagScoresPlayer != "" {
		runs, err = store.RunsByPlayer(flagScoresPlayer, flagScoresLimit)
		title = "Latest Runs - " + flagScoresPlayer
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
		title = "Best Runs"
	}
	if err != nil {
		return err
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'quantum play' to set the first score!")
		return nil
	}

	fmt.Println(runsTable(runs))

	sum, err := store.Summary()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Runs: %d   Average: %.0f   Puzzles solved: %d\n",
		sum.HighScore, sum.Runs, sum.AvgScore, sum.PuzzlesSolved)
	return nil
}

// runsTable lays out runs one per row. The best score is highlighted.
func runsTable(runs []storage.Run) *table.Table {
	best := 0
	rows := make([][]string, len(runs))
	for i, r := range runs {
		best = max(best, r.Score)
		rows[i] = []string{
			strconv.Itoa(i + 1),
			r.Player,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.PuzzlesSolved),
			strconv.Itoa(r.WrongAnswers),
			fmt.Sprintf("%d/%d/%d", r.RealityShifts, r.TimeReversals, r.GravityFlips),
			(time.Duration(r.Duration) * time.Second).String(),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("#", "Player", "Score", "Solved", "Wrong", "R/T/G", "Time", "Date").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(runs) && runs[row].Score == best:
				return bestStyle
			default:
				return cellStyle
			}
		})
}
