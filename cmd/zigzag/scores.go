package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zigzag/internal/platform/tui"
	"github.com/vovakirdan/zigzag/internal/storage"
)

var (
	flagScoresLimit int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best finished runs and the lifetime stats.

Examples:
  zigzag scores
  zigzag scores --limit 25
  zigzag scores --interactive
  zigzag scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the scrollable scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Println("Score history cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, "Zigzag", width, height)
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	fmt.Println(titleStyle.Render("High Scores - Zigzag"))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'zigzag play' to set the first high score!")
		return nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Rank", "Score", "Date").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for i, entry := range scores {
		t.Row(strconv.Itoa(i+1), strconv.Itoa(entry.Score), entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println(t.Render())

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println(dimStyle.Render(fmt.Sprintf("Runs: %d  Best: %d  Avg: %.1f",
			stats.GamesCount, stats.HighScore, stats.AvgScore)))
	}
	if best, err := store.ReadStat(gameID, "bestScore"); err == nil {
		fmt.Println(dimStyle.Render(fmt.Sprintf("Recorded best: %d", best)))
	}
	if played, err := store.ReadStat(gameID, "gamesPlayed"); err == nil {
		fmt.Println(dimStyle.Render(fmt.Sprintf("Games started: %d", played)))
	}
	return nil
}
