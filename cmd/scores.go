package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"serpent/internal/game"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the best score and the high-score table",
	RunE:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "maximum number of rows to print")
}

func runScores(cmd *cobra.Command, args []string) error {
	setupLogging()

	best := game.NewBestScoreStore(flagScoreFile).Load()
	fmt.Printf("Best score: %d\n\n", best)

	svc, err := game.NewHighScoreService(flagDBPath)
	if err != nil {
		return err
	}
	defer svc.Close()

	scores, err := svc.GetHighScores(flagScoresLimit, 0)
	if err != nil {
		return err
	}
	total, err := svc.GetTotalScoreCount()
	if err != nil {
		return err
	}

	if total == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tPLAYER\tSCORE\tLENGTH\tSPEED\tWHEN")
	for i, s := range scores {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%s\n",
			i+1, s.PlayerName, s.Points, s.SnakeLength, s.Speed,
			s.CreatedAt.Format("2006-01-02 15:04"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if total > len(scores) {
		fmt.Printf("\n%d more run(s) recorded.\n", total-len(scores))
	}
	return nil
}
