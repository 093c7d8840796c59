package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"serpent/internal/game"
	"serpent/internal/sound"
	"serpent/internal/ui"
)

var (
	flagWidth     int
	flagHeight    int
	flagSpeed     int
	flagScoreFile string
	flagDBPath    string
	flagNoSound   bool
	flagDebug     bool
)

const version = "1.1.0"

var rootCmd = &cobra.Command{
	Use:     "serpent",
	Version: version,
	Short:   "A classic snake game for the terminal",
	Long: `serpent runs the classic arcade snake in your terminal: steer onto
food to grow, speed up every few bites, and stay off the walls and
your own tail. Finished runs land in a local SQLite high-score table;
the best score lives in a plain-text file next to it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGame,
}

func init() {
	rootCmd.Flags().IntVar(&flagWidth, "width", game.DefaultBoardWidth, "board width in cells")
	rootCmd.Flags().IntVar(&flagHeight, "height", game.DefaultBoardHeight, "board height in cells")
	rootCmd.Flags().IntVar(&flagSpeed, "speed", game.DefaultMovesPerSec, "starting speed in moves per second")
	rootCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "start with the terminal bell muted")

	rootCmd.PersistentFlags().StringVar(&flagScoreFile, "score-file", game.DefaultBestScorePath, "path of the best-score file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", game.DefaultHighScorePath, "path of the high-score database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "write debug logs to serpent-debug.log")

	rootCmd.AddCommand(scoresCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "serpent:", err)
		os.Exit(1)
	}
}

// setupLogging sends logs to a file in debug mode and discards them
// otherwise. The alt-screen renderer owns stdout, so logs can never go
// there.
func setupLogging() {
	if !flagDebug {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile("serpent-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
}

func runGame(cmd *cobra.Command, args []string) error {
	setupLogging()

	cfg := game.Config{
		BoardWidth:  flagWidth,
		BoardHeight: flagHeight,
		StartLength: game.DefaultStartLength,
		MovesPerSec: flagSpeed,
	}

	bestStore := game.NewBestScoreStore(flagScoreFile)

	var highScores *game.HighScoreService
	if svc, err := game.NewHighScoreService(flagDBPath); err != nil {
		log.Warn("high-score database unavailable, leaderboard disabled", "error", err)
	} else {
		highScores = svc
		defer highScores.Close()
	}

	beeper := sound.NewBeeper(os.Stdout)
	if flagNoSound {
		beeper.SetEnabled(false)
	}
	if !beeper.Available() {
		log.Info("terminal bell unavailable, sound disabled")
	}

	session := &ui.Session{
		Config:     cfg,
		Rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
		Beeper:     beeper,
		BestStore:  bestStore,
		HighScores: highScores,
		Best:       bestStore.Load(),
	}

	p := tea.NewProgram(ui.NewControllerModel(session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("could not start the game ui: %w", err)
	}
	return nil
}
