package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"serpent/internal/game"
)

// GameOverState holds the local state for the game-over overlay.
type GameOverState struct {
	SelectedButton int
	NewBest        bool
}

var gameOverButtons = [...]string{"RESTART", "HIGH SCORES", "MENU"}

// Styles for the game-over overlay
var (
	gameOverTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("9")).
				Padding(1, 5).
				Align(lipgloss.Center)

	gameOverButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Padding(0, 3).
				Margin(1, 1).
				Bold(true)

	gameOverSelectedStyle = gameOverButtonStyle.
				Background(lipgloss.Color("1")).
				Foreground(lipgloss.Color("15"))

	newBestStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true)

	gameOverHelpStyle = lipgloss.NewStyle().Faint(true).Margin(1, 0)
)

func causeLine(c game.DeathCause) string {
	switch c {
	case game.DeathCauseWallCollision:
		return "You hit the wall."
	case game.DeathCauseSelfCollision:
		return "You ran into yourself."
	default:
		return ""
	}
}

// Render draws the death message, the run's stats and the buttons.
func (s *GameOverState) Render(session *Session, g *game.Game, screenWidth, screenHeight int) string {
	title := gameOverTitleStyle.Render("💀 G A M E   O V E R 💀")

	stats := fmt.Sprintf("%s\n\nScore: %d      Length: %d      Speed: %d",
		causeLine(g.Cause), g.Score, g.Snake.Len(), g.MovesPerSec)

	best := fmt.Sprintf("Best: %d", session.Best)
	if s.NewBest {
		best += "  " + newBestStyle.Render("★ NEW BEST ★")
	}

	buttons := make([]string, 0, len(gameOverButtons))
	for i, label := range gameOverButtons {
		style := gameOverButtonStyle
		if i == s.SelectedButton {
			style = gameOverSelectedStyle
		}
		buttons = append(buttons, style.Render(label))
	}
	buttonRow := lipgloss.JoinHorizontal(lipgloss.Center, buttons...)

	help := gameOverHelpStyle.Render("◀ ▶ select · Enter confirm · R restart · ESC menu · Q quit")

	content := lipgloss.JoinVertical(lipgloss.Center, title, stats, best, buttonRow, help)
	box := lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(content)

	if screenWidth > 0 && screenHeight > 0 {
		return lipgloss.Place(screenWidth, screenHeight, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}
