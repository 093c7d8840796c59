// Package ui contains the Bubble Tea models that drive the terminal
// interface: the menu, the game board and the high-score screen.
package ui

import (
	"math/rand"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"serpent/internal/game"
	"serpent/internal/sound"
)

type Screen int

const (
	MenuScreen Screen = iota
	GameScreen
	ScoresScreen
)

// Messages for state transitions
type StartGameMsg struct {
	PlayerName string
	Speed      int
}

type ShowScoresMsg struct{}

type BackToMenuMsg struct{}

// Session is the state every screen shares: run configuration, the
// beeper, the score stores and the best score loaded at startup.
type Session struct {
	Config     game.Config
	Rand       *rand.Rand
	Beeper     *sound.Beeper
	BestStore  *game.BestScoreStore
	HighScores *game.HighScoreService // nil when the database is unavailable
	Best       int
	PlayerName string
}

// RecordRun persists a finished run: the best-score file when beaten and
// a high-score row when the database is available. Failures are logged
// and never interrupt the game.
func (s *Session) RecordRun(g *game.Game) {
	if g.Score > s.Best {
		s.Best = g.Score
		if err := s.BestStore.Save(s.Best); err != nil {
			log.Warn("could not save best score", "error", err)
		} else {
			log.Debug("new best score", "score", s.Best)
		}
	}

	if s.HighScores == nil {
		return
	}
	name := s.PlayerName
	if name == "" {
		name = "anonymous"
	}
	if err := s.HighScores.SaveHighScore(name, g.Score, g.Snake.Len(), g.MovesPerSec); err != nil {
		log.Warn("could not save high score", "error", err)
	}
}

type ControllerModel struct {
	Session       *Session
	CurrentScreen Screen

	MenuModel   tea.Model
	GameModel   tea.Model
	ScoresModel tea.Model

	ScreenWidth  int
	ScreenHeight int
}

func NewControllerModel(session *Session) ControllerModel {
	return ControllerModel{
		Session:       session,
		CurrentScreen: MenuScreen,
		MenuModel:     NewMenuModel(session),
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.MenuModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case MenuScreen:
		return m.MenuModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Game Loading..."
	case ScoresScreen:
		if m.ScoresModel != nil {
			return m.ScoresModel.View()
		}
		return "Scores Loading..."
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	// --- 1. Global handling (before the main switch) ---
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		// Every live screen keeps its own copy of the size.
		m.MenuModel, _ = m.MenuModel.Update(msg)
		if m.GameModel != nil {
			m.GameModel, _ = m.GameModel.Update(msg)
		}
		if m.ScoresModel != nil {
			m.ScoresModel, _ = m.ScoresModel.Update(msg)
		}
		return m, nil
	}

	// --- 2. State transition message handling ---
	switch msg := msg.(type) {
	case StartGameMsg:
		m.Session.PlayerName = msg.PlayerName
		cfg := m.Session.Config
		cfg.MovesPerSec = msg.Speed
		log.Info("starting run", "player", msg.PlayerName, "speed", msg.Speed)

		m.CurrentScreen = GameScreen
		m.GameModel = NewGameModel(m.Session, game.NewGame(cfg, m.Session.Rand), m.ScreenWidth, m.ScreenHeight)
		return m, m.GameModel.Init()

	case ShowScoresMsg:
		m.CurrentScreen = ScoresScreen
		m.ScoresModel = NewScoresModel(m.Session, m.ScreenWidth, m.ScreenHeight)
		return m, m.ScoresModel.Init()

	case BackToMenuMsg:
		m.CurrentScreen = MenuScreen
		m.MenuModel = NewMenuModel(m.Session)
		m.MenuModel, _ = m.MenuModel.Update(tea.WindowSizeMsg{Width: m.ScreenWidth, Height: m.ScreenHeight})
		return m, m.MenuModel.Init()

	default:
		// --- 3. Delegate everything else to the active screen ---
		switch m.CurrentScreen {
		case MenuScreen:
			m.MenuModel, cmd = m.MenuModel.Update(msg)
			cmds = append(cmds, cmd)
		case GameScreen:
			if m.GameModel != nil {
				m.GameModel, cmd = m.GameModel.Update(msg)
				cmds = append(cmds, cmd)
			}
		case ScoresScreen:
			if m.ScoresModel != nil {
				m.ScoresModel, cmd = m.ScoresModel.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}
