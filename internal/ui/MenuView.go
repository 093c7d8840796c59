package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"serpent/internal/game"
)

var serpentBanner = `
 ____  _____ ____  ____  _____ _   _ _____
/ ___|| ____|  _ \|  _ \| ____| \ | |_   _|
\___ \|  _| | |_) || |_) |  _| |  \| | | |
 ___) | |___|  _ < |  __/| |___| |\  | | |
|____/|_____|_| \_\|_|   |_____|_| \_| |_|
`

// Define styles
var (
	focusedColor = lipgloss.Color("205")
	blurredColor = lipgloss.Color("240")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(blurredColor)
	helpStyle    = blurredStyle

	asciiStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("87"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)

	menuButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Padding(0, 3).
			Margin(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(blurredColor)

	menuSelectedStyle = menuButtonStyle.
				Background(lipgloss.Color("87")).
				Foreground(lipgloss.Color("0")).
				BorderForeground(lipgloss.Color("87"))
)

// Focus order on the menu screen.
const (
	menuFocusName = iota
	menuFocusSpeed
	menuFocusStart
	menuFocusScores
)

// MenuModel holds the state for the main menu: player name, starting
// speed and the two action buttons.
type MenuModel struct {
	session *Session

	nameInput  textinput.Model
	speed      int
	focusIndex int

	width  int
	height int
}

func NewMenuModel(session *Session) MenuModel {
	ti := textinput.New()
	ti.Placeholder = "anonymous"
	ti.CharLimit = 20
	ti.Width = 20
	ti.PromptStyle = focusedStyle
	ti.TextStyle = focusedStyle
	ti.SetValue(session.PlayerName)
	ti.Focus()

	return MenuModel{
		session:    session,
		nameInput:  ti,
		speed:      session.Config.MovesPerSec,
		focusIndex: menuFocusName,
	}
}

// Init sends a command to start the cursor blinking.
func (m MenuModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		s := msg.String()

		if s == "esc" {
			return m, tea.Quit
		}

		// Quit and sound keys only work away from the name field, where
		// the letters belong to the player's name.
		if m.focusIndex != menuFocusName {
			switch s {
			case "q":
				return m, tea.Quit
			case "m":
				m.session.Beeper.Toggle()
				return m, nil
			}
		}

		// Focus navigation
		if s == "enter" || s == "tab" || s == "shift+tab" || s == "up" || s == "down" {
			var cmd tea.Cmd
			switch m.focusIndex {
			case menuFocusName:
				switch s {
				case "enter", "tab", "down":
					m.focusIndex = menuFocusSpeed
					m.nameInput.Blur()
				case "shift+tab", "up":
					m.focusIndex = menuFocusScores
					m.nameInput.Blur()
				}

			case menuFocusSpeed:
				switch s {
				case "enter", "tab", "down":
					m.focusIndex = menuFocusStart
				case "shift+tab", "up":
					m.focusIndex = menuFocusName
					cmd = m.nameInput.Focus()
				}

			case menuFocusStart:
				switch s {
				case "enter":
					return m, m.submit()
				case "tab", "down":
					m.focusIndex = menuFocusScores
				case "shift+tab", "up":
					m.focusIndex = menuFocusSpeed
				}

			case menuFocusScores:
				switch s {
				case "enter":
					return m, func() tea.Msg { return ShowScoresMsg{} }
				case "tab", "down":
					m.focusIndex = menuFocusName
					cmd = m.nameInput.Focus()
				case "shift+tab", "up":
					m.focusIndex = menuFocusStart
				}
			}
			return m, cmd
		}

		// Left/right adjust the speed or hop between the buttons.
		switch m.focusIndex {
		case menuFocusSpeed:
			switch s {
			case "left":
				m.speed = max(m.speed-1, game.MinMovesPerSec)
				return m, nil
			case "right":
				m.speed = min(m.speed+1, game.MaxMovesPerSec)
				return m, nil
			}
		case menuFocusStart:
			if s == "right" || s == "l" {
				m.focusIndex = menuFocusScores
				return m, nil
			}
		case menuFocusScores:
			if s == "left" || s == "h" {
				m.focusIndex = menuFocusStart
				return m, nil
			}
		}

		// Everything else goes to the name field when it has focus.
		if m.focusIndex == menuFocusName {
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m MenuModel) submit() tea.Cmd {
	name := strings.TrimSpace(m.nameInput.Value())
	speed := m.speed
	return func() tea.Msg {
		return StartGameMsg{PlayerName: name, Speed: speed}
	}
}

func (m MenuModel) View() string {
	center := func(s string) string {
		if m.width <= 0 {
			return s
		}
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder

	b.WriteString(center(asciiStyle.Render(serpentBanner)))
	b.WriteString(center(subtitleStyle.Render("the terminal snake")))
	b.WriteString("\n\n")

	b.WriteString(center(fmt.Sprintf("Best score: %d", m.session.Best)))
	b.WriteString("\n\n")

	// Name field
	nameLabel := "Name "
	if m.focusIndex == menuFocusName {
		nameLabel = focusedStyle.Render(nameLabel)
	} else {
		nameLabel = blurredStyle.Render(nameLabel)
	}
	b.WriteString(center(nameLabel + m.nameInput.View()))
	b.WriteString("\n")

	// Speed selector
	speedLine := fmt.Sprintf("Speed  ◀ %2d moves/sec ▶", m.speed)
	if m.focusIndex == menuFocusSpeed {
		speedLine = focusedStyle.Render(speedLine)
	} else {
		speedLine = blurredStyle.Render(speedLine)
	}
	b.WriteString(center(speedLine))
	b.WriteString("\n")

	// Buttons
	start := menuButtonStyle.Render("Start Game")
	scores := menuButtonStyle.Render("High Scores")
	if m.focusIndex == menuFocusStart {
		start = menuSelectedStyle.Render("Start Game")
	} else if m.focusIndex == menuFocusScores {
		scores = menuSelectedStyle.Render("High Scores")
	}
	b.WriteString(center(lipgloss.JoinHorizontal(lipgloss.Center, start, scores)))
	b.WriteString("\n")

	b.WriteString(center(fmt.Sprintf("Sound: %s", onOff(m.session.Beeper.Enabled()))))
	b.WriteString("\n\n")

	b.WriteString(center(helpStyle.Render("(tab/shift+tab to navigate, enter to confirm, m for sound, esc to quit)")))

	if m.width <= 0 || m.height <= 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
