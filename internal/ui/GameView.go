package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"serpent/internal/game"
)

// --- Internal view phases for GameViewModel ---

type gamePhase int

const (
	phasePlaying gamePhase = iota
	phaseDying
	phaseGameOver
)

var (
	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("240"))

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	headStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	bodyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	foodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	pausedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true)

	headRunes = map[game.Direction]string{
		game.DirUp:    "▲",
		game.DirDown:  "▼",
		game.DirLeft:  "◀",
		game.DirRight: "▶",
	}

	// Burst fragments fade through three levels as they age.
	particleRunes  = [3]string{"▓", "▒", "░"}
	particleStyles = [3]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	}
)

// tickMsg drives the engine; frameMsg drives the death burst.
type tickMsg time.Time
type frameMsg time.Time

// --- GameViewModel Definition ---

type GameViewModel struct {
	session *Session
	game    *game.Game

	ScreenWidth  int
	ScreenHeight int

	phase         gamePhase
	particles     *particleField
	gameOverState GameOverState
}

func NewGameModel(session *Session, g *game.Game, screenWidth int, screenHeight int) GameViewModel {
	return GameViewModel{
		session:      session,
		game:         g,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		phase:        phasePlaying,
	}
}

// --- Init/Update/View Methods ---

func (m GameViewModel) Init() tea.Cmd {
	return m.tickCmd()
}

// tickCmd schedules the next engine tick at the current speed. Exactly
// one tick is ever in flight; each handled tick schedules its successor,
// so speed changes take effect on the very next move.
func (m GameViewModel) tickCmd() tea.Cmd {
	interval := time.Second / time.Duration(m.game.MovesPerSec)
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func frameCmd() tea.Cmd {
	return tea.Tick(particleFrame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		return m, nil

	case tickMsg:
		if m.phase != phasePlaying {
			// Stale tick from before a phase change; its chain is dead.
			return m, nil
		}
		res := m.game.Step()
		if res.Ate {
			m.session.Beeper.Eat()
		}
		if res.SpedUp {
			log.Debug("speed up", "moves_per_sec", m.game.MovesPerSec)
		}
		if res.Died {
			m.session.Beeper.GameOver()
			log.Info("run ended",
				"cause", res.Cause,
				"score", m.game.Score,
				"length", m.game.Snake.Len(),
				"speed", m.game.MovesPerSec)

			newBest := m.game.Score > m.session.Best
			m.session.RecordRun(m.game)
			m.gameOverState = GameOverState{NewBest: newBest}
			m.phase = phaseDying
			m.particles = newParticleField(m.game.Snake.Body, m.session.Rand)
			return m, frameCmd()
		}
		return m, m.tickCmd()

	case frameMsg:
		if m.phase != phaseDying {
			return m, nil
		}
		if m.particles.update(particleFrame.Seconds()) {
			m.phase = phaseGameOver
			return m, nil
		}
		return m, frameCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m GameViewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.phase == phaseGameOver {
		switch msg.String() {
		case "left", "h":
			m.gameOverState.SelectedButton = max(0, m.gameOverState.SelectedButton-1)
		case "right", "l":
			m.gameOverState.SelectedButton = min(len(gameOverButtons)-1, m.gameOverState.SelectedButton+1)
		case "enter", " ":
			switch m.gameOverState.SelectedButton {
			case 0:
				return m.restart()
			case 1:
				return m, func() tea.Msg { return ShowScoresMsg{} }
			default:
				return m, func() tea.Msg { return BackToMenuMsg{} }
			}
		case "r":
			return m.restart()
		case "esc":
			return m, func() tea.Msg { return BackToMenuMsg{} }
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	// Keys active while the board is on screen (playing, paused, dying).
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "r":
		return m.restart()
	case "m":
		on := m.session.Beeper.Toggle()
		log.Debug("sound toggled", "enabled", on)
		return m, nil
	}

	if m.phase != phasePlaying {
		return m, nil
	}

	switch m.game.State {
	case game.StatePaused:
		switch msg.String() {
		case "left", "a":
			m.game.AdjustSpeed(-1)
		case "right", "d":
			m.game.AdjustSpeed(1)
		case "p", "enter", " ":
			m.game.TogglePause()
		}
	case game.StateRunning:
		switch msg.String() {
		case "up", "w":
			m.game.QueueDirection(game.DirUp)
		case "down", "s":
			m.game.QueueDirection(game.DirDown)
		case "left", "a":
			m.game.QueueDirection(game.DirLeft)
		case "right", "d":
			m.game.QueueDirection(game.DirRight)
		case "p":
			m.game.TogglePause()
		}
	}
	return m, nil
}

// restart begins a fresh run at the pace the player reached. The tick
// chain is only restarted when the old one is already dead.
func (m GameViewModel) restart() (tea.Model, tea.Cmd) {
	chainAlive := m.phase == phasePlaying
	m.game.Reset()
	m.phase = phasePlaying
	m.particles = nil
	if chainAlive {
		return m, nil
	}
	return m, m.tickCmd()
}

func (m GameViewModel) View() string {
	if m.phase == phaseGameOver {
		return m.gameOverState.Render(m.session, m.game, m.ScreenWidth, m.ScreenHeight)
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top,
		mapViewStyle.Render(m.renderBoard()),
		statusPanelStyle.Render(m.renderStatusPanel()),
	)

	if m.ScreenWidth > 0 && m.ScreenHeight > 0 {
		return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

func (m GameViewModel) renderBoard() string {
	g := m.game

	var frag map[game.Cell]int
	if m.phase == phaseDying && m.particles != nil {
		frag = m.particles.fragments(g.Board)
	}

	bodyAt := make(map[game.Cell]int, g.Snake.Len())
	if m.phase == phasePlaying {
		for i, c := range g.Snake.Body {
			bodyAt[c] = i
		}
	}

	var sb strings.Builder
	for y := 0; y < g.Board.Height; y++ {
		for x := 0; x < g.Board.Width; x++ {
			c := game.Cell{X: x, Y: y}

			if fade, ok := frag[c]; ok {
				sb.WriteString(particleStyles[fade].Render(particleRunes[fade]))
				continue
			}
			if g.FoodActive && c == g.Food {
				sb.WriteString(foodStyle.Render("●"))
				continue
			}
			if i, ok := bodyAt[c]; ok {
				if i == 0 {
					sb.WriteString(headStyle.Render(headRunes[g.Dir()]))
				} else {
					sb.WriteString(bodyStyle.Render(m.bodyRune(i)))
				}
				continue
			}
			sb.WriteString(" ")
		}
		if y < g.Board.Height-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// bodyRune picks the box-drawing rune that connects segment i to its
// neighbors along the body.
func (m GameViewModel) bodyRune(i int) string {
	body := m.game.Snake.Body
	cur := body[i]

	var hasUp, hasDown, hasLeft, hasRight bool
	mark := func(n game.Cell) {
		switch {
		case n.X == cur.X && n.Y == cur.Y-1:
			hasUp = true
		case n.X == cur.X && n.Y == cur.Y+1:
			hasDown = true
		case n.Y == cur.Y && n.X == cur.X-1:
			hasLeft = true
		case n.Y == cur.Y && n.X == cur.X+1:
			hasRight = true
		}
	}
	mark(body[i-1])
	if i+1 < len(body) {
		mark(body[i+1])
	}

	switch {
	case hasUp && hasDown, hasUp && !hasLeft && !hasRight, hasDown && !hasLeft && !hasRight:
		return "│"
	case hasLeft && hasRight, hasLeft && !hasUp && !hasDown, hasRight && !hasUp && !hasDown:
		return "─"
	case hasUp && hasRight:
		return "└"
	case hasUp && hasLeft:
		return "┘"
	case hasDown && hasRight:
		return "┌"
	case hasDown && hasLeft:
		return "┐"
	default:
		return "•"
	}
}

func (m GameViewModel) renderStatusPanel() string {
	g := m.game
	var sb strings.Builder

	name := m.session.PlayerName
	if name == "" {
		name = "Player"
	}

	sb.WriteString(sectionStyle.Render("--- "+name+" ---") + "\n")
	sb.WriteString(fmt.Sprintf("Score:  %d\n", g.Score))
	sb.WriteString(fmt.Sprintf("Best:   %d\n", m.session.Best))
	sb.WriteString(fmt.Sprintf("Speed:  %d", g.MovesPerSec))
	if g.State == game.StatePaused {
		sb.WriteString("  " + pausedStyle.Render("[PAUSED]"))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Length: %d\n", g.Snake.Len()))
	sb.WriteString(fmt.Sprintf("Sound:  %s\n", onOff(m.session.Beeper.Enabled())))

	sb.WriteString("\n" + sectionStyle.Render("--- Controls ---") + "\n")
	if g.State == game.StatePaused {
		sb.WriteString("◀ / ▶: Adjust Speed\n")
		sb.WriteString("P / Enter: Resume\n")
	} else {
		sb.WriteString("WASD / Arrows: Move\n")
		sb.WriteString("P: Pause\n")
	}
	sb.WriteString("R: Restart\n")
	sb.WriteString("M: Sound On/Off\n")
	sb.WriteString("Q / Ctrl+C: Quit")

	return sb.String()
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
