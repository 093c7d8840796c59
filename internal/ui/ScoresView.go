package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"serpent/internal/game"
)

const scoresPageSize = 10

// Styles for the high-score table
var (
	leaderboardTitleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 0)

	leaderboardHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("236")).
				Padding(0, 1).
				Align(lipgloss.Center)

	leaderboardRowStyle = lipgloss.NewStyle().Padding(0, 1)

	leaderboardTopStyle = leaderboardRowStyle.
				Foreground(lipgloss.Color("220")).
				Bold(true)

	leaderboardBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("8"))

	leaderboardHelpStyle = lipgloss.NewStyle().Faint(true).Margin(1, 0)
)

// scoresLoadedMsg delivers the table contents fetched off the UI path.
type scoresLoadedMsg struct {
	scores []game.Score
	total  int
	err    error
}

// ScoresModel shows the persisted high-score table.
type ScoresModel struct {
	session *Session

	scores []game.Score
	total  int
	err    error
	loaded bool

	width  int
	height int
}

func NewScoresModel(session *Session, w, h int) ScoresModel {
	return ScoresModel{session: session, width: w, height: h}
}

func (m ScoresModel) Init() tea.Cmd {
	return m.loadScores
}

func (m ScoresModel) loadScores() tea.Msg {
	if m.session.HighScores == nil {
		return scoresLoadedMsg{err: errors.New("high-score database unavailable")}
	}
	scores, err := m.session.HighScores.GetHighScores(scoresPageSize, 0)
	if err != nil {
		return scoresLoadedMsg{err: err}
	}
	total, err := m.session.HighScores.GetTotalScoreCount()
	if err != nil {
		return scoresLoadedMsg{err: err}
	}
	return scoresLoadedMsg{scores: scores, total: total}
}

func (m ScoresModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case scoresLoadedMsg:
		m.loaded = true
		m.scores = msg.scores
		m.total = msg.total
		m.err = msg.err
		if msg.err != nil {
			log.Warn("could not load high scores", "error", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "b":
			return m, func() tea.Msg { return BackToMenuMsg{} }
		case "q":
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m ScoresModel) View() string {
	title := leaderboardTitleStyle.Render("👑 HIGH SCORES 👑")
	bestLine := fmt.Sprintf("Best score: %d", m.session.Best)
	help := leaderboardHelpStyle.Render("Press ESC or ENTER to return to the menu.")

	var body string
	switch {
	case !m.loaded:
		body = "Loading scores..."
	case m.err != nil:
		body = "High scores unavailable.\n" + helpStyle.Render(m.err.Error())
	case len(m.scores) == 0:
		body = "No runs recorded yet. Go eat something."
	default:
		body = m.renderTable()
	}

	content := lipgloss.JoinVertical(lipgloss.Center, title, bestLine, "", body, help)
	box := lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 2).Render(content)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

func (m ScoresModel) renderTable() string {
	const (
		rankWidth  = 4
		nameWidth  = 20
		scoreWidth = 7
		lenWidth   = 8
		speedWidth = 7
		dateWidth  = 17
	)

	var table strings.Builder

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		leaderboardHeaderStyle.Width(rankWidth).Render("#"),
		leaderboardHeaderStyle.Width(nameWidth).Render("Player"),
		leaderboardHeaderStyle.Width(scoreWidth).Render("Score"),
		leaderboardHeaderStyle.Width(lenWidth).Render("Length"),
		leaderboardHeaderStyle.Width(speedWidth).Render("Speed"),
		leaderboardHeaderStyle.Width(dateWidth).Render("When"),
	)
	table.WriteString(header + "\n")

	for i, score := range m.scores {
		rowStyle := leaderboardRowStyle
		if i == 0 {
			rowStyle = leaderboardTopStyle
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top,
			rowStyle.Width(rankWidth).Render(strconv.Itoa(i+1)),
			rowStyle.Width(nameWidth).Render(score.PlayerName),
			rowStyle.Width(scoreWidth).Render(strconv.Itoa(score.Points)),
			rowStyle.Width(lenWidth).Render(strconv.Itoa(score.SnakeLength)),
			rowStyle.Width(speedWidth).Render(strconv.Itoa(score.Speed)),
			rowStyle.Width(dateWidth).Render(score.CreatedAt.Format("2006-01-02 15:04")),
		)
		table.WriteString(leaderboardBorderStyle.Render(row) + "\n")
	}

	if m.total > len(m.scores) {
		table.WriteString(helpStyle.Render(fmt.Sprintf("...and %d more recorded run(s)", m.total-len(m.scores))))
	}

	return table.String()
}
