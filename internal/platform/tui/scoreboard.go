package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/grass-snake/internal/storage"
)

// maxScores is the number of sessions listed on the top runs screen.
const maxScores = 20

// History records finished sessions and lists the best ones.
type History interface {
	RecordSession(sess storage.Session) (string, error)
	TopSessions(limit int) ([]storage.Session, error)
}

// scoreboard is the top runs screen shown from the game-over screen.
type scoreboard struct {
	table    table.Model
	sessions []storage.Session
	current  string // ID of the session just played
	err      error
	width    int
	height   int
}

// newScoreboard loads the best sessions and builds the table.
func newScoreboard(history History, current string, width, height int) scoreboard {
	s := scoreboard{current: current, width: width, height: height}
	if history != nil {
		s.sessions, s.err = history.TopSessions(maxScores)
	}
	s.table = s.createTable()
	s.updateTableRows()
	return s
}

// createTable creates a new table with appropriate columns.
func (s *scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Length", Width: 7},
		{Title: "Foods", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "Played", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, s.height-8)), // Leave room for header, help, and margins
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(st)

	return t
}

// updateTableRows fills the table and moves the cursor to the session
// just played when it made the list.
func (s *scoreboard) updateTableRows() {
	rows := make([]table.Row, len(s.sessions))
	cursor := 0
	for i, sess := range s.sessions {
		rank := fmt.Sprintf("#%d", i+1)
		if sess.ID == s.current {
			rank = "▶" + rank
			cursor = i
		}
		rows[i] = table.Row{
			rank,
			humanize.Comma(int64(sess.Score)),
			fmt.Sprintf("%d", sess.Length),
			fmt.Sprintf("%d", sess.Normal+sess.Gold+sess.Poison+sess.Timer),
			sess.Duration.Round(time.Second).String(),
			humanize.Time(sess.CreatedAt),
		}
	}
	s.table.SetRows(rows)
	s.table.SetCursor(cursor)
}

// resize rebuilds the table for a new terminal size.
func (s *scoreboard) resize(width, height int) {
	s.width = width
	s.height = height
	s.table = s.createTable()
	s.updateTableRows()
}

// update passes scrolling keys to the table.
func (s scoreboard) update(msg tea.Msg) (scoreboard, tea.Cmd) {
	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

// view renders the scoreboard.
func (s scoreboard) view() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("TOP RUNS", s.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	switch {
	case s.err != nil:
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Padding(2, 4).
			Render("Could not load session history.")
	case len(s.sessions) == 0:
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No sessions recorded yet.\nPlay a game to set a high score!")
	default:
		content = s.table.View()
	}

	b.WriteString(lipgloss.PlaceHorizontal(s.width, lipgloss.Center, tableStyle.Render(content)))
	return b.String()
}

// centerText pads text on the left so it sits in the middle of width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
