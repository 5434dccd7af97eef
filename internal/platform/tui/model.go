package tui

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grass-snake/internal/core"
	"github.com/vovakirdan/grass-snake/internal/highscore"
	"github.com/vovakirdan/grass-snake/internal/snake"
	"github.com/vovakirdan/grass-snake/internal/storage"
)

// screenMode is the screen currently shown.
type screenMode int

const (
	modeStart screenMode = iota
	modePlaying
	modeOver
	modeScores
)

// helpRows is the number of terminal lines reserved for the help bar.
const helpRows = 1

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

// Options configures a game run.
type Options struct {
	Rules         snake.Rules
	Tracker       *highscore.Tracker
	History       History     // optional session history
	Logger        *log.Logger // optional
	Seed          int64       // 0 picks a time-based seed per session
	Width         int
	Height        int
	ScreenshotDir string           // defaults to ~/.snake/screenshots
	Clock         func() time.Time // defaults to time.Now
}

// Model is the Bubble Tea model driving the start screen, the game and
// the game-over screen.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	keys     *KeyMapper
	help     help.Model
	tracker  *highscore.Tracker
	history  History
	logger   *log.Logger
	clock    func() time.Time
	config   core.RuntimeConfig
	baseSeed int64
	sessions int
	shotDir  string

	mode       screenMode
	inputFrame core.InputFrame
	gameState  core.GameState
	hover      bool
	newRecord  bool
	lastID     string // history ID of the last finished session
	board      scoreboard
	status     string
	width      int
	height     int
	quitting   bool
}

// NewModel creates the model on its start screen.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		def := core.DefaultConfig()
		width, height = def.ScreenW, def.ScreenH
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = defaultScreenshotDir()
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: max(1, height-helpRows),
		Seed:    opts.Seed,
	}
	game := snake.New(opts.Rules)
	game.SetClock(clock)
	game.SetHighScore(opts.Tracker.Best())
	game.Reset(cfg)

	h := help.New()
	h.Width = width

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:       NewKeyMapper(),
		help:       h,
		tracker:    opts.Tracker,
		history:    opts.History,
		logger:     logger,
		clock:      clock,
		config:     cfg,
		baseSeed:   opts.Seed,
		shotDir:    shotDir,
		mode:       modeStart,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		width:      width,
		height:     height,
	}
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".snake", "screenshots")
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.gameState.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	if m.mode == modeScores {
		var cmd tea.Cmd
		m.board, cmd = m.board.update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input for the current screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()

	switch {
	case key.Matches(msg, keys.ForceQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Screenshot):
		if m.mode == modePlaying || m.mode == modeOver {
			m.saveScreenshot()
		}
		return m, nil
	}

	switch m.mode {
	case modeStart:
		if m.keys.MapKey(msg) == core.ActionConfirm {
			m.startSession()
		}

	case modePlaying:
		m.keys.MapKeyToFrame(msg, &m.inputFrame)

	case modeOver:
		switch m.keys.MapKey(msg) {
		case core.ActionRestart:
			m.startSession()
		case core.ActionQuit:
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, keys.Scores) && m.history != nil {
			m.board = newScoreboard(m.history, m.lastID, m.width, m.height-helpRows)
			m.mode = modeScores
		}

	case modeScores:
		switch {
		case key.Matches(msg, keys.Back):
			m.mode = modeOver
		case key.Matches(msg, keys.Restart):
			m.startSession()
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.board, cmd = m.board.update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// handleMouse tracks hovering over the start button and starts the game
// on a left click inside it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeStart {
		return m, nil
	}

	btn := startButton(m.screen.Width(), m.screen.Height())
	m.hover = btn.Contains(msg.X, msg.Y)
	if m.hover && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.startSession()
	}
	return m, nil
}

// handleResize processes window resize events. The session keeps going;
// the game pauses itself while the board does not fit.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(1, msg.Height-helpRows)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	if m.mode == modeScores {
		m.board.resize(m.width, m.config.ScreenH)
	}
	return m, nil
}

// handleTick processes simulation ticks. The clock keeps running on every
// screen so only one tick loop ever exists.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.mode != modePlaying {
		return m, tickCmd(m.gameState.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if m.gameState.GameOver {
		m.endSession()
	}

	return m, tickCmd(m.gameState.TickRate)
}

// startSession resets the game and switches to the playing screen.
func (m *Model) startSession() {
	if m.baseSeed != 0 {
		m.config.Seed = m.baseSeed + int64(m.sessions)
	} else {
		m.config.Seed = m.clock().UnixNano()
	}
	m.sessions++

	m.game.SetHighScore(m.tracker.Best())
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.newRecord = false
	m.lastID = ""
	m.status = ""
	m.mode = modePlaying

	m.logger.Info("session started", "seed", m.config.Seed)
}

// endSession submits the final score and records the session. Both writes
// are best effort: failures are logged and the player never sees them.
func (m *Model) endSession() {
	sum := m.game.Summary()

	record, err := m.tracker.Submit(sum.Score)
	if err != nil {
		m.logger.Warn("could not save high score", "score", sum.Score, "error", err)
	}
	m.newRecord = record
	m.game.SetHighScore(m.tracker.Best())
	m.mode = modeOver

	m.logger.Info("session ended",
		"score", sum.Score,
		"length", sum.Length,
		"speed", sum.TopSpeed,
		"duration", sum.Duration,
		"record", record,
	)
	m.logger.Debug("final state\n" + m.game.DebugState())

	if m.history == nil {
		return
	}
	id, err := m.history.RecordSession(storage.Session{
		Score:     sum.Score,
		Length:    sum.Length,
		TopSpeed:  sum.TopSpeed,
		Normal:    sum.Eaten[snake.KindNormal],
		Gold:      sum.Eaten[snake.KindGold],
		Poison:    sum.Eaten[snake.KindPoison],
		Timer:     sum.Eaten[snake.KindTimer],
		Duration:  sum.Duration,
		NewRecord: record,
	})
	if err != nil {
		m.logger.Warn("could not record session", "error", err)
		return
	}
	m.lastID = id
}

// saveScreenshot writes the board as a PNG.
func (m *Model) saveScreenshot() {
	path, err := SaveScreenshot(m.game.Snapshot(), m.shotDir, m.clock())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.status = "screenshot failed"
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + path
}

// View renders the current screen and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	k := m.keys.Keys()
	palette := m.game.Rules().Palette

	var body string
	var bindings helpKeys
	switch m.mode {
	case modeStart:
		drawStart(m.screen, palette, m.tracker.Best(), m.hover)
		body = RenderScreen(m.screen)
		bindings = helpKeys{k.Start, k.ForceQuit}

	case modePlaying:
		m.game.Render(m.screen)
		body = RenderScreen(m.screen)
		bindings = helpKeys{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Screenshot, k.ForceQuit}

	case modeOver:
		drawGameOver(m.screen, palette, m.gameState.Score, m.tracker.Best(), m.newRecord)
		body = RenderScreen(m.screen)
		bindings = helpKeys{k.Restart, k.Quit, k.Screenshot}
		if m.history != nil {
			bindings = append(bindings, k.Scores)
		}

	case modeScores:
		body = m.board.view()
		bindings = helpKeys{k.Up, k.Down, k.Back, k.Restart, k.Quit}
	}

	footer := m.help.View(bindings)
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "  " + footer
	}
	return body + "\n" + footer
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a pressed button
	)

	_, err := p.Run()
	return err
}
