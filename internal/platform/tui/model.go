package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// helpHeight is the row reserved below the game for the key help line.
const helpHeight = 1

// debugStater is implemented by games that can dump their internal state.
type debugStater interface {
	DebugState() string
}

// Model is the Bubble Tea model that drives one game: it feeds key input
// into the game once per tick, draws the game screen and records finished
// rounds in the store.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store // nil disables persistence
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	roundID    uuid.UUID
	quitting   bool
	roundSaved bool // Whether the current round has been stored
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		roundID:    uuid.New(),
	}
}

// Init starts the tick loop. The game is reset before the program starts.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Start resets the game for the first round.
func (m *Model) Start() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logger.Info("round started", "game", m.game.ID(), "round", m.roundID, "seed", m.config.Seed)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.keys.IsScreenshot(msg):
		m.saveScreenshot()
		return m, nil
	case m.keys.IsHelp(msg):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.finishRound(storage.StatusQuit)
		m.quitting = true
		return m, tea.Quit
	}

	// Restart is only meaningful once the round is over
	if m.inputFrame.Has(core.ActionRestart) && !m.gameState.GameOver {
		m.inputFrame.Unset(core.ActionRestart)
	}
	return m, nil
}

// handleResize processes window resize events. The maze has a fixed size,
// so the round keeps going and the game draws a notice if it no longer fits.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case wasOver && !m.gameState.GameOver:
		m.roundID = uuid.New()
		m.roundSaved = false
		m.logger.Info("round started", "game", m.game.ID(), "round", m.roundID)
	case !wasOver && m.gameState.GameOver:
		status := storage.StatusLost
		if m.gameState.Won {
			status = storage.StatusWon
		}
		m.finishRound(status)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// finishRound logs the round result and stores it once. Rounds without
// points are not stored.
func (m *Model) finishRound(status string) {
	if m.roundSaved {
		return
	}
	m.roundSaved = true

	result := storage.RoundResult{
		RoundID: m.roundID,
		GameID:  m.game.ID(),
		Score:   m.gameState.Score,
		Status:  status,
	}
	if s, ok := m.game.(registry.Summarizer); ok {
		if sum, ok := s.Summary(); ok {
			result.Pellets = sum.Collected
			result.Total = sum.Total
			result.Ticks = sum.Ticks
			result.Seed = sum.Seed
		}
	}

	m.logger.Info("round ended",
		"round", m.roundID,
		"status", status,
		"score", result.Score,
		"pellets", fmt.Sprintf("%d/%d", result.Pellets, result.Total),
		"ticks", result.Ticks,
	)
	if d, ok := m.game.(debugStater); ok {
		m.logger.Debug("final state", "round", m.roundID, "state", d.DebugState())
	}

	if m.store == nil || result.Score <= 0 {
		return
	}
	if _, err := m.store.SaveRound(result); err != nil {
		m.logger.Error("could not save round", "round", m.roundID, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys)
}

// GameState returns the last state reported by the game.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// RoundID returns the identifier of the current round.
func (m Model) RoundID() uuid.UUID {
	return m.roundID
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)
	model.Start()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
