// Package pacman implements the maze chase game: a grid map of walls and
// pellets, a player agent, adversaries with a simple chase/flee heuristic,
// and a controller that runs the tick order and decides the round outcome.
package pacman

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// GameID is the registry and storage identifier.
const GameID = "pacman"

// Package-level settings applied on the next Reset (set by the CLI).
var (
	configPath       string
	mazePath         string
	difficultyPreset string
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetMazePath sets a maze file that replaces the configured layout.
func SetMazePath(path string) {
	mazePath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// LoadConfig resolves the configuration from the package-level settings.
func LoadConfig() (config.PacmanConfig, error) {
	cfg, err := config.LoadPacman(configPath)
	if err != nil {
		return cfg, err
	}
	if mazePath != "" {
		m, err := config.LoadMaze(mazePath)
		if err != nil {
			return cfg, err
		}
		config.ApplyMaze(&cfg, m)
	}
	preset, err := config.ParsePreset(difficultyPreset)
	if err != nil {
		return cfg, err
	}
	config.ApplyPacmanPreset(&cfg, preset)
	return cfg, nil
}

// Game adapts the Controller to the platform's registry.Game interface.
type Game struct {
	cfg    *config.PacmanConfig // fixed config; nil means LoadConfig on Reset
	ctrl   *Controller
	err    error // configuration error shown instead of the maze
	paused bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game bound to cfg.
func NewWithConfig(cfg config.PacmanConfig) *Game {
	return &Game{cfg: &cfg}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pacman"
}

// Reset builds a new round seeded from cfg.Seed and starts it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.paused = false
	g.ctrl = nil

	var pc config.PacmanConfig
	if g.cfg != nil {
		pc = *g.cfg
	} else {
		loaded, err := LoadConfig()
		if err != nil {
			g.err = err
			return
		}
		pc = loaded
	}

	ctrl, err := NewController(pc, cfg.Seed)
	if err != nil {
		g.err = err
		return
	}
	g.err = nil
	g.ctrl = ctrl
	g.ctrl.Start()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.ctrl == nil {
		return core.StepResult{State: g.State()}
	}

	// Restart is only honoured once the round is over
	if in.Has(core.ActionRestart) && g.ctrl.Status() != StatusActive {
		g.ctrl.Restart()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.ctrl.Status() == StatusActive {
		g.paused = !g.paused
		if g.paused {
			g.ctrl.Stop()
		} else {
			g.ctrl.Start()
		}
	}

	g.ctrl.Update(DirectionFromAction(in.LastDirection()))
	return core.StepResult{State: g.State()}
}

// Render draws the current round.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.err != nil {
		renderError(dst, g.err)
		return
	}
	if g.ctrl == nil {
		return
	}
	Render(dst, g.ctrl.Snapshot(), g.paused)
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	st := g.ctrl.Status()
	return core.GameState{
		Score:    g.ctrl.State().Score,
		GameOver: st != StatusActive,
		Won:      st == StatusWon,
		Paused:   g.paused,
	}
}

// Summary reports round detail for the score store.
func (g *Game) Summary() (registry.Summary, bool) {
	if g.ctrl == nil {
		return registry.Summary{}, false
	}
	st := g.ctrl.State()
	return registry.Summary{
		Collected: st.Collected,
		Total:     st.Total,
		Ticks:     st.Tick,
		Seed:      g.ctrl.Seed(),
	}, true
}

// Err returns the configuration error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// Snapshot returns the current round snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.ctrl == nil {
		return Snapshot{}
	}
	return g.ctrl.Snapshot()
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	if g.ctrl == nil {
		return fmt.Sprintf("no round: %v\n", g.err)
	}
	s := g.ctrl.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Status: %s\n", s.Round.Tick, s.Round.Score, s.Round.Status)
	fmt.Fprintf(&b, "Agent: (%.1f, %.1f) cell (%d, %d) dir %s\n", s.Agent.Pos.X, s.Agent.Pos.Y, s.Agent.Row, s.Agent.Col, s.Agent.Dir)
	fmt.Fprintf(&b, "Pellets: %d/%d, Power: %v (%d)\n", s.Round.Collected, s.Round.Total, s.Round.PowerMode, s.Round.PowerTicks)
	for _, a := range s.Adversaries {
		fmt.Fprintf(&b, "  %s: (%.1f, %.1f) %s\n", a.Name, a.Pos.X, a.Pos.Y, a.State)
	}
	return b.String()
}
