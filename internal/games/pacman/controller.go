package pacman

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
)

// Status is the round outcome. Won and Lost are terminal.
type Status int

const (
	StatusActive Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "active"
	}
}

// ErrBadSpawn is returned when an entity spawn point is outside the maze or inside a wall.
var ErrBadSpawn = errors.New("bad spawn point")

// Events reports what happened during one Update.
type Events struct {
	Collected    CollectResult
	Captured     int  // Adversaries captured this tick
	PowerStarted bool // Power mode (re)activated
	PowerEnded   bool
	Ended        bool // Round reached a terminal status this tick
}

// RoundState is the controller-owned round summary.
type RoundState struct {
	Score      int
	Collected  int
	Total      int
	Status     Status
	PowerMode  bool
	PowerTicks int // Ticks of power mode remaining
	Tick       uint64
}

// Controller owns the grid, the agent and the adversaries for one round
// and runs the per-tick update order.
type Controller struct {
	cfg        config.PacmanConfig
	layout     Layout
	geom       Geometry
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	seed       int64

	grid   *GridMap
	agent  *Agent
	ghosts []*Adversary

	status     Status
	score      int
	powerMode  bool
	powerTicks int
	tick       uint64
	running    bool
}

// NewController validates cfg and builds the first round. The controller
// starts stopped; call Start to let Update run.
func NewController(cfg config.PacmanConfig, seed int64) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	layout, err := ParseLayout(cfg.Maze.Layout)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	if err := checkSpawn(layout, "agent", cfg.Agent.Spawn.Row, cfg.Agent.Spawn.Col); err != nil {
		return nil, err
	}
	for i, s := range cfg.Adversaries.Spawns {
		if err := checkSpawn(layout, fmt.Sprintf("adversary %d (%s)", i, s.Name), s.Row, s.Col); err != nil {
			return nil, err
		}
		if _, ok := core.ParseColor(s.Color); s.Color != "" && !ok {
			return nil, fmt.Errorf("adversary %d: unknown color %q: %w", i, s.Color, config.ErrInvalidConfig)
		}
	}

	c := &Controller{
		cfg:    cfg,
		layout: layout,
		geom: Geometry{
			TileSize: cfg.Maze.TileSize,
			OffsetX:  cfg.Maze.OffsetX,
			OffsetY:  cfg.Maze.OffsetY,
		},
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		seed:       seed,
	}
	c.build()
	return c, nil
}

func checkSpawn(layout Layout, who string, row, col int) error {
	if row < 0 || row >= layout.Rows() || col < 0 || col >= layout.Cols() {
		return fmt.Errorf("%s at (%d, %d) is outside the %dx%d maze: %w", who, row, col, layout.Rows(), layout.Cols(), ErrBadSpawn)
	}
	if layout.At(row, col) == CellWall {
		return fmt.Errorf("%s at (%d, %d) is inside a wall: %w", who, row, col, ErrBadSpawn)
	}
	return nil
}

// build creates fresh round entities from the parsed layout.
func (c *Controller) build() {
	c.grid = NewGridMap(c.layout, c.geom, c.cfg.Maze.PowerPellets, c.rng)

	spawn := c.cfg.Agent.Spawn
	c.agent = NewAgent(c.geom.CenterOf(spawn.Row, spawn.Col), AgentParams{
		Speed:      c.cfg.Agent.Speed,
		Radius:     c.cfg.Agent.Radius,
		PowerScale: c.cfg.Agent.PowerScale,
	})

	ap := AdversaryParams{
		Speed:            c.cfg.Adversaries.Speed,
		Radius:           c.cfg.Adversaries.Radius,
		DecisionInterval: c.cfg.Adversaries.DecisionInterval,
		RandomChance:     c.cfg.Adversaries.RandomChance,
		HomeThreshold:    c.cfg.Adversaries.HomeThreshold,
		ReturnFactor:     c.cfg.Adversaries.ReturnFactor,
	}
	c.ghosts = make([]*Adversary, 0, len(c.cfg.Adversaries.Spawns))
	for _, s := range c.cfg.Adversaries.Spawns {
		color, ok := core.ParseColor(s.Color)
		if !ok {
			color = core.ColorRed
		}
		c.ghosts = append(c.ghosts, NewAdversary(s.Name, color, c.geom.CenterOf(s.Row, s.Col), ap, c.rng))
	}

	c.status = StatusActive
	c.score = 0
	c.powerMode = false
	c.powerTicks = 0
	c.tick = 0
}

// Start lets Update advance the simulation.
func (c *Controller) Start() {
	c.running = true
}

// Stop freezes the simulation; Update becomes a no-op.
func (c *Controller) Stop() {
	c.running = false
}

// Running reports whether Update will advance the simulation.
func (c *Controller) Running() bool {
	return c.running
}

// Restart discards the round, builds a new one from a fresh seed and resumes.
func (c *Controller) Restart() {
	c.seed = c.rng.Int63()
	c.rng = rand.New(rand.NewSource(c.seed))
	c.build()
	c.Start()
}

// Update runs one tick with the player's directional intent.
// It does nothing while stopped or once the round has ended.
func (c *Controller) Update(intent Direction) Events {
	var ev Events
	if !c.running || c.status != StatusActive {
		return ev
	}
	c.tick++

	c.agent.SetNextDirection(intent)
	c.agent.Update(c.grid)

	pos := c.agent.Position()
	ev.Collected = c.grid.CollectPellet(pos.X, pos.Y)
	switch ev.Collected {
	case CollectRegular:
		c.score += c.cfg.Scoring.Pellet
	case CollectPower:
		c.score += c.cfg.Scoring.PowerPellet
		c.activatePowerMode()
		ev.PowerStarted = true
	}

	if c.powerMode {
		c.powerTicks--
		if c.powerTicks <= 0 {
			c.deactivatePowerMode()
			ev.PowerEnded = true
		}
	}

	speed := c.difficulty.Speed(c.cfg.Adversaries.Speed, c.grid.Collected(), int(c.tick))
	for _, g := range c.ghosts {
		g.SetSpeed(speed)
		g.Update(c.grid, c.agent, c.rng)

		// Adversaries that finished returning home mid-window are vulnerable again
		if c.powerMode && !g.IsCaptured() && !g.IsVulnerable() {
			g.SetVulnerable(true)
		}
	}

	for _, g := range c.ghosts {
		if g.IsCaptured() || !g.CheckCollision(c.agent) {
			continue
		}
		if c.powerMode && g.IsVulnerable() {
			g.Capture()
			c.score += c.cfg.Scoring.Capture
			ev.Captured++
		} else if !g.IsVulnerable() {
			c.status = StatusLost
			ev.Ended = true
			return ev
		}
	}

	if c.grid.Collected() >= c.grid.Total() {
		c.status = StatusWon
		ev.Ended = true
	}
	return ev
}

func (c *Controller) activatePowerMode() {
	c.powerMode = true
	c.powerTicks = c.cfg.Power.DurationTicks
	c.agent.SetPowerMode(true)
	for _, g := range c.ghosts {
		if !g.IsCaptured() {
			g.SetVulnerable(true)
		}
	}
}

func (c *Controller) deactivatePowerMode() {
	c.powerMode = false
	c.powerTicks = 0
	c.agent.SetPowerMode(false)
	for _, g := range c.ghosts {
		g.SetVulnerable(false)
	}
}

// State returns the round summary.
func (c *Controller) State() RoundState {
	return RoundState{
		Score:      c.score,
		Collected:  c.grid.Collected(),
		Total:      c.grid.Total(),
		Status:     c.status,
		PowerMode:  c.powerMode,
		PowerTicks: c.powerTicks,
		Tick:       c.tick,
	}
}

// Status returns the round status.
func (c *Controller) Status() Status {
	return c.status
}

// Seed returns the seed the current round was built from.
func (c *Controller) Seed() int64 {
	return c.seed
}

// Grid, Agent and Adversaries expose the round entities read-only by convention.
func (c *Controller) Grid() *GridMap            { return c.grid }
func (c *Controller) Agent() *Agent             { return c.agent }
func (c *Controller) Adversaries() []*Adversary { return c.ghosts }
