package pacman

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// GhostState is derived from an adversary's flags.
type GhostState int

const (
	GhostNormal GhostState = iota
	GhostVulnerable
	GhostCaptured
)

func (s GhostState) String() string {
	switch s {
	case GhostVulnerable:
		return "vulnerable"
	case GhostCaptured:
		return "captured"
	default:
		return "normal"
	}
}

// AdversaryParams are the movement and decision settings shared by all adversaries.
type AdversaryParams struct {
	Speed            float64
	Radius           float64
	DecisionInterval int
	RandomChance     float64
	HomeThreshold    float64
	ReturnFactor     float64
}

// Adversary is one chasing ghost.
type Adversary struct {
	name   string
	color  core.Color
	pos    core.Vec
	spawn  core.Vec
	dir    Direction
	speed  float64
	params AdversaryParams

	decisionCounter int
	vulnerable      bool
	captured        bool
}

// NewAdversary creates an adversary at its spawn point with a random heading.
func NewAdversary(name string, color core.Color, spawn core.Vec, params AdversaryParams, rng *rand.Rand) *Adversary {
	return &Adversary{
		name:   name,
		color:  color,
		pos:    spawn,
		spawn:  spawn,
		dir:    randomDirection(rng),
		speed:  params.Speed,
		params: params,
	}
}

// Update runs one tick of movement. A captured adversary flies straight
// home through walls and is restored on arrival; otherwise it re-decides
// its heading every DecisionInterval ticks and turns randomly on walls.
func (g *Adversary) Update(grid *GridMap, agent *Agent, rng *rand.Rand) {
	if g.captured {
		g.returnHome()
		return
	}

	g.decisionCounter++
	if g.decisionCounter > g.params.DecisionInterval {
		g.decisionCounter = 0
		g.decide(agent, rng)
	}

	cand := g.pos.Add(g.dir.Vector().Scale(g.speed))
	if grid.CheckCollision(cand.X, cand.Y, g.params.Radius) {
		g.dir = randomDirection(rng)
		return
	}
	g.pos = cand
}

func (g *Adversary) returnHome() {
	delta := g.spawn.Sub(g.pos)
	dist := delta.Len()
	if dist < g.params.HomeThreshold {
		g.Respawn()
		return
	}

	step := math.Min(g.speed*g.params.ReturnFactor, dist)
	g.pos = g.pos.Add(delta.Scale(step / dist))
}

func (g *Adversary) decide(agent *Agent, rng *rand.Rand) {
	if rng.Float64() < g.params.RandomChance {
		g.dir = randomDirection(rng)
		return
	}

	d := agent.Position().Sub(g.pos)
	flee := g.vulnerable
	if math.Abs(d.X) > math.Abs(d.Y) {
		if (d.X > 0) != flee {
			g.dir = DirRight
		} else {
			g.dir = DirLeft
		}
		return
	}
	if (d.Y > 0) != flee {
		g.dir = DirDown
	} else {
		g.dir = DirUp
	}
}

// CheckCollision reports whether the adversary overlaps the agent.
func (g *Adversary) CheckCollision(agent *Agent) bool {
	return core.Distance(g.pos, agent.Position()) < g.params.Radius+agent.Radius()
}

// SetVulnerable toggles vulnerability. A captured adversary cannot become
// vulnerable until it is home.
func (g *Adversary) SetVulnerable(v bool) {
	if v && g.captured {
		return
	}
	g.vulnerable = v
}

// Capture marks the adversary eaten.
func (g *Adversary) Capture() {
	g.captured = true
	g.vulnerable = false
}

// Respawn puts the adversary back on its spawn point in the normal state.
func (g *Adversary) Respawn() {
	g.pos = g.spawn
	g.captured = false
	g.vulnerable = false
}

// SetSpeed overrides the base movement speed.
func (g *Adversary) SetSpeed(speed float64) {
	g.speed = speed
}

// State returns the adversary's current state.
func (g *Adversary) State() GhostState {
	switch {
	case g.captured:
		return GhostCaptured
	case g.vulnerable:
		return GhostVulnerable
	default:
		return GhostNormal
	}
}

func (g *Adversary) Name() string         { return g.name }
func (g *Adversary) Color() core.Color    { return g.color }
func (g *Adversary) Position() core.Vec   { return g.pos }
func (g *Adversary) Spawn() core.Vec      { return g.spawn }
func (g *Adversary) Direction() Direction { return g.dir }
func (g *Adversary) Speed() float64       { return g.speed }
func (g *Adversary) Radius() float64      { return g.params.Radius }
func (g *Adversary) IsVulnerable() bool   { return g.vulnerable }
func (g *Adversary) IsCaptured() bool     { return g.captured }
