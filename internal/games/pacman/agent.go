package pacman

import "github.com/vovakirdan/tui-pacman/internal/core"

const (
	mouthStep = 2
	mouthMax  = 45
)

// AgentParams are the fixed movement properties of the player.
type AgentParams struct {
	Speed      float64
	Radius     float64
	PowerScale float64
}

// Agent is the player-controlled entity.
type Agent struct {
	pos    core.Vec
	dir    Direction
	next   Direction
	params AgentParams
	scale  float64

	mouthAngle   int
	mouthOpening bool
}

// NewAgent places an agent at pos facing right.
func NewAgent(pos core.Vec, params AgentParams) *Agent {
	return &Agent{
		pos:          pos,
		dir:          DirRight,
		next:         DirRight,
		params:       params,
		scale:        1.0,
		mouthOpening: true,
	}
}

// Update advances the mouth animation and moves one step, preferring the
// queued direction and falling back to the current one. A step that would
// touch a wall is not taken.
func (a *Agent) Update(grid *GridMap) {
	a.animate()

	if cand, ok := a.tryStep(grid, a.next); ok {
		a.dir = a.next
		a.pos = cand
		return
	}
	if cand, ok := a.tryStep(grid, a.dir); ok {
		a.pos = cand
	}
}

func (a *Agent) tryStep(grid *GridMap, d Direction) (core.Vec, bool) {
	if d == DirNone {
		return a.pos, false
	}
	cand := a.pos.Add(d.Vector().Scale(a.params.Speed))
	if grid.CheckCollision(cand.X, cand.Y, a.params.Radius) {
		return a.pos, false
	}
	return cand, true
}

func (a *Agent) animate() {
	if a.mouthOpening {
		a.mouthAngle += mouthStep
		if a.mouthAngle >= mouthMax {
			a.mouthOpening = false
		}
		return
	}
	a.mouthAngle -= mouthStep
	if a.mouthAngle <= 0 {
		a.mouthOpening = true
	}
}

// SetNextDirection queues a direction for the next update. DirNone keeps
// the current queue.
func (a *Agent) SetNextDirection(d Direction) {
	if d == DirNone {
		return
	}
	a.next = d
}

// SetPowerMode toggles the cosmetic scale. The collision radius is unaffected.
func (a *Agent) SetPowerMode(powered bool) {
	if powered {
		a.scale = a.params.PowerScale
	} else {
		a.scale = 1.0
	}
}

func (a *Agent) Position() core.Vec       { return a.pos }
func (a *Agent) Direction() Direction     { return a.dir }
func (a *Agent) NextDirection() Direction { return a.next }
func (a *Agent) Radius() float64          { return a.params.Radius }
func (a *Agent) Scale() float64           { return a.scale }
func (a *Agent) MouthAngle() int          { return a.mouthAngle }
