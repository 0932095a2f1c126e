package pacman

import "github.com/vovakirdan/tui-pacman/internal/core"

// AgentView is the render-facing copy of the agent.
type AgentView struct {
	Pos        core.Vec
	Row, Col   int
	Dir        Direction
	MouthAngle int
	Scale      float64
}

// AdversaryView is the render-facing copy of one adversary.
type AdversaryView struct {
	Name     string
	Color    core.Color
	Pos      core.Vec
	Row, Col int
	Dir      Direction
	State    GhostState
}

// Snapshot captures the complete round state for rendering, determinism
// testing and replay. It shares no memory with the controller.
type Snapshot struct {
	Seed        int64
	Running     bool
	Cells       [][]Cell
	Agent       AgentView
	Adversaries []AdversaryView
	Round       RoundState
}

// Snapshot returns a copy of everything the renderer needs.
func (c *Controller) Snapshot() Snapshot {
	ap := c.agent.Position()
	ar, ac := c.geom.CellOf(ap)

	ghosts := make([]AdversaryView, len(c.ghosts))
	for i, g := range c.ghosts {
		gp := g.Position()
		gr, gc := c.geom.CellOf(gp)
		ghosts[i] = AdversaryView{
			Name:  g.Name(),
			Color: g.Color(),
			Pos:   gp,
			Row:   gr,
			Col:   gc,
			Dir:   g.Direction(),
			State: g.State(),
		}
	}

	return Snapshot{
		Seed:    c.seed,
		Running: c.running,
		Cells:   c.grid.Cells(),
		Agent: AgentView{
			Pos:        ap,
			Row:        ar,
			Col:        ac,
			Dir:        c.agent.Direction(),
			MouthAngle: c.agent.MouthAngle(),
			Scale:      c.agent.Scale(),
		},
		Adversaries: ghosts,
		Round:       c.State(),
	}
}
