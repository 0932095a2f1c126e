package pacman

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pacman/internal/config"
)

// testConfig returns the default tuning on a custom layout with the agent
// at (1, 1), no random power pellets and no adversaries.
func testConfig(layout ...string) config.PacmanConfig {
	cfg := config.DefaultPacmanConfig()
	cfg.Maze.Layout = layout
	cfg.Maze.PowerPellets = 0
	cfg.Agent.Spawn = config.CellPos{Row: 1, Col: 1}
	cfg.Adversaries.Spawns = nil
	return cfg
}

func startController(t *testing.T, cfg config.PacmanConfig, seed int64) *Controller {
	t.Helper()
	c, err := NewController(cfg, seed)
	require.NoError(t, err)
	c.Start()
	return c
}

// boxedPowerConfig has the agent boxed in on a power pellet and one
// adversary boxed in two cells to the east, so nothing meets by itself.
func boxedPowerConfig() config.PacmanConfig {
	cfg := testConfig(
		"#####",
		"#o#.#",
		"#####",
	)
	cfg.Adversaries.Spawns = []config.SpawnConfig{{Name: "blinky", Row: 1, Col: 3, Color: "red"}}
	return cfg
}

func TestSinglePelletWins(t *testing.T) {
	c := startController(t, testConfig(
		"###",
		"#.#",
		"###",
	), 1)

	ev := c.Update(DirNone)
	assert.Equal(t, CollectRegular, ev.Collected)
	assert.True(t, ev.Ended)

	st := c.State()
	assert.Equal(t, StatusWon, st.Status)
	assert.Equal(t, 10, st.Score)
	assert.Equal(t, st.Total, st.Collected)
}

func TestTouchingNormalAdversaryLoses(t *testing.T) {
	cfg := testConfig(
		"#####",
		"#  .#",
		"#####",
	)
	cfg.Adversaries.Spawns = []config.SpawnConfig{{Name: "blinky", Row: 1, Col: 1, Color: "red"}}
	c := startController(t, cfg, 1)

	ev := c.Update(DirNone)
	assert.True(t, ev.Ended)
	assert.Equal(t, StatusLost, c.Status())
	assert.Zero(t, c.State().Score)
}

func TestTerminalStatusFreezesRound(t *testing.T) {
	cfg := testConfig(
		"#####",
		"#  .#",
		"#####",
	)
	cfg.Adversaries.Spawns = []config.SpawnConfig{{Name: "blinky", Row: 1, Col: 1, Color: "red"}}
	c := startController(t, cfg, 1)
	c.Update(DirNone)
	require.Equal(t, StatusLost, c.Status())

	before := c.Snapshot()
	for iter := 0; iter < 50; iter++ {
		ev := c.Update(DirRight)
		assert.Equal(t, Events{}, ev)
	}
	assert.Equal(t, before, c.Snapshot())
}

func TestStoppedControllerDoesNothing(t *testing.T) {
	c, err := NewController(testConfig(
		"###",
		"#.#",
		"###",
	), 1)
	require.NoError(t, err)
	assert.False(t, c.Running())

	c.Update(DirRight)
	assert.Equal(t, StatusActive, c.Status())
	assert.Zero(t, c.State().Tick)

	c.Start()
	c.Update(DirRight)
	assert.Equal(t, StatusWon, c.Status())
}

func TestPowerPelletCaptureAndReturn(t *testing.T) {
	c := startController(t, boxedPowerConfig(), 1)
	ghost := c.Adversaries()[0]

	ev := c.Update(DirNone)
	require.Equal(t, CollectPower, ev.Collected)
	assert.True(t, ev.PowerStarted)
	assert.Equal(t, 50, c.State().Score)
	assert.True(t, c.State().PowerMode)
	assert.Equal(t, 1.5, c.Agent().Scale())
	assert.Equal(t, GhostVulnerable, ghost.State())

	// Drop the vulnerable adversary onto the agent
	ghost.pos = c.Agent().Position()
	ev = c.Update(DirNone)
	assert.Equal(t, 1, ev.Captured)
	assert.Equal(t, 250, c.State().Score)
	assert.Equal(t, GhostCaptured, ghost.State())

	// While flying home it ignores the agent
	for i := 0; i < 100 && ghost.IsCaptured(); i++ {
		c.Update(DirNone)
		assert.Equal(t, 250, c.State().Score)
		assert.Equal(t, StatusActive, c.Status())
	}
	require.False(t, ghost.IsCaptured())
	assert.Equal(t, ghost.Spawn(), ghost.Position())

	// Power mode is still running, so it is vulnerable again
	require.True(t, c.State().PowerMode)
	assert.Equal(t, GhostVulnerable, ghost.State())
}

func TestCapturedAdversaryComesBackNormalAfterPower(t *testing.T) {
	cfg := boxedPowerConfig()
	cfg.Power.DurationTicks = 5
	c := startController(t, cfg, 1)
	ghost := c.Adversaries()[0]

	c.Update(DirNone)
	ghost.pos = c.Agent().Position()
	c.Update(DirNone)
	require.Equal(t, GhostCaptured, ghost.State())

	for i := 0; i < 100 && ghost.IsCaptured(); i++ {
		c.Update(DirNone)
	}
	assert.False(t, c.State().PowerMode)
	assert.Equal(t, GhostNormal, ghost.State())
	assert.Equal(t, ghost.Spawn(), ghost.Position())
	assert.Equal(t, 1.0, c.Agent().Scale())
}

func TestPowerModeLastsExactlyDuration(t *testing.T) {
	cfg := boxedPowerConfig()
	cfg.Power.DurationTicks = 10
	c := startController(t, cfg, 1)
	ghost := c.Adversaries()[0]

	ev := c.Update(DirNone)
	require.True(t, ev.PowerStarted)
	assert.Equal(t, 9, c.State().PowerTicks)

	for iter := 0; iter < 8; iter++ {
		ev = c.Update(DirNone)
		assert.False(t, ev.PowerEnded)
		assert.Equal(t, GhostVulnerable, ghost.State())
	}
	assert.Equal(t, 1, c.State().PowerTicks)

	ev = c.Update(DirNone)
	assert.True(t, ev.PowerEnded)
	assert.False(t, c.State().PowerMode)
	assert.Zero(t, c.State().PowerTicks)
	assert.Equal(t, GhostNormal, ghost.State())
}

func TestRestartRebuildsRound(t *testing.T) {
	cfg := testConfig(
		"#####",
		"#  .#",
		"#####",
	)
	cfg.Adversaries.Spawns = []config.SpawnConfig{{Name: "blinky", Row: 1, Col: 1, Color: "red"}}
	c := startController(t, cfg, 1)
	c.Update(DirNone)
	c.Stop()
	require.Equal(t, StatusLost, c.Status())

	c.Restart()
	assert.True(t, c.Running())

	st := c.State()
	assert.Equal(t, StatusActive, st.Status)
	assert.Zero(t, st.Score)
	assert.Zero(t, st.Collected)
	assert.Equal(t, 1, st.Total)
	assert.Zero(t, st.Tick)
	assert.False(t, st.PowerMode)
	assert.Equal(t, GhostNormal, c.Adversaries()[0].State())
	assert.Equal(t, c.Adversaries()[0].Spawn(), c.Adversaries()[0].Position())
}

func TestDifficultyRaisesAdversarySpeed(t *testing.T) {
	cfg := boxedPowerConfig()
	cfg.Maze.Layout[1] = "# #.#"
	cfg.Difficulty = config.DifficultyConfig{
		Enabled:     true,
		Progression: config.ProgressionConfig{Type: "time", MaxAt: 10},
		Scaling:     config.ScalingConfig{SpeedMultiplier: 0.5},
	}
	c := startController(t, cfg, 1)

	c.Update(DirNone)
	assert.InDelta(t, 1.05, c.Adversaries()[0].Speed(), 1e-9)

	for iter := 0; iter < 20; iter++ {
		c.Update(DirNone)
	}
	assert.InDelta(t, 1.5, c.Adversaries()[0].Speed(), 1e-9)
}

func TestNewControllerErrors(t *testing.T) {
	t.Run("invalid tuning", func(t *testing.T) {
		cfg := testConfig("#.#")
		cfg.Agent.Speed = 0
		_, err := NewController(cfg, 1)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("unknown glyph", func(t *testing.T) {
		_, err := NewController(testConfig("###", "#x#", "###"), 1)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.ErrorIs(t, err, ErrUnknownGlyph)
	})

	t.Run("agent in wall", func(t *testing.T) {
		cfg := testConfig("###", "#.#", "###")
		cfg.Agent.Spawn = config.CellPos{Row: 0, Col: 0}
		_, err := NewController(cfg, 1)
		assert.ErrorIs(t, err, ErrBadSpawn)
	})

	t.Run("adversary outside maze", func(t *testing.T) {
		cfg := testConfig("###", "#.#", "###")
		cfg.Adversaries.Spawns = []config.SpawnConfig{{Name: "x", Row: 7, Col: 1}}
		_, err := NewController(cfg, 1)
		assert.ErrorIs(t, err, ErrBadSpawn)
	})

	t.Run("unknown color", func(t *testing.T) {
		cfg := testConfig("###", "#.#", "###")
		cfg.Adversaries.Spawns = []config.SpawnConfig{{Name: "x", Row: 1, Col: 1, Color: "mauve"}}
		_, err := NewController(cfg, 1)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

func TestAgentNeverEntersWalls(t *testing.T) {
	cfg := config.DefaultPacmanConfig()
	cfg.Adversaries.Spawns = nil
	c := startController(t, cfg, 11)
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 5000; i++ {
		c.Update(cardinals[rng.Intn(len(cardinals))])

		p := c.Agent().Position()
		require.False(t, c.Grid().IsWallAt(p), "tick %d", i)
		require.False(t, c.Grid().CheckCollision(p.X, p.Y, c.Agent().Radius()), "tick %d", i)

		st := c.State()
		require.GreaterOrEqual(t, st.Collected, 0)
		require.LessOrEqual(t, st.Collected, st.Total)
		if st.Status != StatusActive {
			break
		}
	}
}

func TestDefaultMazeCounts(t *testing.T) {
	c := startController(t, config.DefaultPacmanConfig(), 5)

	power := 0
	for _, row := range c.Grid().Cells() {
		for _, cell := range row {
			if cell == CellPowerPellet {
				power++
			}
		}
	}
	assert.Equal(t, 4, power)
	assert.Equal(t, c.Grid().Total(), c.Grid().Remaining())
	assert.Len(t, c.Adversaries(), 4)
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		c := startController(t, config.DefaultPacmanConfig(), 12345)
		rng := rand.New(rand.NewSource(777))
		for iter := 0; iter < 2000; iter++ {
			intent := DirNone
			if rng.Intn(10) == 0 {
				intent = cardinals[rng.Intn(len(cardinals))]
			}
			c.Update(intent)
		}
		return c.Snapshot()
	}

	assert.Equal(t, run(), run())
}
