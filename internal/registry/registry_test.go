package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string                           { return s.id }
func (s *stubGame) Title() string                        { return "Stub " + s.id }
func (s *stubGame) Reset(core.RuntimeConfig)             {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                  {}
func (s *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })
	Register("stub-b", func() Game { return &stubGame{id: "stub-b"} })

	assert.True(t, Exists("stub-a"))
	assert.False(t, Exists("missing"))

	g, err := Create("stub-b")
	require.NoError(t, err)
	assert.Equal(t, "stub-b", g.ID())

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	assert.Subset(t, ids, []string{"stub-a", "stub-b"})
	assert.IsIncreasing(t, ids)
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	assert.ErrorIs(t, err, ErrUnknownGame)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
	assert.Panics(t, func() {
		Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
	})
}
