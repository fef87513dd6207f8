package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/icebergs/grid"
)

// TestPath_Walk replays right, down, right on a 2×3 grid and checks position.
func TestPath_Walk(t *testing.T) {
	g, err := grid.New(2, 3)
	require.NoError(t, err)

	p := grid.NewPath(g)
	assert.Equal(t, 0, p.Len())
	assert.False(t, p.Complete())

	for _, d := range []grid.Direction{grid.StepRight, grid.StepDown, grid.StepRight} {
		require.True(t, p.IsStepValid(d), "step %s", d)
		p.AddStep(d)
	}
	assert.Equal(t, 1, p.Row())
	assert.Equal(t, 2, p.Col())
	assert.True(t, p.Complete())
	assert.Equal(t, []grid.Direction{grid.StepRight, grid.StepDown, grid.StepRight}, p.Steps())
}

// TestPath_InvalidSteps checks icebergs and edges reject steps.
func TestPath_InvalidSteps(t *testing.T) {
	g, err := grid.Parse([]string{
		".X",
		"..",
	})
	require.NoError(t, err)

	p := grid.NewPath(g)
	assert.False(t, p.IsStepValid(grid.StepRight), "iceberg at (0,1)")
	assert.True(t, p.IsStepValid(grid.StepDown))

	p.AddStep(grid.StepDown)
	assert.False(t, p.IsStepValid(grid.StepDown), "bottom edge")
	assert.PanicsWithValue(t, grid.ErrInvalidStep, func() { p.AddStep(grid.StepDown) })
	assert.Equal(t, 1, p.Len(), "rejected step must not be recorded")
}

// TestPath_StepsIsCopy ensures callers cannot mutate the recorded steps.
func TestPath_StepsIsCopy(t *testing.T) {
	g, err := grid.New(1, 2)
	require.NoError(t, err)

	p := grid.NewPath(g)
	p.AddStep(grid.StepRight)
	s := p.Steps()
	s[0] = grid.StepDown
	assert.Equal(t, grid.StepRight, p.Steps()[0])
}

// TestDirection_String checks the enum names.
func TestDirection_String(t *testing.T) {
	assert.Equal(t, "right", grid.StepRight.String())
	assert.Equal(t, "down", grid.StepDown.String())
	assert.Equal(t, "Direction(7)", grid.Direction(7).String())
}
