package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/la2go/internal/engine/morris"
	"github.com/udisondev/la2go/internal/rng"
)

// S4: with Human occupying {0,1} and AI occupying {3,4} (seven pieces
// left to place each), the AI to move at Master difficulty completes its
// own mill {3,4,5} by placing at 5 rather than blocking Human's
// potential mill {0,1,2} by placing at 2 — an immediate win takes
// priority over a block in the minimax evaluation.
func TestScenarioMorrisAIPrefersOwnMillOverBlock(t *testing.T) {
	g := morris.New()
	g.CurrentPlayer = morris.AI
	g.Phase = morris.Placing
	g.PiecesToPlace[morris.Human] = 7
	g.PiecesToPlace[morris.AI] = 7
	g.PiecesOnBoard[morris.Human] = 2
	g.PiecesOnBoard[morris.AI] = 2

	human := morris.Human
	ai := morris.AI
	g.Board[0] = (morris.Cell)(&human)
	g.Board[1] = (morris.Cell)(&human)
	g.Board[3] = (morris.Cell)(&ai)
	g.Board[4] = (morris.Cell)(&ai)

	move, ok := morris.GetAIMove(g, morris.Master, rng.New(42))
	require.True(t, ok)
	assert.Equal(t, morris.MovePlace, move.Kind)
	assert.Equal(t, 5, move.Pos)
}
