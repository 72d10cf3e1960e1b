package morris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/udisondev/la2go/internal/rng"
)

func newPlacingGame() *Game {
	g := New()
	g.PiecesToPlace[Human] = 7
	g.PiecesToPlace[AI] = 7
	g.PiecesOnBoard[Human] = 2
	g.PiecesOnBoard[AI] = 2
	g.set(0, Human)
	g.set(1, Human)
	g.set(3, AI)
	g.set(4, AI)
	g.CurrentPlayer = AI
	return g
}

func TestMillBlocksAttackOutranksDefendScenarioS4(t *testing.T) {
	g := newPlacingGame()
	r := rng.New(42)

	mv, ok := GetAIMove(g, Master, r)
	assert.True(t, ok)
	assert.Equal(t, MovePlace, mv.Kind)
	assert.Equal(t, 5, mv.Pos, "completing the AI's own mill outranks blocking the human's")
}

func TestApplyForSearchUnmakeRestoresEveryMoveKind(t *testing.T) {
	g := newPlacingGame()

	for _, mv := range LegalMoves(g) {
		before := *g
		u := ApplyForSearch(g, mv)
		Unmake(g, u)
		assert.Equal(t, before.Board, g.Board)
		assert.Equal(t, before.CurrentPlayer, g.CurrentPlayer)
		assert.Equal(t, before.MustCapture, g.MustCapture)
		assert.Equal(t, before.Phase, g.Phase)
		assert.Equal(t, before.PiecesOnBoard, g.PiecesOnBoard)
		assert.Equal(t, before.PiecesToPlace, g.PiecesToPlace)
	}
}

func TestGetAIMoveDeterministicGivenSeed(t *testing.T) {
	g1 := newPlacingGame()
	g2 := newPlacingGame()

	mv1, _ := GetAIMove(g1, Expert, rng.New(7))
	mv2, _ := GetAIMove(g2, Expert, rng.New(7))
	assert.Equal(t, mv1, mv2)
}

func TestMillTableHasSixteenLines(t *testing.T) {
	assert.Len(t, mills, 16)
}

func TestCaptureMustTargetNonMillUnlessAllInMills(t *testing.T) {
	g := New()
	// AI forms a mill {6,7,8}; Human occupies {9,10,11} (also a mill) and
	// one stray piece at 20, none else placed.
	g.set(6, AI)
	g.set(7, AI)
	g.set(9, Human)
	g.set(10, Human)
	g.set(11, Human)
	g.set(20, Human)
	g.PiecesOnBoard[AI] = 2
	g.PiecesOnBoard[Human] = 4
	g.PiecesToPlace[AI] = 7
	g.PiecesToPlace[Human] = 5
	g.CurrentPlayer = AI

	mv := Move{Kind: MovePlace, Pos: 8}
	Apply(g, mv)
	assert.True(t, g.MustCapture)

	captures := captureMoves(g, AI)
	assert.Len(t, captures, 1)
	assert.Equal(t, 20, captures[0].Pos, "must target the lone piece not in a mill")
}
