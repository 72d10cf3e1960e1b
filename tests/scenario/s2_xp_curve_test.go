package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/la2go/internal/engine/combat"
)

// S2: xp_for_next_level at levels 1, 2, and 10.
func TestScenarioXPForNextLevel(t *testing.T) {
	assert.Equal(t, uint64(100), combat.XPForNextLevel(1))
	assert.Equal(t, uint64(282), combat.XPForNextLevel(2))
	assert.Equal(t, uint64(3162), combat.XPForNextLevel(10))
}
