// Package scenario exercises spec.md §8's literal numbered scenarios
// against the engine packages directly, following the teacher's
// black-box integration-test idiom (tests/integration in the original
// MMO server repo) rather than re-deriving the formulas inline.
package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/la2go/internal/engine/combat"
)

// S1: prestige_multiplier(rank, cha_mod) at three fixed points.
func TestScenarioPrestigeMultiplier(t *testing.T) {
	assert.InDelta(t, 1.5, combat.PrestigeMultiplier(1, 0), 1e-9)
	assert.InDelta(t, 1.8, combat.PrestigeMultiplier(1, 3), 1e-9)
	assert.InDelta(t, 1.0, combat.PrestigeMultiplier(0, 0), 1e-9)
}
