package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/la2go/internal/engine/attributes"
	"github.com/udisondev/la2go/internal/engine/combat"
	"github.com/udisondev/la2go/internal/rng"
)

func attributeTotal(a attributes.Attributes) uint32 {
	var total uint32
	for _, t := range attributes.All() {
		total += a.Get(t)
	}
	return total
}

// S3: a fresh level-1, 0-xp character awarded 400 xp in one tick lands at
// level 3 with 18 xp remaining, having distributed two level-ups' worth
// of attribute points (six increments at LevelUpAttributePoints=3 each).
func TestScenarioApplyTickXPCascadesLevels(t *testing.T) {
	level := uint32(1)
	xp := uint64(0)
	attrs := attributes.New()
	before := attributeTotal(attrs)

	r := rng.New(42)
	result := combat.ApplyTickXP(&level, &xp, &attrs, 0, 400.0, r)

	assert.Equal(t, 2, result.TotalLevelUps)
	assert.Equal(t, uint32(3), level)
	assert.Equal(t, uint64(18), xp)
	assert.Equal(t, before+6, attributeTotal(attrs), "two level-ups should distribute six attribute increments")
}
