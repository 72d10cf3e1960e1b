package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/la2go/internal/engine/achievement"
	"github.com/udisondev/la2go/internal/engine/zone"
)

// S7: zone 10's final subzone (4) is weapon-gated on Stormbreaker.
// Defeating its boss without the achievement blocks progression and
// leaves defeated_bosses untouched; unlocking Stormbreaker and defeating
// it again triggers the Storm's End transition into the cyclic Expanse
// zone.
func TestScenarioZoneTenFinalBossGatedOnStormbreaker(t *testing.T) {
	p := zone.New()
	p.CurrentZoneID = 10
	p.CurrentSubzoneID = 4
	p.FightingBoss = true

	ach := achievement.New()
	require.False(t, ach.IsUnlocked(zone.AchievementTheStormbreaker))

	res := p.OnBossDefeated(20, ach)
	assert.Equal(t, zone.ResultWeaponRequired, res.Kind)
	assert.Equal(t, "Stormbreaker", res.WeaponName)
	assert.Empty(t, p.DefeatedBosses)
	assert.False(t, p.FightingBoss)

	ach.Unlock(zone.AchievementTheStormbreaker, "Tester")
	p.FightingBoss = true

	res = p.OnBossDefeated(20, ach)
	assert.Equal(t, zone.ResultStormsEnd, res.Kind)
	assert.True(t, p.DefeatedBosses[zone.BossKey{ZoneID: 10, SubzoneID: 4}])
	assert.Equal(t, uint32(11), p.CurrentZoneID)
	assert.Equal(t, uint32(1), p.CurrentSubzoneID)
}
