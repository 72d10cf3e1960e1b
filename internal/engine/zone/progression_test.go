package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAchievements struct {
	unlocked map[string]bool
}

func newFakeAchievements() *fakeAchievements {
	return &fakeAchievements{unlocked: map[string]bool{}}
}

func (f *fakeAchievements) IsUnlocked(id string) bool { return f.unlocked[id] }
func (f *fakeAchievements) Unlock(id, name string) bool {
	if f.unlocked[id] {
		return false
	}
	f.unlocked[id] = true
	return true
}

func TestRecordKillNoOpWhileFightingBoss(t *testing.T) {
	p := New()
	for i := uint32(0); i < 19; i++ {
		p.RecordKill()
	}
	require.False(t, p.FightingBoss)
	p.RecordKill() // 20th kill
	require.True(t, p.FightingBoss)
	require.Equal(t, uint32(20), p.KillsInSubzone)

	p.RecordKill() // should not increment further
	assert.Equal(t, uint32(20), p.KillsInSubzone)
}

func TestOnBossDefeatedSubzoneComplete(t *testing.T) {
	p := New()
	p.CurrentZoneID, p.CurrentSubzoneID = 1, 1
	p.FightingBoss = true

	ach := newFakeAchievements()
	res := p.OnBossDefeated(0, ach)

	assert.Equal(t, ResultSubzoneComplete, res.Kind)
	assert.Equal(t, uint32(2), p.CurrentSubzoneID)
	assert.False(t, p.FightingBoss)
	assert.True(t, p.DefeatedBosses[BossKey{1, 1}])
}

func TestFinalZoneGateScenarioS7(t *testing.T) {
	p := New()
	p.CurrentZoneID, p.CurrentSubzoneID = 10, 4
	p.FightingBoss = true
	ach := newFakeAchievements()

	res := p.OnBossDefeated(20, ach)
	assert.Equal(t, ResultWeaponRequired, res.Kind)
	assert.Equal(t, "Stormbreaker", res.WeaponName)
	assert.False(t, p.DefeatedBosses[BossKey{10, 4}])
	assert.False(t, p.FightingBoss)

	ach.Unlock(AchievementTheStormbreaker, "hero")
	p.FightingBoss = true
	res2 := p.OnBossDefeated(20, ach)
	assert.Equal(t, ResultStormsEnd, res2.Kind)
	assert.True(t, p.DefeatedBosses[BossKey{10, 4}])
	assert.Equal(t, uint32(11), p.CurrentZoneID)
	assert.Equal(t, uint32(1), p.CurrentSubzoneID)
}

func TestExpanseCycles(t *testing.T) {
	p := New()
	p.CurrentZoneID, p.CurrentSubzoneID = 11, 4
	p.FightingBoss = true
	ach := newFakeAchievements()

	res := p.OnBossDefeated(20, ach)
	assert.Equal(t, ResultExpanseCycle, res.Kind)
	assert.Equal(t, uint32(1), p.CurrentSubzoneID)
	assert.Equal(t, uint32(11), p.CurrentZoneID)
}

func TestResetForPrestigeRecomputesUnlocks(t *testing.T) {
	p := New()
	p.CurrentZoneID, p.CurrentSubzoneID = 5, 2
	p.DefeatedBosses[BossKey{1, 1}] = true

	p.ResetForPrestige(10)

	assert.Equal(t, uint32(1), p.CurrentZoneID)
	assert.Equal(t, uint32(1), p.CurrentSubzoneID)
	assert.Empty(t, p.DefeatedBosses)
	assert.True(t, p.UnlockedZones[6]) // requirement 10
	assert.False(t, p.UnlockedZones[7]) // requirement 15
}

func TestZoneCompleteGatedByPrestige(t *testing.T) {
	p := New()
	p.CurrentZoneID, p.CurrentSubzoneID = 2, 3
	p.FightingBoss = true
	ach := newFakeAchievements()

	res := p.OnBossDefeated(0, ach)
	assert.Equal(t, ResultZoneCompleteButGated, res.Kind)
	assert.Equal(t, uint32(5), res.RequiredPrestige)
	assert.Equal(t, uint32(2), p.CurrentZoneID)
}
