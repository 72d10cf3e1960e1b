package achievement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/udisondev/la2go/internal/engine/zone"
)

func TestUnlockIsIdempotent(t *testing.T) {
	tr := New()
	assert.True(t, tr.Unlock("FirstPrestige", "hero"))
	assert.True(t, tr.IsUnlocked("FirstPrestige"))
	assert.False(t, tr.Unlock("FirstPrestige", "hero"))
}

func TestOnKillWalksSlayerMilestones(t *testing.T) {
	tr := New()
	for i := 0; i < 100; i++ {
		tr.OnKill("hero", 0)
	}
	assert.True(t, tr.IsUnlocked("SlayerI"))
	assert.False(t, tr.IsUnlocked("SlayerII"))
	assert.Equal(t, uint64(100), tr.Aggregates.TotalKills)
}

func TestIsModalReadyRespectsAccumulationWindow(t *testing.T) {
	tr := New()
	tr.UnlockAt("FirstPrestige", "hero", 0, 1000)
	assert.False(t, tr.IsModalReady(1100))
	assert.True(t, tr.IsModalReady(1500))

	drained := tr.TakeModalQueue()
	assert.Equal(t, []ID{"FirstPrestige"}, drained)
	assert.Empty(t, tr.TakeModalQueue())
}

func TestFishCaughtNeverRegresses(t *testing.T) {
	tr := New()
	tr.OnFishCaught("hero", 100, 0)
	tr.OnFishCaught("hero", 40, 0)
	assert.Equal(t, uint64(100), tr.Aggregates.TotalFishCaught)
}

func TestOnFishCaughtWalksCatchMilestones(t *testing.T) {
	tr := New()
	tr.OnFishCaught("hero", 1, 0)
	assert.True(t, tr.IsUnlocked("GoneFishing"))
	assert.False(t, tr.IsUnlocked("FishCatcherI"))

	tr.OnFishCaught("hero", 100, 0)
	assert.True(t, tr.IsUnlocked("FishCatcherI"))
	assert.False(t, tr.IsUnlocked("FishCatcherII"))
}

func TestOnFishingRankUpWalksRankMilestones(t *testing.T) {
	tr := New()
	tr.OnFishingRankUp("hero", 10, 0)
	assert.True(t, tr.IsUnlocked("FishermanI"))
	assert.False(t, tr.IsUnlocked("FishermanII"))
	assert.Equal(t, uint32(10), tr.Aggregates.HighestFishingRank)

	tr.OnFishingRankUp("hero", 40, 0)
	assert.True(t, tr.IsUnlocked("FishermanII"))
	assert.True(t, tr.IsUnlocked("FishermanIII"))
	assert.True(t, tr.IsUnlocked("FishermanIV"))
}

func TestRetroactiveSyncUnlocksZoneCompletion(t *testing.T) {
	tr := New()
	defeated := map[zone.BossKey]bool{
		{ZoneID: 1, SubzoneID: 1}: true,
		{ZoneID: 1, SubzoneID: 2}: true,
		{ZoneID: 1, SubzoneID: 3}: true,
	}
	tr.RetroactiveSync(RetroactiveSyncInput{
		CharacterName:  "hero",
		Level:          5,
		DefeatedBosses: defeated,
	})
	assert.True(t, tr.IsUnlocked("Zone1Complete"))
	assert.False(t, tr.IsUnlocked("Zone2Complete"))
}

func TestMonotonicAggregatesAcrossKills(t *testing.T) {
	tr := New()
	last := uint64(0)
	for i := 0; i < 50; i++ {
		tr.OnKill("hero", 0)
		assert.GreaterOrEqual(t, tr.Aggregates.TotalKills, last)
		last = tr.Aggregates.TotalKills
	}
}
