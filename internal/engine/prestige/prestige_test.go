package prestige

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/udisondev/la2go/internal/engine/attributes"
	"github.com/udisondev/la2go/internal/engine/zone"
)

func TestGetTierStaticValues(t *testing.T) {
	assert.Equal(t, Tier{Rank: 1, Name: "Bronze", RequiredLevel: 10}, GetTier(1))
	assert.Equal(t, Tier{Rank: 5, Name: "Platinum", RequiredLevel: 75}, GetTier(5))
	assert.Equal(t, Tier{Rank: 15, Name: "Celestial", RequiredLevel: 150}, GetTier(15))
}

func TestAdventurerRankBands(t *testing.T) {
	assert.Equal(t, "Novice", AdventurerRank(5))
	assert.Equal(t, "Adept", AdventurerRank(10))
	assert.Equal(t, "Mythic", AdventurerRank(150))
}

func TestCanPrestigeRequiresLevelAndZoneClear(t *testing.T) {
	prog := zone.New()
	assert.False(t, CanPrestige(10, 0, &prog))

	// Clear zone 1's final subzone boss.
	z := zone.Get(1)
	last := z.Subzones[len(z.Subzones)-1]
	prog.DefeatedBosses[zone.BossKey{ZoneID: 1, SubzoneID: last.ID}] = true
	prog.CurrentSubzoneID = last.ID + 1

	assert.True(t, CanPrestige(10, 0, &prog))
}

func TestPerformResetsLevelXPAttributesAndZone(t *testing.T) {
	level := uint32(12)
	xp := uint64(999)
	attrs := attributes.New()
	attrs.Set(attributes.Strength, 18, 20)
	rank := uint32(0)
	total := uint64(0)
	prog := zone.New()
	prog.CurrentZoneID = 5
	prog.CurrentSubzoneID = 3

	result := Perform(&level, &xp, &attrs, &rank, &total, &prog)

	assert.Equal(t, uint32(0), result.OldRank)
	assert.Equal(t, uint32(1), result.NewRank)
	assert.Equal(t, uint32(1), level)
	assert.Equal(t, uint64(0), xp)
	assert.Equal(t, uint32(1), rank)
	assert.Equal(t, uint64(1), total)
	assert.Equal(t, uint32(10), attrs.Get(attributes.Strength))
	assert.Equal(t, uint32(1), prog.CurrentZoneID)
}
