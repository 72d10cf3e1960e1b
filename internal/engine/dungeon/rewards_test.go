package dungeon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/udisondev/la2go/internal/rng"
)

func TestRollBossXPWithinSizeRange(t *testing.T) {
	d := Generate(Small, rng.New(3))
	spec := Small.Spec()
	xp := d.RollBossXP(rng.New(99))
	assert.GreaterOrEqual(t, xp, uint64(spec.MinBossXP))
	assert.LessOrEqual(t, xp, uint64(spec.MaxBossXP))
}

func TestEnemyStatMultiplierByRoomType(t *testing.T) {
	d := Generate(Small, rng.New(3))
	d.CurrentRoom().Type = RoomElite
	assert.Equal(t, 1.5, d.EnemyStatMultiplier())
	d.CurrentRoom().Type = RoomBoss
	assert.Equal(t, 2.0, d.EnemyStatMultiplier())
	d.CurrentRoom().Type = RoomCombat
	assert.Equal(t, 1.0, d.EnemyStatMultiplier())
}

func TestGenerateTreasureItemBoostsRarityBySize(t *testing.T) {
	d := Generate(Legendary, rng.New(3))
	item := d.GenerateTreasureItem(0, 1, rng.New(1))
	assert.NotEmpty(t, item.DisplayName)
}
