package dungeon

import (
	"github.com/udisondev/la2go/internal/engine/items"
	"github.com/udisondev/la2go/internal/engine/loot"
	"github.com/udisondev/la2go/internal/rng"
)

// RollBossXP draws the XP reward for defeating the dungeon boss, uniform
// over the size's boss_xp_range.
func (d *Dungeon) RollBossXP(r *rng.Source) uint64 {
	spec := d.Size.Spec()
	return uint64(r.UniformInt(spec.MinBossXP, spec.MaxBossXP))
}

// GenerateTreasureItem rolls a treasure-room item: a random slot, a
// rarity roll by prestige rank boosted by the dungeon size's
// TreasureRarityBoost tiers, then synthesized attribute bonuses/affixes.
func (d *Dungeon) GenerateTreasureItem(prestigeRank, playerLevel uint32, r *rng.Source) items.Item {
	slot := loot.RollSlot(r)
	base := loot.RollRarity(prestigeRank, r)
	boosted := base.Boost(d.Size.Spec().TreasureRarityBoost)
	return loot.Generate(slot, boosted, playerLevel, r)
}

// EnemyStatMultiplier scales the spawned enemy's stats by the current
// room's kind: Elite 1.5x, Boss 2.0x, everything else 1.0x.
func (d *Dungeon) EnemyStatMultiplier() float64 {
	room := d.CurrentRoom()
	if room == nil {
		return 1.0
	}
	switch room.Type {
	case RoomElite:
		return 1.5
	case RoomBoss:
		return 2.0
	default:
		return 1.0
	}
}

// NeedsCombat reports whether the current room requires a live-enemy
// resolution before auto-exploration may continue.
func (d *Dungeon) NeedsCombat() bool {
	room := d.CurrentRoom()
	if room == nil {
		return false
	}
	switch room.Type {
	case RoomCombat, RoomElite, RoomBoss:
		return room.State == Current && !d.CurrentRoomCleared
	default:
		return false
	}
}

// CollectItem records an item gained from a treasure room toward the
// completion summary.
func (d *Dungeon) CollectItem() {
	d.CollectedItemCount++
}

// OnBossDefeated rolls the boss XP reward and tallies it; the caller
// (the facade) is responsible for discarding the dungeon afterward.
func (d *Dungeon) OnBossDefeated(r *rng.Source) uint64 {
	xp := d.RollBossXP(r)
	d.XPEarned += int64(xp)
	return xp
}
