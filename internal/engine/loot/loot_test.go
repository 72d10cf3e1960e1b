package loot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/udisondev/la2go/internal/engine/items"
	"github.com/udisondev/la2go/internal/rng"
)

func TestDropChanceFormula(t *testing.T) {
	assert.InDelta(t, 0.30, DropChance(0), 1e-9)
	assert.InDelta(t, 0.50, DropChance(4), 1e-9)
	assert.InDelta(t, 1.0, DropChance(14), 1e-9)
	assert.InDelta(t, 1.0, DropChance(50), 1e-9)
}

func TestDropChance14IsGuaranteed(t *testing.T) {
	r := rng.New(1)
	drops := 0
	for i := 0; i < 50; i++ {
		if TryDropItem(14, 10, false, r) != nil {
			drops++
		}
	}
	assert.Equal(t, 50, drops)
}

func TestRollRarityBronzeNeverEpicOrLegendary(t *testing.T) {
	r := rng.New(7)
	for i := 0; i < 1000; i++ {
		rarity := RollRarity(0, r)
		assert.NotEqual(t, items.Epic, rarity)
		assert.NotEqual(t, items.Legendary, rarity)
	}
}

func TestRollSlotCoversAllSeven(t *testing.T) {
	r := rng.New(3)
	seen := map[items.Slot]bool{}
	for i := 0; i < 500; i++ {
		seen[RollSlot(r)] = true
	}
	assert.Len(t, seen, 7)
}

func TestAffixCountContract(t *testing.T) {
	r := rng.New(99)
	for i := 0; i < 500; i++ {
		rarity := items.Rarity(i % 5)
		item := Generate(items.SlotRing, rarity, 10, r)
		min, max := rarity.AffixCountRange()
		assert.GreaterOrEqual(t, len(item.Affixes), min)
		assert.LessOrEqual(t, len(item.Affixes), max)
	}
}

func TestGeneratePicksDistinctAttributes(t *testing.T) {
	r := rng.New(55)
	for i := 0; i < 200; i++ {
		item := Generate(items.SlotWeapon, items.Legendary, 50, r)
		nonZero := 0
		for _, v := range item.AttributeBonuses {
			if v != 0 {
				nonZero++
			}
		}
		assert.GreaterOrEqual(t, nonZero, 1)
		assert.LessOrEqual(t, nonZero, 3)
	}
}

func TestAutoEquipIfBetterReplacesOnlyWhenHigherScore(t *testing.T) {
	equip := items.New()
	weak := items.Item{Slot: items.SlotRing, Rarity: items.Common, AttributeBonuses: [6]int32{1, 0, 0, 0, 0, 0}}
	strong := items.Item{Slot: items.SlotRing, Rarity: items.Legendary, AttributeBonuses: [6]int32{10, 0, 0, 0, 0, 0}}

	_, equipped := AutoEquipIfBetter(&equip, weak)
	assert.True(t, equipped)

	_, equippedAgain := AutoEquipIfBetter(&equip, strong)
	assert.True(t, equippedAgain)

	replaced, equippedWeakAgain := AutoEquipIfBetter(&equip, weak)
	assert.False(t, equippedWeakAgain)
	assert.Nil(t, replaced)
}
