// Package loot implements the drop gate, rarity roll, slot roll, and
// attribute/affix synthesis described in spec.md §4.4.
//
// Grounded on original_source/src/item_drops.rs (drop_chance, roll_rarity,
// roll_random_slot) and original_source/src/item_generation.rs (attribute
// and affix synthesis ranges, confirmed exactly against those files'
// constants).
package loot

import (
	"fmt"

	"github.com/udisondev/la2go/internal/engine/items"
	"github.com/udisondev/la2go/internal/rng"
)

// DropChance returns the Bernoulli probability a mob drops an item at the
// given prestige rank: 0.30 + 0.05*rank, clamped to 1.0.
func DropChance(prestigeRank uint32) float64 {
	p := 0.30 + float64(prestigeRank)*0.05
	if p > 1.0 {
		p = 1.0
	}
	return p
}

// RollRarity draws a rarity banded by prestige rank per spec.md §4.4's
// four prestige bands.
func RollRarity(prestigeRank uint32, r *rng.Source) items.Rarity {
	roll := r.Float64()

	switch {
	case prestigeRank <= 1:
		switch {
		case roll < 0.60:
			return items.Common
		case roll < 0.90:
			return items.Magic
		default:
			return items.Rare
		}
	case prestigeRank <= 3:
		switch {
		case roll < 0.30:
			return items.Common
		case roll < 0.70:
			return items.Magic
		case roll < 0.95:
			return items.Rare
		default:
			return items.Epic
		}
	case prestigeRank <= 5:
		switch {
		case roll < 0.15:
			return items.Common
		case roll < 0.45:
			return items.Magic
		case roll < 0.85:
			return items.Rare
		case roll < 0.98:
			return items.Epic
		default:
			return items.Legendary
		}
	default:
		switch {
		case roll < 0.10:
			return items.Common
		case roll < 0.30:
			return items.Magic
		case roll < 0.65:
			return items.Rare
		case roll < 0.90:
			return items.Epic
		default:
			return items.Legendary
		}
	}
}

// RollSlot picks a uniformly random equipment slot. spec.md §9 records
// slot-weighting as an explicit Open Question left unresolved; this
// implementation follows the stated uniform-over-7 design.
func RollSlot(r *rng.Source) items.Slot {
	return items.AllSlots()[r.IntN(7)]
}

// TryDropItem resolves a single drop attempt: the Bernoulli gate, then
// rarity/slot roll and synthesis. isBoss bypasses the gate (bosses always
// drop per spec.md §4.4).
func TryDropItem(prestigeRank uint32, characterLevel uint32, isBoss bool, r *rng.Source) *items.Item {
	if !isBoss && !r.Bernoulli(DropChance(prestigeRank)) {
		return nil
	}
	rarity := RollRarity(prestigeRank, r)
	slot := RollSlot(r)
	item := Generate(slot, rarity, characterLevel, r)
	return &item
}

// Generate synthesizes a fresh item of the given slot/rarity: 1-3 distinct
// attribute bonuses plus the affix-count contract for rarity.
func Generate(slot items.Slot, rarity items.Rarity, characterLevel uint32, r *rng.Source) items.Item {
	var bonuses [6]int32
	attrMin, attrMax := rarity.AttributeBonusRange()
	numAttrs := 1 + r.IntN(3) // 1..3 distinct attributes

	chosen := make(map[int]bool, numAttrs)
	for len(chosen) < numAttrs && len(chosen) < 6 {
		idx := r.IntN(6)
		if chosen[idx] {
			continue
		}
		chosen[idx] = true
		bonuses[idx] = int32(r.UniformInt(attrMin, attrMax))
	}

	affixes := synthesizeAffixes(rarity, r)

	return items.Item{
		Slot:             slot,
		Rarity:           rarity,
		BaseName:         baseName(slot, rarity),
		DisplayName:      displayName(slot, rarity, characterLevel),
		AttributeBonuses: bonuses,
		Affixes:          affixes,
	}
}

func synthesizeAffixes(rarity items.Rarity, r *rng.Source) []items.Affix {
	min, max := rarity.AffixCountRange()
	if max == 0 {
		return nil
	}
	count := r.UniformInt(min, max)
	if count == 0 {
		return nil
	}

	types := items.AllAffixTypes()
	out := make([]items.Affix, 0, count)
	for i := 0; i < count; i++ {
		t := types[r.IntN(len(types))]
		var value float64
		if t == items.HPBonus {
			lo, hi := rarity.AffixHPBonusRange()
			value = r.UniformFloat(lo, hi)
		} else {
			lo, hi := rarity.AffixValueRange()
			value = r.UniformFloat(lo, hi)
		}
		out = append(out, items.Affix{Type: t, Value: value})
	}
	return out
}

func baseName(slot items.Slot, rarity items.Rarity) string {
	return fmt.Sprintf("%s %s", rarity, slot)
}

func displayName(slot items.Slot, rarity items.Rarity, level uint32) string {
	return fmt.Sprintf("%s %s (Lv.%d)", rarity, slot, level)
}

// Score weighs an item for the auto-equip comparison in spec.md §4.4:
// a weighted sum of attribute bonuses and affix contributions, projected
// the way DerivedStats would weigh them. Kept intentionally simple and
// monotonic in the inputs DerivedStats actually reads.
func Score(item *items.Item) float64 {
	if item == nil {
		return 0
	}
	score := float64(item.TotalAttributeBonus()) * 2.0
	for _, a := range item.Affixes {
		switch a.Type {
		case items.HPBonus:
			score += a.Value * 0.5
		case items.CritMultiplier, items.AttackSpeed:
			score += a.Value * 1.5
		default:
			score += a.Value
		}
	}
	return score
}

// AutoEquipIfBetter replaces the incumbent in slot iff candidate scores
// strictly higher, returning the item that ends up unequipped (nil if no
// swap happened), and whether the candidate was equipped.
func AutoEquipIfBetter(equip *items.Equipment, candidate items.Item) (replaced *items.Item, equipped bool) {
	incumbent := equip.Get(candidate.Slot)
	if Score(&candidate) <= Score(incumbent) {
		return nil, false
	}
	old := equip.Set(candidate.Slot, &candidate)
	return old, true
}
