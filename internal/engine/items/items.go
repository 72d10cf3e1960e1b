// Package items implements the equipment slots, item records, and the
// derived-stat contribution of gear (spec.md §2 component 2, §3, §4.1).
//
// Grounded on original_source/src/items.rs (Rarity/EquipmentSlot/AffixType
// enums, Item struct) and original_source/src/items/equipment.rs
// (Equipment's seven named slots).
package items

import "fmt"

// Slot identifies one of the seven equipment slots.
type Slot int

const (
	SlotWeapon Slot = iota
	SlotArmor
	SlotHelmet
	SlotGloves
	SlotBoots
	SlotAmulet
	SlotRing
)

// AllSlots returns the seven slots in canonical roll order.
func AllSlots() []Slot {
	return []Slot{SlotWeapon, SlotArmor, SlotHelmet, SlotGloves, SlotBoots, SlotAmulet, SlotRing}
}

func (s Slot) String() string {
	switch s {
	case SlotWeapon:
		return "Weapon"
	case SlotArmor:
		return "Armor"
	case SlotHelmet:
		return "Helmet"
	case SlotGloves:
		return "Gloves"
	case SlotBoots:
		return "Boots"
	case SlotAmulet:
		return "Amulet"
	case SlotRing:
		return "Ring"
	default:
		return fmt.Sprintf("UnknownSlot(%d)", int(s))
	}
}

// Rarity orders item quality; the int value also serves as the
// boost_rarity tier used by dungeon treasure rooms.
type Rarity int

const (
	Common Rarity = iota
	Magic
	Rare
	Epic
	Legendary
)

func (r Rarity) String() string {
	switch r {
	case Common:
		return "Common"
	case Magic:
		return "Magic"
	case Rare:
		return "Rare"
	case Epic:
		return "Epic"
	case Legendary:
		return "Legendary"
	default:
		return fmt.Sprintf("UnknownRarity(%d)", int(r))
	}
}

// Boost returns r increased by n tiers, saturating at Legendary.
func (r Rarity) Boost(n int) Rarity {
	out := int(r) + n
	if out > int(Legendary) {
		out = int(Legendary)
	}
	return Rarity(out)
}

// AffixCountRange returns the [min,max] affix count contract for r.
func (r Rarity) AffixCountRange() (min, max int) {
	switch r {
	case Common:
		return 0, 0
	case Magic:
		return 1, 1
	case Rare:
		return 2, 3
	case Epic:
		return 3, 4
	case Legendary:
		return 4, 5
	default:
		return 0, 0
	}
}

// AttributeBonusRange returns the [min,max] per-attribute bonus roll for r.
func (r Rarity) AttributeBonusRange() (min, max int) {
	switch r {
	case Common:
		return 1, 2
	case Magic:
		return 2, 4
	case Rare:
		return 3, 6
	case Epic:
		return 5, 10
	case Legendary:
		return 8, 15
	default:
		return 0, 0
	}
}

// AffixValueRange returns the [min,max] value roll for percent-style
// affixes (everything except HPBonus, which uses AffixHPBonusRange).
func (r Rarity) AffixValueRange() (min, max float64) {
	switch r {
	case Magic:
		return 5, 10
	case Rare:
		return 10, 20
	case Epic:
		return 15, 30
	case Legendary:
		return 25, 50
	default:
		return 0, 0
	}
}

// AffixHPBonusRange returns the [min,max] flat HP roll for the HPBonus
// affix, distinct from the percent-affix range.
func (r Rarity) AffixHPBonusRange() (min, max float64) {
	switch r {
	case Magic:
		return 10, 30
	case Rare:
		return 30, 60
	case Epic:
		return 50, 100
	case Legendary:
		return 80, 150
	default:
		return 0, 0
	}
}

// AffixType enumerates the twelve kinds of item affix.
type AffixType int

const (
	DamagePercent AffixType = iota
	CritChance
	CritMultiplier
	AttackSpeed
	HPBonus
	DamageReduction
	HPRegen
	DamageReflection
	XPGain
	DropRate
	PrestigeBonus
	OfflineRate
)

// AllAffixTypes returns all twelve affix types in declaration order.
func AllAffixTypes() []AffixType {
	return []AffixType{
		DamagePercent, CritChance, CritMultiplier, AttackSpeed, HPBonus,
		DamageReduction, HPRegen, DamageReflection, XPGain, DropRate,
		PrestigeBonus, OfflineRate,
	}
}

func (a AffixType) String() string {
	switch a {
	case DamagePercent:
		return "DamagePercent"
	case CritChance:
		return "CritChance"
	case CritMultiplier:
		return "CritMultiplier"
	case AttackSpeed:
		return "AttackSpeed"
	case HPBonus:
		return "HPBonus"
	case DamageReduction:
		return "DamageReduction"
	case HPRegen:
		return "HPRegen"
	case DamageReflection:
		return "DamageReflection"
	case XPGain:
		return "XPGain"
	case DropRate:
		return "DropRate"
	case PrestigeBonus:
		return "PrestigeBonus"
	case OfflineRate:
		return "OfflineRate"
	default:
		return fmt.Sprintf("UnknownAffix(%d)", int(a))
	}
}

// Affix is one modifier attached to an item.
type Affix struct {
	Type  AffixType `yaml:"type" json:"type"`
	Value float64   `yaml:"value" json:"value"`
}

// Item is a single piece of equipment.
type Item struct {
	Slot              Slot       `yaml:"slot" json:"slot"`
	Rarity            Rarity     `yaml:"rarity" json:"rarity"`
	BaseName          string     `yaml:"base_name" json:"base_name"`
	DisplayName       string     `yaml:"display_name" json:"display_name"`
	AttributeBonuses  [6]int32   `yaml:"attribute_bonuses" json:"attribute_bonuses"`
	Affixes           []Affix    `yaml:"affixes" json:"affixes"`
}

// TotalAttributeBonus sums the item's flat attribute bonuses.
func (it Item) TotalAttributeBonus() int32 {
	var sum int32
	for _, v := range it.AttributeBonuses {
		sum += v
	}
	return sum
}

// Equipment holds the seven equipment slots, each optionally occupied.
type Equipment struct {
	Weapon *Item `yaml:"weapon" json:"weapon"`
	Armor  *Item `yaml:"armor" json:"armor"`
	Helmet *Item `yaml:"helmet" json:"helmet"`
	Gloves *Item `yaml:"gloves" json:"gloves"`
	Boots  *Item `yaml:"boots" json:"boots"`
	Amulet *Item `yaml:"amulet" json:"amulet"`
	Ring   *Item `yaml:"ring" json:"ring"`
}

// New returns an Equipment with every slot empty.
func New() Equipment {
	return Equipment{}
}

// Get returns the item currently in slot, or nil if empty or e is nil.
func (e *Equipment) Get(slot Slot) *Item {
	if e == nil {
		return nil
	}
	switch slot {
	case SlotWeapon:
		return e.Weapon
	case SlotArmor:
		return e.Armor
	case SlotHelmet:
		return e.Helmet
	case SlotGloves:
		return e.Gloves
	case SlotBoots:
		return e.Boots
	case SlotAmulet:
		return e.Amulet
	case SlotRing:
		return e.Ring
	default:
		return nil
	}
}

// Set places item into slot, returning the item it replaced (nil if the
// slot was empty).
func (e *Equipment) Set(slot Slot, item *Item) *Item {
	old := e.Get(slot)
	switch slot {
	case SlotWeapon:
		e.Weapon = item
	case SlotArmor:
		e.Armor = item
	case SlotHelmet:
		e.Helmet = item
	case SlotGloves:
		e.Gloves = item
	case SlotBoots:
		e.Boots = item
	case SlotAmulet:
		e.Amulet = item
	case SlotRing:
		e.Ring = item
	}
	return old
}

// All returns the seven slots paired with their current (possibly nil)
// item, in canonical slot order.
func (e *Equipment) All() []struct {
	Slot Slot
	Item *Item
} {
	out := make([]struct {
		Slot Slot
		Item *Item
	}, 0, 7)
	for _, s := range AllSlots() {
		out = append(out, struct {
			Slot Slot
			Item *Item
		}{s, e.Get(s)})
	}
	return out
}

// AttributeBonusTotals sums attribute_bonuses across every equipped item.
func (e *Equipment) AttributeBonusTotals() [6]int32 {
	var totals [6]int32
	for _, s := range AllSlots() {
		item := e.Get(s)
		if item == nil {
			continue
		}
		for i, v := range item.AttributeBonuses {
			totals[i] += v
		}
	}
	return totals
}

// AffixTotal sums the value of every affix of the given type across all
// equipped items.
func (e *Equipment) AffixTotal(t AffixType) float64 {
	var sum float64
	for _, s := range AllSlots() {
		item := e.Get(s)
		if item == nil {
			continue
		}
		for _, aff := range item.Affixes {
			if aff.Type == t {
				sum += aff.Value
			}
		}
	}
	return sum
}
