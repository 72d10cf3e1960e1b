package attributes

import (
	"github.com/udisondev/la2go/internal/constants"
	"github.com/udisondev/la2go/internal/engine/items"
)

// Derived is the immutable record of combat/XP values computed from
// attributes plus equipment. It is never stored authoritatively — every
// tick recomputes it from the persisted Attributes + Equipment
// (spec.md §3 "Derived stats").
type Derived struct {
	TotalDamage               float64
	Defense                   float64
	CritChancePercent         float64
	CritMultiplier            float64
	AttackSpeedMultiplier     float64
	MaxHP                     uint32
	DamageReflectionPercent   float64
	XPMultiplier              float64
}

// Calculate folds equipment attribute bonuses into attrs (without
// mutating the stored Attributes — the caller owns that separately),
// then derives combat stats from the resulting effective attributes plus
// the equipment's affix totals.
//
// Rule from spec.md §4.1: accumulate affix effects additively except
// CritMultiplier, which is (1.0 + sum(CritMultiplier%)*0.01), and
// AttackSpeedMultiplier, which is (1.0 + sum(AttackSpeed%)*0.01).
// DamageReduction affix caps at constants.DamageReductionCapPercent.
func Calculate(attrs Attributes, equip *items.Equipment, prestigeRank uint32) Derived {
	bonuses := equip.AttributeBonusTotals()
	effective := attrs.WithEquipmentBonuses(bonuses)

	str := effective.Get(Strength)
	dex := effective.Get(Dexterity)
	con := effective.Get(Constitution)
	_ = prestigeRank

	damagePercent := equip.AffixTotal(items.DamagePercent)
	totalDamage := (5.0 + float64(str)*1.5) * (1.0 + damagePercent/100.0)

	defense := float64(dex) * 0.5

	critChance := 5.0 + float64(dex)*0.2 + equip.AffixTotal(items.CritChance)
	if critChance > 100 {
		critChance = 100
	}
	if critChance < 0 {
		critChance = 0
	}

	critMultiplier := 1.0 + equip.AffixTotal(items.CritMultiplier)*0.01

	attackSpeed := 1.0 + equip.AffixTotal(items.AttackSpeed)*0.01
	if attackSpeed <= 0 {
		attackSpeed = 0.01
	}

	maxHP := constants.BaseMaxHP + int64(con)*5 + int64(equip.AffixTotal(items.HPBonus))
	if maxHP < 1 {
		maxHP = 1
	}

	reduction := equip.AffixTotal(items.DamageReduction)
	if reduction > constants.DamageReductionCapPercent {
		reduction = constants.DamageReductionCapPercent
	}
	_ = reduction // exposed via ApplyDamageReduction below, not stored on Derived

	reflection := equip.AffixTotal(items.DamageReflection)
	if reflection > 100 {
		reflection = 100
	}

	xpMult := 1.0 + equip.AffixTotal(items.XPGain)/100.0

	return Derived{
		TotalDamage:             totalDamage,
		Defense:                 defense,
		CritChancePercent:       critChance,
		CritMultiplier:          critMultiplier,
		AttackSpeedMultiplier:   attackSpeed,
		MaxHP:                   uint32(maxHP),
		DamageReflectionPercent: reflection,
		XPMultiplier:            xpMult,
	}
}

// ApplyDamageReduction multiplicatively reduces incoming damage by the
// equipped DamageReduction affix total, capped per constants.DamageReductionCapPercent.
func ApplyDamageReduction(equip *items.Equipment, incoming float64) float64 {
	reduction := equip.AffixTotal(items.DamageReduction)
	if reduction > constants.DamageReductionCapPercent {
		reduction = constants.DamageReductionCapPercent
	}
	if reduction < 0 {
		reduction = 0
	}
	return incoming * (1.0 - reduction/100.0)
}
