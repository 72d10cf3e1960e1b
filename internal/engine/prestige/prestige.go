// Package prestige implements the prestige reset/eligibility rules from
// spec.md §3 "Prestige" and §4.11.
//
// Grounded on original_source/src/prestige.rs for the static tier-name
// table (get_prestige_tier) and get_adventurer_rank flavor text; the
// eligibility/reset semantics themselves follow the CURRENT singular
// character_level model described in spec.md §4.11 rather than
// prestige.rs's can_prestige/perform_prestige, which operate on a
// superseded state.stats: Vec<Stat> model absent from
// original_source/src/core/game_state.rs.
package prestige

import (
	"math"

	"github.com/udisondev/la2go/internal/engine/attributes"
	"github.com/udisondev/la2go/internal/engine/zone"
)

// Tier names the flavor rank associated with a prestige rank, and the
// level required to reach the NEXT rank from it.
type Tier struct {
	Rank          uint32
	Name          string
	RequiredLevel uint32
}

// GetTier returns the static/interpolated tier for rank.
func GetTier(rank uint32) Tier {
	switch rank {
	case 0:
		return Tier{Rank: 0, Name: "None", RequiredLevel: 0}
	case 1:
		return Tier{Rank: 1, Name: "Bronze", RequiredLevel: 10}
	case 2:
		return Tier{Rank: 2, Name: "Silver", RequiredLevel: 25}
	case 3:
		return Tier{Rank: 3, Name: "Gold", RequiredLevel: 50}
	case 5:
		return Tier{Rank: 5, Name: "Platinum", RequiredLevel: 75}
	case 10:
		return Tier{Rank: 10, Name: "Diamond", RequiredLevel: 100}
	case 15:
		return Tier{Rank: 15, Name: "Celestial", RequiredLevel: 150}
	default:
		var required uint32
		switch {
		case rank < 3:
			required = 10 + (rank-1)*15
		case rank < 10:
			required = 50 + (rank-3)*10
		default:
			required = 100 + (rank-10)*25
		}
		return Tier{Rank: rank, Name: "Custom", RequiredLevel: required}
	}
}

// NextTier returns the tier the player is working toward from currentRank.
func NextTier(currentRank uint32) Tier {
	return GetTier(currentRank + 1)
}

// AdventurerRank returns the flavor rank name for a character level.
func AdventurerRank(level uint32) string {
	switch {
	case level <= 9:
		return "Novice"
	case level <= 24:
		return "Adept"
	case level <= 49:
		return "Master"
	case level <= 74:
		return "Grand Master"
	case level <= 99:
		return "Legend"
	default:
		return "Mythic"
	}
}

// CurrentWallZoneCleared reports whether the scripted clear requirement
// for the player's current wall zone (spec.md §4.11) is met: the final
// boss of the current zone has been defeated, or the player has already
// progressed past it into a later zone.
func CurrentWallZoneCleared(prog *zone.Progression) bool {
	z := zone.Get(prog.CurrentZoneID)
	if z == nil || len(z.Subzones) == 0 {
		return true
	}
	last := z.Subzones[len(z.Subzones)-1]
	if prog.CurrentSubzoneID > last.ID {
		return true
	}
	return prog.DefeatedBosses[zone.BossKey{ZoneID: z.ID, SubzoneID: last.ID}]
}

// CanPrestige reports whether level and the zone's clear state satisfy
// the next tier's requirement.
func CanPrestige(level uint32, currentRank uint32, prog *zone.Progression) bool {
	next := NextTier(currentRank)
	if level < next.RequiredLevel {
		return false
	}
	return CurrentWallZoneCleared(prog)
}

// Result reports the outcome of a successful Perform call.
type Result struct {
	OldRank uint32
	NewRank uint32
}

// Perform executes the reset portion of spec.md §4.11's seven steps:
// record old rank, bump rank/total count, reset level/xp/attributes
// (respecting the new cap), and reset zone progression. Equipment,
// chess/fishing stats, and achievements are untouched by design — the
// caller is responsible for recomputing derived stats, healing to new
// max HP, and firing on_prestige afterward.
func Perform(level *uint32, xp *uint64, attrs *attributes.Attributes, rank *uint32, totalPrestigeCount *uint64, prog *zone.Progression) Result {
	old := *rank
	*rank++
	*totalPrestigeCount++
	*level = 1
	*xp = 0
	*attrs = attributes.New()
	prog.ResetForPrestige(*rank)
	return Result{OldRank: old, NewRank: *rank}
}

// legacyMultiplier mirrors prestige.rs's 1.5^rank display figure; the
// actual XP-affecting multiplier is combat.PrestigeMultiplier, which also
// folds in charisma — this is flavor text only (e.g. a tier tooltip).
func legacyMultiplier(rank uint32) float64 {
	return math.Pow(1.5, float64(rank))
}

// LegacyMultiplier exposes legacyMultiplier for display purposes.
func LegacyMultiplier(rank uint32) float64 {
	return legacyMultiplier(rank)
}
