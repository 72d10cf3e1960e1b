// Package combat implements the tick-cadence attack/defense/crit/regen
// pipeline from spec.md §4.2, plus the XP curve from §4.2/§3.
//
// Grounded on original_source/src/core/game_logic.rs (xp_for_next_level,
// prestige_multiplier, distribute_level_up_points, apply_tick_xp,
// combat_kill_xp) and the teacher repo's internal/game/combat/damage.go
// (doc-comment structure: Parameters/Returns headers, minimum-damage
// clamping idiom).
package combat

import (
	"math"

	"github.com/udisondev/la2go/internal/constants"
	"github.com/udisondev/la2go/internal/engine/attributes"
	"github.com/udisondev/la2go/internal/rng"
)

// Enemy is a transient combat target; never persisted beyond the current
// fight (spec.md §3 CombatState.current_enemy).
type Enemy struct {
	Name      string
	MaxHP     int64
	CurrentHP int64
	Damage    int64
	IsBoss    bool
	IsElite   bool
}

// State is the persistent subset of combat fields (spec.md §6's
// "persistent fields only: hp, max_hp, timers"). CurrentEnemy and
// IsRegenerating are runtime, not serialized authoritatively in the same
// sense, but are small enough the teacher's style would still persist
// them verbatim rather than reconstruct — kept here for simplicity.
type State struct {
	PlayerMaxHP     uint32
	PlayerCurrentHP uint32
	AttackTimer     float64
	RegenTimer      float64
	IsRegenerating  bool
	CurrentEnemy    *Enemy
}

// New returns a fresh combat state at the given max HP, fully healed.
func New(maxHP uint32) State {
	return State{PlayerMaxHP: maxHP, PlayerCurrentHP: maxHP}
}

// XPForNextLevel returns floor(XPCurveBase * level^XPCurveExponent).
//
// Parameters:
//   level - the character's current level (≥1).
// Returns:
//   the XP threshold to reach level+1.
func XPForNextLevel(level uint32) uint64 {
	return uint64(math.Floor(constants.XPCurveBase * math.Pow(float64(level), constants.XPCurveExponent)))
}

// PrestigeMultiplier implements spec.md §3's
// prestige_multiplier(rank, cha_mod) = (1 + 0.5*rank^0.7) + 0.1*cha_mod.
func PrestigeMultiplier(prestigeRank uint32, chaMod int) float64 {
	return 1.0 + 0.5*math.Pow(float64(prestigeRank), 0.7) + 0.1*float64(chaMod)
}

// XPPerTick implements spec.md §4.2's xp_per_tick formula.
func XPPerTick(prestigeRank uint32, wisMod, chaMod int) float64 {
	return constants.BaseXPPerTick * PrestigeMultiplier(prestigeRank, chaMod) * (1.0 + 0.05*float64(wisMod))
}

// CombatKillXP draws the per-kill XP award: a uniform tick-count in
// [CombatXPMinTicks, CombatXPMaxTicks] scaled by xpPerTick and the Haven
// XP-gain bonus percent.
func CombatKillXP(xpPerTick float64, havenXPGainPercent float64, r *rng.Source) float64 {
	ticks := r.UniformInt(constants.CombatXPMinTicks, constants.CombatXPMaxTicks)
	return float64(ticks) * xpPerTick * (1.0 + havenXPGainPercent/100.0)
}

// DistributeLevelUpPoints spends constants.LevelUpAttributePoints points,
// picking a random (non-capped) attribute for each, up to
// LevelUpMaxDistributionAttempts attempts; fewer than the full amount may
// be distributed if every attribute is capped.
func DistributeLevelUpPoints(attrs *attributes.Attributes, cap uint32, r *rng.Source) int {
	all := attributes.All()
	distributed := 0
	attempts := 0
	for distributed < constants.LevelUpAttributePoints && attempts < constants.LevelUpMaxDistributionAttempts {
		attempts++
		pick := all[r.IntN(len(all))]
		if attrs.Increment(pick, cap) {
			distributed++
		}
	}
	return distributed
}

// ApplyTickXPResult reports the outcome of ApplyTickXP.
type ApplyTickXPResult struct {
	TotalLevelUps int
	LevelBefore   uint32
	LevelAfter    uint32
}

// ApplyTickXP adds xpGained to (level, xp), cascading as many level-ups as
// the amount affords, distributing LevelUpAttributePoints each time.
func ApplyTickXP(level *uint32, xp *uint64, attrs *attributes.Attributes, prestigeRank uint32, xpGained float64, r *rng.Source) ApplyTickXPResult {
	before := *level
	*xp += uint64(xpGained)

	levelUps := 0
	for uint64(*xp) >= XPForNextLevel(*level) {
		*xp -= XPForNextLevel(*level)
		*level++
		levelUps++
		cap := attributes.Cap(prestigeRank)
		DistributeLevelUpPoints(attrs, cap, r)
	}

	return ApplyTickXPResult{TotalLevelUps: levelUps, LevelBefore: before, LevelAfter: *level}
}
