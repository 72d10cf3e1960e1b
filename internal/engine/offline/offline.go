// Package offline implements the offline-progression estimate applied on
// load, per spec.md §4.10.
//
// Grounded on original_source/src/core/offline.rs, whose own test suite
// (test_offline_multiplier_is_25_percent, test_max_offline_seconds_is_seven_days)
// fixes OFFLINE_MULTIPLIER=0.25 and MAX_OFFLINE_SECONDS=7 days as the
// current canonical constants, and on internal/engine/combat's
// xp_per_tick/apply_tick_xp for the award itself.
package offline

import (
	"github.com/udisondev/la2go/internal/constants"
	"github.com/udisondev/la2go/internal/engine/attributes"
	"github.com/udisondev/la2go/internal/engine/combat"
	"github.com/udisondev/la2go/internal/rng"
)

// Report summarizes one offline-progression application.
type Report struct {
	ElapsedSeconds          int64
	EstimatedKills          float64
	XPGained                float64
	LevelBefore             uint32
	LevelAfter              uint32
	TotalLevelUps           int
	HavenBonusPercent       float64
	EffectiveOfflineRatePercent float64
}

// Apply computes and applies the offline XP award for elapsedSeconds
// (current_wall - last_save_time), clamped to
// constants.MaxOfflineSeconds; negative elapsed (clock skew) yields an
// empty report and mutates nothing.
func Apply(
	elapsedSeconds int64,
	prestigeRank uint32,
	wisModifier, chaModifier int,
	havenOfflineXPPercent float64,
	level *uint32,
	xp *uint64,
	attrs *attributes.Attributes,
	r *rng.Source,
) Report {
	if elapsedSeconds < 0 {
		return Report{}
	}
	if elapsedSeconds > constants.MaxOfflineSeconds {
		elapsedSeconds = constants.MaxOfflineSeconds
	}

	estimatedKills := (float64(elapsedSeconds) / 5.0) * constants.OfflineMultiplier

	xpPerTick := combat.XPPerTick(prestigeRank, wisModifier, chaModifier)
	avgTicks := (float64(constants.CombatXPMinTicks) + float64(constants.CombatXPMaxTicks)) / 2.0
	xpGained := estimatedKills * xpPerTick * avgTicks * (1.0 + havenOfflineXPPercent/100.0)

	before := *level
	result := combat.ApplyTickXP(level, xp, attrs, prestigeRank, xpGained, r)

	effectiveRate := 0.0
	if elapsedSeconds > 0 {
		effectiveRate = constants.OfflineMultiplier * 100.0
	}

	return Report{
		ElapsedSeconds:              elapsedSeconds,
		EstimatedKills:              estimatedKills,
		XPGained:                    xpGained,
		LevelBefore:                 before,
		LevelAfter:                  result.LevelAfter,
		TotalLevelUps:               result.TotalLevelUps,
		HavenBonusPercent:           havenOfflineXPPercent,
		EffectiveOfflineRatePercent: effectiveRate,
	}
}
