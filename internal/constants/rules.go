// Package constants holds the engine's fixed game-design numbers: the
// values spec.md calls "internal constants" as opposed to the tunables
// in internal/config.EngineConfig.
package constants

const (
	// DefaultTickIntervalMS is the default tick interval in milliseconds;
	// TickIntervalMS in config is the authoritative tunable, this is the
	// documented default.
	DefaultTickIntervalMS = 100

	// KillsForBoss is how many regular kills in a subzone before the boss
	// spawns in its place.
	KillsForBoss = 20

	// HPRegenDurationSeconds is how long the post-kill regen window lasts.
	HPRegenDurationSeconds = 3.0

	// AttackIntervalSeconds is the base cadence between attack exchanges,
	// divided by attack_speed_multiplier per tick.
	AttackIntervalSeconds = 2.0

	// BaseXPPerTick is the unscaled XP-per-kill-tick rate before prestige
	// and wisdom modifiers are applied.
	BaseXPPerTick = 1.0

	// XPCurveBase and XPCurveExponent define xp_for_next_level(level) =
	// floor(XPCurveBase * level^XPCurveExponent).
	XPCurveBase     = 100.0
	XPCurveExponent = 1.5

	// LevelUpAttributePoints is how many attribute points a single
	// level-up distributes.
	LevelUpAttributePoints = 3

	// LevelUpMaxDistributionAttempts bounds the retry loop that skips
	// capped attributes when distributing level-up points.
	LevelUpMaxDistributionAttempts = 50

	// CombatXPMinTicks/CombatXPMaxTicks bound the uniform draw used to
	// convert a kill into an XP-tick count.
	CombatXPMinTicks = 200
	CombatXPMaxTicks = 400

	// MaxOfflineSeconds caps how much wall-clock absence counts toward
	// offline progression (7 days).
	MaxOfflineSeconds = 7 * 24 * 60 * 60

	// OfflineMultiplier is the fraction of online kill-rate credited
	// while offline.
	OfflineMultiplier = 0.25

	// AutosaveIntervalSeconds is how often the facade's caller should
	// invoke the persistence wrapper; the core never autosaves itself.
	AutosaveIntervalSeconds = 30

	// DungeonDiscoveryChance is the per-tick Bernoulli probability of
	// stumbling into a dungeon while exploring the overworld.
	DungeonDiscoveryChance = 0.02

	// ChallengeDiscoveryChance is the per-tick Bernoulli probability of a
	// challenge discovery roll succeeding, before the haven-discovery bonus.
	ChallengeDiscoveryChance = 0.0015

	// RoomMoveIntervalSeconds is how long the dungeon auto-explorer waits
	// between steps.
	RoomMoveIntervalSeconds = 2.5

	// AccumulationWindowMS is how long the achievement modal queue
	// accumulates unlocks before becoming ready to display.
	AccumulationWindowMS = 500

	// AttributeBaseValue is every attribute's value on a fresh character.
	AttributeBaseValue = 10

	// AttributeBaseCap and AttributeCapPerPrestige define the cap formula
	// cap = AttributeBaseCap + AttributeCapPerPrestige*prestige_rank.
	AttributeBaseCap       = 20
	AttributeCapPerPrestige = 5

	// DamageReductionCapPercent is the ceiling on multiplicative damage
	// reduction from the DamageReduction affix.
	DamageReductionCapPercent = 75.0

	// BaseMaxHP is the player's max HP floor before Constitution and
	// equipment bonuses.
	BaseMaxHP = 50

	// FinalZoneID is the last scripted zone; defeating its final boss
	// (with the Stormbreaker achievement) unlocks the Expanse.
	FinalZoneID = 10

	// ExpanseZoneID is the cyclic post-game zone.
	ExpanseZoneID = 11
)
