// Package config loads the engine's tunable parameters from YAML,
// following the same grouped-by-concern struct layout and
// tolerate-missing-fields loader pattern the teacher uses for its
// LoginServer/GameServer configs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/la2go/internal/constants"
)

// EngineConfig holds every tunable named in spec.md §9 ("Dynamic named
// parameters / config"), loaded from YAML with field defaults applied
// when absent from the file. Values not named in §9 stay fixed in
// internal/constants and are not operator-tunable.
type EngineConfig struct {
	TickIntervalMS           int     `yaml:"tick_interval_ms"`
	AttackIntervalSeconds    float64 `yaml:"attack_interval_seconds"`
	HPRegenDurationSeconds   float64 `yaml:"hp_regen_duration_seconds"`
	BaseXPPerTick            float64 `yaml:"base_xp_per_tick"`
	XPCurveBase              float64 `yaml:"xp_curve_base"`
	XPCurveExponent          float64 `yaml:"xp_curve_exponent"`
	LevelUpAttributePoints   int     `yaml:"level_up_attribute_points"`
	CombatXPMinTicks         int     `yaml:"combat_xp_min_ticks"`
	CombatXPMaxTicks         int     `yaml:"combat_xp_max_ticks"`
	KillsForBoss             int     `yaml:"kills_for_boss"`
	MaxOfflineSeconds        int64   `yaml:"max_offline_seconds"`
	OfflineMultiplier        float64 `yaml:"offline_multiplier"`
	DungeonDiscoveryChance   float64 `yaml:"dungeon_discovery_chance"`
	ChallengeDiscoveryChance float64 `yaml:"challenge_discovery_chance"`
	RoomMoveIntervalSeconds  float64 `yaml:"room_move_interval"`
	AccumulationWindowMS     int64   `yaml:"accumulation_window_ms"`

	// LogLevel controls the slog handler's minimum level: debug, info,
	// warn, error (default: info).
	LogLevel string `yaml:"log_level"`

	// Database backs the optional pgx+goose save-slot store.
	Database DatabaseConfig `yaml:"database"`

	// Haven holds the base-building bonus percentages fed into
	// Challenge/Offline/Combat as external parameters (haven is not one
	// of the engine's own [MODULE]s — see DESIGN.md).
	Haven HavenConfig `yaml:"haven"`
}

// HavenConfig mirrors core.HavenBonuses for YAML loading; the facade
// reads it once per session rather than owning a Haven module itself.
type HavenConfig struct {
	OfflineXPPercent float64 `yaml:"offline_xp_percent"`
	XPGainPercent    float64 `yaml:"xp_gain_percent"`
	DiscoveryPercent float64 `yaml:"discovery_percent"`
}

// DefaultEngineConfig returns the tunables at the values internal/constants
// fixes as this engine's current design defaults.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		TickIntervalMS:           constants.DefaultTickIntervalMS,
		AttackIntervalSeconds:    constants.AttackIntervalSeconds,
		HPRegenDurationSeconds:   constants.HPRegenDurationSeconds,
		BaseXPPerTick:            constants.BaseXPPerTick,
		XPCurveBase:              constants.XPCurveBase,
		XPCurveExponent:          constants.XPCurveExponent,
		LevelUpAttributePoints:   constants.LevelUpAttributePoints,
		CombatXPMinTicks:         constants.CombatXPMinTicks,
		CombatXPMaxTicks:         constants.CombatXPMaxTicks,
		KillsForBoss:             constants.KillsForBoss,
		MaxOfflineSeconds:        constants.MaxOfflineSeconds,
		OfflineMultiplier:        constants.OfflineMultiplier,
		DungeonDiscoveryChance:   constants.DungeonDiscoveryChance,
		ChallengeDiscoveryChance: constants.ChallengeDiscoveryChance,
		RoomMoveIntervalSeconds:  constants.RoomMoveIntervalSeconds,
		AccumulationWindowMS:     constants.AccumulationWindowMS,
		LogLevel:                 "info",
		Database: DatabaseConfig{
			Host:    "127.0.0.1",
			Port:    5432,
			User:    "quest",
			Password: "quest",
			DBName:  "quest",
			SSLMode: "disable",
		},
	}
}

// Load reads an EngineConfig from a YAML file, starting from
// DefaultEngineConfig so any field the file omits keeps its default.
// A missing file is not an error: it returns the defaults unchanged,
// matching the teacher's LoadLoginServer/LoadGameServer tolerance.
func Load(path string) (EngineConfig, error) {
	cfg := DefaultEngineConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
