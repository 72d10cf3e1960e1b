package persist

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/la2go/internal/engine/core"
)

// DebugSnapshot is the human-inspectable subset of GameState the --debug
// CLI flag dumps alongside the binary gob save, giving gopkg.in/yaml.v3 a
// second home beyond config loading (DOMAIN STACK). A subset rather than
// the full struct: GameState carries map keys (zone.BossKey) YAML cannot
// render as a mapping key, so this mirrors what an operator actually
// wants to eyeball rather than round-tripping the save itself.
type DebugSnapshot struct {
	CharacterID    string `yaml:"character_id"`
	CharacterName  string `yaml:"character_name"`
	CharacterLevel uint32 `yaml:"character_level"`
	CharacterXP    uint64 `yaml:"character_xp"`

	PrestigeRank       uint32 `yaml:"prestige_rank"`
	TotalPrestigeCount uint64 `yaml:"total_prestige_count"`

	CurrentZoneID    uint32 `yaml:"current_zone_id"`
	CurrentSubzoneID uint32 `yaml:"current_subzone_id"`

	PlayerCurrentHP uint32 `yaml:"player_current_hp"`
	PlayerMaxHP     uint32 `yaml:"player_max_hp"`

	InDungeon  bool `yaml:"in_dungeon"`
	InFishing  bool `yaml:"in_fishing"`
	InMinigame bool `yaml:"in_minigame"`

	UnlockedAchievements int `yaml:"unlocked_achievements"`
}

// Snapshot projects a GameState into its DebugSnapshot.
func Snapshot(state *core.GameState) DebugSnapshot {
	return DebugSnapshot{
		CharacterID:          state.CharacterID,
		CharacterName:        state.CharacterName,
		CharacterLevel:       state.CharacterLevel,
		CharacterXP:          state.CharacterXP,
		PrestigeRank:         state.PrestigeRank,
		TotalPrestigeCount:   state.TotalPrestigeCount,
		CurrentZoneID:        state.ZoneProgression.CurrentZoneID,
		CurrentSubzoneID:     state.ZoneProgression.CurrentSubzoneID,
		PlayerCurrentHP:      state.Combat.PlayerCurrentHP,
		PlayerMaxHP:          state.Combat.PlayerMaxHP,
		InDungeon:            state.InDungeon(),
		InFishing:            state.InFishing(),
		InMinigame:           state.InMinigame(),
		UnlockedAchievements: len(state.Achievements.Unlocked),
	}
}

// DumpYAML renders a GameState's DebugSnapshot as YAML text.
func DumpYAML(state *core.GameState) (string, error) {
	out, err := yaml.Marshal(Snapshot(state))
	if err != nil {
		return "", fmt.Errorf("persist: marshal debug snapshot: %w", err)
	}
	return string(out), nil
}
