package core

import (
	"github.com/udisondev/la2go/internal/engine/attributes"
	"github.com/udisondev/la2go/internal/engine/prestige"
	"github.com/udisondev/la2go/internal/engine/zone"
)

// ZoneInfo is the read-only zone/subzone projection for UI display.
type ZoneInfo struct {
	ZoneID       uint32
	ZoneName     string
	SubzoneID    uint32
	SubzoneName  string
	FightingBoss bool
	BossName     string
}

// QueryZoneInfo projects the player's current zone/subzone location.
func (f *Facade) QueryZoneInfo() ZoneInfo {
	p := &f.State.ZoneProgression
	z, sz := zone.GetSubzone(p.CurrentZoneID, p.CurrentSubzoneID)
	info := ZoneInfo{ZoneID: p.CurrentZoneID, SubzoneID: p.CurrentSubzoneID, FightingBoss: p.FightingBoss}
	if z != nil {
		info.ZoneName = z.Name
	}
	if sz != nil {
		info.SubzoneName = sz.Name
		info.BossName = sz.Boss.Name
	}
	return info
}

// QueryDerivedStats exposes the recomputed combat/XP derived stats.
func (f *Facade) QueryDerivedStats() attributes.Derived {
	return f.State.Derived()
}

// QueryEquipment returns the player's current 7-slot loadout.
func (f *Facade) QueryEquipment() map[string]string {
	out := make(map[string]string)
	for _, entry := range f.State.Equipment.All() {
		if entry.Item != nil {
			out[entry.Slot.String()] = entry.Item.DisplayName
		}
	}
	return out
}

// AchievementsSummary is the read-only projection of achievement
// progress for display.
type AchievementsSummary struct {
	UnlockedCount int
	Aggregates    map[string]uint64
}

// QueryAchievementsSummary projects unlock count and raw aggregates.
func (f *Facade) QueryAchievementsSummary() AchievementsSummary {
	t := f.State.Achievements
	agg := t.Aggregates
	return AchievementsSummary{
		UnlockedCount: len(t.Unlocked),
		Aggregates: map[string]uint64{
			"total_kills":              agg.TotalKills,
			"total_bosses_defeated":    agg.TotalBossesDefeated,
			"total_fish_caught":        agg.TotalFishCaught,
			"total_dungeons_completed": agg.TotalDungeonsCompleted,
			"total_minigame_wins":      agg.TotalMinigameWins,
			"zones_fully_cleared":      uint64(agg.ZonesFullyCleared),
			"expanse_cycles_completed": agg.ExpanseCyclesCompleted,
		},
	}
}

// QueryChallengeMenu exposes the challenge menu's current cursor/list
// state for rendering.
func (f *Facade) QueryChallengeMenu() *challengeMenuView {
	m := &f.State.ChallengeMenu
	return &challengeMenuView{
		IsOpen:             m.IsOpen,
		ViewingDetail:      m.ViewingDetail,
		SelectedIndex:      m.SelectedIndex,
		SelectedDifficulty: m.SelectedDifficulty,
		Count:              len(m.Challenges),
	}
}

type challengeMenuView struct {
	IsOpen             bool
	ViewingDetail      bool
	SelectedIndex      int
	SelectedDifficulty int
	Count              int
}

// DungeonInfo projects the active dungeon's exploration progress, or nil
// when no dungeon is active.
type DungeonInfo struct {
	RoomCount      int
	CollectedItems int
	BossUnlocked   bool
}

// QueryDungeonInfo reports the active dungeon's progress, or nil outside
// a dungeon run.
func (f *Facade) QueryDungeonInfo() *DungeonInfo {
	d := f.State.ActiveDungeon
	if d == nil {
		return nil
	}
	return &DungeonInfo{
		RoomCount:      d.RoomCount(),
		CollectedItems: d.CollectedItemCount,
		BossUnlocked:   d.IsBossUnlocked(),
	}
}

// QueryAdventurerRank exposes the flavor rank name for the player's
// level, supplemented from original_source/src/prestige.rs per
// SPEC_FULL.md's SUPPLEMENTED FEATURES #1 — a pure display function, not
// stored.
func (f *Facade) QueryAdventurerRank() string {
	return prestige.AdventurerRank(f.State.CharacterLevel)
}

// QueryPrestigeTier exposes the current and next prestige tier names.
func (f *Facade) QueryPrestigeTier() (current, next prestige.Tier) {
	return prestige.GetTier(f.State.PrestigeRank), prestige.NextTier(f.State.PrestigeRank)
}
