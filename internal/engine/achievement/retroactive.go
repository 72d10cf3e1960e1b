package achievement

import "github.com/udisondev/la2go/internal/engine/zone"

// ZoneCompletionID maps a zone id to its completion achievement, for
// zones 1-10 (the Expanse has no single "complete" milestone; it has the
// cycle milestones instead).
func ZoneCompletionID(zoneID uint32) (ID, bool) {
	ids := map[uint32]ID{
		1: "Zone1Complete", 2: "Zone2Complete", 3: "Zone3Complete", 4: "Zone4Complete",
		5: "Zone5Complete", 6: "Zone6Complete", 7: "Zone7Complete", 8: "Zone8Complete",
		9: "Zone9Complete", 10: "Zone10Complete",
	}
	id, ok := ids[zoneID]
	return id, ok
}

// RoomTier describes a haven-style buildable room's current and max tier,
// used by the builder-achievement sync below.
type RoomTier struct {
	Current int
	MaxTier int
}

// RetroactiveSyncInput bundles the values a freshly-loaded save needs to
// replay through the achievement handlers once, per spec.md §4.9.
type RetroactiveSyncInput struct {
	CharacterName    string
	Level            uint32
	PrestigeRank     uint32
	FishingRank      uint32
	TotalFishCaught  uint64
	DefeatedBosses   map[zone.BossKey]bool
	RoomTiers        map[string]RoomTier
	NowUnixSeconds   int64
	NowMonotonicMS   int64
}

// RetroactiveSync fires each handler exactly once to cascade milestones
// for a loaded character whose achievements may be behind its actual
// progress (spec.md §4.9 / §7 AchievementDesync).
func (t *Tracker) RetroactiveSync(in RetroactiveSyncInput) {
	t.OnLevelUp(in.CharacterName, in.Level, in.NowMonotonicMS)
	t.OnPrestige(in.CharacterName, in.PrestigeRank, in.NowMonotonicMS)
	t.OnFishingRankUp(in.CharacterName, in.FishingRank, in.NowMonotonicMS)

	// Fish count must never regress (§7 AchievementDesync: resolve by max).
	t.OnFishCaught(in.CharacterName, in.TotalFishCaught, in.NowMonotonicMS)

	for _, z := range zone.AllZones() {
		if z.ID == 11 {
			continue // Expanse has no single completion milestone
		}
		allDefeated := true
		for _, sz := range z.Subzones {
			if !in.DefeatedBosses[zone.BossKey{ZoneID: z.ID, SubzoneID: sz.ID}] {
				allDefeated = false
				break
			}
		}
		if !allDefeated {
			continue
		}
		if id, ok := ZoneCompletionID(z.ID); ok {
			t.OnZoneFullyCleared(in.CharacterName, id, in.NowUnixSeconds, in.NowMonotonicMS)
		}
	}

	t.syncHavenBuilderAchievements(in)
}

// builderAchievements maps a minimum-tier-across-all-rooms threshold to
// its unlock id. Rooms whose declared MaxTier is below 3 still count as
// satisfying "tier 3" once they're at their own max, per §4.9.
var builderAchievements = []struct {
	tier int
	id   ID
}{
	{1, "HavenBuilderI"},
	{2, "HavenBuilderII"},
	{3, "HavenBuilderIII"},
}

func (t *Tracker) syncHavenBuilderAchievements(in RetroactiveSyncInput) {
	if len(in.RoomTiers) == 0 {
		return
	}
	for _, ba := range builderAchievements {
		allMeet := true
		for _, rt := range in.RoomTiers {
			required := ba.tier
			if rt.MaxTier < required {
				required = rt.MaxTier
			}
			if rt.Current < required {
				allMeet = false
				break
			}
		}
		if allMeet {
			t.UnlockAt(ba.id, in.CharacterName, in.NowUnixSeconds, in.NowMonotonicMS)
		}
	}
}
