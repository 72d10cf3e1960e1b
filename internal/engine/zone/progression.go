package zone

import "github.com/udisondev/la2go/internal/constants"

// BossKey identifies a defeated boss by (zone, subzone).
type BossKey struct {
	ZoneID    uint32
	SubzoneID uint32
}

// AchievementChecker is the minimal achievements surface the zone state
// machine needs, satisfied by *achievement.Tracker (kept as an interface
// here to avoid a package cycle, per spec.md §9's "resolve by tagged
// identifiers rather than borrowed references" guidance).
type AchievementChecker interface {
	IsUnlocked(id string) bool
	Unlock(id, characterName string) bool
}

// The identifiers this package needs from the achievements vocabulary.
// Kept as plain strings (tagged identifiers) rather than an import of the
// achievement package's enum, to avoid a cyclic dependency.
const (
	AchievementTheStormbreaker = "TheStormbreaker"
	AchievementStormsEnd       = "StormsEnd"
)

// Progression is the mutable zone/subzone state machine.
type Progression struct {
	CurrentZoneID    uint32
	CurrentSubzoneID uint32
	DefeatedBosses   map[BossKey]bool
	UnlockedZones    map[uint32]bool
	KillsInSubzone   uint32
	FightingBoss     bool
}

// New returns a fresh Progression at zone 1, subzone 1, with zones 1 and 2
// unlocked (matching original_source's starting unlocked_zones=[1,2]).
func New() Progression {
	return Progression{
		CurrentZoneID:    1,
		CurrentSubzoneID: 1,
		DefeatedBosses:   map[BossKey]bool{},
		UnlockedZones:    map[uint32]bool{1: true, 2: true},
	}
}

// RecordKill implements spec.md §4.3's record_kill(): a no-op while
// fighting a boss; otherwise increments kills_in_subzone and flips
// FightingBoss once the threshold is reached.
func (p *Progression) RecordKill() {
	if p.FightingBoss {
		return
	}
	p.KillsInSubzone++
	if p.KillsInSubzone >= constants.KillsForBoss {
		p.FightingBoss = true
	}
}

// BossDefeatResultKind tags the outcome of on_boss_defeated.
type BossDefeatResultKind int

const (
	ResultSubzoneComplete BossDefeatResultKind = iota
	ResultZoneComplete
	ResultZoneCompleteButGated
	ResultStormsEnd
	ResultWeaponRequired
	ResultExpanseCycle
)

// BossDefeatResult is the outcome of on_boss_defeated.
type BossDefeatResult struct {
	Kind               BossDefeatResultKind
	NewSubzoneID       uint32
	OldZoneID          uint32
	NewZoneID          uint32
	RequiredPrestige   uint32
	WeaponName         string
}

// BossWeaponBlocked returns the weapon name required to progress past the
// zone's final boss if the zone is weapon-gated and the player lacks the
// achievement, else "".
func (p *Progression) BossWeaponBlocked(ach AchievementChecker) string {
	z := Get(p.CurrentZoneID)
	if z == nil || !z.RequiresWeapon {
		return ""
	}
	_, sz := GetSubzone(p.CurrentZoneID, p.CurrentSubzoneID)
	if sz == nil || !sz.Boss.IsZoneBoss {
		return ""
	}
	if ach.IsUnlocked(AchievementTheStormbreaker) {
		return ""
	}
	return z.WeaponName
}

// OnBossDefeated resolves a boss kill atomically per spec.md §4.3.
func (p *Progression) OnBossDefeated(prestigeRank uint32, ach AchievementChecker) BossDefeatResult {
	z := Get(p.CurrentZoneID)
	_, sz := GetSubzone(p.CurrentZoneID, p.CurrentSubzoneID)
	isFinalSubzone := sz != nil && sz.Boss.IsZoneBoss

	if z != nil && z.RequiresWeapon && isFinalSubzone && !ach.IsUnlocked(AchievementTheStormbreaker) {
		p.FightingBoss = false
		p.KillsInSubzone = 0
		return BossDefeatResult{Kind: ResultWeaponRequired, WeaponName: z.WeaponName}
	}

	p.DefeatedBosses[BossKey{ZoneID: p.CurrentZoneID, SubzoneID: p.CurrentSubzoneID}] = true
	p.FightingBoss = false
	p.KillsInSubzone = 0

	if p.CurrentZoneID == constants.ExpanseZoneID && isFinalSubzone {
		p.CurrentSubzoneID = 1
		return BossDefeatResult{Kind: ResultExpanseCycle}
	}

	if !isFinalSubzone {
		p.CurrentSubzoneID++
		return BossDefeatResult{Kind: ResultSubzoneComplete, NewSubzoneID: p.CurrentSubzoneID}
	}

	if p.CurrentZoneID == constants.FinalZoneID {
		ach.Unlock(AchievementStormsEnd, "")
		p.UnlockedZones[constants.ExpanseZoneID] = true
		oldZone := p.CurrentZoneID
		p.CurrentZoneID = constants.ExpanseZoneID
		p.CurrentSubzoneID = 1
		return BossDefeatResult{Kind: ResultStormsEnd, OldZoneID: oldZone, NewZoneID: constants.ExpanseZoneID}
	}

	nextZone := Get(p.CurrentZoneID + 1)
	if nextZone != nil && nextZone.PrestigeRequirement <= prestigeRank {
		oldZone := p.CurrentZoneID
		p.CurrentZoneID++
		p.CurrentSubzoneID = 1
		p.UnlockedZones[p.CurrentZoneID] = true
		return BossDefeatResult{Kind: ResultZoneComplete, OldZoneID: oldZone, NewZoneID: p.CurrentZoneID}
	}

	required := uint32(0)
	if nextZone != nil {
		required = nextZone.PrestigeRequirement
	}
	return BossDefeatResult{Kind: ResultZoneCompleteButGated, RequiredPrestige: required}
}

// ResetForPrestige implements spec.md §4.11 step 4: position resets to
// (1,1), defeated bosses clear, unlocked_zones recompute from the static
// table filtered by the new prestige rank.
func (p *Progression) ResetForPrestige(newRank uint32) {
	p.CurrentZoneID = 1
	p.CurrentSubzoneID = 1
	p.DefeatedBosses = map[BossKey]bool{}
	p.KillsInSubzone = 0
	p.FightingBoss = false

	unlocked := map[uint32]bool{}
	for _, z := range AllZones() {
		if z.PrestigeRequirement <= newRank {
			unlocked[z.ID] = true
		}
	}
	p.UnlockedZones = unlocked
}
