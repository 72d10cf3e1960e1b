// Package achievement implements milestone aggregation, retroactive sync,
// and the notification/modal queue from spec.md §3 and §4.9.
//
// Grounded on original_source/src/achievements/types.rs (AchievementId
// vocabulary, categories) and spec.md §4.9's handler/milestone-walk design.
package achievement

import "github.com/udisondev/la2go/internal/constants"

// ID is an achievement identifier. Kept as a plain string (a "tagged
// identifier" per spec.md §9) rather than an enum type shared with the
// zone/chess/morris packages, to avoid import cycles between them and
// this package.
type ID = string

// Progress tracks a multi-stage achievement's current/target counters.
type Progress struct {
	Current uint64
	Target  uint64
}

// UnlockRecord captures when (and by whom) an achievement unlocked.
type UnlockRecord struct {
	UnlockedAtUnixSeconds int64
	CharacterName         string
}

// Aggregates holds the monotonic counters achievements are derived from.
type Aggregates struct {
	TotalKills             uint64
	TotalBossesDefeated    uint64
	TotalFishCaught        uint64
	TotalDungeonsCompleted uint64
	TotalMinigameWins      uint64
	HighestPrestigeRank    uint32
	HighestLevel           uint32
	HighestFishingRank     uint32
	ZonesFullyCleared      uint32
	ExpanseCyclesCompleted uint64
}

// Tracker is the mutable achievement engine. Persisted fields are
// Unlocked/Progress/Aggregates; everything else is transient and must be
// excluded from serialization (spec.md §3's "transient (non-persisted)").
type Tracker struct {
	Unlocked   map[ID]UnlockRecord
	Progress   map[ID]Progress
	Aggregates Aggregates

	// Transient queues (not persisted).
	pendingNotifications []ID
	newlyUnlocked        []ID
	modalQueue            []ID
	accumulationStart     int64 // monotonic ms; meaningful only while accumulationSet
	accumulationSet       bool
}

// New returns a fresh, empty Tracker.
func New() *Tracker {
	return &Tracker{
		Unlocked: map[ID]UnlockRecord{},
		Progress: map[ID]Progress{},
	}
}

// IsUnlocked reports whether id has been unlocked.
func (t *Tracker) IsUnlocked(id ID) bool {
	_, ok := t.Unlocked[id]
	return ok
}

// Unlock records id as unlocked with a zero timestamp (the achievement
// engine itself does not read the clock, per §5; UnlockAt takes explicit
// times). Idempotent: returns false on repeat calls.
func (t *Tracker) Unlock(id ID, characterName string) bool {
	return t.unlockAt(id, characterName, 0)
}

// UnlockAt is Unlock with an explicit timestamp, used by handlers that
// have a tick-provided "now".
func (t *Tracker) UnlockAt(id ID, characterName string, nowUnixSeconds int64, nowMonotonicMS int64) bool {
	if t.IsUnlocked(id) {
		return false
	}
	t.Unlocked[id] = UnlockRecord{UnlockedAtUnixSeconds: nowUnixSeconds, CharacterName: characterName}
	t.pendingNotifications = append(t.pendingNotifications, id)
	t.newlyUnlocked = append(t.newlyUnlocked, id)
	t.modalQueue = append(t.modalQueue, id)
	if !t.accumulationSet {
		t.accumulationStart = nowMonotonicMS
		t.accumulationSet = true
	}
	return true
}

func (t *Tracker) unlockAt(id ID, characterName string, nowMonotonicMS int64) bool {
	return t.UnlockAt(id, characterName, 0, nowMonotonicMS)
}

// IsModalReady implements spec.md §4.9: true iff the modal queue is
// nonempty and the accumulation window has elapsed.
func (t *Tracker) IsModalReady(nowMonotonicMS int64) bool {
	if len(t.modalQueue) == 0 {
		return false
	}
	return (nowMonotonicMS - t.accumulationStart) >= constants.AccumulationWindowMS
}

// TakeModalQueue drains and returns the modal queue, clearing the
// accumulation window.
func (t *Tracker) TakeModalQueue() []ID {
	out := t.modalQueue
	t.modalQueue = nil
	t.accumulationSet = false
	t.accumulationStart = 0
	return out
}

// TakeNewlyUnlocked drains and returns ids unlocked since the last drain.
func (t *Tracker) TakeNewlyUnlocked() []ID {
	out := t.newlyUnlocked
	t.newlyUnlocked = nil
	return out
}

// TakePendingNotifications drains and returns pending UI notifications.
func (t *Tracker) TakePendingNotifications() []ID {
	out := t.pendingNotifications
	t.pendingNotifications = nil
	return out
}

func monotonicMax[T ~uint64 | ~uint32](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// OnKill updates the kill aggregate and walks the Slayer milestone list.
func (t *Tracker) OnKill(characterName string, nowMonoMS int64) {
	t.Aggregates.TotalKills++
	t.walkThresholds(nowMonoMS, characterName, t.Aggregates.TotalKills, slayerMilestones)
}

// OnBossKill updates the boss aggregate and walks the BossHunter list.
func (t *Tracker) OnBossKill(characterName string, nowMonoMS int64) {
	t.Aggregates.TotalBossesDefeated++
	t.walkThresholds(nowMonoMS, characterName, t.Aggregates.TotalBossesDefeated, bossHunterMilestones)
}

// OnLevelUp updates highest level (monotonic) and walks level milestones.
func (t *Tracker) OnLevelUp(characterName string, newLevel uint32, nowMonoMS int64) {
	t.Aggregates.HighestLevel = monotonicMax(t.Aggregates.HighestLevel, newLevel)
	t.walkThresholds(nowMonoMS, characterName, uint64(t.Aggregates.HighestLevel), levelMilestones)
}

// OnPrestige updates highest prestige rank and walks prestige milestones.
func (t *Tracker) OnPrestige(characterName string, newRank uint32, nowMonoMS int64) {
	t.Aggregates.HighestPrestigeRank = monotonicMax(t.Aggregates.HighestPrestigeRank, newRank)
	t.walkThresholds(nowMonoMS, characterName, uint64(t.Aggregates.HighestPrestigeRank), prestigeMilestones)
}

// OnFishingRankUp updates highest fishing rank and walks its milestones.
func (t *Tracker) OnFishingRankUp(characterName string, newRank uint32, nowMonoMS int64) {
	t.Aggregates.HighestFishingRank = monotonicMax(t.Aggregates.HighestFishingRank, newRank)
	t.walkThresholds(nowMonoMS, characterName, uint64(t.Aggregates.HighestFishingRank), fishingRankMilestones)
}

// OnFishCaught updates total fish caught monotonically (never decreases,
// per §4.9's retroactive-sync rule) and cascades milestones once.
func (t *Tracker) OnFishCaught(characterName string, totalFishCaught uint64, nowMonoMS int64) {
	t.Aggregates.TotalFishCaught = monotonicMax(t.Aggregates.TotalFishCaught, totalFishCaught)
	t.walkThresholds(nowMonoMS, characterName, t.Aggregates.TotalFishCaught, fishCatchMilestones)
}

// OnZoneFullyCleared increments the cleared-zone aggregate and unlocks the
// zone's completion achievement.
func (t *Tracker) OnZoneFullyCleared(characterName string, zoneCompletionID ID, nowUnix, nowMonoMS int64) {
	t.Aggregates.ZonesFullyCleared++
	t.UnlockAt(zoneCompletionID, characterName, nowUnix, nowMonoMS)
}

// OnExpanseCycle increments the cycle counter and unlocks cycle milestones.
func (t *Tracker) OnExpanseCycle(characterName string, nowMonoMS int64) {
	t.Aggregates.ExpanseCyclesCompleted++
	t.walkThresholds(nowMonoMS, characterName, t.Aggregates.ExpanseCyclesCompleted, expanseCycleMilestones)
}

// OnMinigameWin increments the minigame-win aggregate.
func (t *Tracker) OnMinigameWin(characterName string, nowMonoMS int64) {
	t.Aggregates.TotalMinigameWins++
}

// OnDungeonCompleted increments the dungeon-completion aggregate.
func (t *Tracker) OnDungeonCompleted(characterName string, nowMonoMS int64) {
	t.Aggregates.TotalDungeonsCompleted++
	t.walkThresholds(nowMonoMS, characterName, t.Aggregates.TotalDungeonsCompleted, dungeonMilestones)
}

type milestone struct {
	threshold uint64
	id        ID
}

var slayerMilestones = []milestone{
	{100, "SlayerI"}, {500, "SlayerII"}, {1000, "SlayerIII"}, {5000, "SlayerIV"},
	{10000, "SlayerV"}, {50000, "SlayerVI"}, {100000, "SlayerVII"}, {500000, "SlayerVIII"},
	{1000000, "SlayerIX"},
}

var bossHunterMilestones = []milestone{
	{1, "BossHunterI"}, {10, "BossHunterII"}, {50, "BossHunterIII"}, {100, "BossHunterIV"},
	{500, "BossHunterV"}, {1000, "BossHunterVI"}, {5000, "BossHunterVII"}, {10000, "BossHunterVIII"},
}

var levelMilestones = []milestone{
	{10, "Level10"}, {25, "Level25"}, {50, "Level50"}, {100, "Level100"}, {150, "Level150"},
	{200, "Level200"}, {250, "Level250"}, {500, "Level500"}, {750, "Level750"}, {1000, "Level1000"},
	{1500, "Level1500"},
}

var prestigeMilestones = []milestone{
	{1, "FirstPrestige"}, {5, "PrestigeV"}, {10, "PrestigeX"}, {15, "PrestigeXV"},
	{20, "PrestigeXX"}, {25, "PrestigeXXV"}, {30, "PrestigeXXX"}, {40, "PrestigeXL"},
	{50, "PrestigeL"}, {70, "PrestigeLXX"}, {90, "PrestigeXC"}, {100, "Eternal"},
}

var dungeonMilestones = []milestone{
	{1, "DelverI"}, {10, "DelverII"}, {50, "DelverIII"}, {100, "DelverIV"}, {500, "DelverV"},
}

var expanseCycleMilestones = []milestone{
	{1, "ExpanseCycleI"}, {100, "ExpanseCycleII"}, {1000, "ExpanseCycleIII"}, {10000, "ExpanseCycleIV"},
}

// fishingRankMilestones mirrors types.rs's on_fishing_rank_up cascade
// (FishermanI-IV at ranks 10/20/30/40).
var fishingRankMilestones = []milestone{
	{10, "FishermanI"}, {20, "FishermanII"}, {30, "FishermanIII"}, {40, "FishermanIV"},
}

// fishCatchMilestones mirrors types.rs's on_fish_caught cascade
// (GoneFishing on the first catch, FishCatcherI-IV at 100/1,000/10,000/
// 100,000 total fish caught).
var fishCatchMilestones = []milestone{
	{1, "GoneFishing"}, {100, "FishCatcherI"}, {1000, "FishCatcherII"},
	{10000, "FishCatcherIII"}, {100000, "FishCatcherIV"},
}

// walkThresholds unlocks every milestone whose threshold has been reached
// that isn't already unlocked — preserving declared order, per §5's
// "Achievement unlocks within one tick are appended... in the order
// milestones are crossed."
func (t *Tracker) walkThresholds(nowMonoMS int64, characterName string, value uint64, list []milestone) {
	for _, m := range list {
		if value >= m.threshold {
			t.UnlockAt(m.id, characterName, 0, nowMonoMS)
		}
	}
}
