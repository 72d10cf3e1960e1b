package challenge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/udisondev/la2go/internal/rng"
)

func TestRollDiscoveryAddsAtMostOnePendingPerType(t *testing.T) {
	m := New()
	r := rng.New(1)

	found := 0
	for i := 0; i < 200000 && found < len(table); i++ {
		if _, ok := RollDiscovery(0, &m, r); ok {
			found++
		}
	}

	assert.LessOrEqual(t, len(m.Challenges), len(table))
	seen := map[Type]bool{}
	for _, c := range m.Challenges {
		assert.False(t, seen[c.Type], "duplicate pending challenge type %v", c.Type)
		seen[c.Type] = true
	}
}

func TestRollDiscoveryStopsWhenEveryTypeIsPending(t *testing.T) {
	m := New()
	for _, e := range table {
		m.addChallenge(newPendingChallenge(e.challengeType))
	}
	_, ok := RollDiscovery(0, &m, rng.New(2))
	assert.False(t, ok)
}

func TestHavenDiscoveryPercentBoostsChance(t *testing.T) {
	base := 0
	boosted := 0
	for seed := uint64(0); seed < 2000; seed++ {
		m1 := New()
		if _, ok := RollDiscovery(0, &m1, rng.New(seed)); ok {
			base++
		}
		m2 := New()
		if _, ok := RollDiscovery(500, &m2, rng.New(seed)); ok {
			boosted++
		}
	}
	assert.Greater(t, boosted, base)
}

func TestCanDiscoverGating(t *testing.T) {
	assert.False(t, CanDiscover(0, false, false, false), "prestige rank 0 never discovers")
	assert.True(t, CanDiscover(1, false, false, false))
	assert.False(t, CanDiscover(1, true, false, false), "blocked while in a dungeon")
	assert.False(t, CanDiscover(1, false, true, false), "blocked while fishing")
	assert.False(t, CanDiscover(1, false, false, true), "blocked during an active minigame")
}

func TestMenuNavigationWithinList(t *testing.T) {
	m := New()
	m.addChallenge(newPendingChallenge(Chess))
	m.addChallenge(newPendingChallenge(Morris))
	m.Open()

	assert.Equal(t, 0, m.SelectedIndex)
	m.NavigateUp()
	assert.Equal(t, 0, m.SelectedIndex, "cannot move above the first entry")

	m.NavigateDown()
	assert.Equal(t, 1, m.SelectedIndex)
	m.NavigateDown()
	assert.Equal(t, 1, m.SelectedIndex, "cannot move past the last entry")
}

func TestMenuDetailNavigatesDifficulty(t *testing.T) {
	m := New()
	m.addChallenge(newPendingChallenge(Chess))
	m.Open()
	m.OpenDetail()
	assert.True(t, m.ViewingDetail)

	for i := 0; i < NumDifficulties+2; i++ {
		m.NavigateDown()
	}
	assert.Equal(t, NumDifficulties-1, m.SelectedDifficulty)

	for i := 0; i < NumDifficulties+2; i++ {
		m.NavigateUp()
	}
	assert.Equal(t, 0, m.SelectedDifficulty)
}

func TestAcceptSelectedReturnsChosenDifficultyAndRemoves(t *testing.T) {
	m := New()
	m.addChallenge(newPendingChallenge(Morris))
	m.Open()
	m.OpenDetail()
	m.NavigateDown()
	m.NavigateDown()

	c, diff, ok := m.AcceptSelected()
	assert.True(t, ok)
	assert.Equal(t, Morris, c.Type)
	assert.Equal(t, Journeyman, diff)
	assert.Empty(t, m.Challenges)
}

func TestDeclineSelectedClosesMenuWhenEmpty(t *testing.T) {
	m := New()
	m.addChallenge(newPendingChallenge(Rune))
	m.Open()
	m.OpenDetail()

	m.DeclineSelected()
	assert.Empty(t, m.Challenges)
	assert.False(t, m.IsOpen)
	assert.False(t, m.ViewingDetail)
}

func TestRewardForMatchesTableByDifficulty(t *testing.T) {
	assert.Equal(t, Reward{PrestigeRanks: 1}, RewardFor(Chess, Novice))
	assert.Equal(t, Reward{PrestigeRanks: 5}, RewardFor(Go, Master))
	assert.Equal(t, Reward{XPPercent: 200, FishingRanks: 1}, RewardFor(Morris, Master))
	assert.Equal(t, Reward{PrestigeRanks: 2, XPPercent: 100}, RewardFor(Gomoku, Master))
	assert.Equal(t, Reward{PrestigeRanks: 1, XPPercent: 200}, RewardFor(Minesweeper, Master))
	assert.Equal(t, Reward{PrestigeRanks: 1, FishingRanks: 2}, RewardFor(Rune, Master))
}

func TestRewardDescriptionOrdersPrestigeFishingXP(t *testing.T) {
	r := Reward{PrestigeRanks: 2, XPPercent: 50, FishingRanks: 1}
	assert.Equal(t, "Win: +2 Prestige Ranks, +1 Fish Rank, +50% level XP", r.Description())
	assert.Equal(t, "No reward", Reward{}.Description())
}

func TestDifficultyFromIndexClamps(t *testing.T) {
	assert.Equal(t, Novice, DifficultyFromIndex(-1))
	assert.Equal(t, Master, DifficultyFromIndex(99))
	assert.Equal(t, Apprentice, DifficultyFromIndex(1))
}
