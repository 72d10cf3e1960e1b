package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/la2go/internal/engine/challenge"
	"github.com/udisondev/la2go/internal/engine/dungeon"
	"github.com/udisondev/la2go/internal/engine/zone"
)

func newTestFacade(seed uint64) *Facade {
	s := New("char-1", "Tester")
	return NewFacade(s, seed)
}

func TestTickAdvancesCombatByDefault(t *testing.T) {
	f := newTestFacade(1)
	var sawCombatEvent bool
	for i := 0; i < 200; i++ {
		events := f.Tick(1.0, 1000+int64(i), int64(i)*1000)
		for _, e := range events {
			if e.Kind == EventPlayerAttack || e.Kind == EventEnemyAttack {
				sawCombatEvent = true
			}
		}
	}
	assert.True(t, sawCombatEvent, "expected at least one combat event over 200 ticks")
	assert.LessOrEqual(t, f.State.Combat.PlayerCurrentHP, f.State.Combat.PlayerMaxHP)
}

func TestTickPrioritizesDungeonOverCombat(t *testing.T) {
	f := newTestFacade(2)
	f.State.ActiveDungeon = dungeon.Generate(dungeon.Small, f.RNG)
	require.True(t, f.State.InDungeon())

	f.Tick(0.1, 1000, 0)
	assert.True(t, f.State.InDungeon() || f.State.ActiveDungeon == nil)
}

func TestCanPrestigeFalseAtLevelOne(t *testing.T) {
	f := newTestFacade(3)
	assert.False(t, f.CanPrestige())
	assert.False(t, f.Prestige())
}

func TestPrestigeResetsLevelZoneAndBumpsRank(t *testing.T) {
	f := newTestFacade(4)
	f.State.CharacterLevel = 999
	f.State.ZoneProgression.CurrentZoneID = 5
	f.State.ZoneProgression.CurrentSubzoneID = 3
	f.State.ZoneProgression.DefeatedBosses[zone.BossKey{ZoneID: 5, SubzoneID: 4}] = true

	require.True(t, f.CanPrestige())
	require.True(t, f.Prestige())

	assert.Equal(t, uint32(1), f.State.CharacterLevel)
	assert.Equal(t, uint64(0), f.State.CharacterXP)
	assert.Equal(t, uint32(1), f.State.ZoneProgression.CurrentZoneID)
	assert.Equal(t, uint32(1), f.State.ZoneProgression.CurrentSubzoneID)
	assert.Empty(t, f.State.ZoneProgression.DefeatedBosses)
	assert.Equal(t, uint32(1), f.State.PrestigeRank)
	assert.Equal(t, uint64(1), f.State.TotalPrestigeCount)
	assert.Equal(t, f.State.Combat.PlayerMaxHP, f.State.Combat.PlayerCurrentHP)
}

func TestOfflineProgressionSecondCallYieldsZero(t *testing.T) {
	f := newTestFacade(5)
	f.State.LastSaveTimeUnix = 1000

	report1 := f.ProcessOfflineProgression(1000+3600, HavenBonuses{})
	assert.Greater(t, report1.XPGained, 0.0)
	assert.Equal(t, int64(1000+3600), f.State.LastSaveTimeUnix)

	report2 := f.ProcessOfflineProgression(1000+3600, HavenBonuses{})
	assert.Equal(t, 0.0, report2.XPGained)
}

func TestChallengeMenuAcceptStartsMorrisMinigame(t *testing.T) {
	f := newTestFacade(6)
	f.State.ChallengeMenu.IsOpen = true
	f.State.ChallengeMenu.Challenges = append(f.State.ChallengeMenu.Challenges, challenge.PendingChallenge{Type: challenge.Morris})
	f.State.ChallengeMenu.SelectedIndex = 0

	events := f.HandleInput(InputToken{Kind: InputSelect})
	assert.Empty(t, events, "first Select opens the detail view, no events yet")
	require.True(t, f.State.ChallengeMenu.ViewingDetail)

	events = f.HandleInput(InputToken{Kind: InputSelect})
	require.NotEmpty(t, events)
	assert.Equal(t, EventChallengeAccepted, events[0].Kind)
	require.NotNil(t, f.State.ActiveMinigame)
	assert.Equal(t, MinigameMorris, f.State.ActiveMinigame.Kind)
	require.NotNil(t, f.State.ActiveMinigame.Morris)
}

func TestStubMinigameForfeitsOnCancel(t *testing.T) {
	f := newTestFacade(7)
	f.State.ActiveMinigame = &ActiveMinigame{Kind: MinigameChess, ChallengeType: challenge.Chess, Difficulty: challenge.Novice}

	events := f.HandleInput(InputToken{Kind: InputCancel})
	require.Len(t, events, 1)
	assert.Equal(t, EventMinigameEnded, events[0].Kind)
	assert.Nil(t, f.State.ActiveMinigame)
}

func TestQueryZoneInfoReflectsStartingZone(t *testing.T) {
	f := newTestFacade(8)
	info := f.QueryZoneInfo()
	assert.Equal(t, uint32(1), info.ZoneID)
	assert.Equal(t, uint32(1), info.SubzoneID)
}

func TestChallengeDiscoveryGatedByPrestigeRank(t *testing.T) {
	f := newTestFacade(9)
	for i := 0; i < 1000; i++ {
		events := f.rollChallengeDiscovery()
		assert.Empty(t, events)
	}
}
