package dungeon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/udisondev/la2go/internal/constants"
	"github.com/udisondev/la2go/internal/rng"
)

func TestGenerateEveryRoomReachableFromEntrance(t *testing.T) {
	r := rng.New(7)
	d := Generate(Medium, r)

	visited := map[Position]bool{d.EntrancePosition: true}
	queue := []Position{d.EntrancePosition}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range d.ConnectedNeighbors(cur) {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	assert.Equal(t, d.RoomCount(), len(visited), "every placed room must be reachable from the entrance")
}

func TestGenerateRoomCountWithinSpecRange(t *testing.T) {
	r := rng.New(11)
	d := Generate(Small, r)
	spec := Small.Spec()
	assert.GreaterOrEqual(t, d.RoomCount(), spec.MinRooms)
	assert.LessOrEqual(t, d.RoomCount(), spec.MaxRooms)
}

func TestGenerateBossRoomPlaced(t *testing.T) {
	r := rng.New(3)
	d := Generate(Large, r)
	boss := d.GetRoom(d.BossPosition)
	assert.NotNil(t, boss)
	assert.Equal(t, RoomBoss, boss.Type)
}

func TestTickBlocksOnUnclearedCombatRoom(t *testing.T) {
	r := rng.New(1)
	d := Generate(Small, r)
	// Force the player into a combat room requiring clearance.
	d.CurrentRoomCleared = false
	d.CurrentRoom().Type = RoomCombat

	events := d.Tick(10.0)
	assert.Empty(t, events, "no movement until the current room is cleared")
}

func TestMarkCurrentRoomClearedGrantsKeyOnElite(t *testing.T) {
	r := rng.New(1)
	d := Generate(Small, r)
	d.CurrentRoom().Type = RoomElite
	d.CurrentRoomCleared = false

	granted := d.MarkCurrentRoomCleared()
	assert.True(t, granted)
	assert.True(t, d.HasKey)
}

func TestBossRoomIsADeadEnd(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		d := Generate(Medium, rng.New(seed))
		boss := d.GetRoom(d.BossPosition)
		assert.Equal(t, 1, boss.ConnectionCount(), "boss room must remain a dead end")
	}
}

func TestBossRoomNeverAutoEnteredWithoutKey(t *testing.T) {
	r := rng.New(9)
	d := Generate(Medium, r)
	d.HasKey = false

	// Drive exploration to completion, clearing every non-boss room reached
	// without granting the key (OnRoomEnemyDefeated, even for elites); the
	// auto-explorer must never step into the boss room without a key.
	for i := 0; i < 2000; i++ {
		events := d.Tick(constants.RoomMoveIntervalSeconds)
		done := false
		for _, ev := range events {
			if ev.Kind == EventEnteredRoom {
				assert.NotEqual(t, RoomBoss, ev.Room.Type, "must not auto-enter boss room without key")
			}
			if ev.Kind == EventDungeonComplete {
				done = true
			}
		}
		if done {
			break
		}
		cur := d.CurrentRoom()
		if cur != nil && !d.CurrentRoomCleared && cur.Type != RoomEntrance && cur.Type != RoomBoss {
			d.OnRoomEnemyDefeated()
		}
	}
}
