package dungeon

import (
	"github.com/udisondev/la2go/internal/constants"
)

// EventKind tags one auto-exploration event.
type EventKind int

const (
	EventEnteredRoom EventKind = iota
	EventCombatStarted
	EventTreasureFound
	EventKeyFound
	EventBossUnlocked
	EventDungeonComplete
)

// Event is one entry in the auto-exploration event stream for a tick.
type Event struct {
	Kind   EventKind
	Room   *Room
	IsElite bool
	IsBoss  bool
}

// Tick advances auto-exploration by deltaSeconds, per
// original_source/src/dungeon_logic.rs's update_dungeon: blocked entirely
// while CurrentRoomCleared is false (a combat/elite/boss room with a live
// enemy — the facade resolves combat via the combat package and calls
// MarkCurrentRoomCleared); otherwise accumulates MoveTimer and, once it
// reaches RoomMoveIntervalSeconds, takes one BFS step toward the boss (if
// HasKey) or toward the nearest Revealed-but-unvisited room.
func (d *Dungeon) Tick(deltaSeconds float64) []Event {
	var events []Event

	if !d.CurrentRoomCleared {
		return events
	}

	d.MoveTimer += deltaSeconds
	if d.MoveTimer < constants.RoomMoveIntervalSeconds {
		return events
	}
	d.MoveTimer = 0

	next, found := d.findNextRoom()
	if !found {
		events = append(events, Event{Kind: EventDungeonComplete})
		return events
	}

	return d.moveToRoom(next)
}

func (d *Dungeon) moveToRoom(newPos Position) []Event {
	var events []Event

	old := d.CurrentRoom()
	if old != nil && old.State == Current {
		old.State = Cleared
		d.RoomsCleared++
	}

	d.PlayerPosition = newPos
	room := d.GetRoom(newPos)
	room.State = Current
	d.revealNeighbors(newPos)

	d.CurrentRoomCleared = room.Type == RoomEntrance || room.Type == RoomTreasure

	events = append(events, Event{Kind: EventEnteredRoom, Room: room})

	switch room.Type {
	case RoomElite:
		events = append(events, Event{Kind: EventCombatStarted, Room: room, IsElite: true})
	case RoomBoss:
		events = append(events, Event{Kind: EventCombatStarted, Room: room, IsBoss: true})
	case RoomCombat:
		events = append(events, Event{Kind: EventCombatStarted, Room: room})
	case RoomTreasure:
		events = append(events, Event{Kind: EventTreasureFound, Room: room})
	}

	return events
}

func (d *Dungeon) revealNeighbors(pos Position) {
	for _, n := range d.ConnectedNeighbors(pos) {
		if room := d.GetRoom(n); room != nil && room.State == Hidden {
			room.State = Revealed
		}
	}
}

// OnRoomEnemyDefeated marks the current (Combat) room cleared.
func (d *Dungeon) OnRoomEnemyDefeated() {
	d.CurrentRoomCleared = true
}

// OnEliteDefeated marks the current room cleared and grants the key on
// first clear, reporting whether the key/boss-unlock events should fire.
func (d *Dungeon) OnEliteDefeated() (grantedKey bool) {
	d.CurrentRoomCleared = true
	if !d.HasKey {
		d.HasKey = true
		return true
	}
	return false
}

// MarkCurrentRoomCleared is a general-purpose equivalent of
// OnRoomEnemyDefeated/OnEliteDefeated for callers that don't need to
// distinguish room kind up front.
func (d *Dungeon) MarkCurrentRoomCleared() (grantedKey bool) {
	room := d.CurrentRoom()
	if room == nil || d.CurrentRoomCleared {
		return false
	}
	if room.Type == RoomElite {
		return d.OnEliteDefeated()
	}
	d.OnRoomEnemyDefeated()
	return false
}

// findNextRoom implements find_next_room: if HasKey, path directly to the
// boss; otherwise BFS to the nearest Revealed room (excluding Boss unless
// HasKey), returning the first step of that path.
func (d *Dungeon) findNextRoom() (Position, bool) {
	current := d.PlayerPosition

	if d.HasKey {
		if path := d.findPath(current, d.BossPosition); len(path) > 1 {
			return path[1], true
		}
	}

	var bestTarget Position
	bestDistance := -1
	found := false

	for y := range d.Grid {
		for x := range d.Grid[y] {
			room := d.Grid[y][x]
			if room == nil || room.State != Revealed {
				continue
			}
			if room.Type == RoomBoss && !d.HasKey {
				continue
			}
			pos := Position{X: x, Y: y}
			path := d.findPath(current, pos)
			if path == nil {
				continue
			}
			if !found || len(path) < bestDistance {
				bestDistance = len(path)
				bestTarget = pos
				found = true
			}
		}
	}

	if !found {
		return Position{}, false
	}
	path := d.findPath(current, bestTarget)
	if len(path) > 1 {
		return path[1], true
	}
	return Position{}, false
}

// findPath runs BFS from `from` to `to`, only traversing rooms in state
// Cleared, Current, or Revealed (the target itself is always reachable
// once adjacent, matching find_path_to's special-case on arrival).
func (d *Dungeon) findPath(from, to Position) []Position {
	if from == to {
		return []Position{from}
	}

	type node struct {
		pos  Position
		path []Position
	}
	visited := map[Position]bool{from: true}
	queue := []node{{pos: from, path: []Position{from}}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, n := range d.ConnectedNeighbors(cur.pos) {
			if visited[n] {
				continue
			}
			path := append(append([]Position{}, cur.path...), n)
			if n == to {
				return path
			}

			room := d.GetRoom(n)
			if room == nil {
				continue
			}
			if room.State == Cleared || room.State == Current || room.State == Revealed {
				visited[n] = true
				queue = append(queue, node{pos: n, path: path})
			}
		}
	}
	return nil
}
