// Package dungeon implements the procedural maze generator and the
// auto-exploration state machine from spec.md §4.5/§4.6.
//
// Grounded on original_source/src/dungeon/types.rs (RoomType/RoomState/
// Dungeon struct, DungeonSize table), src/dungeon_generation.rs (the
// randomized-DFS carve + special-room placement + extra-connections
// algorithm) and src/dungeon_logic.rs (auto-exploration/BFS pathing).
package dungeon

import "fmt"

// RoomType is the kind of room occupying a grid cell.
type RoomType int

const (
	RoomEntrance RoomType = iota
	RoomCombat
	RoomTreasure
	RoomElite
	RoomBoss
)

func (t RoomType) String() string {
	switch t {
	case RoomEntrance:
		return "Entrance"
	case RoomCombat:
		return "Combat"
	case RoomTreasure:
		return "Treasure"
	case RoomElite:
		return "Elite"
	case RoomBoss:
		return "Boss"
	default:
		return fmt.Sprintf("UnknownRoomType(%d)", int(t))
	}
}

// RoomState is a room's visibility/progress state.
type RoomState int

const (
	Hidden RoomState = iota
	Revealed
	Current
	Cleared
)

// Direction indices into Room.Connections and dirOffsets.
const (
	DirUp = iota
	DirRight
	DirDown
	DirLeft
)

var dirOffsets = [4][2]int{
	DirUp:    {0, -1},
	DirRight: {1, 0},
	DirDown:  {0, 1},
	DirLeft:  {-1, 0},
}

// Position is a grid coordinate.
type Position struct {
	X, Y int
}

// Room is a single dungeon cell.
type Room struct {
	Type        RoomType
	State       RoomState
	Position    Position
	Connections [4]bool
}

// ConnectionCount returns how many of the room's four directions connect
// to a neighboring room.
func (r *Room) ConnectionCount() int {
	n := 0
	for _, c := range r.Connections {
		if c {
			n++
		}
	}
	return n
}

// Size names one of the five dungeon sizes and their scaling table.
type Size int

const (
	Small Size = iota
	Medium
	Large
	Epic
	Legendary
)

// SizeSpec is the per-size constant table from original_source's
// DungeonSize enum.
type SizeSpec struct {
	GridDimension      int
	MinRooms, MaxRooms int
	MinBossXP, MaxBossXP int
	TreasureRoomCount  int
	TreasureRarityBoost int
}

var sizeSpecs = map[Size]SizeSpec{
	Small:     {GridDimension: 5, MinRooms: 8, MaxRooms: 12, MinBossXP: 1000, MaxBossXP: 1500, TreasureRoomCount: 1, TreasureRarityBoost: 1},
	Medium:    {GridDimension: 7, MinRooms: 15, MaxRooms: 20, MinBossXP: 2000, MaxBossXP: 3000, TreasureRoomCount: 2, TreasureRarityBoost: 1},
	Large:     {GridDimension: 9, MinRooms: 25, MaxRooms: 30, MinBossXP: 4000, MaxBossXP: 6000, TreasureRoomCount: 3, TreasureRarityBoost: 1},
	Epic:      {GridDimension: 11, MinRooms: 35, MaxRooms: 45, MinBossXP: 8000, MaxBossXP: 12000, TreasureRoomCount: 5, TreasureRarityBoost: 2},
	Legendary: {GridDimension: 13, MinRooms: 50, MaxRooms: 65, MinBossXP: 15000, MaxBossXP: 25000, TreasureRoomCount: 8, TreasureRarityBoost: 3},
}

// Spec returns the scaling table for s.
func (s Size) Spec() SizeSpec {
	return sizeSpecs[s]
}

// Dungeon is the ephemeral dungeon-run state (spec.md §3 "discarded on
// exit/death").
type Dungeon struct {
	Size             Size
	Grid             [][]*Room // [y][x], nil where no room placed
	PlayerPosition   Position
	EntrancePosition Position
	BossPosition     Position
	HasKey           bool
	MoveTimer        float64
	CollectedItemCount int
	XPEarned         int64
	RoomsCleared     int
	CurrentRoomCleared bool
}

// GetRoom returns the room at pos, or nil if out of bounds / empty.
func (d *Dungeon) GetRoom(pos Position) *Room {
	if pos.Y < 0 || pos.Y >= len(d.Grid) {
		return nil
	}
	row := d.Grid[pos.Y]
	if pos.X < 0 || pos.X >= len(row) {
		return nil
	}
	return row[pos.X]
}

// CurrentRoom returns the room at PlayerPosition.
func (d *Dungeon) CurrentRoom() *Room {
	return d.GetRoom(d.PlayerPosition)
}

// ConnectedNeighbors returns the positions of rooms connected to pos.
func (d *Dungeon) ConnectedNeighbors(pos Position) []Position {
	room := d.GetRoom(pos)
	if room == nil {
		return nil
	}
	var out []Position
	for dir, connected := range room.Connections {
		if !connected {
			continue
		}
		off := dirOffsets[dir]
		out = append(out, Position{X: pos.X + off[0], Y: pos.Y + off[1]})
	}
	return out
}

// IsBossUnlocked reports whether the player may enter the boss room
// (requires the key).
func (d *Dungeon) IsBossUnlocked() bool {
	return d.HasKey
}

// RoomCount returns the number of non-nil cells in the grid.
func (d *Dungeon) RoomCount() int {
	n := 0
	for _, row := range d.Grid {
		for _, r := range row {
			if r != nil {
				n++
			}
		}
	}
	return n
}
