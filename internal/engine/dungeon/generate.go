package dungeon

import "github.com/udisondev/la2go/internal/rng"

// Generate carves a new dungeon of the given size using randomized
// depth-first search from the grid center, places the entrance/boss/elite
// (key)/treasure rooms, then weaves in extra connections (skipping the
// boss room, which must stay a dead end), per
// original_source/src/dungeon_generation.rs's generate_dungeon pipeline.
//
// The DFS carve guarantees every placed room is reachable from the start
// cell by construction (each new room is only ever carved as a neighbor
// of an already-connected room), satisfying spec.md §4.5 invariant I1
// without a separate verification pass. Invariants I2-I4 (boss dead end,
// elite minimum distance, extra connections skip boss) are enforced by
// placeSpecialRooms/addExtraConnections below.
func Generate(size Size, r *rng.Source) *Dungeon {
	spec := size.Spec()
	dim := spec.GridDimension
	targetRooms := r.UniformInt(spec.MinRooms, spec.MaxRooms)
	if targetRooms > dim*dim {
		targetRooms = dim * dim
	}

	grid := make([][]*Room, dim)
	for y := range grid {
		grid[y] = make([]*Room, dim)
	}

	center := Position{X: dim / 2, Y: dim / 2}
	grid[center.Y][center.X] = &Room{Type: RoomCombat, Position: center}

	carveMaze(grid, dim, center, targetRooms, r)

	d := &Dungeon{Size: size, Grid: grid}
	placeSpecialRooms(d, dim, center, spec, r)
	addExtraConnections(d, dim, r)

	d.PlayerPosition = d.EntrancePosition
	entranceRoom := d.GetRoom(d.EntrancePosition)
	entranceRoom.State = Current
	d.CurrentRoomCleared = true
	d.revealNeighbors(d.EntrancePosition)

	return d
}

func carveMaze(grid [][]*Room, dim int, start Position, targetRooms int, r *rng.Source) {
	frontier := []Position{start}
	placed := 1

	for placed < targetRooms && len(frontier) > 0 {
		idx := r.IntN(len(frontier))
		cur := frontier[idx]
		curRoom := grid[cur.Y][cur.X]

		carved := false
		for _, dir := range shuffledDirs(r) {
			off := dirOffsets[dir]
			next := Position{X: cur.X + off[0], Y: cur.Y + off[1]}
			if next.X < 0 || next.X >= dim || next.Y < 0 || next.Y >= dim {
				continue
			}
			if grid[next.Y][next.X] != nil {
				continue
			}
			room := &Room{Type: RoomCombat, State: Hidden, Position: next}
			grid[next.Y][next.X] = room
			curRoom.Connections[dir] = true
			room.Connections[opposite(dir)] = true
			frontier = append(frontier, next)
			placed++
			carved = true
			break
		}
		if !carved {
			frontier = append(frontier[:idx], frontier[idx+1:]...)
		}
	}
}

func shuffledDirs(r *rng.Source) [4]int {
	dirs := [4]int{DirUp, DirRight, DirDown, DirLeft}
	for i := len(dirs) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
	return dirs
}

func opposite(dir int) int {
	switch dir {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func distanceSquared(a, b Position) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}

func findDeadEnds(grid [][]*Room, dim int) []Position {
	var out []Position
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			room := grid[y][x]
			if room != nil && room.ConnectionCount() == 1 {
				out = append(out, Position{X: x, Y: y})
			}
		}
	}
	return out
}

// placeSpecialRooms assigns Entrance, Boss, Elite (key), and Treasure
// room types. The boss and entrance are each placed at a dead end
// (invariant I2); the elite room is placed at a dead end whose squared
// distance from the entrance is ≥4 when any such dead end exists,
// otherwise the best dead end with distance >1 (invariant I3).
func placeSpecialRooms(d *Dungeon, dim int, center Position, spec SizeSpec, r *rng.Source) {
	grid := d.Grid
	deadEnds := findDeadEnds(grid, dim)

	entrancePos := center
	if len(deadEnds) > 0 {
		entrancePos = farthest(deadEnds, center)
		deadEnds = removePos(deadEnds, entrancePos)
	}
	grid[entrancePos.Y][entrancePos.X].Type = RoomEntrance
	d.EntrancePosition = entrancePos

	bossPos := entrancePos
	if len(deadEnds) > 0 {
		bossPos = farthest(deadEnds, entrancePos)
		deadEnds = removePos(deadEnds, bossPos)
	}
	grid[bossPos.Y][bossPos.X].Type = RoomBoss
	d.BossPosition = bossPos

	const minEliteDistance = 4
	var viable []Position
	for _, p := range deadEnds {
		if distanceSquared(p, entrancePos) >= minEliteDistance {
			viable = append(viable, p)
		}
	}
	var elitePos Position
	hasElite := false
	switch {
	case len(viable) > 0:
		elitePos = farthest(viable, entrancePos)
		hasElite = true
	case len(deadEnds) > 0:
		for _, p := range deadEnds {
			if distanceSquared(p, entrancePos) > 1 {
				elitePos = p
				hasElite = true
				break
			}
		}
		if !hasElite {
			elitePos = deadEnds[0]
			hasElite = true
		}
	}
	if hasElite {
		grid[elitePos.Y][elitePos.X].Type = RoomElite
	}

	var remaining []Position
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			room := grid[y][x]
			if room == nil || room.Type != RoomCombat {
				continue
			}
			remaining = append(remaining, Position{X: x, Y: y})
		}
	}
	for i := len(remaining) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		remaining[i], remaining[j] = remaining[j], remaining[i]
	}
	n := spec.TreasureRoomCount
	if n > len(remaining) {
		n = len(remaining)
	}
	for i := 0; i < n; i++ {
		p := remaining[i]
		grid[p.Y][p.X].Type = RoomTreasure
	}
}

func farthest(candidates []Position, from Position) Position {
	best := candidates[0]
	bestDist := distanceSquared(best, from)
	for _, p := range candidates[1:] {
		if d := distanceSquared(p, from); d > bestDist {
			bestDist = d
			best = p
		}
	}
	return best
}

func removePos(positions []Position, target Position) []Position {
	out := positions[:0]
	for _, p := range positions {
		if p != target {
			out = append(out, p)
		}
	}
	return out
}

// extraConnectionChance is the per-room probability of weaving in a
// right/down neighbor connection (spec.md §4.5 step 4).
const extraConnectionChance = 0.15

// addExtraConnections walks every room except the boss (invariant I4)
// and, with probability extraConnectionChance, links it to its right or
// down neighbor if one is placed and not already connected. Only ever
// adds edges between already-placed rooms, so invariant I1 is preserved.
func addExtraConnections(d *Dungeon, dim int, r *rng.Source) {
	grid := d.Grid
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			room := grid[y][x]
			if room == nil || (Position{X: x, Y: y}) == d.BossPosition {
				continue
			}
			for _, dir := range [2]int{DirRight, DirDown} {
				if !r.Bernoulli(extraConnectionChance) {
					continue
				}
				off := dirOffsets[dir]
				nx, ny := x+off[0], y+off[1]
				if nx < 0 || nx >= dim || ny < 0 || ny >= dim {
					continue
				}
				if (Position{X: nx, Y: ny}) == d.BossPosition {
					continue
				}
				neighbor := grid[ny][nx]
				if neighbor == nil || room.Connections[dir] {
					continue
				}
				room.Connections[dir] = true
				neighbor.Connections[opposite(dir)] = true
			}
		}
	}
}
