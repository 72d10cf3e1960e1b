// Package zone implements the zone/subzone state machine (spec.md §4.3)
// and the static 11-zone world table.
//
// Grounded on original_source/src/zones/data.rs (zone/subzone table, names,
// level bands, prestige requirements, the zone-10 weapon gate) and
// original_source/src/zones/progression.rs (the ZoneProgression state
// machine itself, including its ~20 unit tests, adapted below).
package zone

// SubzoneBoss names the boss guarding a subzone's exit.
type SubzoneBoss struct {
	Name       string
	IsZoneBoss bool
}

// Subzone is one themed segment within a Zone.
type Subzone struct {
	ID          uint32
	Name        string
	Description string
	Depth       uint32
	Boss        SubzoneBoss
}

// Zone is one of the eleven static world regions.
type Zone struct {
	ID                 uint32
	Name                string
	Description         string
	Subzones            []Subzone
	PrestigeRequirement uint32
	MinLevel            uint32
	MaxLevel            uint32
	RequiresWeapon      bool
	WeaponName          string
}

// allZones is the immutable, process-wide zone table — computed once at
// package init and never mutated (spec.md §9 "Global state").
var allZones = buildZones()

func buildZones() []Zone {
	return []Zone{
		{
			ID: 1, Name: "Meadow",
			Description:         "Rolling grasslands where wildflowers hide teeth. Many adventurers begin here. Fewer leave than you'd think.",
			PrestigeRequirement: 0, MinLevel: 1, MaxLevel: 10,
			Subzones: []Subzone{
				{ID: 1, Name: "Sunny Fields", Depth: 1, Boss: SubzoneBoss{Name: "Field Guardian"}},
				{ID: 2, Name: "Overgrown Thicket", Depth: 2, Boss: SubzoneBoss{Name: "Thicket Horror"}},
				{ID: 3, Name: "Mushroom Caves", Depth: 3, Boss: SubzoneBoss{Name: "Sporeling Queen", IsZoneBoss: true}},
			},
		},
		{
			ID: 2, Name: "Dark Forest",
			PrestigeRequirement: 0, MinLevel: 10, MaxLevel: 25,
			Subzones: []Subzone{
				{ID: 1, Name: "Forest Edge", Depth: 1, Boss: SubzoneBoss{Name: "Alpha Wolf"}},
				{ID: 2, Name: "Twisted Woods", Depth: 2, Boss: SubzoneBoss{Name: "Corrupted Treant"}},
				{ID: 3, Name: "Spider's Hollow", Depth: 3, Boss: SubzoneBoss{Name: "Broodmother Arachne", IsZoneBoss: true}},
			},
		},
		{
			ID: 3, Name: "Mountain Pass",
			PrestigeRequirement: 5, MinLevel: 25, MaxLevel: 40,
			Subzones: []Subzone{
				{ID: 1, Name: "Rocky Foothills", Depth: 1, Boss: SubzoneBoss{Name: "Bandit King"}},
				{ID: 2, Name: "Frozen Peaks", Depth: 2, Boss: SubzoneBoss{Name: "Ice Giant"}},
				{ID: 3, Name: "Dragon's Perch", Depth: 3, Boss: SubzoneBoss{Name: "Frost Wyrm", IsZoneBoss: true}},
			},
		},
		{
			ID: 4, Name: "Ancient Ruins",
			PrestigeRequirement: 5, MinLevel: 40, MaxLevel: 55,
			Subzones: []Subzone{
				{ID: 1, Name: "Outer Sanctum", Depth: 1, Boss: SubzoneBoss{Name: "Skeleton Lord"}},
				{ID: 2, Name: "Sunken Temple", Depth: 2, Boss: SubzoneBoss{Name: "Spectral Guardian"}},
				{ID: 3, Name: "Sealed Catacombs", Depth: 3, Boss: SubzoneBoss{Name: "Lich King's Shade", IsZoneBoss: true}},
			},
		},
		{
			ID: 5, Name: "Volcanic Wastes",
			PrestigeRequirement: 10, MinLevel: 55, MaxLevel: 70,
			Subzones: []Subzone{
				{ID: 1, Name: "Scorched Badlands", Depth: 1, Boss: SubzoneBoss{Name: "Ash Walker Chief"}},
				{ID: 2, Name: "Lava Rivers", Depth: 2, Boss: SubzoneBoss{Name: "Magma Serpent"}},
				{ID: 3, Name: "Obsidian Fortress", Depth: 3, Boss: SubzoneBoss{Name: "Fire Giant Warlord"}},
				{ID: 4, Name: "Magma Core", Depth: 4, Boss: SubzoneBoss{Name: "Infernal Titan", IsZoneBoss: true}},
			},
		},
		{
			ID: 6, Name: "Frozen Tundra",
			PrestigeRequirement: 10, MinLevel: 70, MaxLevel: 85,
			Subzones: []Subzone{
				{ID: 1, Name: "Snowbound Plains", Depth: 1, Boss: SubzoneBoss{Name: "Dire Wolf Alpha"}},
				{ID: 2, Name: "Glacier Maze", Depth: 2, Boss: SubzoneBoss{Name: "Ice Wraith Lord"}},
				{ID: 3, Name: "Frozen Lake", Depth: 3, Boss: SubzoneBoss{Name: "Lake Horror"}},
				{ID: 4, Name: "Permafrost Tomb", Depth: 4, Boss: SubzoneBoss{Name: "The Frozen One", IsZoneBoss: true}},
			},
		},
		{
			ID: 7, Name: "Crystal Caverns",
			PrestigeRequirement: 15, MinLevel: 85, MaxLevel: 100,
			Subzones: []Subzone{
				{ID: 1, Name: "Glittering Tunnels", Depth: 1, Boss: SubzoneBoss{Name: "Gem Golem"}},
				{ID: 2, Name: "Prismatic Halls", Depth: 2, Boss: SubzoneBoss{Name: "Prism Elemental"}},
				{ID: 3, Name: "Resonance Depths", Depth: 3, Boss: SubzoneBoss{Name: "Echo Wraith"}},
				{ID: 4, Name: "Heart Crystal", Depth: 4, Boss: SubzoneBoss{Name: "Crystal Colossus", IsZoneBoss: true}},
			},
		},
		{
			ID: 8, Name: "Sunken Kingdom",
			PrestigeRequirement: 15, MinLevel: 100, MaxLevel: 115,
			Subzones: []Subzone{
				{ID: 1, Name: "Coral Gardens", Depth: 1, Boss: SubzoneBoss{Name: "Merfolk Warlord"}},
				{ID: 2, Name: "Drowned Streets", Depth: 2, Boss: SubzoneBoss{Name: "Drowned Admiral"}},
				{ID: 3, Name: "Abyssal Palace", Depth: 3, Boss: SubzoneBoss{Name: "Pressure Beast"}},
				{ID: 4, Name: "Throne of Tides", Depth: 4, Boss: SubzoneBoss{Name: "The Drowned King", IsZoneBoss: true}},
			},
		},
		{
			ID: 9, Name: "Floating Isles",
			PrestigeRequirement: 20, MinLevel: 115, MaxLevel: 130,
			Subzones: []Subzone{
				{ID: 1, Name: "Cloud Docks", Depth: 1, Boss: SubzoneBoss{Name: "Harpy Matriarch"}},
				{ID: 2, Name: "Sky Bridges", Depth: 2, Boss: SubzoneBoss{Name: "Wind Elemental Lord"}},
				{ID: 3, Name: "Stormfront", Depth: 3, Boss: SubzoneBoss{Name: "Storm Drake"}},
				{ID: 4, Name: "Eye of the Storm", Depth: 4, Boss: SubzoneBoss{Name: "Tempest Lord", IsZoneBoss: true}},
			},
		},
		{
			ID: 10, Name: "Storm Citadel",
			PrestigeRequirement: 20, MinLevel: 130, MaxLevel: 150,
			RequiresWeapon: true, WeaponName: "Stormbreaker",
			Subzones: []Subzone{
				{ID: 1, Name: "Lightning Fields", Depth: 1, Boss: SubzoneBoss{Name: "Spark Colossus"}},
				{ID: 2, Name: "Thunder Halls", Depth: 2, Boss: SubzoneBoss{Name: "Storm Knight Commander"}},
				{ID: 3, Name: "Generator Core", Depth: 3, Boss: SubzoneBoss{Name: "Core Warden"}},
				{ID: 4, Name: "Apex Spire", Depth: 4, Boss: SubzoneBoss{Name: "The Undying Storm", IsZoneBoss: true}},
			},
		},
		{
			// Post-game cyclic zone; the StormsEnd transition unlocks it, and with a
			// prestige requirement of 0 ResetForPrestige's rank filter also includes it.
			ID: 11, Name: "The Expanse",
			Description:         "Beyond the storm lies what was always there. Raw, unformed reality stretching past the edges of the world.",
			PrestigeRequirement: 0, MinLevel: 150, MaxLevel: ^uint32(0),
			Subzones: []Subzone{
				{ID: 1, Name: "Void's Edge", Depth: 1, Boss: SubzoneBoss{Name: "Void Sentinel"}},
				{ID: 2, Name: "Eternal Storm", Depth: 2, Boss: SubzoneBoss{Name: "Tempest Incarnate"}},
				{ID: 3, Name: "Abyssal Rift", Depth: 3, Boss: SubzoneBoss{Name: "Rift Behemoth"}},
				{ID: 4, Name: "The Endless", Depth: 4, Boss: SubzoneBoss{Name: "Avatar of Infinity", IsZoneBoss: true}},
			},
		},
	}
}

// AllZones returns all eleven zones.
func AllZones() []Zone {
	return allZones
}

// Get returns the zone with the given id, or nil if not found.
func Get(zoneID uint32) *Zone {
	for i := range allZones {
		if allZones[i].ID == zoneID {
			return &allZones[i]
		}
	}
	return nil
}

// GetSubzone returns the zone and subzone for (zoneID, subzoneID).
func GetSubzone(zoneID, subzoneID uint32) (*Zone, *Subzone) {
	z := Get(zoneID)
	if z == nil {
		return nil, nil
	}
	for i := range z.Subzones {
		if z.Subzones[i].ID == subzoneID {
			return z, &z.Subzones[i]
		}
	}
	return z, nil
}
