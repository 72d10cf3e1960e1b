package core

import (
	"fmt"

	"github.com/udisondev/la2go/internal/engine/challenge"
	"github.com/udisondev/la2go/internal/engine/dungeon"
	"github.com/udisondev/la2go/internal/engine/items"
	"github.com/udisondev/la2go/internal/engine/zone"
)

// EventKind is the closed set of events the facade surfaces per tick,
// verbatim from spec.md §6.
type EventKind int

const (
	EventPlayerAttack EventKind = iota
	EventEnemyAttack
	EventPlayerDied
	EventEnemyDied
	EventLootDropped
	EventZoneAdvanced
	EventStormsEnd
	EventExpanseCycleCompleted
	EventBossWeaponRequired
	EventDungeonEntered
	EventRoomEntered
	EventFoundKey
	EventBossUnlocked
	EventTreasureFound
	EventDungeonComplete
	EventDungeonFailed
	EventChallengeDiscovered
	EventChallengeAccepted
	EventMinigameEnded
	EventAchievementUnlocked
)

func (k EventKind) String() string {
	switch k {
	case EventPlayerAttack:
		return "PlayerAttack"
	case EventEnemyAttack:
		return "EnemyAttack"
	case EventPlayerDied:
		return "PlayerDied"
	case EventEnemyDied:
		return "EnemyDied"
	case EventLootDropped:
		return "LootDropped"
	case EventZoneAdvanced:
		return "ZoneAdvanced"
	case EventStormsEnd:
		return "StormsEnd"
	case EventExpanseCycleCompleted:
		return "ExpanseCycleCompleted"
	case EventBossWeaponRequired:
		return "BossWeaponRequired"
	case EventDungeonEntered:
		return "DungeonEntered"
	case EventRoomEntered:
		return "RoomEntered"
	case EventFoundKey:
		return "FoundKey"
	case EventBossUnlocked:
		return "BossUnlocked"
	case EventTreasureFound:
		return "TreasureFound"
	case EventDungeonComplete:
		return "DungeonComplete"
	case EventDungeonFailed:
		return "DungeonFailed"
	case EventChallengeDiscovered:
		return "ChallengeDiscovered"
	case EventChallengeAccepted:
		return "ChallengeAccepted"
	case EventMinigameEnded:
		return "MinigameEnded"
	case EventAchievementUnlocked:
		return "AchievementUnlocked"
	default:
		return fmt.Sprintf("UnknownEvent(%d)", int(k))
	}
}

// Event is one tagged entry in the facade's ordered per-tick event stream
// (spec.md §6). Only the fields relevant to Kind are populated.
type Event struct {
	Kind EventKind

	Damage  int64
	WasCrit bool

	XPGained float64
	IsBoss   bool

	Item     items.Item
	Equipped bool

	NewZoneID uint32

	WeaponName string

	RoomType dungeon.RoomType
	RoomPos  dungeon.Position

	DungeonXP    uint64
	DungeonItems int

	ChallengeType       challenge.Type
	ChallengeDifficulty challenge.Difficulty

	MinigameResult string

	AchievementID string
}

// zoneResultToEvents translates a zone.BossDefeatResult into the ordered
// events spec.md §6 says a zone transition produces.
func zoneResultToEvents(res zone.BossDefeatResult) []Event {
	switch res.Kind {
	case zone.ResultSubzoneComplete:
		return nil
	case zone.ResultZoneComplete:
		return []Event{{Kind: EventZoneAdvanced, NewZoneID: res.NewZoneID}}
	case zone.ResultZoneCompleteButGated:
		return nil
	case zone.ResultStormsEnd:
		return []Event{{Kind: EventStormsEnd}, {Kind: EventZoneAdvanced, NewZoneID: res.NewZoneID}}
	case zone.ResultWeaponRequired:
		return []Event{{Kind: EventBossWeaponRequired, WeaponName: res.WeaponName}}
	case zone.ResultExpanseCycle:
		return []Event{{Kind: EventExpanseCycleCompleted}}
	default:
		return nil
	}
}
