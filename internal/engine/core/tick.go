package core

import (
	"github.com/udisondev/la2go/internal/constants"
	"github.com/udisondev/la2go/internal/engine/achievement"
	"github.com/udisondev/la2go/internal/engine/challenge"
	"github.com/udisondev/la2go/internal/engine/combat"
	"github.com/udisondev/la2go/internal/engine/dungeon"
	"github.com/udisondev/la2go/internal/engine/fishing"
	"github.com/udisondev/la2go/internal/engine/items"
	"github.com/udisondev/la2go/internal/engine/loot"
	"github.com/udisondev/la2go/internal/engine/zone"
	"github.com/udisondev/la2go/internal/rng"
)

// Tick advances the simulation by deltaSeconds, dispatching to exactly one
// of {active_minigame, fishing_session, dungeon_auto_explore, combat} per
// spec.md §5's priority order, then rolling challenge discovery when none
// of the first three owns the tick.
func (f *Facade) Tick(deltaSeconds float64, nowUnixSeconds, nowMonotonicMS int64) []Event {
	s := f.State

	switch {
	case s.InMinigame():
		// Board minigames are turn-driven via HandleInput, not tick-driven;
		// nothing to advance here beyond letting the session persist.
		return nil
	case s.InFishing():
		return f.tickFishing(nowMonotonicMS)
	case s.InDungeon():
		return f.tickDungeon(deltaSeconds, nowUnixSeconds, nowMonotonicMS)
	default:
		events := f.tickCombat(deltaSeconds, nowUnixSeconds, nowMonotonicMS)
		events = append(events, f.rollDungeonDiscovery()...)
		events = append(events, f.rollChallengeDiscovery()...)
		events = append(events, f.drainAchievements(nowMonotonicMS)...)
		return events
	}
}

func (f *Facade) tickCombat(deltaSeconds float64, nowUnixSeconds, nowMonotonicMS int64) []Event {
	s := f.State
	derived := s.Derived()

	in := combat.TickInputs{
		DeltaSeconds:       deltaSeconds,
		Derived:            derived,
		Equipment:          &s.Equipment,
		PrestigeRank:       s.PrestigeRank,
		WisModifier:        s.WisModifier(),
		CharismaModifier:   s.ChaModifier(),
		HavenXPGainPercent: 0,
		Spawn:              f.spawnEnemy,
	}

	raw := combat.Resolve(&s.Combat, in, f.RNG)
	var events []Event

	for _, e := range raw {
		switch e.Kind {
		case combat.EventPlayerAttack:
			events = append(events, Event{Kind: EventPlayerAttack, Damage: e.Damage, WasCrit: e.WasCrit})
		case combat.EventEnemyAttack:
			events = append(events, Event{Kind: EventEnemyAttack, Damage: e.Damage})
		case combat.EventPlayerDied:
			events = append(events, Event{Kind: EventPlayerDied})
		case combat.EventEnemyDied:
			events = append(events, Event{Kind: EventEnemyDied, XPGained: e.XPGained, IsBoss: e.IsBoss})
			events = append(events, f.onKill(e, nowUnixSeconds, nowMonotonicMS)...)
		}
	}

	return events
}

// spawnEnemy produces the next overworld combat encounter scaled by the
// current zone/subzone.
func (f *Facade) spawnEnemy(r *rng.Source) combat.Enemy {
	s := f.State
	_, sz := zone.GetSubzone(s.ZoneProgression.CurrentZoneID, s.ZoneProgression.CurrentSubzoneID)
	isBoss := s.ZoneProgression.FightingBoss
	name := "Wanderer"
	if sz != nil {
		name = sz.Name + " Creature"
		if isBoss {
			name = sz.Boss.Name
		}
	}
	level := int64(s.CharacterLevel)
	baseHP := 20 + level*4
	baseDamage := 3 + level/2
	if isBoss {
		baseHP *= 5
		baseDamage *= 2
	}
	return combat.Enemy{Name: name, MaxHP: baseHP, CurrentHP: baseHP, Damage: baseDamage, IsBoss: isBoss}
}

func (f *Facade) onKill(e combat.Event, nowUnixSeconds, nowMonotonicMS int64) []Event {
	s := f.State
	var events []Event

	result := combat.ApplyTickXP(&s.CharacterLevel, &s.CharacterXP, &s.Attributes, s.PrestigeRank, e.XPGained, f.RNG)
	for i := 0; i < result.TotalLevelUps; i++ {
		s.Achievements.OnLevelUp(s.CharacterName, s.CharacterLevel, nowMonotonicMS)
	}

	if e.IsBoss {
		s.Achievements.OnBossKill(s.CharacterName, nowMonotonicMS)
		res := s.ZoneProgression.OnBossDefeated(s.PrestigeRank, s.Achievements)
		events = append(events, zoneResultToEvents(res)...)
		if res.Kind == zone.ResultZoneComplete || res.Kind == zone.ResultStormsEnd {
			if id, ok := achievement.ZoneCompletionID(res.OldZoneID); ok {
				s.Achievements.OnZoneFullyCleared(s.CharacterName, id, nowUnixSeconds, nowMonotonicMS)
			}
		}
	} else {
		s.Achievements.OnKill(s.CharacterName, nowMonotonicMS)
		s.ZoneProgression.RecordKill()
	}

	if rollChance := loot.DropChance(s.PrestigeRank); f.RNG.Bernoulli(rollChance) {
		slot := loot.RollSlot(f.RNG)
		rarity := loot.RollRarity(s.PrestigeRank, f.RNG)
		item := loot.Generate(slot, rarity, s.CharacterLevel, f.RNG)
		equipped := f.tryEquip(slot, item)
		events = append(events, Event{Kind: EventLootDropped, Item: item, Equipped: equipped})
	}

	return events
}

// tryEquip swaps item into its slot if it scores higher than the
// incumbent, per loot.AutoEquipIfBetter.
func (f *Facade) tryEquip(slot items.Slot, item items.Item) bool {
	_, equipped := loot.AutoEquipIfBetter(&f.State.Equipment, item)
	return equipped
}

func (f *Facade) rollChallengeDiscovery() []Event {
	s := f.State
	if !challenge.CanDiscover(s.PrestigeRank, s.InDungeon(), s.InFishing(), s.InMinigame()) {
		return nil
	}
	t, ok := challenge.RollDiscovery(0, &s.ChallengeMenu, f.RNG)
	if !ok {
		return nil
	}
	return []Event{{Kind: EventChallengeDiscovered, ChallengeType: t}}
}

func (f *Facade) rollDungeonDiscovery() []Event {
	s := f.State
	if s.InDungeon() {
		return nil
	}
	if !f.RNG.Bernoulli(constants.DungeonDiscoveryChance) {
		return nil
	}
	size := rollDungeonSize(s.PrestigeRank, f.RNG)
	s.ActiveDungeon = dungeon.Generate(size, f.RNG)
	return []Event{{Kind: EventDungeonEntered}}
}

// rollDungeonSize scales the discovered dungeon's size with prestige rank:
// higher-rank characters encounter larger dungeons more often.
func rollDungeonSize(prestigeRank uint32, r *rng.Source) dungeon.Size {
	roll := r.Float64()
	switch {
	case prestigeRank >= 10 && roll < 0.25:
		return dungeon.Legendary
	case prestigeRank >= 5 && roll < 0.40:
		return dungeon.Large
	case roll < 0.65:
		return dungeon.Medium
	default:
		return dungeon.Small
	}
}

func (f *Facade) tickDungeon(deltaSeconds float64, nowUnixSeconds, nowMonotonicMS int64) []Event {
	s := f.State
	d := s.ActiveDungeon
	var events []Event

	if d.NeedsCombat() {
		events = append(events, f.tickCombat(deltaSeconds, nowUnixSeconds, nowMonotonicMS)...)
		if s.Combat.CurrentEnemy == nil && s.Combat.PlayerCurrentHP > 0 {
			bossRoom := d.CurrentRoom().Type == dungeon.RoomBoss
			grantedKey := d.MarkCurrentRoomCleared()
			if grantedKey {
				events = append(events, Event{Kind: EventFoundKey}, Event{Kind: EventBossUnlocked})
			}
			if bossRoom {
				s.CharacterXP += d.OnBossDefeated(f.RNG)
				s.Achievements.OnDungeonCompleted(s.CharacterName, nowMonotonicMS)
				events = append(events, Event{Kind: EventDungeonComplete, DungeonXP: uint64(d.XPEarned), DungeonItems: d.CollectedItemCount})
				s.ActiveDungeon = nil
			}
		}
	} else {
		raw := d.Tick(deltaSeconds)
		for _, e := range raw {
			switch e.Kind {
			case dungeon.EventEnteredRoom:
				events = append(events, Event{Kind: EventRoomEntered, RoomType: e.Room.Type, RoomPos: e.Room.Position})
			case dungeon.EventTreasureFound:
				item := d.GenerateTreasureItem(s.PrestigeRank, s.CharacterLevel, f.RNG)
				d.CollectItem()
				events = append(events, Event{Kind: EventTreasureFound, Item: item})
			case dungeon.EventDungeonComplete:
				xp := uint64(0)
				if d.XPEarned > 0 {
					xp = uint64(d.XPEarned)
				}
				numItems := d.CollectedItemCount
				s.Achievements.OnDungeonCompleted(s.CharacterName, nowMonotonicMS)
				events = append(events, Event{Kind: EventDungeonComplete, DungeonXP: xp, DungeonItems: numItems})
				s.ActiveDungeon = nil
			}
		}
	}

	if s.Combat.PlayerCurrentHP == 0 && s.ActiveDungeon != nil {
		events = append(events, Event{Kind: EventDungeonFailed})
		s.ActiveDungeon = nil
	}

	return events
}

func (f *Facade) tickFishing(nowMonotonicMS int64) []Event {
	s := f.State
	sess := s.ActiveFishing

	before := len(sess.FishCaught)
	done := sess.Tick(s.PrestigeRank, s.CharacterLevel, f.RNG)

	for i := before; i < len(sess.FishCaught); i++ {
		newRank, rankedUp := s.Fishing.RecordCatch()
		if rankedUp {
			s.Achievements.OnFishingRankUp(s.CharacterName, newRank, nowMonotonicMS)
		}
		s.Achievements.OnFishCaught(s.CharacterName, s.Fishing.TotalFishCaught, nowMonotonicMS)
	}

	if !done {
		return nil
	}
	s.ActiveFishing = nil
	return nil
}

// StartFishing opens a new fishing session at a random spot.
func (f *Facade) StartFishing() {
	sess := fishing.Start(f.RNG)
	f.State.ActiveFishing = &sess
}

func (f *Facade) drainAchievements(nowMonotonicMS int64) []Event {
	var events []Event
	if f.State.Achievements.IsModalReady(nowMonotonicMS) {
		for _, id := range f.State.Achievements.TakeModalQueue() {
			events = append(events, Event{Kind: EventAchievementUnlocked, AchievementID: id})
		}
	}
	return events
}
