package combat

import (
	"github.com/udisondev/la2go/internal/constants"
	"github.com/udisondev/la2go/internal/engine/attributes"
	"github.com/udisondev/la2go/internal/engine/items"
	"github.com/udisondev/la2go/internal/rng"
)

// EventKind tags a combat event for the facade's ordered event stream
// (spec.md §6 Events list).
type EventKind int

const (
	EventPlayerAttack EventKind = iota
	EventEnemyAttack
	EventPlayerDied
	EventEnemyDied
)

// Event is one entry in the ordered per-tick event stream.
type Event struct {
	Kind      EventKind
	Damage    int64
	WasCrit   bool
	XPGained  float64
	IsBoss    bool
	EnemyName string
}

// SpawnFunc produces the next enemy to fight; the facade supplies a
// closure over dungeon-room-type or zone/subzone-static generation
// per spec.md §4.2 Phase B, keeping this package ignorant of those
// subsystems (no import cycle).
type SpawnFunc func(r *rng.Source) Enemy

// TickInputs bundles the values the resolver needs for one Δt advance.
type TickInputs struct {
	DeltaSeconds       float64
	Derived            attributes.Derived
	Equipment          *items.Equipment
	Spawn              SpawnFunc
	PrestigeRank       uint32
	WisModifier        int
	CharismaModifier   int
	HavenXPGainPercent float64
}

// Resolve advances combat by one tick per spec.md §4.2's Phase A/B/C
// pipeline, returning the ordered events produced.
func Resolve(state *State, in TickInputs, r *rng.Source) []Event {
	var events []Event

	// Phase A — Regen.
	if state.IsRegenerating {
		state.RegenTimer += in.DeltaSeconds
		if state.RegenTimer >= constants.HPRegenDurationSeconds {
			state.PlayerCurrentHP = state.PlayerMaxHP
			state.IsRegenerating = false
			state.RegenTimer = 0
		} else {
			frac := state.RegenTimer / constants.HPRegenDurationSeconds
			state.PlayerCurrentHP = uint32(float64(state.PlayerMaxHP) * frac)
		}
		return events
	}

	// Phase B — Spawn.
	if state.CurrentEnemy == nil {
		enemy := in.Spawn(r)
		state.CurrentEnemy = &enemy
	}

	// Phase C — Attack cadence.
	state.AttackTimer += in.DeltaSeconds * in.Derived.AttackSpeedMultiplier
	if state.AttackTimer < constants.AttackIntervalSeconds {
		return events
	}
	state.AttackTimer = 0

	crit := r.Float64()*100.0 < in.Derived.CritChancePercent
	damage := in.Derived.TotalDamage
	if crit {
		damage *= in.Derived.CritMultiplier
	}
	dmgInt := int64(damage)

	state.CurrentEnemy.CurrentHP -= dmgInt
	events = append(events, Event{Kind: EventPlayerAttack, Damage: dmgInt, WasCrit: crit})

	if state.CurrentEnemy.CurrentHP <= 0 {
		xpPerTick := XPPerTick(in.PrestigeRank, in.WisModifier, in.CharismaModifier)
		xpPerTick *= in.Derived.XPMultiplier
		xp := CombatKillXP(xpPerTick, in.HavenXPGainPercent, r)

		events = append(events, Event{
			Kind:      EventEnemyDied,
			XPGained:  xp,
			IsBoss:    state.CurrentEnemy.IsBoss,
			EnemyName: state.CurrentEnemy.Name,
		})

		state.IsRegenerating = true
		state.RegenTimer = 0
		state.CurrentEnemy = nil
		return events
	}

	// Enemy strikes back.
	incoming := float64(state.CurrentEnemy.Damage) - in.Derived.Defense
	if incoming < 0 {
		incoming = 0
	}
	incoming = attributes.ApplyDamageReduction(in.Equipment, incoming)
	dealt := int64(incoming)

	if dealt > int64(state.PlayerCurrentHP) {
		state.PlayerCurrentHP = 0
	} else {
		state.PlayerCurrentHP -= uint32(dealt)
	}
	events = append(events, Event{Kind: EventEnemyAttack, Damage: dealt})

	if in.Derived.DamageReflectionPercent > 0 {
		reflected := int64(incoming * in.Derived.DamageReflectionPercent / 100.0)
		state.CurrentEnemy.CurrentHP -= reflected
	}

	// Reflection damage can kill the enemy in the same exchange the
	// player dies in; spec.md §4.2 Phase C counts that kill regardless,
	// so enemy death is resolved independently of (and before) the
	// player-death branch below.
	if state.CurrentEnemy.CurrentHP <= 0 {
		xpPerTick := XPPerTick(in.PrestigeRank, in.WisModifier, in.CharismaModifier)
		xpPerTick *= in.Derived.XPMultiplier
		xp := CombatKillXP(xpPerTick, in.HavenXPGainPercent, r)

		events = append(events, Event{
			Kind:      EventEnemyDied,
			XPGained:  xp,
			IsBoss:    state.CurrentEnemy.IsBoss,
			EnemyName: state.CurrentEnemy.Name,
		})

		state.IsRegenerating = true
		state.RegenTimer = 0
		state.CurrentEnemy = nil
	}

	if state.PlayerCurrentHP == 0 {
		events = append(events, Event{Kind: EventPlayerDied})
		state.PlayerCurrentHP = state.PlayerMaxHP
		state.IsRegenerating = false
		state.RegenTimer = 0
		if state.CurrentEnemy != nil {
			state.CurrentEnemy.CurrentHP = state.CurrentEnemy.MaxHP
		}
	}

	return events
}
