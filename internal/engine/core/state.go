// Package core implements the Core State Facade from spec.md §5/§6: the
// single entry point that owns GameState and drives tick()/handle_input()
// by dispatching to exactly one of {active_minigame, fishing_session,
// dungeon_auto_explore, combat} per tick, in that priority order, plus the
// one-shot transitions (prestige, offline progression) and the challenge
// discovery roll.
//
// Grounded on original_source/src/core/game_state.rs (GameState's field
// layout and ownership rules) and original_source/src/core/tick.rs-style
// dispatch priority described in spec.md §5; the surrounding subsystem
// packages (combat, zone, dungeon, challenge, fishing, morris, prestige,
// achievement, offline) are each already grounded individually and this
// package only wires them together, matching the teacher repo's
// internal/gameserver idiom of a thin coordinating layer over model
// packages that hold the real logic.
package core

import (
	"github.com/google/uuid"

	"github.com/udisondev/la2go/internal/engine/achievement"
	"github.com/udisondev/la2go/internal/engine/attributes"
	"github.com/udisondev/la2go/internal/engine/challenge"
	"github.com/udisondev/la2go/internal/engine/combat"
	"github.com/udisondev/la2go/internal/engine/dungeon"
	"github.com/udisondev/la2go/internal/engine/fishing"
	"github.com/udisondev/la2go/internal/engine/items"
	"github.com/udisondev/la2go/internal/engine/morris"
	"github.com/udisondev/la2go/internal/engine/zone"
	"github.com/udisondev/la2go/internal/rng"
)

// HavenBonuses bundles the percentage modifiers the (out-of-scope) haven
// base-building layer would otherwise compute; the facade accepts them as
// plain inputs rather than implementing haven itself, per spec.md §4.7/
// §4.10/§4.12 treating haven_*_percent as externally supplied parameters.
type HavenBonuses struct {
	XPGainPercent      float64
	DiscoveryPercent   float64
	OfflineXPPercent   float64
}

// ActiveMinigameKind tags which board minigame owns the tick when one is
// active. Only Morris has a full engine in this build; the others are
// represented so the menu/dispatch plumbing is complete even though their
// play logic is out of scope beyond the Morris archetype (spec.md §4.8's
// closing note: "Same pattern applies to Chess, Gomoku, Go, etc.").
type ActiveMinigameKind int

const (
	MinigameNone ActiveMinigameKind = iota
	MinigameMorris
	MinigameChess
	MinigameGomoku
	MinigameGo
	MinigameMinesweeper
	MinigameRune
)

// ActiveMinigame is the ephemeral session for a board/puzzle challenge in
// progress (spec.md §3's "ActiveMinigame" option).
type ActiveMinigame struct {
	Kind       ActiveMinigameKind
	Difficulty challenge.Difficulty
	ChallengeType challenge.Type
	Morris     *morris.Game
}

// GameState is everything the facade owns and persists (spec.md §6's
// "Persisted state layout"), plus the ephemeral session options.
type GameState struct {
	CharacterID    string
	CharacterName  string
	CharacterLevel uint32
	CharacterXP    uint64
	Attributes     attributes.Attributes

	PrestigeRank       uint32
	TotalPrestigeCount uint64

	LastSaveTimeUnix int64
	PlayTimeSeconds  int64

	Combat    combat.State
	Equipment items.Equipment

	ActiveDungeon *dungeon.Dungeon

	Fishing       fishing.State
	ActiveFishing *fishing.Session

	ZoneProgression zone.Progression

	ChallengeMenu  challenge.Menu
	ActiveMinigame *ActiveMinigame

	Achievements *achievement.Tracker
}

// NewCharacterID mints a fresh character identifier, matching
// core/game_state.rs's Uuid::new_v4() use in the original.
func NewCharacterID() string {
	return uuid.NewString()
}

// New returns a freshly rolled character: level 1, base attributes, zone 1.
func New(characterID, characterName string) *GameState {
	attrs := attributes.New()
	return &GameState{
		CharacterID:     characterID,
		CharacterName:   characterName,
		CharacterLevel:  1,
		Attributes:      attrs,
		Combat:          combat.New(combatMaxHP(attrs)),
		Equipment:       items.New(),
		Fishing:         fishing.New(),
		ZoneProgression: zone.New(),
		ChallengeMenu:   challenge.New(),
		Achievements:    achievement.New(),
	}
}

func combatMaxHP(attrs attributes.Attributes) uint32 {
	d := attributes.Calculate(attrs, &items.Equipment{}, 0)
	return d.MaxHP
}

// Derived recomputes combat/XP stats from the current attributes and
// equipment; never stored, always recomputed (spec.md §4.1).
func (s *GameState) Derived() attributes.Derived {
	return attributes.Calculate(s.Attributes, &s.Equipment, s.PrestigeRank)
}

// WisModifier and CharismaModifier expose the d20-style modifiers used
// throughout combat/offline XP formulas.
func (s *GameState) WisModifier() int  { return s.Attributes.Modifier(attributes.Wisdom) }
func (s *GameState) ChaModifier() int  { return s.Attributes.Modifier(attributes.Charisma) }

// InDungeon, InFishing, InMinigame report which ephemeral session (if any)
// currently owns the tick, for the challenge-discovery gate.
func (s *GameState) InDungeon() bool  { return s.ActiveDungeon != nil }
func (s *GameState) InFishing() bool  { return s.ActiveFishing != nil }
func (s *GameState) InMinigame() bool { return s.ActiveMinigame != nil }

// Facade owns the GameState, the single injectable randomness source it
// threads through every subsystem call (spec.md §5), and transient UI state.
type Facade struct {
	State *GameState
	RNG   *rng.Source
	UI    UIState
}

// NewFacade wraps state with the given seed, per §5's "a fixed seed
// reproduces an identical run".
func NewFacade(state *GameState, seed uint64) *Facade {
	return &Facade{State: state, RNG: rng.New(seed)}
}
