// Package fishing implements the abbreviated fishing subsystem from
// spec.md §4.10: rank progression and an ephemeral per-session catch
// loop. original_source/src/fishing/ only ships its mod.rs re-export
// shell in this pack (generation.rs/logic.rs/types.rs are not included),
// so the session tick resolution below is grounded on the same
// rng.Source-driven roll-and-accumulate shape used throughout the rest of
// this engine (e.g. internal/engine/loot's rarity bands,
// internal/engine/dungeon's reward rolls) rather than on a specific
// original file.
package fishing

import (
	"fmt"

	"github.com/udisondev/la2go/internal/engine/items"
	"github.com/udisondev/la2go/internal/engine/loot"
	"github.com/udisondev/la2go/internal/rng"
)

// MaxRank is the highest attainable fishing rank.
const MaxRank = 40

// State is the persistent fishing progression (spec.md §4.10's
// FishingState).
type State struct {
	Rank            uint32
	FishTowardNext  uint32
	TotalFishCaught uint64
}

// New returns the starting fishing state: rank 1, no progress.
func New() State {
	return State{Rank: 1}
}

// FishNeededForRank returns how many fish must be caught to advance past
// rank, scaling with rank so later ranks take longer.
func FishNeededForRank(rank uint32) uint32 {
	return 5 + rank*3
}

// RecordCatch tallies one caught fish toward the next rank, advancing
// (possibly multiple) ranks if the threshold is crossed repeatedly. It
// reports the new rank after any advancement, or false if already at
// MaxRank.
func (s *State) RecordCatch() (newRank uint32, rankedUp bool) {
	s.TotalFishCaught++
	if s.Rank >= MaxRank {
		return s.Rank, false
	}
	s.FishTowardNext++
	advanced := false
	for s.Rank < MaxRank && s.FishTowardNext >= FishNeededForRank(s.Rank) {
		s.FishTowardNext -= FishNeededForRank(s.Rank)
		s.Rank++
		advanced = true
	}
	if s.Rank >= MaxRank {
		s.FishTowardNext = 0
	}
	return s.Rank, advanced
}

// Phase is the lifecycle stage of an active fishing session.
type Phase int

const (
	PhaseCasting Phase = iota
	PhaseWaiting
	PhaseReeling
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseCasting:
		return "Casting"
	case PhaseWaiting:
		return "Waiting"
	case PhaseReeling:
		return "Reeling"
	case PhaseComplete:
		return "Complete"
	default:
		return fmt.Sprintf("UnknownPhase(%d)", int(p))
	}
}

// Session is the ephemeral per-visit fishing state (spec.md §4.10's
// FishingSession).
type Session struct {
	SpotName      string
	FishCaught    []string
	ItemsFound    []items.Item
	TicksRemaining int
	Phase         Phase
}

// sessionLength is how many ticks a fishing visit lasts.
const sessionLength = 20

// catchChance is the per-tick Bernoulli probability of landing a fish
// while waiting.
const catchChance = 0.25

// itemChance is the probability a caught fish also yields an item.
const itemChance = 0.10

var spotNames = []string{
	"Quiet Cove", "Rushing Rapids", "Mossy Pier", "Sunken Dock", "Glassy Lagoon",
}

// Start begins a new session at a randomly chosen fishing spot.
func Start(r *rng.Source) Session {
	return Session{
		SpotName:       spotNames[r.IntN(len(spotNames))],
		TicksRemaining: sessionLength,
		Phase:          PhaseCasting,
	}
}

// Tick advances the session by one tick, returning true once the session
// has nothing left to resolve (Phase == PhaseComplete). Catches roll
// during PhaseWaiting and are appended to FishCaught/ItemsFound; the
// caller is responsible for feeding caught fish into State.RecordCatch.
func (s *Session) Tick(prestigeRank, playerLevel uint32, r *rng.Source) bool {
	if s.Phase == PhaseComplete {
		return true
	}

	s.TicksRemaining--

	switch s.Phase {
	case PhaseCasting:
		s.Phase = PhaseWaiting
	case PhaseWaiting:
		if r.Bernoulli(catchChance) {
			s.Phase = PhaseReeling
		}
	case PhaseReeling:
		s.FishCaught = append(s.FishCaught, s.SpotName)
		if r.Bernoulli(itemChance) {
			slot := loot.RollSlot(r)
			rarity := loot.RollRarity(prestigeRank, r)
			s.ItemsFound = append(s.ItemsFound, loot.Generate(slot, rarity, playerLevel, r))
		}
		s.Phase = PhaseWaiting
	}

	if s.TicksRemaining <= 0 {
		s.Phase = PhaseComplete
		return true
	}
	return false
}
