package core

import (
	"github.com/udisondev/la2go/internal/engine/challenge"
	"github.com/udisondev/la2go/internal/engine/combat"
	"github.com/udisondev/la2go/internal/engine/fishing"
	"github.com/udisondev/la2go/internal/engine/morris"
)

// UIState is transient, facade-level display state the core tracks to
// implement §5's input-classification model (haven/achievements panels,
// debug overlay, two-step cancel); none of it is persisted.
type UIState struct {
	HavenOpen        bool
	AchievementsOpen bool
	DebugOverlay     bool
	ForfeitPending   bool
	MorrisCursor     int
}

// HandleInput dispatches one classified InputToken per §5/§6, returning
// the events it produced. Exactly one of the active contexts (challenge
// menu, active minigame, or the bare overworld toggles) owns a token.
func (f *Facade) HandleInput(token InputToken) []Event {
	s := f.State

	if token.Kind != InputCancel {
		f.UI.ForfeitPending = false
	}

	switch token.Kind {
	case InputPrestige:
		f.Prestige()
		return nil
	case InputHavenToggle:
		f.UI.HavenOpen = !f.UI.HavenOpen
		return nil
	case InputAchievementsToggle:
		f.UI.AchievementsOpen = !f.UI.AchievementsOpen
		return nil
	case InputDebugToggle:
		f.UI.DebugOverlay = !f.UI.DebugOverlay
		return nil
	case InputTabToggleChallenges:
		if s.ChallengeMenu.IsOpen {
			s.ChallengeMenu.Close()
		} else if len(s.ChallengeMenu.Challenges) > 0 {
			s.ChallengeMenu.Open()
		}
		return nil
	case InputQuit:
		return nil
	}

	if s.InMinigame() {
		if s.ActiveMinigame.Kind == MinigameMorris {
			return f.handleMorrisInput(token)
		}
		return f.handleStubMinigameInput(token)
	}

	if s.ChallengeMenu.IsOpen {
		return f.handleChallengeMenuInput(token)
	}

	return nil
}

func (f *Facade) handleChallengeMenuInput(token InputToken) []Event {
	s := f.State
	m := &s.ChallengeMenu

	switch token.Kind {
	case InputUp:
		m.NavigateUp()
	case InputDown:
		m.NavigateDown()
	case InputDifficultyIndex:
		if m.ViewingDetail {
			m.SelectedDifficulty = int(token.Index)
		}
	case InputSelect:
		if !m.ViewingDetail {
			m.OpenDetail()
			return nil
		}
		pending, difficulty, ok := m.AcceptSelected()
		if !ok {
			return nil
		}
		return f.startMinigame(pending, difficulty)
	case InputCancel:
		if m.ViewingDetail {
			m.CloseDetail()
		} else {
			m.Close()
		}
	}
	return nil
}

// startMinigame instantiates the appropriate active-minigame session for
// an accepted PendingChallenge. Only Morris has a full engine; the other
// five board archetypes are represented as dispatch-only sessions that
// stay active, taking no moves, until a Cancel ends them, per state.go's
// dispatch-only-stub note.
func (f *Facade) startMinigame(pending challenge.PendingChallenge, difficulty challenge.Difficulty) []Event {
	s := f.State
	events := []Event{{Kind: EventChallengeAccepted, ChallengeType: pending.Type, ChallengeDifficulty: difficulty}}

	if pending.Type != challenge.Morris {
		s.ActiveMinigame = &ActiveMinigame{Kind: dispatchKindFor(pending.Type), Difficulty: difficulty, ChallengeType: pending.Type}
		return events
	}

	f.UI.MorrisCursor = 0
	s.ActiveMinigame = &ActiveMinigame{
		Kind:          MinigameMorris,
		Difficulty:    difficulty,
		ChallengeType: pending.Type,
		Morris:        morris.New(),
	}
	return events
}

func dispatchKindFor(t challenge.Type) ActiveMinigameKind {
	switch t {
	case challenge.Chess:
		return MinigameChess
	case challenge.Gomoku:
		return MinigameGomoku
	case challenge.Go:
		return MinigameGo
	case challenge.Minesweeper:
		return MinigameMinesweeper
	case challenge.Rune:
		return MinigameRune
	default:
		return MinigameMorris
	}
}

// morrisDifficultyFor maps the menu's generic challenge.Difficulty onto
// morris's own 4-tier Difficulty (identical cardinality, different names).
func morrisDifficultyFor(d challenge.Difficulty) morris.Difficulty {
	switch d {
	case challenge.Novice:
		return morris.Novice
	case challenge.Apprentice:
		return morris.Intermediate
	case challenge.Journeyman:
		return morris.Expert
	default:
		return morris.Master
	}
}

// handleMorrisInput drives board-cursor movement and move commitment for
// an active Morris session, then lets the AI reply (looping through any
// forced follow-up captures) before handing the turn back.
func (f *Facade) handleMorrisInput(token InputToken) []Event {
	s := f.State
	am := s.ActiveMinigame
	g := am.Morris

	switch token.Kind {
	case InputUp, InputRight:
		f.UI.MorrisCursor = (f.UI.MorrisCursor + 1) % morris.NumPositions
		return nil
	case InputDown, InputLeft:
		f.UI.MorrisCursor = (f.UI.MorrisCursor - 1 + morris.NumPositions) % morris.NumPositions
		return nil
	case InputCancel:
		if !f.UI.ForfeitPending {
			f.UI.ForfeitPending = true
			return nil
		}
		f.UI.ForfeitPending = false
		r := morris.ResultForfeit
		g.Result = &r
		return f.finishMorris(am)
	case InputSelect:
		if !f.applyMorrisSelection(g, f.UI.MorrisCursor) {
			return nil
		}
	default:
		return nil
	}

	if g.Result != nil {
		return f.finishMorris(am)
	}

	for g.CurrentPlayer == morris.AI && g.Result == nil {
		mv, ok := morris.GetAIMove(g, morrisDifficultyFor(am.Difficulty), f.RNG)
		if !ok {
			break
		}
		morris.Apply(g, mv)
	}

	if g.Result != nil {
		return f.finishMorris(am)
	}
	return nil
}

// handleStubMinigameInput resolves any of the five dispatch-only board
// archetypes (everything but Morris) as an immediate forfeit on the
// first Cancel, since their play logic is out of scope beyond the
// Morris archetype (spec.md §4.8's closing note).
func (f *Facade) handleStubMinigameInput(token InputToken) []Event {
	if token.Kind != InputCancel {
		return nil
	}
	f.State.ActiveMinigame = nil
	return []Event{{Kind: EventMinigameEnded, MinigameResult: "Forfeit"}}
}

// applyMorrisSelection interprets cursor as the human's chosen board
// position against the current legal-move set, handling the from/to
// two-step for slides via Game.SelectedPosition. Reports whether a move
// was actually committed.
func (f *Facade) applyMorrisSelection(g *morris.Game, cursor int) bool {
	if g.CurrentPlayer != morris.Human || g.Result != nil {
		return false
	}
	legal := morris.LegalMoves(g)

	if g.MustCapture {
		for _, mv := range legal {
			if mv.Kind == morris.MoveCapture && mv.Pos == cursor {
				morris.Apply(g, mv)
				return true
			}
		}
		return false
	}

	if g.Phase == morris.Placing {
		for _, mv := range legal {
			if mv.Kind == morris.MovePlace && mv.Pos == cursor {
				morris.Apply(g, mv)
				return true
			}
		}
		return false
	}

	if g.SelectedPosition == nil {
		for _, mv := range legal {
			if mv.Kind == morris.MoveSlide && mv.From == cursor {
				pos := cursor
				g.SelectedPosition = &pos
				return false
			}
		}
		return false
	}

	from := *g.SelectedPosition
	if cursor == from {
		g.SelectedPosition = nil
		return false
	}
	for _, mv := range legal {
		if mv.Kind == morris.MoveSlide && mv.From == from && mv.To == cursor {
			morris.Apply(g, mv)
			g.SelectedPosition = nil
			return true
		}
	}
	return false
}

// finishMorris applies the accepted challenge's reward (win only, per
// SUPPLEMENTED FEATURES #2 — a pure grant, no level/zone reset), clears
// the active session, and emits MinigameEnded.
func (f *Facade) finishMorris(am *ActiveMinigame) []Event {
	s := f.State
	result := *am.Morris.Result
	s.ActiveMinigame = nil

	resultName := result.String()
	events := []Event{{Kind: EventMinigameEnded, MinigameResult: resultName}}

	if result == morris.ResultWin {
		reward := challenge.RewardFor(am.ChallengeType, am.Difficulty)
		f.grantReward(reward)
	}
	return events
}

// grantReward applies a challenge.Reward's components directly to state,
// per spec.md §4.7/§4.11's distinction: this is a pure grant and never
// resets level, xp, or zone progression the way perform_prestige does.
func (f *Facade) grantReward(reward challenge.Reward) {
	s := f.State
	if reward.PrestigeRanks > 0 {
		s.PrestigeRank += reward.PrestigeRanks
		s.TotalPrestigeCount += uint64(reward.PrestigeRanks)
	}
	if reward.FishingRanks > 0 {
		s.Fishing.Rank = min(s.Fishing.Rank+reward.FishingRanks, fishing.MaxRank)
		if s.Fishing.Rank >= fishing.MaxRank {
			s.Fishing.FishTowardNext = 0
		}
	}
	if reward.XPPercent > 0 {
		xpForLevel := combat.XPForNextLevel(s.CharacterLevel)
		bonusXP := (float64(xpForLevel) * float64(reward.XPPercent)) / 100.0
		combat.ApplyTickXP(&s.CharacterLevel, &s.CharacterXP, &s.Attributes, s.PrestigeRank, bonusXP, f.RNG)
	}
}
