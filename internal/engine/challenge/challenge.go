// Package challenge implements the discovery roll, weighted challenge
// type pick, and pending-challenge menu from spec.md §4.7.
//
// Grounded on original_source/src/challenges/menu.rs (the current
// six-entry CHALLENGE_TABLE, superseding the legacy three-entry table in
// src/challenge_menu.rs) for the weighted distribution, reward table,
// flavor text, and menu navigation state machine.
package challenge

import (
	"fmt"

	"github.com/udisondev/la2go/internal/constants"
	"github.com/udisondev/la2go/internal/rng"
)

// Type identifies a minigame challenge.
type Type int

const (
	Minesweeper Type = iota
	Rune
	Gomoku
	Morris
	Chess
	Go
)

func (t Type) String() string {
	switch t {
	case Minesweeper:
		return "Minesweeper"
	case Rune:
		return "Rune"
	case Gomoku:
		return "Gomoku"
	case Morris:
		return "Morris"
	case Chess:
		return "Chess"
	case Go:
		return "Go"
	default:
		return fmt.Sprintf("UnknownChallengeType(%d)", int(t))
	}
}

// Icon returns the glyph shown for t in the challenge menu.
func (t Type) Icon() string {
	switch t {
	case Chess:
		return "♟"
	case Morris:
		return "○"
	case Gomoku:
		return "◎"
	case Minesweeper:
		return "⚠"
	case Rune:
		return "ᚱ"
	case Go:
		return "◉"
	default:
		return "?"
	}
}

// DiscoveryFlavor returns the narrative line shown when t is discovered.
func (t Type) DiscoveryFlavor() string {
	switch t {
	case Chess:
		return "A mysterious figure steps from the shadows..."
	case Morris:
		return "A cloaked stranger approaches with a weathered board..."
	case Gomoku:
		return "A wandering strategist places a worn board before you..."
	case Minesweeper:
		return "A weathered scout beckons you toward a ruined corridor..."
	case Rune:
		return "A glowing stone tablet materializes before you..."
	case Go:
		return "An ancient master beckons from beneath a gnarled tree..."
	default:
		return ""
	}
}

// titles and descriptions are the flavor text shown in the menu's detail
// view, per create_challenge() in the original.
var titles = map[Type]string{
	Chess:       "Chess: The Hooded Challenger",
	Morris:      "Morris: The Millkeeper's Game",
	Gomoku:      "Gomoku: Five Stones",
	Minesweeper: "Minesweeper: Trap Detection",
	Rune:        "Rune Deciphering: Ancient Tablet",
	Go:          "Go: Territory Control",
}

var descriptions = map[Type]string{
	Chess: "In the corner of a dimly lit tavern, a hooded figure sits motionless before a chess board. " +
		"The pieces seem to shimmer with an otherworldly glow. As you approach, they speak without " +
		"looking up: \"I've been waiting for a worthy opponent. The stakes? Your wit against mine. Do you dare?\"",
	Morris: "An ancient sage materializes from the morning mist, carrying a weathered board etched with " +
		"concentric squares. \"The game of mills,\" they whisper, placing nine polished stones before you. " +
		"\"Form three in a row to capture. Reduce me to two pieces, and victory is yours. But beware—I've " +
		"played this game for centuries.\"",
	Gomoku: "A wandering strategist blocks your path, unfurling a grid-lined cloth upon a flat stone. " +
		"\"They call this the hand-talk game,\" she says, placing black and white stones in her palms. " +
		"\"First to align five stones claims victory. The rules are simple, but mastery takes a lifetime. " +
		"Shall we test your strategic mind?\"",
	Minesweeper: "A weathered scout beckons you toward a ruined corridor. 'The floor's rigged with pressure " +
		"plates,' she warns, pulling out a worn map. 'One wrong step and...' She makes an explosive gesture. " +
		"'Help me chart the safe path. Probe carefully—the numbers tell you how many traps lurk nearby.'",
	Rune: "You stumble upon a stone tablet covered in glowing runes. A spectral voice echoes: 'Decipher the " +
		"hidden sequence, mortal. Each attempt reveals clues—exact matches, misplaced symbols, or false " +
		"leads. Prove your logic worthy of ancient knowledge.'",
	Go: "An ancient master beckons from beneath a gnarled tree, a wooden board resting on a flat stone before " +
		"them. Nine lines cross nine lines, forming a grid of intersections. 'Black and white stones,' they " +
		"say, 'placed one by one. Surround territory, capture enemies. The simplest rules hide the deepest " +
		"strategy. Shall we play?'",
}

// Difficulty is the player's chosen challenge difficulty, selected in the
// menu's detail view before accepting.
type Difficulty int

const (
	Novice Difficulty = iota
	Apprentice
	Journeyman
	Master
)

// NumDifficulties is the count of selectable difficulty tiers.
const NumDifficulties = 4

// DifficultyFromIndex clamps idx into a valid Difficulty.
func DifficultyFromIndex(idx int) Difficulty {
	switch {
	case idx <= int(Novice):
		return Novice
	case idx >= int(Master):
		return Master
	default:
		return Difficulty(idx)
	}
}

func (d Difficulty) String() string {
	switch d {
	case Novice:
		return "Novice"
	case Apprentice:
		return "Apprentice"
	case Journeyman:
		return "Journeyman"
	case Master:
		return "Master"
	default:
		return fmt.Sprintf("UnknownDifficulty(%d)", int(d))
	}
}

// Reward is the structured prize for winning a challenge at a given
// difficulty; Description renders it for display, in Prestige -> Fishing
// -> XP order.
type Reward struct {
	PrestigeRanks uint32
	XPPercent     uint32
	FishingRanks  uint32
}

// Description renders r as display text, e.g. "Win: +1 Prestige Rank, +50% level XP".
func (r Reward) Description() string {
	var parts []string
	switch {
	case r.PrestigeRanks == 1:
		parts = append(parts, "+1 Prestige Rank")
	case r.PrestigeRanks > 1:
		parts = append(parts, fmt.Sprintf("+%d Prestige Ranks", r.PrestigeRanks))
	}
	switch {
	case r.FishingRanks == 1:
		parts = append(parts, "+1 Fish Rank")
	case r.FishingRanks > 1:
		parts = append(parts, fmt.Sprintf("+%d Fish Ranks", r.FishingRanks))
	}
	if r.XPPercent > 0 {
		parts = append(parts, fmt.Sprintf("+%d%% level XP", r.XPPercent))
	}
	if len(parts) == 0 {
		return "No reward"
	}
	out := "Win: "
	for i, p := range parts {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}

// RewardFor returns the win reward for challenge type t at difficulty d.
func RewardFor(t Type, d Difficulty) Reward {
	switch t {
	case Chess, Go:
		ranks := map[Difficulty]uint32{Novice: 1, Apprentice: 2, Journeyman: 3, Master: 5}
		return Reward{PrestigeRanks: ranks[d]}
	case Morris:
		pct := map[Difficulty]uint32{Novice: 50, Apprentice: 100, Journeyman: 150, Master: 200}
		r := Reward{XPPercent: pct[d]}
		if d == Master {
			r.FishingRanks = 1
		}
		return r
	case Gomoku:
		switch d {
		case Novice:
			return Reward{XPPercent: 75}
		case Apprentice:
			return Reward{XPPercent: 100}
		case Journeyman:
			return Reward{PrestigeRanks: 1, XPPercent: 50}
		default:
			return Reward{PrestigeRanks: 2, XPPercent: 100}
		}
	case Minesweeper:
		switch d {
		case Novice:
			return Reward{XPPercent: 50}
		case Apprentice:
			return Reward{XPPercent: 75}
		case Journeyman:
			return Reward{XPPercent: 100}
		default:
			return Reward{PrestigeRanks: 1, XPPercent: 200}
		}
	case Rune:
		switch d {
		case Novice:
			return Reward{XPPercent: 25}
		case Apprentice:
			return Reward{XPPercent: 50}
		case Journeyman:
			return Reward{FishingRanks: 1, XPPercent: 75}
		default:
			return Reward{PrestigeRanks: 1, FishingRanks: 2}
		}
	default:
		return Reward{}
	}
}

type weightedEntry struct {
	challengeType Type
	weight        uint32
}

// table is the weighted distribution rolled once a discovery succeeds.
// Puzzles (Minesweeper, Rune) are common; strategy games (Chess, Go) rare.
var table = []weightedEntry{
	{Minesweeper, 30},
	{Rune, 25},
	{Gomoku, 20},
	{Morris, 15},
	{Chess, 10},
	{Go, 10},
}

// PendingChallenge is one entry awaiting the player's accept/decline
// decision.
type PendingChallenge struct {
	Type        Type
	Title       string
	Icon        string
	Description string
}

func newPendingChallenge(t Type) PendingChallenge {
	return PendingChallenge{Type: t, Title: titles[t], Icon: t.Icon(), Description: descriptions[t]}
}

// Menu is the challenge-menu state (spec.md §3 "Challenge Menu").
type Menu struct {
	Challenges         []PendingChallenge
	IsOpen             bool
	SelectedIndex      int
	ViewingDetail      bool
	SelectedDifficulty int
}

// New returns an empty, closed menu.
func New() Menu {
	return Menu{}
}

// HasChallenge reports whether a pending challenge of type t exists.
func (m *Menu) HasChallenge(t Type) bool {
	for _, c := range m.Challenges {
		if c.Type == t {
			return true
		}
	}
	return false
}

func (m *Menu) addChallenge(c PendingChallenge) {
	m.Challenges = append(m.Challenges, c)
}

// Open opens the menu at its first entry, outside the detail view.
func (m *Menu) Open() {
	m.IsOpen = true
	m.SelectedIndex = 0
	m.ViewingDetail = false
	m.SelectedDifficulty = 0
}

// Close closes the menu entirely, discarding detail-view state.
func (m *Menu) Close() {
	m.IsOpen = false
	m.ViewingDetail = false
}

// OpenDetail enters the detail view for the selected challenge, resetting
// the difficulty cursor, provided at least one challenge is pending.
func (m *Menu) OpenDetail() {
	if len(m.Challenges) == 0 {
		return
	}
	m.ViewingDetail = true
	m.SelectedDifficulty = 0
}

// CloseDetail exits the detail view back to the list.
func (m *Menu) CloseDetail() {
	m.ViewingDetail = false
	m.SelectedDifficulty = 0
}

// NavigateUp moves the difficulty cursor up in detail view, else the list
// selection up.
func (m *Menu) NavigateUp() {
	if m.ViewingDetail {
		if m.SelectedDifficulty > 0 {
			m.SelectedDifficulty--
		}
		return
	}
	if m.SelectedIndex > 0 {
		m.SelectedIndex--
	}
}

// NavigateDown moves the difficulty cursor down in detail view, else the
// list selection down.
func (m *Menu) NavigateDown() {
	if m.ViewingDetail {
		if m.SelectedDifficulty+1 < NumDifficulties {
			m.SelectedDifficulty++
		}
		return
	}
	if m.SelectedIndex+1 < len(m.Challenges) {
		m.SelectedIndex++
	}
}

// TakeSelected removes and returns the currently selected challenge.
func (m *Menu) TakeSelected() (PendingChallenge, bool) {
	if len(m.Challenges) == 0 {
		return PendingChallenge{}, false
	}
	c := m.Challenges[m.SelectedIndex]
	m.Challenges = append(m.Challenges[:m.SelectedIndex], m.Challenges[m.SelectedIndex+1:]...)
	if m.SelectedIndex > 0 && m.SelectedIndex >= len(m.Challenges) {
		m.SelectedIndex = len(m.Challenges) - 1
	}
	return c, true
}

// AcceptSelected removes the selected challenge and returns it along with
// the difficulty chosen in the detail view, ready for minigame dispatch.
func (m *Menu) AcceptSelected() (PendingChallenge, Difficulty, bool) {
	difficulty := DifficultyFromIndex(m.SelectedDifficulty)
	c, ok := m.TakeSelected()
	return c, difficulty, ok
}

// DeclineSelected removes the selected challenge, closes the detail view,
// and closes the menu entirely once it empties.
func (m *Menu) DeclineSelected() {
	m.TakeSelected()
	m.CloseDetail()
	if len(m.Challenges) == 0 {
		m.Close()
	}
}

// CanDiscover reports spec.md §4.7's gating: challenge discovery only
// rolls at prestige rank 1+, and never while a dungeon run, fishing
// session, or active minigame is in progress.
func CanDiscover(prestigeRank uint32, inDungeon, inFishing, inMinigame bool) bool {
	return prestigeRank >= 1 && !inDungeon && !inFishing && !inMinigame
}

// RollDiscovery implements spec.md §4.7's Bernoulli discovery roll:
// probability CHALLENGE_DISCOVERY_CHANCE · (1 + haven_discovery%/100).
// On success, draws one Type by weight, excluding types already pending,
// appends a PendingChallenge to m, and returns it. Returns found=false on
// a failed roll or if every type is already pending.
func RollDiscovery(havenDiscoveryPercent float64, m *Menu, r *rng.Source) (Type, bool) {
	chance := constants.ChallengeDiscoveryChance * (1.0 + havenDiscoveryPercent/100.0)
	if !r.Bernoulli(chance) {
		return 0, false
	}

	var eligible []weightedEntry
	for _, e := range table {
		if m.HasChallenge(e.challengeType) {
			continue
		}
		eligible = append(eligible, e)
	}
	if len(eligible) == 0 {
		return 0, false
	}

	weights := make([]float64, len(eligible))
	for i, e := range eligible {
		weights[i] = float64(e.weight)
	}
	idx := r.WeightedPick(weights)
	t := eligible[idx].challengeType
	m.addChallenge(newPendingChallenge(t))
	return t, true
}
