package core

import "fmt"

// InputTokenKind is the closed set of classified input actions the facade
// accepts, UI-agnostic per spec.md §5: "One input event channel producing
// classified tokens".
type InputTokenKind int

const (
	InputUp InputTokenKind = iota
	InputDown
	InputLeft
	InputRight
	InputSelect
	InputCancel
	InputQuit
	InputPrestige
	InputHavenToggle
	InputAchievementsToggle
	InputTabToggleChallenges
	InputDebugToggle
	InputDifficultyIndex
	InputOther
)

func (k InputTokenKind) String() string {
	switch k {
	case InputUp:
		return "Up"
	case InputDown:
		return "Down"
	case InputLeft:
		return "Left"
	case InputRight:
		return "Right"
	case InputSelect:
		return "Select"
	case InputCancel:
		return "Cancel"
	case InputQuit:
		return "Quit"
	case InputPrestige:
		return "Prestige"
	case InputHavenToggle:
		return "HavenToggle"
	case InputAchievementsToggle:
		return "AchievementsToggle"
	case InputTabToggleChallenges:
		return "TabToggleChallenges"
	case InputDebugToggle:
		return "DebugToggle"
	case InputDifficultyIndex:
		return "DifficultyIndex"
	case InputOther:
		return "Other"
	default:
		return fmt.Sprintf("UnknownInputToken(%d)", int(k))
	}
}

// InputToken is one classified input action; DifficultyIndex carries its
// index in Index, Other carries the raw rune in Rune.
type InputToken struct {
	Kind  InputTokenKind
	Index uint8
	Rune  rune
}
