package core

import (
	"github.com/udisondev/la2go/internal/engine/offline"
	"github.com/udisondev/la2go/internal/engine/prestige"
)

// CanPrestige reports whether the current character satisfies §4.11's
// eligibility rule.
func (f *Facade) CanPrestige() bool {
	s := f.State
	return prestige.CanPrestige(s.CharacterLevel, s.PrestigeRank, &s.ZoneProgression)
}

// Prestige performs §4.11's seven-step reset if eligible, healing to the
// freshly recomputed max HP and firing on_prestige. Reports whether the
// reset actually happened (InvalidTransition per §7 otherwise).
func (f *Facade) Prestige() bool {
	s := f.State
	if !f.CanPrestige() {
		return false
	}

	result := prestige.Perform(&s.CharacterLevel, &s.CharacterXP, &s.Attributes, &s.PrestigeRank, &s.TotalPrestigeCount, &s.ZoneProgression)

	derived := s.Derived()
	s.Combat.PlayerMaxHP = derived.MaxHP
	s.Combat.PlayerCurrentHP = derived.MaxHP
	s.Combat.CurrentEnemy = nil

	s.Achievements.OnPrestige(s.CharacterName, result.NewRank, 0)
	return true
}

// ProcessOfflineProgression computes and applies the offline XP award
// since LastSaveTimeUnix, then unconditionally advances LastSaveTimeUnix
// to nowUnixSeconds — even on a zero-gain report, per §4.10's
// double-counting guard.
func (f *Facade) ProcessOfflineProgression(nowUnixSeconds int64, haven HavenBonuses) offline.Report {
	s := f.State
	elapsed := nowUnixSeconds - s.LastSaveTimeUnix

	report := offline.Apply(
		elapsed,
		s.PrestigeRank,
		s.WisModifier(),
		s.ChaModifier(),
		haven.OfflineXPPercent,
		&s.CharacterLevel,
		&s.CharacterXP,
		&s.Attributes,
		f.RNG,
	)

	s.LastSaveTimeUnix = nowUnixSeconds
	return report
}
