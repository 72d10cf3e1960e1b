// Package engineerr defines sentinel errors for the engine's true
// invariant-violation cases (spec.md §7); everything else the engine
// reports is a report/event struct, not an error.
package engineerr

import "errors"

var (
	// ErrCorruptedDungeon names a dungeon that fails its reachability
	// invariant (every room reachable from the entrance). No function in
	// the module returns it.
	ErrCorruptedDungeon = errors.New("engine: corrupted dungeon layout")

	// ErrEmptyModalQueue names an achievement modal queue drained while
	// believed non-empty. No function in the module returns it.
	ErrEmptyModalQueue = errors.New("engine: achievement modal queue unexpectedly empty")

	// ErrInvalidTransition names an operation §7 lists as a no-op on an
	// ineligible state (Prestige when CanPrestige is false, accepting a
	// challenge with no menu open). No function in the module returns it:
	// Facade.Prestige reports the no-op by returning false.
	ErrInvalidTransition = errors.New("engine: invalid state transition")

	// ErrCorruptedSave is returned by internal/persist's Load when a save
	// payload fails to deserialize; Load performs no other integrity check.
	ErrCorruptedSave = errors.New("engine: corrupted save payload")
)
