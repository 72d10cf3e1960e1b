// Package persist is the narrow [])byte boundary spec.md §6 draws around
// the core: it never touches core.Facade, only core.GameState, and the
// core package never imports this one. Grounded on the teacher's own
// separation between its model layer and its storage layer
// (internal/model held no persistence code, internal/db did).
package persist

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/udisondev/la2go/internal/engine/core"
	"github.com/udisondev/la2go/internal/engineerr"
)

// Serialize encodes a GameState into its on-disk/on-wire save payload.
func Serialize(state *core.GameState) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(state); err != nil {
		return nil, fmt.Errorf("persist: encode game state: %w", err)
	}
	return buf.Bytes(), nil
}

// Load decodes a save payload back into a GameState.
func Load(payload []byte) (*core.GameState, error) {
	var state core.GameState
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&state); err != nil {
		return nil, fmt.Errorf("%w: %v", engineerr.ErrCorruptedSave, err)
	}
	return &state, nil
}

// HashPassphrase bcrypt-hashes a save-file integrity passphrase for local
// profile protection — an ambient, persistence-adjacent concern §6
// delegates to "the persistence wrapper" rather than the core.
func HashPassphrase(passphrase string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(passphrase), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("persist: hash passphrase: %w", err)
	}
	return string(hash), nil
}

// VerifyPassphrase reports whether passphrase matches a hash produced by
// HashPassphrase.
func VerifyPassphrase(hash, passphrase string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(passphrase)) == nil
}
