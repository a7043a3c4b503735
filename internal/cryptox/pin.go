// Package cryptox hashes and verifies PINs.
//
// PINs are never kept in memory in plaintext longer than needed; the gate
// stores only the bcrypt hash produced here.
package cryptox

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPinCost is the bcrypt cost used when none is configured.
const DefaultPinCost = bcrypt.DefaultCost

// HashPin returns the bcrypt hash of pin at the given cost. Costs below
// bcrypt.MinCost are raised to DefaultPinCost by bcrypt itself.
func HashPin(pin []byte, cost int) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword(pin, cost)
	if err != nil {
		return nil, fmt.Errorf("hash pin: %w", err)
	}
	return hash, nil
}

// ComparePin reports whether candidate is the PIN that produced hash.
// A malformed hash never matches.
func ComparePin(hash, candidate []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, candidate) == nil
}
