package utils

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the bcrypt input limit.
const MaxPasswordBytes = 72

var (
	dummyMu     sync.Mutex
	dummyHashes = map[int][]byte{}
)

func normalizeCost(cost int) int {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}

// dummyHash returns a hash with the given cost, generated once per cost.
func dummyHash(cost int) []byte {
	cost = normalizeCost(cost)
	dummyMu.Lock()
	defer dummyMu.Unlock()
	hash, ok := dummyHashes[cost]
	if !ok {
		hash, _ = bcrypt.GenerateFromPassword([]byte("dummy_password_for_timing"), cost)
		dummyHashes[cost] = hash
	}
	return hash
}

// HashPassword returns a salted bcrypt hash. Out-of-range costs fall back to the default.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), normalizeCost(cost))
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CheckPasswordTimingSafe compares against a dummy hash of the same cost when hash
// is empty, so a missing user costs the same as a wrong password.
func CheckPasswordTimingSafe(password, hash string, cost int) bool {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(dummyHash(cost), []byte(password))
		return false
	}
	return CheckPasswordHash(password, hash)
}
