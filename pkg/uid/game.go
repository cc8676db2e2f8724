package uid

import (
	"crypto/rand"
	"encoding/hex"
)

// GameIDLength is the length in characters of IDs from GenerateGameID.
const GameIDLength = 16

// GenerateGameID returns a random hex identifier for a game session.
func GenerateGameID() string {
	bytes := make([]byte, GameIDLength/2)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
