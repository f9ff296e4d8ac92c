package id

import (
	"crypto/rand"
	"encoding/hex"
)

// Generator creates opaque identifiers for sessions.
type Generator interface {
	New() string
}

// RandomHex yields 32 hex characters. Ids are compared, never parsed.
type RandomHex struct{}

func (RandomHex) New() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
