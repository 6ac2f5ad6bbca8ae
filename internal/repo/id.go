package repo

import (
	"crypto/rand"
	"encoding/hex"
)

// newID returns a 16-character lowercase hex identifier built from 8 random
// bytes. Collisions are not checked for.
func newID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("repo: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(b[:])
}
