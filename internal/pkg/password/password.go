package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"
)

var ErrInvalidHash = errors.New("reference hash must be hex-encoded SHA-256")

// Hash returns the hex-encoded SHA-256 digest of a password. The admin
// credential is distributed as this digest through configuration.
func Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Verify compares a supplied password against a hex-encoded SHA-256
// reference hash in constant time.
func Verify(referenceHash, password string) (bool, error) {
	want, err := hex.DecodeString(strings.ToLower(referenceHash))
	if err != nil || len(want) != sha256.Size {
		return false, ErrInvalidHash
	}
	got := sha256.Sum256([]byte(password))
	return subtle.ConstantTimeCompare(want, got[:]) == 1, nil
}
