// Package auth implements the two credentials PlanIt relies on: salted
// password digests and signed session tokens.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"

	"github.com/planitapp/planit/internal/common"
)

const (
	// saltSize is the number of random bytes drawn per password.
	saltSize = 16
	// kdfIterations is the PBKDF2 cost factor. Changing it invalidates every
	// stored digest, so treat it as part of the storage format.
	kdfIterations = 310000
	// digestSize is the derived key length in bytes.
	digestSize = 32
)

// HashPassword derives a PBKDF2-SHA256 digest from the password under a fresh
// random salt. Salt and digest come back hex-encoded, ready for persistence.
func HashPassword(password string) (salt, digest string) {
	salt = hex.EncodeToString(common.GenerateRandByteArray(saltSize))
	digest = hex.EncodeToString(derive(password, salt))
	return salt, digest
}

// VerifyPassword recomputes the digest for the candidate password with the
// stored salt and compares it to the stored digest in constant time.
func VerifyPassword(password, salt, storedDigest string) bool {
	stored, err := hex.DecodeString(storedDigest)
	if err != nil {
		return false
	}
	candidate := derive(password, salt)
	return subtle.ConstantTimeCompare(candidate, stored) == 1
}

// derive feeds the hex form of the salt into the KDF, matching how the
// digests in existing databases were produced.
func derive(password, salt string) []byte {
	return pbkdf2.Key([]byte(password), []byte(salt), kdfIterations, digestSize, sha256.New)
}
