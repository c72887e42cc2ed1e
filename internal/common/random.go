package common

import "crypto/rand"

// GenerateRandByteArray returns n cryptographically random bytes.
// A failure of the OS entropy source leaves no safe way to continue,
// so the error is escalated as a panic.
func GenerateRandByteArray(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}
