package eway

import (
	"crypto/md5" //nolint:gosec // the legacy LogIn endpoint requires an MD5 digest
	"encoding/hex"
)

// HashPassword returns the lowercase hex MD5 digest of the plaintext password.
// This is not secure storage; it is the wire format the legacy LogIn endpoint
// demands and must match it byte for byte.
func HashPassword(plaintext string) string {
	sum := md5.Sum([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}
