package helper

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateCode returns a URL-safe random code of the given length.
// Used for meeting/instructor codes; collisions are guarded by the
// unique constraints on the columns.
func GenerateCode(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		panic("crypto/rand unavailable: " + err.Error())
	}
	s := base64.RawURLEncoding.EncodeToString(buf)
	if len(s) > length {
		s = s[:length]
	}
	return s
}

// GenerateAPIKey returns an opaque bearer token with the rmh_ prefix.
func GenerateAPIKey() string {
	return "rmh_" + GenerateCode(43) // 32 bytes of entropy once encoded
}
