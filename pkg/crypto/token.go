package crypto

import (
	"crypto/rand"
	"encoding/base64"
)

const (
	DefaultTokenLength = 32 // 256 bits
)

// GenerateToken returns an opaque, URL-safe session token. The token
// carries no claims and no expiry; possession is the whole contract.
func GenerateToken(byteLength ...int) (string, error) {
	length := DefaultTokenLength
	if len(byteLength) > 0 && byteLength[0] > 0 {
		length = byteLength[0]
	}

	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
