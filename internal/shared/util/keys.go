package util

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// HashUserKey maps an owner identifier (typically an email) to a stable,
// filesystem- and S3-safe storage namespace.
func HashUserKey(owner string) string {
	sum := sha256.Sum256([]byte(owner))
	return hex.EncodeToString(sum[:])
}

// SanitizeFileName rejects traversal patterns and replaces path separators
// so an uploaded name can be embedded in a storage key.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	cleaned := strings.TrimSpace(name)
	cleaned = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\':
			return '_'
		default:
			return r
		}
	}, cleaned)
	if cleaned == "" {
		return "", errors.New("invalid file name")
	}
	return cleaned, nil
}
