package internal

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentHash returns the hex SHA-256 of file content. It keys the
// persistent translation cache so unchanged files skip the model service
// on reruns.
func ContentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// SanitizeRunName creates a safe directory name component from a string
func SanitizeRunName(s string) string {
	result := ""
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' {
			result += string(r)
		} else {
			result += "_"
		}
	}
	return result
}

// isAlphaNumeric checks if a rune is alphanumeric
func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
