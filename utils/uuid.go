package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// ShortID returns a compact 8-character handle suitable for display,
// derived from a fresh UUID. Used for public account ids.
func ShortID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
