package domain

import (
	"fmt"
	"strings"
	"time"
)

// DeriveStorageKey builds the object-store key for a reserved upload:
// {uploads|processed}/{principalID}/{unixMilli}-{sanitized fileName}.
// The millisecond component keeps repeated uploads of the same
// filename from colliding; the database unique constraint on
// storage_key is the hard backstop.
func DeriveStorageKey(principalID, fileName string, kind FileKind, at time.Time) string {
	prefix := "uploads"
	if kind == FileKindProcessed {
		prefix = "processed"
	}
	return fmt.Sprintf("%s/%s/%d-%s", prefix, principalID, at.UnixMilli(), SanitizeFileName(fileName))
}

// SanitizeFileName replaces every character outside [A-Za-z0-9.-]
// with an underscore so client-supplied names are safe to embed in
// object keys
func SanitizeFileName(fileName string) string {
	var b strings.Builder
	b.Grow(len(fileName))
	for _, r := range fileName {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
