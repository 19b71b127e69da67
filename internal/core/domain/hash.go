package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// PackageHash creates the deterministic identity of a package from its source, name and directory.
func PackageHash(sourceID int64, name, directory string) string {
	var builder strings.Builder
	builder.WriteString(strconv.FormatInt(sourceID, 10))
	builder.WriteString(":")
	builder.WriteString(name)
	builder.WriteString(":")
	builder.WriteString(directory)

	hash := sha256.Sum256([]byte(builder.String()))
	return hex.EncodeToString(hash[:])
}

// ShortHash returns the first twelve characters of a hash for display.
func ShortHash(hash string) string {
	if len(hash) <= 12 {
		return hash
	}
	return hash[:12]
}
