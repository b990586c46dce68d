package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"
)

// GenerateObjectPath builds a unique storage path for an uploaded file,
// keeping the original extension: uploads/<unix-millis>-<random>.<ext>
func GenerateObjectPath(filename string) (string, error) {
	bytes := make([]byte, 6)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("uploads/%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(bytes), ext), nil
}

// ExtractObjectPath recovers the storage path from a public file URL, or ""
// when the URL was not produced by our storage (external web links).
func ExtractObjectPath(fileURL string) string {
	idx := strings.Index(fileURL, "/uploads/")
	if idx < 0 {
		return ""
	}
	return strings.TrimPrefix(fileURL[idx:], "/")
}
