package util

import (
	"errors"
	"strings"
)

var errBadFileName = errors.New("invalid file name")

var separatorReplacer = strings.NewReplacer("/", "_", "\\", "_")

// SanitizeFileName normalizes a download file name: path separators become
// underscores; traversal sequences and blank names are rejected.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errBadFileName
	}
	cleaned := separatorReplacer.Replace(strings.TrimSpace(name))
	if cleaned == "" {
		return "", errBadFileName
	}
	return cleaned, nil
}
