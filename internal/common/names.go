package common

import (
	"path/filepath"
	"strings"
)

// UnknownStr is the String() fallback for out-of-range enum values.
const UnknownStr = "unknown"

// BaseName returns the file name of p without directory and extension.
// Both '/' and '\' are treated as separators since resource paths may come
// from Windows project files.
func BaseName(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	if i := strings.LastIndex(p, "/"); i >= 0 {
		p = p[i+1:]
	}

	return strings.TrimSuffix(p, filepath.Ext(p))
}
