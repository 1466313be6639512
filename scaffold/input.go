package scaffold

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ParseInput splits user input of the form "optional/path/slug" into the
// directory suffix and the slug. Everything before the last "/" is the
// suffix.
func ParseInput(value string) (suffix, slug string, err error) {
	idx := strings.LastIndex(value, "/")
	if idx >= 0 {
		suffix, slug = value[:idx], value[idx+1:]
	} else {
		slug = value
	}

	if slug == "" {
		return "", "", &Error{
			Kind:    InvalidSlug,
			Message: fmt.Sprintf("input %q does not end in a name", value),
		}
	}
	return suffix, slug, nil
}

// segments returns the non-empty "/"-separated parts of suffix.
func segments(suffix string) []string {
	var segs []string
	for _, s := range strings.Split(suffix, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// TargetDir resolves the directory the files for suffix are written to.
func TargetDir(baseDir, suffix string) string {
	return filepath.Join(append([]string{baseDir}, segments(suffix)...)...)
}
