package variant

import (
	"net/url"
	"regexp"
	"strings"
)

// fileNamePattern matches a path segment that looks like a file name:
// a dot followed by an alphanumeric extension.
var fileNamePattern = regexp.MustCompile(`\.[A-Za-z0-9]+$`)

// looksLikeFileName reports whether a trailing URL segment should be
// treated as a file name rather than a directory.
func looksLikeFileName(segment string) bool {
	return fileNamePattern.MatchString(segment)
}

// splitRelative normalizes a relative-import-style path into its net
// leading back-navigation count and remaining forward segments.
//
// Only leading, uncancelled ".." segments count as back-navigation:
// "x/../y" resolves forward to "y" with zero back-steps, while
// "x/../../y" cancels down to one back-step. "." and empty segments are
// dropped.
func splitRelative(p string) (back int, forward []string) {
	segments := strings.Split(p, "/")
	forward = make([]string, 0, len(segments))
	for _, s := range segments {
		switch s {
		case "", ".":
		case "..":
			if len(forward) > 0 {
				forward = forward[:len(forward)-1]
			} else {
				back++
			}
		default:
			forward = append(forward, s)
		}
	}
	return back, forward
}

// relativeKey reconstructs a canonical relative-import key from a
// back-navigation count and forward segments. It is the inverse of
// splitRelative up to normalization.
func relativeKey(back int, forward []string) string {
	return strings.Repeat("../", back) + strings.Join(forward, "/")
}

// syntheticDirectories generates depth placeholder directory segments,
// "a" through "z" by depth, used when no real directory structure
// exists to satisfy required back-navigation. The first segment is
// always "a".
func syntheticDirectories(depth int) []string {
	if depth <= 0 {
		return nil
	}
	dirs := make([]string, depth)
	for i := range dirs {
		dirs[i] = string(rune('a' + i))
	}
	return dirs
}

// splitDirectories splits a directory-like string ("src/", "src/app")
// into its non-empty segments.
func splitDirectories(dir string) []string {
	_, segments := splitRelative(dir)
	return segments
}

// parseOriginURL extracts the directory segments and trailing file name
// from an absolute origin URL. ok is false when the value does not
// parse as an absolute URL, which callers treat as "no URL" rather than
// an error.
func parseOriginURL(raw string) (dir []string, base string, ok bool) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return nil, "", false
	}

	for _, s := range strings.Split(u.Path, "/") {
		if s != "" && s != "." {
			dir = append(dir, s)
		}
	}
	if n := len(dir); n > 0 && looksLikeFileName(dir[n-1]) {
		base = dir[n-1]
		dir = dir[:n-1]
	}
	return dir, base, true
}

// joinSegments assembles path segments and an optional trailing file
// name into a flat virtual path.
func joinSegments(dirs []string, fileName string) string {
	parts := make([]string, 0, len(dirs)+1)
	parts = append(parts, dirs...)
	if fileName != "" {
		parts = append(parts, fileName)
	}
	return strings.Join(parts, "/")
}
