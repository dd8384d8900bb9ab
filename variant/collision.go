package variant

import "sort"

// MainFileKey is the pseudo-key representing the main file in collision
// groups, distinguishable from any extra-file key, which is never
// empty.
const MainFileKey = ""

// Collisions reports groups of files in a resolved variant that share
// the same flat output path. Path assignment itself never errors on a
// collision (two unrelated "../utils.ts" dependencies can legitimately
// flatten onto one path); callers that need stronger guarantees check
// explicitly.
//
// Each group contains the extra-file keys that collided, sorted, with
// MainFileKey first when the main file is involved. Groups are ordered
// by their shared path.
func Collisions(resolved WithPaths) [][]string {
	byPath := make(map[string][]string)
	if resolved.Path != "" {
		byPath[resolved.Path] = append(byPath[resolved.Path], MainFileKey)
	}
	for key, file := range resolved.ExtraFiles {
		byPath[file.Path] = append(byPath[file.Path], key)
	}

	paths := make([]string, 0, len(byPath))
	for path, keys := range byPath {
		if len(keys) > 1 {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)

	groups := make([][]string, 0, len(paths))
	for _, path := range paths {
		keys := byPath[path]
		sort.Strings(keys)
		groups = append(groups, keys)
	}
	return groups
}
