// Package stacktrace trims runtime stack dumps down to this module's frames.
package stacktrace

import "strings"

// InternalPaths returns "internal/<pkg>/<file>.go:<line>" entries for every
// frame under an internal/ directory, in stack order.
func InternalPaths(stack []byte) []string {
	lines := strings.Split(string(stack), "\n")
	paths := make([]string, 0, len(lines)/2)

	for _, line := range lines {
		line = strings.TrimSpace(line)

		idx := strings.Index(line, ".go:")
		if idx == -1 {
			continue
		}

		// file lines look like "/src/venture/internal/pkg/x.go:42 +0x1d"
		loc, _, _ := strings.Cut(line, " ")
		i := strings.Index(loc, "/internal/")
		if i == -1 {
			continue
		}
		paths = append(paths, loc[i+1:])
	}

	return paths
}
