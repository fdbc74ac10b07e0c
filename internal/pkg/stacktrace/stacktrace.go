// Package stacktrace trims goroutine stack dumps down to frames of this
// module so panic logs stay readable.
package stacktrace

import "strings"

// InternalPaths returns the "internal/...go:line" locations found in a raw
// stack as produced by runtime/debug.Stack, outermost call last.
func InternalPaths(stack []byte) []string {
	var paths []string
	for line := range strings.Lines(string(stack)) {
		line = strings.TrimSpace(line)

		idx := strings.Index(line, "/internal/")
		if idx < 0 || !strings.Contains(line[idx:], ".go:") {
			continue
		}

		loc, _, _ := strings.Cut(line[idx+1:], " ")
		paths = append(paths, loc)
	}
	return paths
}
