// Package pathspec handles the input list of dotted variable names:
// splitting names into segments and loading name lists from manifest files.
package pathspec

import "strings"

// Split returns the ordered raw segments of a dotted name.
// An empty name yields nil; callers skip such entries instead of inserting
// them. No validation of segment content is performed here - segments carry
// whatever characters the caller wrote, and normalization happens later.
func Split(path string) []string {
	if path == "" {
		return nil
	}

	return strings.Split(path, ".")
}
