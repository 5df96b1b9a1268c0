// Package naming derives Go identifiers from raw path segments.
//
// Two derivations exist, both pure and deterministic, and they are used
// consistently wherever a segment appears:
//   - FieldIdent: the lower snake_case struct field identifier
//   - TypeFragment: the UpperCamelCase piece appended to the parent type
//     name to form a nested record's type name
package naming

import (
	"strings"
	"unicode/utf8"
)

// FieldIdent converts a raw segment to its struct field identifier:
// lower-cased, with '-' replaced by '_'. Other punctuation passes through
// verbatim; callers are expected to supply segments that normalize to valid
// identifiers.
func FieldIdent(segment string) string {
	return strings.ReplaceAll(strings.ToLower(segment), "-", "_")
}

// TypeFragment converts a raw segment to its type name fragment. '-' is
// treated like '_'; each '_'-delimited word gets its first rune upper-cased
// and the remainder lower-cased; words that normalize to empty (consecutive
// separators) contribute nothing.
//
// Examples:
//   - "database" -> "Database"
//   - "REDIS-URL" -> "RedisUrl"
//   - "api__key" -> "ApiKey"
func TypeFragment(segment string) string {
	words := strings.Split(strings.ReplaceAll(segment, "-", "_"), "_")

	var sb strings.Builder

	for _, word := range words {
		if word == "" {
			continue
		}

		_, size := utf8.DecodeRuneInString(word)
		sb.WriteString(strings.ToUpper(word[:size]))
		sb.WriteString(strings.ToLower(word[size:]))
	}

	return sb.String()
}
