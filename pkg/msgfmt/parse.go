package msgfmt

import "strings"

// matchingBrace returns the index of the '}' that closes the '{' at open,
// skipping over nested brace pairs. It returns -1 when the string ends before
// the brace is closed. The caller guarantees s[open] == '{'.
func matchingBrace(s string, open int) int {
	depth := 0
	for i := open + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return i
			}
			depth--
		}
	}
	return -1
}

// splitArgs splits the interior of a placeholder block on sep into at most
// maxParts parts, each trimmed of surrounding whitespace. Once a single part
// remains to be produced, the rest of the string is taken verbatim, so a
// format argument containing sep is never subdivided. Empty input yields no
// parts.
func splitArgs(s string, sep byte, maxParts int) []string {
	if s == "" || maxParts < 1 {
		return nil
	}

	parts := make([]string, 0, maxParts)
	for len(parts) < maxParts-1 {
		before, after, found := strings.Cut(s, string(sep))
		if !found {
			break
		}
		parts = append(parts, strings.TrimSpace(before))
		s = after
	}

	return append(parts, strings.TrimSpace(s))
}
