package skills

import "strings"

// Split parses a comma-separated skills string into clean tokens. Tokens are
// trimmed of surrounding whitespace, kept in their original order, and
// dropped entirely when trimming leaves nothing.
func Split(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if token := strings.TrimSpace(part); token != "" {
			tokens = append(tokens, token)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// Join renders tokens as a single comma-separated line.
func Join(tokens []string) string {
	return strings.Join(tokens, ", ")
}
