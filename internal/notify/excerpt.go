package notify

import (
	"strings"
)

// ExcerptLimit is the maximum excerpt length in characters
const ExcerptLimit = 240

// Excerpt builds the article excerpt used in notification emails. The text
// is trimmed of surrounding whitespace; anything longer than ExcerptLimit is
// cut back to the last whole-word boundary and marked with an ellipsis.
func Excerpt(text string) string {
	cleaned := strings.TrimSpace(text)
	runes := []rune(cleaned)
	if len(runes) <= ExcerptLimit {
		return cleaned
	}

	prefix := string(runes[:ExcerptLimit])
	if i := strings.LastIndex(prefix, " "); i > 0 {
		prefix = prefix[:i]
	}
	return prefix + "..."
}
