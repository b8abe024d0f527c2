package adtext

const ellipsis = "…"

// Truncate shortens text to at most limit characters, appending a single
// ellipsis when anything is cut. The clip keeps the first limit-1
// characters; if a space sits past the midpoint of the limit, the cut
// retreats to that word boundary instead. Lengths are measured in runes.
// A limit below 1 is treated as 1.
func Truncate(text string, limit int) string {
	if limit < 1 {
		limit = 1
	}
	if text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	clipped := runes[:limit-1]
	lastSpace := -1
	for i := len(clipped) - 1; i >= 0; i-- {
		if clipped[i] == ' ' {
			lastSpace = i
			break
		}
	}
	if lastSpace > limit/2 {
		return string(clipped[:lastSpace]) + ellipsis
	}
	return string(clipped) + ellipsis
}
