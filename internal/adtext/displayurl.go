package adtext

import "strings"

const pathSeparator = "/"

// DisplayURL joins the host with the trimmed, non-empty path segments.
// Each segment truncates at segmentLimit. The result is cosmetic text,
// not a navigable address.
func DisplayURL(host string, segments []string, segmentLimit int) string {
	parts := []string{strings.TrimSpace(host)}
	for _, seg := range filterFilled(segments) {
		parts = append(parts, Truncate(seg, segmentLimit))
	}
	return strings.Join(parts, pathSeparator)
}
