package adtext

import (
	"errors"
	"fmt"
	"strings"
)

// Placeholders shown when no field in a group has content.
const (
	HeadlinePlaceholder    = "Your headline here"
	DescriptionPlaceholder = "Your description will appear here."
)

// Join separators for the composed previews.
const (
	headlineSeparator    = " — "
	descriptionSeparator = " "
)

// The joined headline preview is allowed combinedFactor*limit+combinedSlack
// characters before truncation.
const (
	combinedFactor = 2
	combinedSlack  = 15
)

// ErrInvalidLimit reports a non-positive limit in a LimitConfig.
var ErrInvalidLimit = errors.New("limit must be at least 1")

// LimitConfig carries the per-field character limits, fixed for the
// session once a Composer accepts them.
type LimitConfig struct {
	Headline    int
	Description int
}

// Composer derives preview text from raw ad copy. It holds no state
// beyond its limits; every method is a pure function of its arguments.
type Composer struct {
	limits LimitConfig
}

// NewComposer validates limits once, at the construction boundary.
func NewComposer(limits LimitConfig) (*Composer, error) {
	if limits.Headline < 1 {
		return nil, fmt.Errorf("%w: headline limit %d", ErrInvalidLimit, limits.Headline)
	}
	if limits.Description < 1 {
		return nil, fmt.Errorf("%w: description limit %d", ErrInvalidLimit, limits.Description)
	}
	return &Composer{limits: limits}, nil
}

// Limits returns the validated configuration.
func (c *Composer) Limits() LimitConfig { return c.limits }

// CombinedHeadlineLimit is the effective bound applied to the joined
// headline preview.
func CombinedHeadlineLimit(headlineLimit int) int {
	return combinedFactor*headlineLimit + combinedSlack
}

// HeadlinePreview composes the headline line. With showAll set,
// surviving headlines join on an em dash and truncate at the combined
// bound; otherwise only the first surviving headline (or the
// placeholder) truncates at the plain headline limit.
func (c *Composer) HeadlinePreview(headlines []string, showAll bool) string {
	filled := filterFilled(headlines)
	if !showAll {
		if len(filled) == 0 {
			return Truncate(HeadlinePlaceholder, c.limits.Headline)
		}
		return Truncate(filled[0], c.limits.Headline)
	}
	if len(filled) == 0 {
		return HeadlinePlaceholder
	}
	return Truncate(strings.Join(filled, headlineSeparator), CombinedHeadlineLimit(c.limits.Headline))
}

// DescriptionPreview composes the description line: survivors joined by
// a single space, truncated at the plain description limit.
func (c *Composer) DescriptionPreview(descriptions []string) string {
	filled := filterFilled(descriptions)
	if len(filled) == 0 {
		return DescriptionPlaceholder
	}
	return Truncate(strings.Join(filled, descriptionSeparator), c.limits.Description)
}

// filterFilled keeps the trimmed form of entries with content,
// preserving order.
func filterFilled(fields []string) []string {
	filled := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := strings.TrimSpace(f); t != "" {
			filled = append(filled, t)
		}
	}
	return filled
}
