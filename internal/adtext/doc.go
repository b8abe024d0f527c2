// Package adtext derives the display text of a simulated search-ad
// preview from raw user copy.
//
// The package is two pure operations over plain strings. Truncate clips
// a string to a character limit, preferring a word boundary past the
// midpoint and marking any cut with a single ellipsis. A Composer
// applies the selection-and-join policy over the optional headline and
// description fields, substituting placeholders when nothing is filled
// in.
//
// Lengths are rune counts. Truncation is plain character-index
// arithmetic, not grapheme- or width-aware, and makes no claim of
// matching any real ad platform's layout rules.
package adtext
