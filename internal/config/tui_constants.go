package config

// Layout constants.
const (
	// MinTerminalWidth is the narrowest terminal the editor renders into.
	MinTerminalWidth = 46

	// MinTerminalHeight is the shortest terminal the editor renders into.
	MinTerminalHeight = 18

	// MinCardWidth is the minimum inner width of the preview card.
	MinCardWidth = 24

	// FormColumnWidth is the width reserved for the input form column.
	FormColumnWidth = 38
)

// Counter display.
const (
	// CounterWarnRatio marks a field counter once this share of the limit is used.
	CounterWarnRatio = 0.9

	// GaugeWidth is the width of the focused-field budget gauge.
	GaugeWidth = 24

	// MinGaugeWidth is the narrowest the budget gauge shrinks to.
	MinGaugeWidth = 8

	// CompactWidthThreshold is the terminal width below which the gauge shrinks.
	CompactWidthThreshold = 72
)

// Device preset widths (preview card columns).
const (
	// MobileCardWidth approximates a phone result card.
	MobileCardWidth = 40

	// DesktopCardWidth approximates a desktop result card.
	DesktopCardWidth = 64
)
