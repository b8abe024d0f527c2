package models

// Slot counts fixed by the ad format.
const (
	HeadlineSlots    = 3
	DescriptionSlots = 2
	PathSlots        = 2
)

// TextField holds one user-entered ad copy value. The composer never
// mutates it; edits replace the whole value.
type TextField struct {
	Value string
}

// AdDraft is the editable state of one ad: fixed-size ordered slots,
// replaced by index. Preview text is derived fresh from these values on
// every render and never written back.
type AdDraft struct {
	Headlines    [HeadlineSlots]TextField
	Descriptions [DescriptionSlots]TextField
	Paths        [PathSlots]TextField
}

// SetHeadline replaces the headline at slot i. Out-of-range slots are
// ignored.
func (d *AdDraft) SetHeadline(i int, value string) {
	if i >= 0 && i < HeadlineSlots {
		d.Headlines[i] = TextField{Value: value}
	}
}

// SetDescription replaces the description at slot i.
func (d *AdDraft) SetDescription(i int, value string) {
	if i >= 0 && i < DescriptionSlots {
		d.Descriptions[i] = TextField{Value: value}
	}
}

// SetPath replaces the display-path segment at slot i.
func (d *AdDraft) SetPath(i int, value string) {
	if i >= 0 && i < PathSlots {
		d.Paths[i] = TextField{Value: value}
	}
}

// HeadlineValues returns the raw headline values in slot order.
func (d *AdDraft) HeadlineValues() []string {
	out := make([]string, HeadlineSlots)
	for i, f := range d.Headlines {
		out[i] = f.Value
	}
	return out
}

// DescriptionValues returns the raw description values in slot order.
func (d *AdDraft) DescriptionValues() []string {
	out := make([]string, DescriptionSlots)
	for i, f := range d.Descriptions {
		out[i] = f.Value
	}
	return out
}

// PathValues returns the raw display-path segments in slot order.
func (d *AdDraft) PathValues() []string {
	out := make([]string, PathSlots)
	for i, f := range d.Paths {
		out[i] = f.Value
	}
	return out
}

// Reset clears every slot.
func (d *AdDraft) Reset() {
	*d = AdDraft{}
}

// Preview is the derived rendering of a draft: recomputed on every
// render, never stored.
type Preview struct {
	Headline    string
	DisplayURL  string
	Description string
}

// DevicePreset describes one simulated result-card width.
type DevicePreset struct {
	Name      string
	CardWidth int
}

// ExampleAd is a named sample draft from the examples library.
type ExampleAd struct {
	Name         string
	Headlines    []string
	Descriptions []string
	Path         []string
}
