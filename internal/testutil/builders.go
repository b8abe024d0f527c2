package testutil

import "github.com/mvanek/adproof/internal/models"

// DraftBuilder provides a fluent API for creating test drafts.
type DraftBuilder struct {
	draft models.AdDraft
}

func NewDraft() *DraftBuilder {
	return &DraftBuilder{}
}

func (b *DraftBuilder) WithHeadlines(headlines ...string) *DraftBuilder {
	for i, h := range headlines {
		b.draft.SetHeadline(i, h)
	}
	return b
}

func (b *DraftBuilder) WithDescriptions(descriptions ...string) *DraftBuilder {
	for i, d := range descriptions {
		b.draft.SetDescription(i, d)
	}
	return b
}

func (b *DraftBuilder) WithPaths(paths ...string) *DraftBuilder {
	for i, p := range paths {
		b.draft.SetPath(i, p)
	}
	return b
}

func (b *DraftBuilder) Build() models.AdDraft {
	return b.draft
}

// ExampleBuilder provides a fluent API for creating test example ads.
type ExampleBuilder struct {
	ad models.ExampleAd
}

func NewExample(name string) *ExampleBuilder {
	return &ExampleBuilder{ad: models.ExampleAd{Name: name}}
}

func (b *ExampleBuilder) WithHeadlines(headlines ...string) *ExampleBuilder {
	b.ad.Headlines = headlines
	return b
}

func (b *ExampleBuilder) WithDescriptions(descriptions ...string) *ExampleBuilder {
	b.ad.Descriptions = descriptions
	return b
}

func (b *ExampleBuilder) WithPath(segments ...string) *ExampleBuilder {
	b.ad.Path = segments
	return b
}

func (b *ExampleBuilder) Build() models.ExampleAd {
	return b.ad
}
