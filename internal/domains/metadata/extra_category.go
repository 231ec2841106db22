package metadata

import (
	"source.hodakov.me/hdkv/animetree/internal/domains/metadata/dto"
	"source.hodakov.me/hdkv/animetree/internal/textutil"
)

var (
	ThemeVideoTags = textutil.NewFoldSet("ED", "ENDING", "NCED", "NCOP", "OP", "OPENING")
	TrailerTags    = textutil.NewFoldSet("PV", "Teaser", "TRAILER", "CM", "SPOT")
	InterviewTags  = textutil.NewFoldSet("INTERVIEW")
)

// categoryLookup is checked in order; the first set holding the tag wins.
var categoryLookup = []struct {
	category dto.ExtraCategory
	tags     textutil.FoldSet
}{
	{category: dto.CategoryThemeVideo, tags: ThemeVideoTags},
	{category: dto.CategoryTrailer, tags: TrailerTags},
	{category: dto.CategoryInterview, tags: InterviewTags},
}

// CategoryForTag maps a release type tag to an extra category.
func CategoryForTag(tag string) dto.ExtraCategory {
	if tag == "" {
		return dto.CategoryUnknown
	}

	for _, lookup := range categoryLookup {
		if lookup.tags.Contains(tag) {
			return lookup.category
		}
	}

	return dto.CategoryUnknown
}
