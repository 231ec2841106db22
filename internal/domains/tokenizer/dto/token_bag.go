package dto

import (
	"strconv"
	"strings"
)

// TokenBag is the part of a parsed filename the metadata mapper reads.
// An empty string means the tokenizer did not find the element.
type TokenBag struct {
	EpisodeTitle  string `json:"episode_title,omitempty"`
	EpisodeNumber string `json:"episode_number,omitempty"`
	AnimeType     string `json:"anime_type,omitempty"`
}

// EpisodeIndex returns the integer part of EpisodeNumber. Fractional
// numbers such as "12.5" yield 12. Zero and unparsable numbers report false.
func (t *TokenBag) EpisodeIndex() (int, bool) {
	if t == nil || t.EpisodeNumber == "" {
		return 0, false
	}

	whole, _, _ := strings.Cut(t.EpisodeNumber, ".")

	index, err := strconv.Atoi(whole)
	if err != nil || index == 0 {
		return 0, false
	}

	return index, true
}
