package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenBagEpisodeIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		bag       *TokenBag
		wantIndex int
		wantOK    bool
	}{
		{name: "plain number", bag: &TokenBag{EpisodeNumber: "12"}, wantIndex: 12, wantOK: true},
		{name: "leading zero", bag: &TokenBag{EpisodeNumber: "03"}, wantIndex: 3, wantOK: true},
		{name: "fractional special", bag: &TokenBag{EpisodeNumber: "12.5"}, wantIndex: 12, wantOK: true},
		{name: "zero", bag: &TokenBag{EpisodeNumber: "0"}},
		{name: "zero special", bag: &TokenBag{EpisodeNumber: "0.5"}},
		{name: "not a number", bag: &TokenBag{EpisodeNumber: "SP1"}},
		{name: "absent", bag: &TokenBag{}},
		{name: "nil bag", bag: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			index, ok := tt.bag.EpisodeIndex()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantIndex, index)
		})
	}
}
