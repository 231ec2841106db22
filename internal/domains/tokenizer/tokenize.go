package tokenizer

import (
	"fmt"

	"github.com/nssteinbrenner/anitogo"
	"github.com/sirupsen/logrus"
	"source.hodakov.me/hdkv/animetree/internal/domains/tokenizer/dto"
)

// Tokenize parses filename into a token bag. The parser reports no errors
// of its own, so a panic inside it is the only failure. A parser returning
// nothing yields an empty bag.
func (t *Tokenizer) Tokenize(filename string) (bag *dto.TokenBag, err error) {
	defer func() {
		if r := recover(); r != nil {
			bag = nil
			err = fmt.Errorf("%w: %w (%v)", ErrTokenizer, ErrCantParseFilename, r)
		}
	}()

	bag = tokenBagFromElements(t.parse(filename))

	t.app.Logger().WithFields(logrus.Fields{
		"filename":       filename,
		"episode title":  bag.EpisodeTitle,
		"episode number": bag.EpisodeNumber,
		"anime type":     bag.AnimeType,
	}).Debug("Tokenized filename")

	return bag, nil
}

// tokenBagFromElements keeps the last value of multi-valued elements.
func tokenBagFromElements(elements *anitogo.Elements) *dto.TokenBag {
	bag := new(dto.TokenBag)
	if elements == nil {
		return bag
	}

	bag.EpisodeTitle = elements.EpisodeTitle
	bag.EpisodeNumber = last(elements.EpisodeNumber)
	bag.AnimeType = last(elements.AnimeType)

	return bag
}

func last(values []string) string {
	if len(values) == 0 {
		return ""
	}

	return values[len(values)-1]
}
