package metadata

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"source.hodakov.me/hdkv/animetree/internal/configuration"
	cdto "source.hodakov.me/hdkv/animetree/internal/domains/classifier/dto"
	"source.hodakov.me/hdkv/animetree/internal/domains/metadata/dto"
	tdto "source.hodakov.me/hdkv/animetree/internal/domains/tokenizer/dto"
)

// Episodes always land in the first season of their series.
const episodeSeasonIndex = 1

// DescribeFile tokenizes filename and maps it. A failing tokenizer is logged
// and treated as if it found nothing.
func (m *Mapper) DescribeFile(role cdto.Role, filename string) (*dto.Metadata, error) {
	if !role.IsFile() {
		return nil, fmt.Errorf("%w: %w (%s)", ErrMetadata, ErrRoleNotApplicable, role)
	}

	return m.MapFile(role, filename, m.tokenize(filename))
}

// MapFile builds the metadata of a file from its role and tokens. A nil
// token bag is the same as an empty one.
func (m *Mapper) MapFile(role cdto.Role, filename string, tokens *tdto.TokenBag) (*dto.Metadata, error) {
	if tokens == nil {
		tokens = new(tdto.TokenBag)
	}

	metadata := &dto.Metadata{
		Name:     filename,
		SortName: filename,
	}

	switch role {
	case cdto.EpisodeFile:
		season := episodeSeasonIndex
		metadata.SeasonIndex = &season

		if index, ok := tokens.EpisodeIndex(); ok {
			metadata.EpisodeIndex = &index
		}

		metadata.Name = m.episodeName(filename, tokens, metadata.EpisodeIndex)
	case cdto.ExtraVideoFile, cdto.ExtraAudioFile:
		category := CategoryForTag(tokens.AnimeType)
		metadata.ExtraCategory = &category
	default:
		return nil, fmt.Errorf("%w: %w (%s)", ErrMetadata, ErrRoleNotApplicable, role)
	}

	return metadata, nil
}

func (m *Mapper) episodeName(filename string, tokens *tdto.TokenBag, index *int) string {
	if tokens.EpisodeTitle != "" {
		return tokens.EpisodeTitle
	}

	if m.episodeNameFallback == configuration.FallbackEpisodeNumber && index != nil {
		return fmt.Sprintf("Episode %d", *index)
	}

	return filename
}

func (m *Mapper) tokenize(filename string) *tdto.TokenBag {
	if m.tokenizer == nil {
		return new(tdto.TokenBag)
	}

	tokens, err := m.tokenizer.Tokenize(filename)
	if err != nil {
		m.app.Logger().WithError(err).WithFields(logrus.Fields{
			"filename": filename,
		}).Warn("Failed to tokenize filename, falling back to the raw filename")

		return new(tdto.TokenBag)
	}

	return tokens
}
