package metadata

import (
	"fmt"

	"source.hodakov.me/hdkv/animetree/internal/application"
	"source.hodakov.me/hdkv/animetree/internal/configuration"
	"source.hodakov.me/hdkv/animetree/internal/domains"
)

var (
	_ domains.Metadata = new(Mapper)
	_ domains.Domain   = new(Mapper)
)

// Mapper turns classified files and their filename tokens into display
// metadata.
type Mapper struct {
	app *application.App

	tokenizer domains.Tokenizer

	episodeNameFallback configuration.EpisodeNameFallback
}

func New(app *application.App) *Mapper {
	return &Mapper{
		app:                 app,
		episodeNameFallback: app.Config().Metadata.EpisodeNameFallback,
	}
}

func (m *Mapper) ConnectDependencies() error {
	tokenizer, ok := m.app.RetrieveDomain(domains.TokenizerName).(domains.Tokenizer)
	if !ok {
		return fmt.Errorf(
			"%w: %w (%s)", ErrMetadata, ErrConnectDependencies,
			"tokenizer domain interface conversion failed",
		)
	}

	m.tokenizer = tokenizer

	return nil
}

func (m *Mapper) Start() error {
	return nil
}
