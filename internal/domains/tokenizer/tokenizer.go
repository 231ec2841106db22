package tokenizer

import (
	"github.com/nssteinbrenner/anitogo"
	"source.hodakov.me/hdkv/animetree/internal/application"
	"source.hodakov.me/hdkv/animetree/internal/domains"
)

var (
	_ domains.Tokenizer = new(Tokenizer)
	_ domains.Domain    = new(Tokenizer)
)

type parseFunc func(filename string) *anitogo.Elements

// Tokenizer extracts anime release tokens from filenames with anitogo.
type Tokenizer struct {
	app   *application.App
	parse parseFunc
}

func New(app *application.App) *Tokenizer {
	return &Tokenizer{
		app:   app,
		parse: parseWithDefaults,
	}
}

func (t *Tokenizer) ConnectDependencies() error {
	return nil
}

func (t *Tokenizer) Start() error {
	return nil
}

func parseWithDefaults(filename string) *anitogo.Elements {
	return anitogo.Parse(filename, anitogo.DefaultOptions)
}
