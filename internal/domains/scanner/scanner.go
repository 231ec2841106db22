package scanner

import (
	"fmt"

	"github.com/spf13/afero"
	"source.hodakov.me/hdkv/animetree/internal/application"
	"source.hodakov.me/hdkv/animetree/internal/domains"
)

var (
	_ domains.Scanner = new(Scanner)
	_ domains.Domain  = new(Scanner)
)

// Scanner walks a library tree the way a host would and feeds every folder
// to the resolver.
type Scanner struct {
	app *application.App

	resolver domains.Resolver

	fs             afero.Fs
	collectionType string
}

func New(app *application.App) *Scanner {
	return NewWithFs(app, afero.NewOsFs())
}

func NewWithFs(app *application.App, fs afero.Fs) *Scanner {
	return &Scanner{
		app:            app,
		fs:             fs,
		collectionType: app.Config().Library.CollectionType,
	}
}

func (s *Scanner) ConnectDependencies() error {
	resolver, ok := s.app.RetrieveDomain(domains.ResolverName).(domains.Resolver)
	if !ok {
		return fmt.Errorf(
			"%w: %w (%s)", ErrScanner, ErrConnectDependencies,
			"resolver domain interface conversion failed",
		)
	}

	s.resolver = resolver

	return nil
}

func (s *Scanner) Start() error {
	return nil
}
