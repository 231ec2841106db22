package resolver

import (
	"fmt"

	"source.hodakov.me/hdkv/animetree/internal/application"
	"source.hodakov.me/hdkv/animetree/internal/domains"
)

var (
	_ domains.Resolver = new(Resolver)
	_ domains.Domain   = new(Resolver)
)

// Resolver is the entry point the host calls for every scanned entry.
type Resolver struct {
	app *application.App

	classifier domains.Classifier
	metadata   domains.Metadata

	isAnimeLibrary LibraryPredicate
}

func New(app *application.App) *Resolver {
	return &Resolver{
		app:            app,
		isAnimeLibrary: IsAnimeLibrary,
	}
}

// WithLibraryPredicate replaces the anime library check.
func (r *Resolver) WithLibraryPredicate(predicate LibraryPredicate) *Resolver {
	r.isAnimeLibrary = predicate

	return r
}

func (r *Resolver) ConnectDependencies() error {
	classifier, ok := r.app.RetrieveDomain(domains.ClassifierName).(domains.Classifier)
	if !ok {
		return fmt.Errorf(
			"%w: %w (%s)", ErrResolver, ErrConnectDependencies,
			"classifier domain interface conversion failed",
		)
	}

	metadata, ok := r.app.RetrieveDomain(domains.MetadataName).(domains.Metadata)
	if !ok {
		return fmt.Errorf(
			"%w: %w (%s)", ErrResolver, ErrConnectDependencies,
			"metadata domain interface conversion failed",
		)
	}

	r.classifier = classifier
	r.metadata = metadata

	return nil
}

func (r *Resolver) Start() error {
	return nil
}
