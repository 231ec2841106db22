package classifier

import (
	"source.hodakov.me/hdkv/animetree/internal/application"
	"source.hodakov.me/hdkv/animetree/internal/configuration"
	"source.hodakov.me/hdkv/animetree/internal/domains"
	"source.hodakov.me/hdkv/animetree/internal/textutil"
)

var (
	_ domains.Classifier = new(Classifier)
	_ domains.Domain     = new(Classifier)
)

// Classifier decides the hierarchy role of a path. It only reads the naming
// sets it was built with and is safe for concurrent use.
type Classifier struct {
	extrasFolderNames textutil.FoldSet
	videoExtensions   textutil.FoldSet
	audioExtensions   textutil.FoldSet
}

func New(app *application.App) *Classifier {
	return NewWithNaming(app.Config().Naming)
}

// NewWithNaming builds a classifier from explicit naming sets.
func NewWithNaming(naming configuration.Naming) *Classifier {
	return &Classifier{
		extrasFolderNames: textutil.NewFoldSet(naming.ExtrasFolderNames...),
		videoExtensions:   textutil.NewFoldSet(naming.VideoExtensions...),
		audioExtensions:   textutil.NewFoldSet(naming.AudioExtensions...),
	}
}

func (c *Classifier) ConnectDependencies() error {
	return nil
}

func (c *Classifier) Start() error {
	return nil
}
