package main

import (
	"context"
	"strings"

	"source.hodakov.me/hdkv/animetree/internal/application"
	"source.hodakov.me/hdkv/animetree/internal/configuration"
	"source.hodakov.me/hdkv/animetree/internal/domains"
	"source.hodakov.me/hdkv/animetree/internal/domains/classifier"
	"source.hodakov.me/hdkv/animetree/internal/domains/filesystem"
	"source.hodakov.me/hdkv/animetree/internal/domains/metadata"
	"source.hodakov.me/hdkv/animetree/internal/domains/resolver"
	"source.hodakov.me/hdkv/animetree/internal/domains/scanner"
	"source.hodakov.me/hdkv/animetree/internal/domains/tokenizer"
)

type commandContext struct {
	configFlag *string
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
	}
}

// configPath returns the --config value. Empty means configuration.New
// picks the path from the environment.
func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}

	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) loadConfig() (*configuration.Config, error) {
	if path := c.configPath(); path != "" {
		return configuration.Load(path)
	}

	return configuration.New()
}

// bootstrap builds the application with the naming domains registered and
// connected. The filesystem domain is only added for the mount command.
func (c *commandContext) bootstrap(ctx context.Context, withFilesystem bool) (*application.App, error) {
	app := application.New(ctx)

	err := app.InitConfig(c.configPath())
	if err != nil {
		return nil, err
	}

	app.InitLogger()

	app.RegisterDomain(domains.TokenizerName, tokenizer.New(app))
	app.RegisterDomain(domains.ClassifierName, classifier.New(app))
	app.RegisterDomain(domains.MetadataName, metadata.New(app))
	app.RegisterDomain(domains.ResolverName, resolver.New(app))
	app.RegisterDomain(domains.ScannerName, scanner.New(app))

	if withFilesystem {
		app.RegisterDomain(domains.FilesystemName, filesystem.New(app))
	}

	err = app.ConnectDependencies()
	if err != nil {
		return nil, err
	}

	return app, nil
}
