package testsupport

import (
	"context"
	"testing"

	"source.hodakov.me/hdkv/animetree/internal/application"
	"source.hodakov.me/hdkv/animetree/internal/configuration"
)

// NewApp returns an application running on the default configuration,
// optionally adjusted by mutate.
func NewApp(t *testing.T, mutate ...func(*configuration.Config)) *application.App {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	config := configuration.Default()
	for _, fn := range mutate {
		fn(config)
	}

	app := application.New(ctx)
	app.UseConfig(config)

	return app
}
