package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newMountCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "mount",
		Short: "Mount the renamed read-only view of the anime library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runCtx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			app, err := ctx.bootstrap(runCtx, true)
			if err != nil {
				return err
			}

			app.Logger().Info("Starting animetree...")

			err = app.StartDomains()
			if err != nil {
				return err
			}

			app.Logger().Info("Started animetree")

			// CTRL+C handler.
			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(interrupt)

			select {
			case signalThing := <-interrupt:
				app.Logger().WithField("signal", signalThing.String()).
					Info("Got terminating signal, shutting down...")
			case <-runCtx.Done():
			}

			cancel()

			return nil
		},
	}
}
