package filesystem

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

func (f *FS) prepareDirectories() error {
	if _, err := os.Stat(f.sourceDir); os.IsNotExist(err) {
		return fmt.Errorf("%w: %w (%w)", ErrFilesystem, ErrNoSource, err)
	}

	f.app.Logger().WithField("path", f.sourceDir).Info("Got source directory")

	if _, err := os.Stat(f.destinationDir); err == nil {
		f.app.Logger().WithField("path", f.destinationDir).Info(
			"Unmounting a possibly stale view from the destination mountpoint",
		)

		// Failure here means nothing was mounted.
		_ = exec.Command("fusermount3", "-u", f.destinationDir).Run()
	}

	if err := os.MkdirAll(f.destinationDir, 0o755); err != nil {
		f.app.Logger().WithField("path", f.destinationDir).Error("Operation on directory was unsuccessful")

		return fmt.Errorf("%w: %w (%w)", ErrFilesystem, ErrFailedToCreateDestinationDirectory, err)
	}

	f.app.Logger().WithFields(logrus.Fields{
		"source directory":         f.sourceDir,
		"virtual filesystem mount": f.destinationDir,
	}).Debug("Filesystem directories prepared")

	return nil
}
