package filesystem

import (
	"log"

	"github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
	"github.com/sirupsen/logrus"
)

func (f *FS) mount() {
	rootDir := f.NewRootDirectory()

	// Redirect FUSE logs to logrus
	fuseLogger := log.New(
		f.app.Logger().WithField("fuse debug logs", true).WriterLevel(logrus.DebugLevel), "", 0,
	)

	opts := &fs.Options{
		MountOptions: fuse.MountOptions{
			Name:          "animetree",
			FsName:        "animetree",
			DisableXAttrs: true,
			Debug:         false,
			Options: []string{
				"default_permissions",
				"nosuid",
				"nodev",
				"noexec",
				"ro",
			},
		},
		Logger: fuseLogger,
	}

	server, err := fs.Mount(f.destinationDir, rootDir, opts)
	if err != nil {
		f.app.Logger().WithError(err).Fatal("Failed to start filesystem")
	}

	f.app.Logger().WithField("path", f.destinationDir).Info("Mounted anime library view")

	go func() {
		<-f.app.Context().Done()

		err := server.Unmount()
		if err != nil {
			f.app.Logger().WithError(err).Error("Failed to unmount filesystem")
		}
	}()

	server.Wait()
}
