package filesystem

import (
	"fmt"
	"sync"

	"source.hodakov.me/hdkv/animetree/internal/application"
	"source.hodakov.me/hdkv/animetree/internal/domains"
)

var (
	_ domains.Filesystem = new(FS)
	_ domains.Domain     = new(FS)
)

// FS mounts a read-only view of the source library in which every entry
// carries the name the resolver derived for it.
type FS struct {
	app *application.App

	resolver domains.Resolver

	sourceDir      string
	destinationDir string
	collectionType string

	inodesMutex  sync.Mutex
	inodes       map[string]uint64
	inodeCounter uint64
}

func New(app *application.App) *FS {
	return &FS{
		app: app,

		sourceDir:      app.Config().Paths.Source,
		destinationDir: app.Config().Paths.Destination,
		collectionType: app.Config().Library.CollectionType,

		inodes:       make(map[string]uint64),
		inodeCounter: 1000, // Start counting inodes after the reserved ones
	}
}

func (f *FS) ConnectDependencies() error {
	resolver, ok := f.app.RetrieveDomain(domains.ResolverName).(domains.Resolver)
	if !ok {
		return fmt.Errorf(
			"%w: %w (%s)", ErrFilesystem, ErrConnectDependencies,
			"resolver domain interface conversion failed",
		)
	}

	f.resolver = resolver

	return nil
}

func (f *FS) Start() error {
	err := f.prepareDirectories()
	if err != nil {
		return fmt.Errorf("%w: %w (%w)", ErrFilesystem, ErrFailedToPrepareDirectories, err)
	}

	go func() {
		f.mount()
	}()

	return nil
}

func (f *FS) MountPoint() string {
	return f.destinationDir
}

// inodeFor returns the inode number of the source entry at path. The same
// path always gets the same number, so readdir and lookup agree.
func (f *FS) inodeFor(path string) uint64 {
	f.inodesMutex.Lock()
	defer f.inodesMutex.Unlock()

	if ino, ok := f.inodes[path]; ok {
		return ino
	}

	f.inodeCounter++
	f.inodes[path] = f.inodeCounter

	return f.inodeCounter
}
