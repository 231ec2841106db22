package filesystem

import (
	"context"
	"os"
	"syscall"

	"github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
)

// LibraryDir is a source folder shown with its resolved children.
type LibraryDir struct {
	fs.Inode

	f    *FS
	path string
}

var (
	_ = (fs.NodeGetattrer)((*LibraryDir)(nil))
	_ = (fs.NodeLookuper)((*LibraryDir)(nil))
	_ = (fs.NodeReaddirer)((*LibraryDir)(nil))
)

func (d *LibraryDir) Getattr(ctx context.Context, fh fs.FileHandle, out *fuse.AttrOut) syscall.Errno {
	info, err := os.Stat(d.path)
	if err != nil {
		info = nil
	}

	fillAttr(&out.Attr, info, directoryMode, d.StableAttr().Ino)

	return 0
}

func (d *LibraryDir) Lookup(ctx context.Context, name string, out *fuse.EntryOut) (*fs.Inode, syscall.Errno) {
	child, ok := d.f.lookupEntry(d.path, name)
	if !ok {
		return nil, syscall.ENOENT
	}

	info, err := os.Stat(child.sourcePath)
	if err != nil {
		return nil, syscall.ENOENT
	}

	var (
		node fs.InodeEmbedder
		mode uint32
	)

	if child.isDirectory {
		node = d.f.NewLibraryDirectory(child.sourcePath)
		mode = directoryMode
	} else {
		node = d.f.NewLibraryFile(child.sourcePath)
		mode = fileMode
	}

	ch := d.NewInode(ctx, node, fs.StableAttr{
		Mode: mode &^ 0o7777,
		Ino:  d.f.inodeFor(child.sourcePath),
	})

	fillAttr(&out.Attr, info, mode, ch.StableAttr().Ino)

	return ch, 0
}

func (d *LibraryDir) Readdir(ctx context.Context) (fs.DirStream, syscall.Errno) {
	d.f.app.Logger().WithField("path", d.path).Debug("Readdir called on directory")

	dirEntries := []fuse.DirEntry{
		{Name: ".", Mode: directoryMode, Ino: d.StableAttr().Ino},
		{Name: "..", Mode: directoryMode},
	}

	entries, err := d.f.listDirectory(d.path)
	if err != nil {
		d.f.app.Logger().WithError(err).WithField("path", d.path).Error(
			"Error reading directory",
		)

		return fs.NewListDirStream(dirEntries), 0
	}

	for _, child := range entries {
		mode := uint32(fileMode)
		if child.isDirectory {
			mode = directoryMode
		}

		dirEntries = append(dirEntries, fuse.DirEntry{
			Name: child.name,
			Mode: mode,
			Ino:  d.f.inodeFor(child.sourcePath),
		})
	}

	return fs.NewListDirStream(dirEntries), 0
}

func (f *FS) NewLibraryDirectory(path string) *LibraryDir {
	return &LibraryDir{
		f:    f,
		path: path,
	}
}
