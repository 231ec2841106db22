package filesystem

import (
	"context"
	"os"
	"syscall"

	"github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
)

// LibraryFile serves the bytes of a resolved source file.
type LibraryFile struct {
	fs.Inode

	f          *FS
	sourcePath string
}

var (
	_ = (fs.NodeGetattrer)((*LibraryFile)(nil))
	_ = (fs.NodeOpener)((*LibraryFile)(nil))
)

func (l *LibraryFile) Getattr(ctx context.Context, fh fs.FileHandle, out *fuse.AttrOut) syscall.Errno {
	info, err := os.Stat(l.sourcePath)
	if err != nil {
		return syscall.ENOENT
	}

	fillAttr(&out.Attr, info, fileMode, l.StableAttr().Ino)

	return 0
}

func (l *LibraryFile) Open(ctx context.Context, flags uint32) (fh fs.FileHandle, fuseFlags uint32, errno syscall.Errno) {
	if flags&fuse.O_ANYWRITE != 0 {
		return nil, 0, syscall.EPERM
	}

	file, err := os.Open(l.sourcePath)
	if err != nil {
		l.f.app.Logger().WithError(err).WithField("source file", l.sourcePath).
			Error("Failed to open source file")

		return nil, 0, syscall.EIO
	}

	return &File{file: file}, fuse.FOPEN_KEEP_CACHE, 0
}

func (f *FS) NewLibraryFile(sourcePath string) *LibraryFile {
	return &LibraryFile{
		f:          f,
		sourcePath: sourcePath,
	}
}
