package filesystem

import (
	"context"
	"errors"
	"io"
	"os"
	"syscall"

	"github.com/hanwen/go-fuse/v2/fs"
	"github.com/hanwen/go-fuse/v2/fuse"
)

// File is a read-only handle on a source file.
type File struct {
	file *os.File
}

var (
	_ = (fs.FileReader)((*File)(nil))
	_ = (fs.FileReleaser)((*File)(nil))
)

func (fi *File) Read(ctx context.Context, dest []byte, off int64) (fuse.ReadResult, syscall.Errno) {
	n, err := fi.file.ReadAt(dest, off)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, syscall.EIO
	}

	return fuse.ReadResultData(dest[:n]), 0
}

func (fi *File) Release(ctx context.Context) syscall.Errno {
	if err := fi.file.Close(); err != nil {
		return syscall.EIO
	}

	return 0
}
