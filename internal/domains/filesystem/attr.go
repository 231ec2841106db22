package filesystem

import (
	"os"
	"time"

	"github.com/hanwen/go-fuse/v2/fuse"
)

const (
	directoryMode = fuse.S_IFDIR | 0o555
	fileMode      = fuse.S_IFREG | 0o444
)

// fillAttr copies the source entry attributes into a read-only view
// attribute. A missing source only gets the mode and the inode number.
func fillAttr(out *fuse.Attr, info os.FileInfo, mode uint32, ino uint64) {
	out.Mode = mode
	out.Ino = ino
	out.Nlink = 1
	out.Blksize = 512

	if mode == directoryMode {
		out.Nlink = 2 // Minimum . and ..
		out.Size = 4096
	}

	mtime := uint64(time.Now().Unix())

	if info != nil {
		mtime = uint64(info.ModTime().Unix())

		if !info.IsDir() {
			out.Size = uint64(info.Size())
		}
	}

	out.Mtime = mtime
	out.Atime = mtime
	out.Ctime = mtime
	out.Blocks = (out.Size + 511) / 512
}
