package domains

const FilesystemName = "filesystem"

type Filesystem interface {
	MountPoint() string
}
