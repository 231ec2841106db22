package filesystem

// NewRootDirectory returns the node mounted at the destination. It shows
// the children of the source library root.
func (f *FS) NewRootDirectory() *LibraryDir {
	return f.NewLibraryDirectory(f.sourceDir)
}
