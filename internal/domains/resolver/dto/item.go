package dto

// Item is a single filesystem entry handed over by the host.
type Item struct {
	Path        string
	ParentPath  string
	IsDirectory bool

	// CollectionType is the host collection the entry belongs to.
	CollectionType string
	// LibraryRoot is the path tested for the anime keyword. Path is used
	// when it is empty.
	LibraryRoot string
}

// Entry is an already enumerated child of a folder.
type Entry struct {
	Path        string `json:"path"`
	IsDirectory bool   `json:"is_directory"`
}
