package dto

// Role is the place an entry takes in the anime library hierarchy.
type Role int

const (
	Unknown Role = iota
	// FranchiseFolder groups anime folders and may be nested.
	FranchiseFolder
	// AnimeFolder is a single title named "<digits>. <name>". Never nested.
	AnimeFolder
	// ExtraFolder holds bonus content of an anime folder. Never nested.
	ExtraFolder
	EpisodeFile
	ExtraVideoFile
	ExtraAudioFile
)

var roleNames = map[Role]string{
	Unknown:         "Unknown",
	FranchiseFolder: "FranchiseFolder",
	AnimeFolder:     "AnimeFolder",
	ExtraFolder:     "ExtraFolder",
	EpisodeFile:     "EpisodeFile",
	ExtraVideoFile:  "ExtraVideoFile",
	ExtraAudioFile:  "ExtraAudioFile",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}

	return roleNames[Unknown]
}

func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r Role) IsFolder() bool {
	return r == FranchiseFolder || r == AnimeFolder || r == ExtraFolder
}

func (r Role) IsFile() bool {
	return r == EpisodeFile || r == ExtraVideoFile || r == ExtraAudioFile
}

func (r Role) IsExtraFile() bool {
	return r == ExtraVideoFile || r == ExtraAudioFile
}
