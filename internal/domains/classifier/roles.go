package classifier

import (
	"path/filepath"

	"source.hodakov.me/hdkv/animetree/internal/domains/classifier/dto"
)

// ClassifyFolder classifies a directory by its basename. Extras names win
// over the ordinal prefix.
func (c *Classifier) ClassifyFolder(path string) dto.Role {
	name := basename(path)

	switch {
	case name == "":
		return dto.Unknown
	case c.extrasFolderNames.Contains(name):
		return dto.ExtraFolder
	case ordinalPrefix.MatchString(name):
		return dto.AnimeFolder
	default:
		return dto.FranchiseFolder
	}
}

// ClassifyEntry classifies a directory or a file. Files are classified by
// their extension combined with the role of their parent folder.
func (c *Classifier) ClassifyEntry(path, parentPath string, isDirectory bool) dto.Role {
	if isDirectory {
		return c.ClassifyFolder(path)
	}

	parentRole := c.ClassifyFolder(parentPath)
	extension := filepath.Ext(path)
	isVideo := c.videoExtensions.Contains(extension)
	isAudio := c.audioExtensions.Contains(extension)

	switch {
	case isVideo && parentRole == dto.AnimeFolder:
		return dto.EpisodeFile
	case isVideo && parentRole == dto.ExtraFolder:
		return dto.ExtraVideoFile
	case isAudio && parentRole == dto.ExtraFolder:
		return dto.ExtraAudioFile
	default:
		return dto.Unknown
	}
}

// basename returns the last element of path, or an empty string for empty
// and root paths.
func basename(path string) string {
	if path == "" {
		return ""
	}

	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		return ""
	}

	return name
}
