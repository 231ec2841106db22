package filesystem

import (
	"fmt"
	"path/filepath"
	"strings"

	cdto "source.hodakov.me/hdkv/animetree/internal/domains/classifier/dto"
	"source.hodakov.me/hdkv/animetree/internal/domains/resolver/dto"
)

// virtualName is the name an entry gets inside the mounted view.
func virtualName(sourcePath string, decision *dto.Decision) string {
	filename := filepath.Base(sourcePath)

	switch {
	case decision.Folder != nil:
		name := sanitize(decision.Folder.Name)
		if !validName(name) {
			return filename
		}

		return name
	case decision.Media == nil:
		return filename
	case decision.Role == cdto.EpisodeFile:
		name := decision.Media.Name
		if name != filename {
			name += filepath.Ext(filename)
		}

		if decision.Media.EpisodeIndex != nil {
			name = fmt.Sprintf("E%02d - %s", *decision.Media.EpisodeIndex, name)
		}

		name = sanitize(name)
		if !validName(name) {
			return filename
		}

		return name
	case decision.Media.ExtraCategory != nil:
		return sanitize(fmt.Sprintf("[%s] %s", *decision.Media.ExtraCategory, filename))
	default:
		return filename
	}
}

// validName rejects names that cannot stand for a directory entry.
func validName(name string) bool {
	return name != "" && name != "." && name != ".."
}

// sanitize keeps derived names usable as a single path element.
func sanitize(name string) string {
	return strings.NewReplacer("/", "_", "\x00", "").Replace(name)
}
