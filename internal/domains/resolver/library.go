package resolver

import (
	"strings"

	"source.hodakov.me/hdkv/animetree/internal/configuration"
)

// AnimeKeyword marks a library root as anime content.
const AnimeKeyword = "anime"

// LibraryPredicate reports whether the library rooted at path holds anime.
type LibraryPredicate func(path string) bool

// IsAnimeLibrary is a case-insensitive substring test for AnimeKeyword.
// It is a heuristic: "/media/AnimeFX" passes and "/media/アニメ" does not.
func IsAnimeLibrary(path string) bool {
	return strings.Contains(strings.ToLower(path), AnimeKeyword)
}

func (r *Resolver) supports(collectionType, libraryPath string) bool {
	return collectionType == configuration.CollectionTVShows && r.isAnimeLibrary(libraryPath)
}
