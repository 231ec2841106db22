package configuration

import "github.com/sirupsen/logrus"

// CollectionTVShows is the only collection type the resolver works on.
const CollectionTVShows = "tvshows"

var (
	defaultExtrasFolderNames = []string{
		"trailers", "theme-music", "backdrops", "behind the scenes",
		"deleted scenes", "interviews", "scenes", "samples", "shorts",
		"featurettes", "clips", "other", "extras",
	}

	defaultVideoExtensions = []string{
		".3g2", ".3gp", ".asf", ".avi", ".divx", ".dvr-ms", ".f4v", ".flv",
		".img", ".iso", ".m2t", ".m2ts", ".m2v", ".m4v", ".mk3d", ".mkv",
		".mov", ".mp4", ".mpeg", ".mpg", ".mts", ".ogg", ".ogm", ".ogv",
		".rec", ".rmvb", ".ts", ".tp", ".vob", ".webm", ".wmv", ".wtv",
	}

	defaultAudioExtensions = []string{
		".aac", ".ac3", ".aif", ".aiff", ".ape", ".dsf", ".dts", ".flac",
		".m4a", ".m4b", ".mka", ".mp2", ".mp3", ".oga", ".opus", ".wav",
		".wma", ".wv",
	}
)

// Default returns the configuration used for standalone runs. Values read
// from a config file are applied on top of it.
func Default() *Config {
	return &Config{
		Paths: Paths{
			Source:      "/srv/media/anime",
			Destination: "/srv/animetree",
		},
		AnimeTree: AnimeTree{
			LogLevel: logrus.InfoLevel,
		},
		Naming: Naming{
			ExtrasFolderNames: append([]string(nil), defaultExtrasFolderNames...),
			VideoExtensions:   append([]string(nil), defaultVideoExtensions...),
			AudioExtensions:   append([]string(nil), defaultAudioExtensions...),
		},
		Metadata: Metadata{
			EpisodeNameFallback: FallbackFilename,
		},
		Library: Library{
			CollectionType: CollectionTVShows,
		},
	}
}
