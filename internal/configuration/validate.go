package configuration

import (
	"fmt"
	"strings"
)

// Validate checks the values the core cannot work without. Overlapping or
// empty extension sets are the host's business and pass through untouched.
func (c *Config) Validate() error {
	switch c.Metadata.EpisodeNameFallback {
	case FallbackFilename, FallbackEpisodeNumber:
	default:
		return fmt.Errorf(
			"%w: %w (unknown episode name fallback %q)",
			ErrConfiguration, ErrInvalidConfiguration, c.Metadata.EpisodeNameFallback,
		)
	}

	for _, set := range [][]string{c.Naming.VideoExtensions, c.Naming.AudioExtensions} {
		for _, extension := range set {
			if !strings.HasPrefix(extension, ".") {
				return fmt.Errorf(
					"%w: %w (extension %q must start with a dot)",
					ErrConfiguration, ErrInvalidConfiguration, extension,
				)
			}
		}
	}

	return nil
}
