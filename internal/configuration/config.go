package configuration

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/sirupsen/logrus"
)

const (
	DefaultConfigPath = "/etc/animetree.yaml"
	ConfigPathEnv     = "ANIMETREE_CONFIG"
)

type Config struct {
	Paths     Paths     `yaml:"paths"`
	AnimeTree AnimeTree `yaml:"animetree"`
	Naming    Naming    `yaml:"naming"`
	Metadata  Metadata  `yaml:"metadata"`
	Library   Library   `yaml:"library"`
}

type AnimeTree struct {
	LogLevel logrus.Level `yaml:"log_level"`
}

type Paths struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
}

// Naming holds the host naming conventions the classifier works against.
// Matching against every set is case-insensitive.
type Naming struct {
	ExtrasFolderNames []string `yaml:"extras_folder_names"`
	VideoExtensions   []string `yaml:"video_extensions"`
	AudioExtensions   []string `yaml:"audio_extensions"`
}

type Metadata struct {
	EpisodeNameFallback EpisodeNameFallback `yaml:"episode_name_fallback"`
}

type Library struct {
	CollectionType string `yaml:"collection_type"`
}

// EpisodeNameFallback decides what an episode is called when the tokenizer
// found no episode title.
type EpisodeNameFallback string

const (
	// FallbackFilename keeps the raw filename.
	FallbackFilename EpisodeNameFallback = "filename"
	// FallbackEpisodeNumber uses "Episode N" when an episode index is known
	// and the raw filename otherwise.
	FallbackEpisodeNumber EpisodeNameFallback = "episode_number"
)

// New loads the configuration from the path in ANIMETREE_CONFIG, or from
// /etc/animetree.yaml if the variable is not set.
func New() (*Config, error) {
	animeTreeCfgPath := DefaultConfigPath
	if customPath, ok := os.LookupEnv(ConfigPathEnv); ok {
		animeTreeCfgPath = customPath
	}

	return Load(animeTreeCfgPath)
}

// Load reads the YAML file at path on top of Default.
func Load(path string) (*Config, error) {
	rawConfig, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w (%w)", ErrConfiguration, ErrCantReadConfigFile, err)
	}

	return Parse(rawConfig)
}

// Parse decodes raw YAML on top of Default and validates the result.
func Parse(rawConfig []byte) (*Config, error) {
	config := Default()

	err := yaml.Unmarshal(rawConfig, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %w (%w)", ErrConfiguration, ErrCantParseConfigFile, err)
	}

	err = config.Validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Save writes the configuration as YAML to path.
func (c *Config) Save(path string) error {
	rawConfig, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("%w: %w (%w)", ErrConfiguration, ErrCantWriteConfigFile, err)
	}

	err = os.WriteFile(path, rawConfig, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w (%w)", ErrConfiguration, ErrCantWriteConfigFile, err)
	}

	return nil
}
