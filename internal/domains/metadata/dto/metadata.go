package dto

// Metadata is attached to a media item built from an episode or extra file.
// SortName is always the raw filename so items keep their on-disk order.
type Metadata struct {
	Name          string         `json:"name"`
	SortName      string         `json:"sort_name"`
	EpisodeIndex  *int           `json:"episode_index,omitempty"`
	SeasonIndex   *int           `json:"season_index,omitempty"`
	ExtraCategory *ExtraCategory `json:"extra_category,omitempty"`
}
