package dto

// Classification describes a folder. Index is set for anime folders only.
type Classification struct {
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	SortName string `json:"sort_name"`
	Index    *int   `json:"index,omitempty"`
}
