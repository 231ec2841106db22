package dto

type ExtraCategory int

const (
	CategoryUnknown ExtraCategory = iota
	CategoryThemeVideo
	CategoryTrailer
	CategoryInterview
)

var categoryNames = map[ExtraCategory]string{
	CategoryUnknown:    "Unknown",
	CategoryThemeVideo: "ThemeVideo",
	CategoryTrailer:    "Trailer",
	CategoryInterview:  "Interview",
}

func (c ExtraCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}

	return categoryNames[CategoryUnknown]
}

func (c ExtraCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
