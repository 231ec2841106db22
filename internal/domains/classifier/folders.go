package classifier

import (
	"fmt"
	"regexp"
	"strconv"

	"source.hodakov.me/hdkv/animetree/internal/domains/classifier/dto"
)

// ordinalPrefix matches anime folder names such as "03. Bocchi the Rock!".
// The separator may be any Unicode space, including U+3000 and U+00A0.
var ordinalPrefix = regexp.MustCompile(`^(\d+)\.[\t\n\v\f\r\x{85}\p{Z}]`)

// AnimeFolderName strips the ordinal prefix from a folder name. Names
// without the prefix are returned unchanged.
func AnimeFolderName(name string) string {
	return ordinalPrefix.ReplaceAllString(name, "")
}

// AnimeFolderIndex returns the ordinal of an anime folder name.
func AnimeFolderIndex(name string) (int, error) {
	match := ordinalPrefix.FindStringSubmatch(name)
	if match == nil {
		return 0, fmt.Errorf(
			"%w: %w (%q has no ordinal prefix)", ErrClassifier, ErrCantDetermineIndex, name,
		)
	}

	index, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %w (%w)", ErrClassifier, ErrCantDetermineIndex, err)
	}

	return index, nil
}

// DescribeFolder classifies the folder at path and derives its display name.
// Anime folders also get their index.
func (c *Classifier) DescribeFolder(path string) (*dto.Classification, error) {
	name := basename(path)
	role := c.ClassifyFolder(path)

	classification := &dto.Classification{
		Role:     role,
		Name:     name,
		SortName: name,
	}

	if role != dto.AnimeFolder {
		return classification, nil
	}

	index, err := AnimeFolderIndex(name)
	if err != nil {
		return nil, err
	}

	classification.Name = AnimeFolderName(name)
	classification.SortName = classification.Name
	classification.Index = &index

	return classification, nil
}
