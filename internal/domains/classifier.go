package domains

import "source.hodakov.me/hdkv/animetree/internal/domains/classifier/dto"

const ClassifierName = "classifier"

type Classifier interface {
	ClassifyFolder(path string) dto.Role
	ClassifyEntry(path, parentPath string, isDirectory bool) dto.Role
	DescribeFolder(path string) (*dto.Classification, error)
}
