package domains

import (
	cdto "source.hodakov.me/hdkv/animetree/internal/domains/classifier/dto"
	"source.hodakov.me/hdkv/animetree/internal/domains/metadata/dto"
	tdto "source.hodakov.me/hdkv/animetree/internal/domains/tokenizer/dto"
)

const MetadataName = "metadata"

type Metadata interface {
	MapFile(role cdto.Role, filename string, tokens *tdto.TokenBag) (*dto.Metadata, error)
	DescribeFile(role cdto.Role, filename string) (*dto.Metadata, error)
}
