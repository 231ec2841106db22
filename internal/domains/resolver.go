package domains

import (
	mdto "source.hodakov.me/hdkv/animetree/internal/domains/metadata/dto"
	"source.hodakov.me/hdkv/animetree/internal/domains/resolver/dto"
)

const ResolverName = "resolver"

type Resolver interface {
	Resolve(item *dto.Item) (*dto.Decision, error)
	ResolveChildren(parent *dto.Item, children []dto.Entry) (*dto.BatchResult, error)
	DescribeExtra(path string) (*mdto.Metadata, bool)
}
