package dto

import (
	cdto "source.hodakov.me/hdkv/animetree/internal/domains/classifier/dto"
	mdto "source.hodakov.me/hdkv/animetree/internal/domains/metadata/dto"
)

type DecisionKind int

const (
	// Ignore tells the host to leave the entry alone.
	Ignore DecisionKind = iota
	CreateContainer
	CreateMedia
)

var decisionKindNames = map[DecisionKind]string{
	Ignore:          "Ignore",
	CreateContainer: "CreateContainer",
	CreateMedia:     "CreateMedia",
}

func (k DecisionKind) String() string {
	if name, ok := decisionKindNames[k]; ok {
		return name
	}

	return decisionKindNames[Ignore]
}

func (k DecisionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Decision is the outcome of resolving one item. Folder is set for
// CreateContainer and Media for CreateMedia.
type Decision struct {
	Kind   DecisionKind         `json:"kind"`
	Role   cdto.Role            `json:"role"`
	Folder *cdto.Classification `json:"folder,omitempty"`
	Media  *mdto.Metadata       `json:"media,omitempty"`
}

func IgnoreDecision(role cdto.Role) *Decision {
	return &Decision{Kind: Ignore, Role: role}
}

// ResolvedItem pairs a child entry with the decision made for it.
type ResolvedItem struct {
	Entry    Entry     `json:"entry"`
	Decision *Decision `json:"decision"`
}

// BatchResult partitions the children of a folder. Both partitions keep
// the input order. Ignored is set when the resolver does not apply to the
// parent at all, in which case both partitions are empty.
type BatchResult struct {
	Items    []ResolvedItem `json:"items"`
	LeftOver []Entry        `json:"left_over"`
	Ignored  bool           `json:"ignored"`
}
