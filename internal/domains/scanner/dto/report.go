package dto

import (
	cdto "source.hodakov.me/hdkv/animetree/internal/domains/classifier/dto"
	rdto "source.hodakov.me/hdkv/animetree/internal/domains/resolver/dto"
)

// Row is one scanned entry. Error is set when the resolver failed for it.
type Row struct {
	Path          string            `json:"path"`
	Role          cdto.Role         `json:"role"`
	Kind          rdto.DecisionKind `json:"kind"`
	Name          string            `json:"name,omitempty"`
	SortName      string            `json:"sort_name,omitempty"`
	Index         *int              `json:"index,omitempty"`
	SeasonIndex   *int              `json:"season_index,omitempty"`
	ExtraCategory string            `json:"extra_category,omitempty"`
	Error         string            `json:"error,omitempty"`
}

type Report struct {
	Root    string `json:"root"`
	Ignored bool   `json:"ignored"`
	Rows    []Row  `json:"rows"`
}
