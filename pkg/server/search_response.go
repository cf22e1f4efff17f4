package server

import (
	"github.com/matst80/humidor/pkg/catalog"
	"github.com/matst80/humidor/pkg/compare"
	"github.com/matst80/humidor/pkg/types"
	"github.com/matst80/humidor/pkg/window"
)

type ItemsResponse struct {
	Items  []types.CatalogItem `json:"items"`
	Total  int                 `json:"total"`
	Facets catalog.Facets      `json:"facets"`
}

type WindowResponse struct {
	Window      []window.Item  `json:"window"`
	Range       window.Range   `json:"range"`
	Total       int            `json:"total"`
	TotalHeight float64        `json:"totalHeight"`
	Facets      catalog.Facets `json:"facets"`
}

type CompareRequest struct {
	State compare.State `json:"state"`
	Id    string        `json:"id"`
}

type CompareResponse struct {
	State  compare.State      `json:"state"`
	CanAdd bool               `json:"canAdd"`
	Result *compare.AddResult `json:"result,omitempty"`
}

type ShuffleResponse struct {
	Seed  uint64              `json:"seed"`
	Items []types.CatalogItem `json:"items"`
}
