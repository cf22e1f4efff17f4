package catalog

import (
	"github.com/matst80/humidor/pkg/types"
)

type FacetValue struct {
	Value    string `json:"value"`
	Count    int    `json:"count"`
	Selected bool   `json:"selected,omitempty"`
}

type Facet struct {
	Axis   types.Axis   `json:"axis"`
	Values []FacetValue `json:"values"`
}

type Facets []Facet

func (f Facets) Get(axis types.Axis) (Facet, bool) {
	for _, facet := range f {
		if facet.Axis == axis {
			return facet, true
		}
	}
	return Facet{}, false
}

func (f Facet) Count(value string) int {
	for _, v := range f.Values {
		if v.Value == value {
			return v.Count
		}
	}
	return 0
}

func toStrings[T ~string](values []T) []string {
	ret := make([]string, len(values))
	for i, v := range values {
		ret[i] = string(v)
	}
	return ret
}

var facetAxes = []struct {
	axis   types.Axis
	values []string
	value  func(*types.CatalogItem) string
}{
	{types.AxisOrigin, toStrings(types.AllOrigins()), func(i *types.CatalogItem) string { return string(i.Origin) }},
	{types.AxisStrength, toStrings(types.AllStrengths()), func(i *types.CatalogItem) string { return string(i.Strength) }},
	{types.AxisPriceTier, toStrings(types.AllPriceTiers()), func(i *types.CatalogItem) string { return string(i.PriceTier) }},
	{types.AxisRarity, toStrings(types.AllRarities()), func(i *types.CatalogItem) string { return string(i.Rarity) }},
}

// FacetCounts counts, for every value of every axis, the items that match all
// other active predicates. The axis' own selection is ignored so a selected
// value never hides its siblings. Values are listed in declared order.
func FacetCounts(items []types.CatalogItem, state types.FilterState) Facets {
	q := newQuery(state)
	ret := make(Facets, 0, len(facetAxes))
	for _, fa := range facetAxes {
		counts := make(map[string]int, len(fa.values))
		for i := range items {
			if q.matchesExcept(&items[i], fa.axis) {
				counts[fa.value(&items[i])]++
			}
		}
		selection := state.Selection(fa.axis)
		values := make([]FacetValue, 0, len(fa.values))
		for _, v := range fa.values {
			values = append(values, FacetValue{
				Value:    v,
				Count:    counts[v],
				Selected: inSelection(selection, v) && len(selection) > 0,
			})
		}
		ret = append(ret, Facet{Axis: fa.axis, Values: values})
	}
	return ret
}
