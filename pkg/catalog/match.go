package catalog

import (
	"slices"
	"strings"

	"github.com/matst80/humidor/pkg/types"
	"golang.org/x/text/cases"
)

// A Caser carries state, so every call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// query is a FilterState prepared for repeated per-item checks.
type query struct {
	origins    []string
	strengths  []string
	priceTiers []string
	rarities   []string
	search     string
	favorites  bool
	featured   bool
}

func newQuery(state types.FilterState) query {
	return query{
		origins:    state.Origins,
		strengths:  state.Strengths,
		priceTiers: state.PriceTiers,
		rarities:   state.Rarities,
		search:     fold(strings.TrimSpace(state.Search)),
		favorites:  state.FavoritesOnly,
		featured:   state.FeaturedOnly,
	}
}

func inSelection(selection []string, value string) bool {
	return len(selection) == 0 || slices.Contains(selection, value)
}

func (q *query) matchesText(item *types.CatalogItem) bool {
	if q.search == "" {
		return true
	}
	for _, field := range item.SearchFields() {
		if strings.Contains(fold(field), q.search) {
			return true
		}
	}
	return false
}

// matchesExcept checks every predicate except the selection on skip.
func (q *query) matchesExcept(item *types.CatalogItem, skip types.Axis) bool {
	if skip != types.AxisOrigin && !inSelection(q.origins, string(item.Origin)) {
		return false
	}
	if skip != types.AxisStrength && !inSelection(q.strengths, string(item.Strength)) {
		return false
	}
	if skip != types.AxisPriceTier && !inSelection(q.priceTiers, string(item.PriceTier)) {
		return false
	}
	if skip != types.AxisRarity && !inSelection(q.rarities, string(item.Rarity)) {
		return false
	}
	if q.favorites && !item.Favorite {
		return false
	}
	if q.featured && !item.Featured {
		return false
	}
	return q.matchesText(item)
}

func (q *query) matches(item *types.CatalogItem) bool {
	return q.matchesExcept(item, "")
}

// Matches reports whether item passes every active predicate in state.
func Matches(item types.CatalogItem, state types.FilterState) bool {
	q := newQuery(state)
	return q.matches(&item)
}
